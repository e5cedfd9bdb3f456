package pipeline

import (
	"bytes"

	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/familytree"
	"github.com/matzehuels/familytree/pkg/render"
	"github.com/matzehuels/familytree/pkg/render/csv"
	"github.com/matzehuels/familytree/pkg/render/html"
	"github.com/matzehuels/familytree/pkg/render/jsontree"
	"github.com/matzehuels/familytree/pkg/render/nodelink"
	"github.com/matzehuels/familytree/pkg/render/text"
)

// NewRenderer returns the renderer for opts.Format.
func NewRenderer(opts Options) (render.Renderer, error) {
	switch opts.Format {
	case render.FormatText, "":
		return text.New(opts.Print), nil
	case render.FormatCSV:
		return csv.New(opts.Print, csv.WithLevels(opts.CSVLevels)), nil
	case render.FormatHTML:
		return html.New(opts.Print), nil
	case render.FormatDOT, render.FormatSVG:
		return nodelink.New(opts.Format, opts.Print, nodelink.Options{Detailed: opts.Detailed}), nil
	case render.FormatJSON:
		return jsontree.New(opts.Print), nil
	}
	return nil, errors.ValidateFormat(opts.Format, render.Formats)
}

// Render writes t in opts.Format and returns the bytes.
func Render(t *familytree.Tree, opts Options) ([]byte, error) {
	r, err := NewRenderer(opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
