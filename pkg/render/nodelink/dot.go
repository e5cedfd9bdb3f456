package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/familytree/pkg/familytree"
	"github.com/matzehuels/familytree/pkg/records"
	"github.com/matzehuels/familytree/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds email and address lines to the unit labels.
	Detailed bool
}

// Renderer writes DOT source or SVG.
type Renderer struct {
	opts   render.Options
	detail Options
	svg    bool
}

// New returns a Renderer for render.FormatDOT or render.FormatSVG.
func New(format string, opts render.Options, detail Options) *Renderer {
	return &Renderer{opts: opts, detail: detail, svg: format == render.FormatSVG}
}

// Render writes the diagram.
func (r *Renderer) Render(w io.Writer, t *familytree.Tree) error {
	dot := ToDOT(t, r.opts, r.detail)
	if !r.svg {
		_, err := io.WriteString(w, dot)
		return err
	}
	svg, err := RenderSVG(dot)
	if err != nil {
		return err
	}
	_, err = w.Write(svg)
	return err
}

// ToDOT converts a tree to Graphviz DOT. Units are named u0, u1, ... in
// tree order since member keys are not unique.
func ToDOT(t *familytree.Tree, opts render.Options, detail Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	if t.Title != "" {
		fmt.Fprintf(&buf, "  labelloc=t;\n  label=%q;\n", t.Title)
	}
	buf.WriteString("\n")

	f := render.NewFormatter(opts)
	ids := make(map[*familytree.Node]string)
	_ = render.Walk(t, opts.Policy, func(e render.Entry) error {
		n := e.Node
		id := "u" + strconv.Itoa(len(ids))
		ids[n] = id

		lines := []string{personLabel(f, n.Primary(), n.Family())}
		if detail.Detailed {
			lines = append(lines, infoLabel(f, n.Primary(), nil)...)
		}
		if e.ShowPartner {
			lines = append(lines, personLabel(f, n.Partner(), n.Family()))
			if detail.Detailed {
				lines = append(lines, infoLabel(f, n.Partner(), n.Primary())...)
			}
		}
		attrs := append([]string{fmt.Sprintf("label=%q", strings.Join(lines, "\n"))}, fmtAttrs(n)...)
		fmt.Fprintf(&buf, "  %s [%s];\n", id, strings.Join(attrs, ", "))
		return nil
	})

	buf.WriteString("\n")
	t.Walk(func(n *familytree.Node, _ int, _ []*familytree.Node) bool {
		for _, c := range n.Children() {
			fmt.Fprintf(&buf, "  %s -> %s;\n", ids[n], ids[c])
		}
		return true
	})
	buf.WriteString("}\n")
	return buf.String()
}

func personLabel(f render.Formatter, ind *records.Individual, fam *records.Family) string {
	parts := []string{
		f.ID(ind),
		f.Gender(ind, "♂", "♀"),
		f.Relationship(fam, "⚭", "⚮", "⚯"),
		f.FirstName(ind),
		f.MaidenName(ind),
	}
	if married := f.MarriedName(ind, fam); married != "" {
		parts = append(parts, "("+married+")")
	}
	if birth := f.BirthDate(ind); birth != "" {
		life := "❊" + birth
		if death := f.DeathDate(ind); death != "" {
			life += " - ✝" + death
		}
		parts = append(parts, life)
	}
	return join(parts)
}

func infoLabel(f render.Formatter, ind, partner *records.Individual) []string {
	var lines []string
	if email := f.Email(ind); email != "" {
		lines = append(lines, email)
	}
	if !render.SameAddress(ind, partner) {
		if addr := f.Address(ind); addr != "" {
			lines = append(lines, addr)
		}
	}
	return lines
}

func fmtAttrs(n *familytree.Node) []string {
	switch {
	case n.IsLone():
		return []string{"fillcolor=lightgrey"}
	case n.Family().IsDivorced():
		return []string{"style=\"rounded,filled,dashed\""}
	}
	return nil
}

func join(parts []string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized svg tag with a plain
// viewBox so the image scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
