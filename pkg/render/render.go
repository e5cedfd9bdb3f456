package render

import (
	"io"

	"github.com/matzehuels/familytree/pkg/familytree"
)

// Renderer writes a report of a descendant tree.
type Renderer interface {
	Render(w io.Writer, t *familytree.Tree) error
}

// Output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatHTML = "html"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatCSV, FormatHTML, FormatDOT, FormatSVG, FormatJSON}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	switch format {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatSVG:
		return "image/svg+xml"
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

// Extension returns the file extension of a format, without dot.
func Extension(format string) string {
	if format == FormatText {
		return "txt"
	}
	return format
}

// Options are the show/hide switches shared by all renderers.
type Options struct {
	ShowID           bool
	ShowGender       bool
	ShowRelationship bool
	ShowEmail        bool
	ShowAddress      bool
	ShowAgeForDead   bool
	ShowBirthDate    bool
	ShowDeathDate    bool
	ShowFirstName    bool
	ShowMaidenName   bool
	ShowMarriedName  bool

	Policy familytree.PrintPolicy
}

// DefaultOptions shows every field and every divorced partner the
// de-duplication rule allows.
func DefaultOptions() Options {
	return Options{
		ShowID:           true,
		ShowGender:       true,
		ShowRelationship: true,
		ShowEmail:        true,
		ShowAddress:      true,
		ShowAgeForDead:   true,
		ShowBirthDate:    true,
		ShowDeathDate:    true,
		ShowFirstName:    true,
		ShowMaidenName:   true,
		ShowMarriedName:  true,
		Policy:           familytree.DefaultPrintPolicy(),
	}
}

// Entry is one node as visited by [Walk].
type Entry struct {
	Node  *familytree.Node
	Depth int
	// Last is true for the last node of its sibling list.
	Last bool
	// Ancestors holds Last for every ancestor, outermost first.
	Ancestors []bool
	// ShowPartner is the result of familytree.ShouldPrintPartner.
	ShowPartner bool
}

// Walk visits every node depth-first in tree order and resolves the
// partner policy for it. Returning an error stops the walk.
func Walk(t *familytree.Tree, policy familytree.PrintPolicy, fn func(e Entry) error) error {
	return walk(t.Roots(), 0, nil, policy, fn)
}

func walk(nodes []*familytree.Node, depth int, ancestors []bool, policy familytree.PrintPolicy, fn func(Entry) error) error {
	for i, n := range nodes {
		e := Entry{
			Node:        n,
			Depth:       depth,
			Last:        i == len(nodes)-1,
			Ancestors:   ancestors,
			ShowPartner: familytree.ShouldPrintPartner(n, nodes, policy),
		}
		if err := fn(e); err != nil {
			return err
		}
		next := append(ancestors[:len(ancestors):len(ancestors)], e.Last)
		if err := walk(n.Children(), depth+1, next, policy, fn); err != nil {
			return err
		}
	}
	return nil
}
