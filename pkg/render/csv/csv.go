// Package csv renders descendant trees as a flat CSV table.
//
// Every printed individual gets one row: the descendant of each family
// unit, followed by the partner when the print policy allows it. Rows
// appear in tree order. With [WithLevels], leading L_0..L_n columns show
// the generation of each row: "x" marks a descendant, "+" a partner.
//
// Hidden fields keep their column with an empty cell, so the header is
// the same for every option set.
package csv

import (
	enccsv "encoding/csv"
	"fmt"
	"io"

	"github.com/matzehuels/familytree/pkg/familytree"
	"github.com/matzehuels/familytree/pkg/records"
	"github.com/matzehuels/familytree/pkg/render"
)

// Header lists the data columns in order.
var Header = []string{
	"id", "gender", "civil_status", "name", "middle_names", "maiden_name",
	"married_name", "birth_date", "death_date", "email",
	"street1", "street2", "post", "city", "country",
}

const (
	markDescendant = "x"
	markPartner    = "+"
)

// Renderer writes the CSV table.
type Renderer struct {
	f      render.Formatter
	policy familytree.PrintPolicy
	levels bool
	comma  rune
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLevels adds the generation columns in front of the data.
func WithLevels(on bool) Option {
	return func(r *Renderer) { r.levels = on }
}

// WithComma sets the field delimiter. The default is ','.
func WithComma(c rune) Option {
	return func(r *Renderer) { r.comma = c }
}

// New returns a CSV Renderer.
func New(opts render.Options, options ...Option) *Renderer {
	r := &Renderer{f: render.NewFormatter(opts), policy: opts.Policy, comma: ','}
	for _, o := range options {
		o(r)
	}
	return r
}

// Render writes the header and one row per printed individual.
func (r *Renderer) Render(w io.Writer, t *familytree.Tree) error {
	cw := enccsv.NewWriter(w)
	cw.Comma = r.comma

	depth := 0
	if r.levels {
		depth = t.Depth()
	}
	header := make([]string, 0, depth+len(Header))
	for i := range depth {
		header = append(header, fmt.Sprintf("L_%d", i))
	}
	header = append(header, Header...)
	if err := cw.Write(header); err != nil {
		return err
	}

	err := render.Walk(t, r.policy, func(e render.Entry) error {
		n := e.Node
		if err := cw.Write(r.row(depth, e.Depth, markDescendant, n.Primary(), n.Family())); err != nil {
			return err
		}
		if e.ShowPartner {
			return cw.Write(r.row(depth, e.Depth, markPartner, n.Partner(), n.Family()))
		}
		return nil
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func (r *Renderer) row(levels, depth int, mark string, ind *records.Individual, fam *records.Family) []string {
	row := make([]string, levels, levels+len(Header))
	if depth < levels {
		row[depth] = mark
	}
	return append(row, r.Fields(ind, fam)...)
}

// Fields returns the data columns of one individual within union fam, in
// [Header] order.
func (r *Renderer) Fields(ind *records.Individual, fam *records.Family) []string {
	f := r.f
	first, middle := render.SplitFirstName(f.FirstName(ind))
	out := []string{
		f.ID(ind),
		f.Gender(ind, "M", "F"),
		f.Relationship(fam, "married", "divorced", "unmarried"),
		first,
		middle,
		f.MaidenName(ind),
		f.MarriedName(ind, fam),
		f.BirthDate(ind),
		f.DeathDate(ind),
		f.Email(ind),
	}
	return append(out, f.AddressParts(ind)...)
}
