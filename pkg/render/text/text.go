// Package text renders descendant trees as a vertical text tree.
//
// Each family unit prints the descendant's line, an optional line with
// email and address, and the same two lines for the partner when the
// print policy allows it. Children hang below with box-drawing
// connectors:
//
//	Descendants of Hans Muster
//	└── I1 ♂ ⚭ Hans Muster [❊12.03.1920 - ✝05.1990 | 70]
//	      ✉ hans@example.org ▪ Hauptstrasse 1, 3000, Bern
//	    I2 ♀ ⚭ Anna Keller (Muster) [❊1925]
//	    ├── I3 ♂ Peter Muster [❊1950]
//	    └── I4 ♀ Vreni Muster [❊1952]
//
// Symbols: ♂ male, ♀ female, ⚭ married, ⚮ divorced, ⚯ unmarried,
// ❊ born, ✝ died, ✉ email, ▪ address.
package text

import (
	"bufio"
	"io"
	"strings"

	"github.com/matzehuels/familytree/pkg/familytree"
	"github.com/matzehuels/familytree/pkg/records"
	"github.com/matzehuels/familytree/pkg/render"
)

const (
	symMale      = "♂"
	symFemale    = "♀"
	symMarried   = "⚭"
	symDivorced  = "⚮"
	symUnmarried = "⚯"
	symBorn      = "❊"
	symDied      = "✝"
	symEmail     = "✉"
	symAddress   = "▪"
)

// Renderer writes the text tree.
type Renderer struct {
	f      render.Formatter
	policy familytree.PrintPolicy
}

// New returns a text Renderer.
func New(opts render.Options) *Renderer {
	return &Renderer{f: render.NewFormatter(opts), policy: opts.Policy}
}

// Render writes the title followed by the tree.
func (r *Renderer) Render(w io.Writer, t *familytree.Tree) error {
	bw := bufio.NewWriter(w)
	if t.Title != "" {
		writeLine(bw, t.Title)
	}
	err := render.Walk(t, r.policy, func(e render.Entry) error {
		head, cont := prefixes(e)
		n := e.Node
		fam := n.Family()

		writeLine(bw, head+r.PersonLine(n.Primary(), fam))
		if extra := r.InfoLine(n.Primary(), nil); extra != "" {
			writeLine(bw, cont+"  "+extra)
		}
		if e.ShowPartner {
			writeLine(bw, cont+r.PersonLine(n.Partner(), fam))
			if extra := r.InfoLine(n.Partner(), n.Primary()); extra != "" {
				writeLine(bw, cont+"  "+extra)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

func writeLine(w *bufio.Writer, s string) {
	w.WriteString(strings.TrimRight(s, " "))
	w.WriteByte('\n')
}

// prefixes returns the connector for the node's first line and the
// continuation used for its other lines.
func prefixes(e render.Entry) (head, cont string) {
	var b strings.Builder
	for _, last := range e.Ancestors {
		if last {
			b.WriteString("    ")
		} else {
			b.WriteString("│   ")
		}
	}
	base := b.String()
	if e.Last {
		return base + "└── ", base + "    "
	}
	return base + "├── ", base + "│   "
}

// PersonLine is the main line of one individual within union fam.
func (r *Renderer) PersonLine(ind *records.Individual, fam *records.Family) string {
	f := r.f
	parts := []string{
		f.ID(ind),
		f.Gender(ind, symMale, symFemale),
		f.Relationship(fam, symMarried, symDivorced, symUnmarried),
		f.FirstName(ind),
		f.MaidenName(ind),
	}
	if married := f.MarriedName(ind, fam); married != "" {
		parts = append(parts, "("+married+")")
	}
	if life := r.lifespan(ind); life != "" {
		parts = append(parts, life)
	}
	return join(parts)
}

func (r *Renderer) lifespan(ind *records.Individual) string {
	birth := r.f.BirthDate(ind)
	if birth == "" {
		return ""
	}
	s := "[" + symBorn + birth
	if death := r.f.DeathDate(ind); death != "" {
		s += " - " + symDied + death
		if age := r.f.Age(ind); age != "" {
			s += " | " + age
		}
	}
	return s + "]"
}

// InfoLine is the email and address line, "" when both are empty. The
// address is left out when it equals that of partner.
func (r *Renderer) InfoLine(ind, partner *records.Individual) string {
	var parts []string
	if email := r.f.Email(ind); email != "" {
		parts = append(parts, symEmail+" "+email)
	}
	if !render.SameAddress(ind, partner) {
		if addr := r.f.Address(ind); addr != "" {
			parts = append(parts, symAddress+" "+addr)
		}
	}
	return join(parts)
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
