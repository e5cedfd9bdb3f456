// Package html renders descendant trees as a standalone HTML page.
//
// The tree is a nested list. Each family unit shows the descendant and,
// when the print policy allows, the partner; every person has a main line
// and an optional italic line with email and address. Gender and
// relationship symbols are coloured and carry a title for hover text:
//
//	♂ Male, ♀ Female
//	⚭ Married, ⚮ Divorced (was married to: <partner>), ⚯ Unmarried
//
// All record values are escaped by html/template.
package html

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/matzehuels/familytree/pkg/familytree"
	"github.com/matzehuels/familytree/pkg/records"
	"github.com/matzehuels/familytree/pkg/render"
)

//go:embed page.html.tmpl
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "page.html.tmpl"))

const (
	colorMale      = "#6666FF"
	colorFemale    = "#FF3399"
	colorMarried   = "#002900"
	colorDivorced  = "#7A0000"
	colorUnmarried = "#858585"
)

// Renderer writes the HTML page.
type Renderer struct {
	f      render.Formatter
	policy familytree.PrintPolicy
}

// New returns an HTML Renderer.
func New(opts render.Options) *Renderer {
	return &Renderer{f: render.NewFormatter(opts), policy: opts.Policy}
}

// Symbol is a coloured glyph with hover text.
type Symbol struct {
	Glyph string
	Color string
	Title string
}

// Person is the view of one printed individual.
type Person struct {
	ID           string
	Gender       *Symbol
	Relationship *Symbol
	// Name is the first name and the current last name, Maiden the birth
	// surname when it differs from the married one.
	Name     string
	Maiden   string
	Lifespan string
	Info     string
}

// Unit is the view of one family unit.
type Unit struct {
	Key      string
	Primary  Person
	Partner  *Person
	Children []*Unit
}

type pageData struct {
	Title string
	Roots []*Unit
}

// Render writes the complete page.
func (r *Renderer) Render(w io.Writer, t *familytree.Tree) error {
	return page.Execute(w, pageData{Title: t.Title, Roots: r.Units(t.Roots())})
}

// Units converts a sibling list to views, resolving the partner policy.
func (r *Renderer) Units(nodes []*familytree.Node) []*Unit {
	out := make([]*Unit, 0, len(nodes))
	for _, n := range nodes {
		u := &Unit{
			Key:      n.Key(),
			Primary:  r.person(n.Primary(), n.Partner(), n.Family(), nil),
			Children: r.Units(n.Children()),
		}
		if familytree.ShouldPrintPartner(n, nodes, r.policy) {
			p := r.person(n.Partner(), n.Primary(), n.Family(), n.Primary())
			u.Partner = &p
		}
		out = append(out, u)
	}
	return out
}

// person builds the view of ind. sameAddr, when set, suppresses the
// address if it equals that individual's.
func (r *Renderer) person(ind, partner *records.Individual, fam *records.Family, sameAddr *records.Individual) Person {
	f := r.f
	p := Person{ID: f.ID(ind)}

	if g := f.Gender(ind, "♂", "♀"); g != "" {
		p.Gender = &Symbol{Glyph: g, Color: colorMale, Title: "Male"}
		if ind.Sex == records.SexFemale {
			p.Gender.Color, p.Gender.Title = colorFemale, "Female"
		}
	}
	if rel := f.Relationship(fam, "⚭", "⚮", "⚯"); rel != "" {
		p.Relationship = r.relationship(rel, partner)
	}

	married, maiden := f.MarriedName(ind, fam), f.MaidenName(ind)
	last := married
	if last == "" {
		last, maiden = maiden, ""
	} else if maiden == married {
		maiden = ""
	}
	p.Name = strings.TrimSpace(f.FirstName(ind) + " " + last)
	p.Maiden = maiden

	if birth := f.BirthDate(ind); birth != "" {
		p.Lifespan = "❊" + birth
		if death := f.DeathDate(ind); death != "" {
			p.Lifespan += " - ✝" + death
			if age := f.Age(ind); age != "" {
				p.Lifespan += " | " + age
			}
		}
	}

	var info []string
	if email := f.Email(ind); email != "" {
		info = append(info, "✉ "+email)
	}
	if !render.SameAddress(ind, sameAddr) {
		if addr := f.Address(ind); addr != "" {
			info = append(info, "▪ "+addr)
		}
	}
	p.Info = strings.Join(info, " ")
	return p
}

func (r *Renderer) relationship(glyph string, partner *records.Individual) *Symbol {
	switch glyph {
	case "⚭":
		return &Symbol{Glyph: glyph, Color: colorMarried, Title: "Married"}
	case "⚮":
		title := "Divorced"
		if partner != nil {
			name := strings.TrimSpace(r.f.FirstName(partner) + " " + r.f.MaidenName(partner))
			if name != "" {
				title += " (was married to: " + name + ")"
			}
		}
		return &Symbol{Glyph: glyph, Color: colorDivorced, Title: title}
	}
	return &Symbol{Glyph: glyph, Color: colorUnmarried, Title: "Unmarried"}
}
