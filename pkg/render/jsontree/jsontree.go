// Package jsontree renders descendant trees as nested JSON.
//
// The document mirrors the tree: each unit carries its descendant, the
// partner when the print policy allows it, and its child units. Fields
// follow the same show/hide options as the text reports and are omitted
// when hidden or unknown.
//
//	{
//	  "id": "…",
//	  "title": "Descendants of Hans Muster",
//	  "root": "I1",
//	  "units": [{"key": "I1-I2", "family": {...}, "primary": {...}, "partner": {...}, "children": [...]}],
//	  "warnings": ["missing child I9 referenced by F1"]
//	}
package jsontree

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/familytree/pkg/familytree"
	"github.com/matzehuels/familytree/pkg/records"
	"github.com/matzehuels/familytree/pkg/render"
)

// Document is the top-level JSON object.
type Document struct {
	ID       string   `json:"id"`
	Title    string   `json:"title,omitempty"`
	Root     string   `json:"root"`
	Units    []*Unit  `json:"units"`
	Warnings []string `json:"warnings,omitempty"`
}

// Unit is one family unit.
type Unit struct {
	Key      string  `json:"key"`
	Family   *Family `json:"family,omitempty"`
	Primary  Person  `json:"primary"`
	Partner  *Person `json:"partner,omitempty"`
	Children []*Unit `json:"children,omitempty"`
}

// Family describes the union of a unit.
type Family struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	MarriageDate string `json:"marriage_date,omitempty"`
}

// Person holds the printable fields of one individual.
type Person struct {
	ID          string `json:"id,omitempty"`
	Sex         string `json:"sex,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	MaidenName  string `json:"maiden_name,omitempty"`
	MarriedName string `json:"married_name,omitempty"`
	Birth       string `json:"birth,omitempty"`
	Death       string `json:"death,omitempty"`
	Age         string `json:"age,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
}

// Renderer writes indented JSON.
type Renderer struct {
	f      render.Formatter
	policy familytree.PrintPolicy
}

// New returns a JSON Renderer.
func New(opts render.Options) *Renderer {
	return &Renderer{f: render.NewFormatter(opts), policy: opts.Policy}
}

// Render writes the document followed by a newline.
func (r *Renderer) Render(w io.Writer, t *familytree.Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r.Document(t))
}

// Document converts t.
func (r *Renderer) Document(t *familytree.Tree) *Document {
	doc := &Document{ID: t.ID, Title: t.Title, Root: t.RootID, Units: r.units(t.Roots())}
	for _, w := range t.Warnings() {
		doc.Warnings = append(doc.Warnings, w.String())
	}
	return doc
}

func (r *Renderer) units(nodes []*familytree.Node) []*Unit {
	out := make([]*Unit, 0, len(nodes))
	for _, n := range nodes {
		u := &Unit{
			Key:      n.Key(),
			Primary:  r.person(n.Primary(), n.Family()),
			Children: r.units(n.Children()),
		}
		if fam := n.Family(); fam != nil {
			u.Family = &Family{ID: fam.ID, Status: fam.Status.String(), MarriageDate: fam.MarriageDate}
		}
		if familytree.ShouldPrintPartner(n, nodes, r.policy) {
			p := r.person(n.Partner(), n.Family())
			u.Partner = &p
		}
		out = append(out, u)
	}
	return out
}

func (r *Renderer) person(ind *records.Individual, fam *records.Family) Person {
	f := r.f
	return Person{
		ID:          f.ID(ind),
		Sex:         f.Gender(ind, "M", "F"),
		FirstName:   f.FirstName(ind),
		MaidenName:  f.MaidenName(ind),
		MarriedName: f.MarriedName(ind, fam),
		Birth:       f.BirthDate(ind),
		Death:       f.DeathDate(ind),
		Age:         f.Age(ind),
		Email:       f.Email(ind),
		Address:     f.Address(ind),
	}
}
