package jsontree

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/matzehuels/familytree/pkg/render"
	"github.com/matzehuels/familytree/pkg/render/rendertest"
)

func TestRender(t *testing.T) {
	tree := rendertest.Tree(t)
	var buf bytes.Buffer
	if err := New(render.DefaultOptions()).Render(&buf, tree); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.ID != tree.ID || doc.Root != "I1" || doc.Title != "Descendants of Hans Muster" {
		t.Errorf("header = %q/%q/%q", doc.ID, doc.Root, doc.Title)
	}
	if len(doc.Units) != 2 {
		t.Fatalf("units = %d, want 2", len(doc.Units))
	}

	first := doc.Units[0]
	if first.Key != "I1-I2" || first.Family == nil || first.Family.Status != "married" || first.Family.MarriageDate != "1946" {
		t.Errorf("first unit = %+v", first)
	}
	if first.Partner == nil || first.Partner.MarriedName != "Muster" || first.Partner.MaidenName != "Keller" {
		t.Errorf("partner = %+v", first.Partner)
	}
	if first.Primary.Age != "70" || first.Primary.Death != "05.1990" {
		t.Errorf("primary = %+v", first.Primary)
	}
	if len(first.Children) != 2 || first.Children[1].Family != nil || first.Children[1].Key != "I4-" {
		t.Errorf("children = %+v", first.Children)
	}

	if second := doc.Units[1]; second.Partner != nil || second.Family.Status != "divorced" {
		t.Errorf("second unit = %+v, want divorced without partner", second)
	}
}

func TestRenderHiddenFields(t *testing.T) {
	opts := render.Options{ShowFirstName: true, Policy: render.DefaultOptions().Policy}
	doc := New(opts).Document(rendertest.Tree(t))
	want := Person{FirstName: "Hans"}
	if got := doc.Units[0].Primary; got != want {
		t.Errorf("primary = %+v, want %+v", got, want)
	}
}
