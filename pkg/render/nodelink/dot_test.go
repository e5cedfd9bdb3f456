package nodelink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/familytree/pkg/render"
	"github.com/matzehuels/familytree/pkg/render/rendertest"
)

func TestToDOT(t *testing.T) {
	dot := ToDOT(rendertest.Tree(t), render.DefaultOptions(), Options{})

	for _, want := range []string{
		"digraph G",
		`label="Descendants of Hans Muster"`,
		`u0 [label="I1 ♂ ⚭ Hans Muster ❊12.03.1920 - ✝05.1990\nI2 ♀ ⚭ Anna Keller (Muster) ❊1925"]`,
		`u2 [label="I4 ♀ Vreni Muster ❊02.01.1952", fillcolor=lightgrey]`,
		`u3 [label="I1 ♂ ⚮ Hans Muster ❊12.03.1920 - ✝05.1990", style="rounded,filled,dashed"]`,
		"u0 -> u1;",
		"u0 -> u2;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "u3 ->") {
		t.Error("ToDOT() childless unit has edges")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(rendertest.Tree(t), render.DefaultOptions(), Options{Detailed: true})
	if !strings.Contains(dot, `\nhans@example.org\nHauptstrasse 1, 3000, Bern, CH\nI2`) {
		t.Errorf("ToDOT() detailed output missing info lines:\n%s", dot)
	}
	if strings.Count(dot, "Hauptstrasse") != 2 {
		t.Error("ToDOT() detailed should drop the partner's shared address")
	}
}

func TestRendererDOT(t *testing.T) {
	var buf bytes.Buffer
	if err := New(render.FormatDOT, render.DefaultOptions(), Options{}).Render(&buf, rendertest.Tree(t)); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "digraph G {") {
		t.Errorf("Render() = %q", buf.String())
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %q, want %q", got, want)
	}
	if got := normalizeViewBox([]byte("<svg>")); string(got) != "<svg>" {
		t.Errorf("normalizeViewBox() without viewBox = %q", got)
	}
}
