package csv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/familytree/pkg/render"
	"github.com/matzehuels/familytree/pkg/render/rendertest"
)

const header = "id,gender,civil_status,name,middle_names,maiden_name,married_name,birth_date,death_date,email,street1,street2,post,city,country"

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := New(render.DefaultOptions()).Render(&buf, rendertest.Tree(t)); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	want := []string{
		header,
		"I1,M,married,Hans,,Muster,,12.03.1920,05.1990,hans@example.org,Hauptstrasse 1,,3000,Bern,CH",
		"I2,F,married,Anna,,Keller,Muster,1925,,,Hauptstrasse 1,,3000,Bern,CH",
		"I3,M,unmarried,Peter,Hans,Muster,,1950,,,,,,,",
		"I6,F,unmarried,Rosa,,Meier,,,?,,,,,,",
		"I4,F,,Vreni,,Muster,,02.01.1952,,,,,,,",
		"I1,M,divorced,Hans,,Muster,,12.03.1920,05.1990,hans@example.org,Hauptstrasse 1,,3000,Bern,CH",
	}
	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("Render() = %d lines, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderLevels(t *testing.T) {
	var buf bytes.Buffer
	r := New(render.DefaultOptions(), WithLevels(true), WithComma(';'))
	if err := r.Render(&buf, rendertest.Tree(t)); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")

	if want := "L_0;L_1;" + strings.ReplaceAll(header, ",", ";"); lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	prefixes := []string{"x;;I1;", "+;;I2;", ";x;I3;", ";+;I6;", ";x;I4;", "x;;I1;"}
	for i, p := range prefixes {
		if !strings.HasPrefix(lines[i+1], p) {
			t.Errorf("line %d = %q, want prefix %q", i+1, lines[i+1], p)
		}
	}
}

func TestFieldsHidden(t *testing.T) {
	s := rendertest.Store(t)
	i1, _ := s.Individual("I1")
	f1, _ := s.Family("F1")

	r := New(render.Options{ShowFirstName: true})
	got := r.Fields(i1, f1)
	if len(got) != len(Header) {
		t.Fatalf("Fields() = %d columns, want %d", len(got), len(Header))
	}
	for i, v := range got {
		if i == 3 {
			if v != "Hans" {
				t.Errorf("name = %q, want Hans", v)
			}
			continue
		}
		if v != "" {
			t.Errorf("column %s = %q, want empty", Header[i], v)
		}
	}
}
