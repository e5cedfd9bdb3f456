package text

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/familytree/pkg/familytree"
	"github.com/matzehuels/familytree/pkg/records"
	"github.com/matzehuels/familytree/pkg/render"
	"github.com/matzehuels/familytree/pkg/render/rendertest"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := New(render.DefaultOptions()).Render(&buf, rendertest.Tree(t)); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	want := strings.Join([]string{
		"Descendants of Hans Muster",
		"├── I1 ♂ ⚭ Hans Muster [❊12.03.1920 - ✝05.1990 | 70]",
		"│     ✉ hans@example.org ▪ Hauptstrasse 1, 3000, Bern, CH",
		"│   I2 ♀ ⚭ Anna Keller (Muster) [❊1925]",
		"│   ├── I3 ♂ ⚯ Peter Hans Muster [❊1950]",
		"│   │   I6 ♀ ⚯ Rosa Meier",
		"│   └── I4 ♀ Vreni Muster [❊02.01.1952]",
		"└── I1 ♂ ⚮ Hans Muster [❊12.03.1920 - ✝05.1990 | 70]",
		"      ✉ hans@example.org ▪ Hauptstrasse 1, 3000, Bern, CH",
	}, "\n") + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderShowsDivorcedPartnerWhenAllowed(t *testing.T) {
	opts := render.DefaultOptions()
	opts.Policy = familytree.PrintPolicy{ShowDivorcedWithChildren: true, ShowDivorcedWithoutChildren: true}
	tree := rendertest.Tree(t)

	// F1 is married, so F2's childless divorced partner stays hidden even
	// when the policy allows it.
	var buf bytes.Buffer
	if err := New(opts).Render(&buf, tree); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "Berta") {
		t.Errorf("Render() printed I5 next to a married union:\n%s", buf.String())
	}
}

func TestPersonLine(t *testing.T) {
	s := rendertest.Store(t)
	i1, _ := s.Individual("I1")
	i2, _ := s.Individual("I2")
	f1, _ := s.Family("F1")
	f2, _ := s.Family("F2")
	i6, _ := s.Individual("I6")

	tests := []struct {
		name string
		opts func(*render.Options)
		ind  *records.Individual
		fam  *records.Family
		want string
	}{
		{"full", nil, i1, f1, "I1 ♂ ⚭ Hans Muster [❊12.03.1920 - ✝05.1990 | 70]"},
		{"married name", nil, i2, f1, "I2 ♀ ⚭ Anna Keller (Muster) [❊1925]"},
		{"no married name when divorced", nil, i2, f2, "I2 ♀ ⚮ Anna Keller [❊1925]"},
		{"lone", nil, i1, nil, "I1 ♂ Hans Muster [❊12.03.1920 - ✝05.1990 | 70]"},
		{"death without birth", nil, i6, nil, "I6 ♀ Rosa Meier"},
		{"hide id and gender", func(o *render.Options) { o.ShowID, o.ShowGender = false, false }, i1, f1, "⚭ Hans Muster [❊12.03.1920 - ✝05.1990 | 70]"},
		{"hide age", func(o *render.Options) { o.ShowAgeForDead = false }, i1, f1, "I1 ♂ ⚭ Hans Muster [❊12.03.1920 - ✝05.1990]"},
		{"hide birth", func(o *render.Options) { o.ShowBirthDate = false }, i1, f1, "I1 ♂ ⚭ Hans Muster"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := render.DefaultOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}
			if got := New(opts).PersonLine(tt.ind, tt.fam); got != tt.want {
				t.Errorf("PersonLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfoLine(t *testing.T) {
	s := rendertest.Store(t)
	i1, _ := s.Individual("I1")
	i2, _ := s.Individual("I2")
	i3, _ := s.Individual("I3")
	r := New(render.DefaultOptions())

	if got, want := r.InfoLine(i2, nil), "▪ Hauptstrasse 1, 3000, Bern, CH"; got != want {
		t.Errorf("InfoLine(I2) = %q, want %q", got, want)
	}
	if got := r.InfoLine(i2, i1); got != "" {
		t.Errorf("InfoLine(I2, I1) = %q, want shared address dropped", got)
	}
	if got := r.InfoLine(i3, nil); got != "" {
		t.Errorf("InfoLine(I3) = %q, want empty", got)
	}
}
