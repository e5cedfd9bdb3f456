package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/render"
)

func TestReport(t *testing.T) {
	isolate(t)
	src := fixtureFile(t)

	out, err := run(t, "report", src, "--root", "I1", "--no-cache")
	if err != nil {
		t.Fatalf("report error: %v", err)
	}
	if !strings.HasPrefix(out, "Descendants of Hans Muster\n") || !strings.Contains(out, "✉ hans@example.org") {
		t.Errorf("report =\n%s", out)
	}

	out, err = run(t, "report", src, "-r", "I1", "--no-cache", "--hide", "email,address", "--title", "Muster")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Muster\n") || strings.Contains(out, "✉") || strings.Contains(out, "Bern") {
		t.Errorf("hidden fields still printed:\n%s", out)
	}

	out, err = run(t, "report", src, "-r", "I1", "--no-cache", "--order", "youngest")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Index(out, "I4") > strings.Index(out, "I3") {
		t.Errorf("--order should imply --sort:\n%s", out)
	}
}

func TestReportOutputFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "out", "tree.html")

	out, err := run(t, "report", fixtureFile(t), "-r", "I1", "--no-cache", "-o", path)
	if err != nil {
		t.Fatalf("report error: %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `<ul class="familytree">`) {
		t.Errorf("format not taken from extension:\n%s", data)
	}
}

func TestReportErrors(t *testing.T) {
	isolate(t)
	src := fixtureFile(t)
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown root", []string{"report", src, "-r", "I99"}, errors.ErrCodeIndividualNotFound},
		{"bad format", []string{"report", src, "-r", "I1", "-f", "pdf"}, errors.ErrCodeInvalidFormat},
		{"bad field", []string{"report", src, "-r", "I1", "--hide", "shoe-size"}, errors.ErrCodeInvalidInput},
		{"no source", []string{"report", "-r", "I1"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}

	if _, err := run(t, "report", src); err == nil || !strings.Contains(err.Error(), "root") {
		t.Errorf("missing --root error = %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"tree.txt", render.FormatText, true},
		{"tree.CSV", render.FormatCSV, true},
		{"tree.htm", render.FormatHTML, true},
		{"tree.svg", render.FormatSVG, true},
		{"tree.gv", "", false},
		{"tree", "", false},
	}
	for _, tt := range tests {
		got, ok := formatFromPath(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("formatFromPath(%q) = %q, %v, want %q, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}

func TestHideFields(t *testing.T) {
	o := render.DefaultOptions()
	if err := hideFields(&o, []string{"ID", " maiden-name"}); err != nil {
		t.Fatal(err)
	}
	if o.ShowID || o.ShowMaidenName || !o.ShowMarriedName {
		t.Errorf("hideFields() = %+v", o)
	}
	if got := len(hideableFields()); got != 11 {
		t.Errorf("hideableFields() has %d names, want 11", got)
	}
}
