package ordering

import (
	"io"
	"slices"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/familytree"
	"github.com/matzehuels/familytree/pkg/records"
)

func buildTree(t *testing.T, root string, inds []records.Individual, fams []records.Family) *familytree.Tree {
	t.Helper()
	s := records.NewMemoryStore()
	for _, ind := range inds {
		if err := s.AddIndividual(ind); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range fams {
		if err := s.AddFamily(f); err != nil {
			t.Fatal(err)
		}
	}
	tree, err := familytree.NewBuilder(s, familytree.WithLogger(log.New(io.Discard))).Build(root)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func born(id, date string) records.Individual {
	return records.Individual{ID: id, Birth: records.Event{Occurred: true, Date: date}}
}

func keys(nodes []*familytree.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Key()
	}
	return out
}

func TestCompareBirthDate(t *testing.T) {
	tree := buildTree(t, "P",
		[]records.Individual{
			{ID: "P", SpouseFamilies: []string{"F"}},
			born("C1", "1960"), born("C2", "12 MAR 1950"), born("C3", "1955"),
		},
		[]records.Family{{ID: "F", Husband: "P", Children: []string{"C1", "C2", "C3"}}})

	tests := []struct {
		dir  Direction
		want []string
	}{
		{OldestFirst, []string{"C2-", "C3-", "C1-"}},
		{YoungestFirst, []string{"C1-", "C3-", "C2-"}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			Sort(tree, Comparator{Direction: tt.dir})
			if got := keys(tree.Roots()[0].Children()); !slices.Equal(got, tt.want) {
				t.Errorf("children = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompareMarriageDate(t *testing.T) {
	tree := buildTree(t, "X",
		[]records.Individual{
			{ID: "X", SpouseFamilies: []string{"F1", "F2"}},
			{ID: "A", Sex: records.SexFemale},
			{ID: "B", Sex: records.SexFemale},
		},
		[]records.Family{
			{ID: "F1", Husband: "X", Wife: "A", MarriageDate: "1980", Status: records.StatusMarried},
			{ID: "F2", Husband: "X", Wife: "B", MarriageDate: "JUN 1975", Status: records.StatusDivorced},
		})

	Sort(tree, Comparator{})
	if got, want := keys(tree.Roots()), []string{"X-B", "X-A"}; !slices.Equal(got, want) {
		t.Errorf("roots = %v, want %v", got, want)
	}
}

func TestCompareUndatedFallsThrough(t *testing.T) {
	tree := buildTree(t, "P",
		[]records.Individual{
			{ID: "P", SpouseFamilies: []string{"F"}},
			born("3", "1990"), born("1", "garbage"), {ID: "2"},
		},
		[]records.Family{{ID: "F", Husband: "P", Children: []string{"3", "1", "2"}}})

	for _, dir := range []Direction{OldestFirst, YoungestFirst} {
		t.Run(dir.String(), func(t *testing.T) {
			Sort(tree, Comparator{Direction: dir})
			if got, want := keys(tree.Roots()[0].Children()), []string{"1-", "2-", "3-"}; !slices.Equal(got, want) {
				t.Errorf("children = %v, want %v", got, want)
			}
		})
	}

	children := tree.Roots()[0].Children()
	c := Comparator{}
	if got := c.compareBirth(children[0], children[2]); got != 0 {
		t.Errorf("compareBirth(garbage, 1990) = %d, want 0", got)
	}
	if got := c.compareBirth(children[1], children[2]); got != 0 {
		t.Errorf("compareBirth(undated, 1990) = %d, want 0", got)
	}
}

func TestCompareBirthTieMarriageDecides(t *testing.T) {
	tree := buildTree(t, "P",
		[]records.Individual{
			{ID: "P", SpouseFamilies: []string{"F"}},
			{ID: "C1", SpouseFamilies: []string{"G1"}, Birth: records.Event{Occurred: true, Date: "1950"}},
			{ID: "C2", SpouseFamilies: []string{"G2"}, Birth: records.Event{Occurred: true, Date: "1950"}},
			{ID: "W1", Sex: records.SexFemale}, {ID: "W2", Sex: records.SexFemale},
		},
		[]records.Family{
			{ID: "F", Husband: "P", Children: []string{"C1", "C2"}},
			{ID: "G1", Husband: "C1", Wife: "W1", MarriageDate: "1980"},
			{ID: "G2", Husband: "C2", Wife: "W2", MarriageDate: "1975"},
		})

	Sort(tree, Comparator{})
	if got, want := keys(tree.Roots()[0].Children()), []string{"C2-W2", "C1-W1"}; !slices.Equal(got, want) {
		t.Errorf("children = %v, want %v", got, want)
	}
}

func TestCompareIdentifiers(t *testing.T) {
	tree := buildTree(t, "P",
		[]records.Individual{
			{ID: "P", SpouseFamilies: []string{"F"}},
			{ID: "A"}, {ID: "10"}, {ID: "9"},
		},
		[]records.Family{{ID: "F", Husband: "P", Children: []string{"A", "10", "9"}}})

	Sort(tree, Comparator{})
	if got, want := keys(tree.Roots()[0].Children()), []string{"9-", "10-", "A-"}; !slices.Equal(got, want) {
		t.Errorf("children = %v, want %v", got, want)
	}
}

func TestCompareMissingPartnerLast(t *testing.T) {
	tree := buildTree(t, "X",
		[]records.Individual{
			{ID: "X", SpouseFamilies: []string{"F2", "F1"}},
			{ID: "Q", Sex: records.SexFemale},
		},
		[]records.Family{
			{ID: "F1", Husband: "X", Wife: "Q"},
			{ID: "F2", Husband: "X"},
		})

	Sort(tree, Comparator{})
	if got, want := keys(tree.Roots()), []string{"X-Q", "X-"}; !slices.Equal(got, want) {
		t.Errorf("roots = %v, want %v", got, want)
	}
}

func TestCompareFamilyIDTieBreak(t *testing.T) {
	tree := buildTree(t, "X",
		[]records.Individual{
			{ID: "X", SpouseFamilies: []string{"F2", "F1"}},
			{ID: "Q", Sex: records.SexFemale},
		},
		[]records.Family{
			{ID: "F1", Husband: "X", Wife: "Q"},
			{ID: "F2", Husband: "X", Wife: "Q"},
		})

	a, b := tree.Roots()[0], tree.Roots()[1]
	c := Comparator{}
	if c.Compare(a, b) <= 0 || c.Compare(b, a) >= 0 {
		t.Errorf("Compare(F2, F1) = %d, Compare(F1, F2) = %d; want F1 first", c.Compare(a, b), c.Compare(b, a))
	}
}

func TestCompareSameFamily(t *testing.T) {
	// S descends from both unions of P, so F3 appears twice in the tree.
	tree := buildTree(t, "P",
		[]records.Individual{
			{ID: "P", SpouseFamilies: []string{"F1", "F2"}},
			{ID: "S", SpouseFamilies: []string{"F3"}, Birth: records.Event{Date: "1950"}},
			{ID: "T", Sex: records.SexFemale, Birth: records.Event{Date: "1940"}},
		},
		[]records.Family{
			{ID: "F1", Husband: "P", Children: []string{"S"}},
			{ID: "F2", Husband: "P", Children: []string{"S"}},
			{ID: "F3", Husband: "S", Wife: "T"},
		})

	a := tree.Roots()[0].Children()[0]
	b := tree.Roots()[1].Children()[0]
	if a == b || a.Family() != b.Family() {
		t.Fatalf("expected two distinct nodes for F3")
	}
	for _, c := range []Comparator{{OldestFirst}, {YoungestFirst}} {
		if c.Compare(a, b) != 0 || c.Compare(b, a) != 0 {
			t.Errorf("Compare on the same family = %d/%d, want 0/0", c.Compare(a, b), c.Compare(b, a))
		}
	}
	if (Comparator{}).Compare(tree.Roots()[0], tree.Roots()[0]) != 0 {
		t.Error("Compare(n, n) != 0")
	}
}

func TestCompareLoneSamePrimary(t *testing.T) {
	tree := buildTree(t, "P",
		[]records.Individual{
			{ID: "P", SpouseFamilies: []string{"F1", "F2"}},
			{ID: "L"},
		},
		[]records.Family{
			{ID: "F1", Husband: "P", Children: []string{"L"}},
			{ID: "F2", Husband: "P", Children: []string{"L"}},
		})
	a := tree.Roots()[0].Children()[0]
	b := tree.Roots()[1].Children()[0]
	if got := (Comparator{}).Compare(a, b); got != 0 {
		t.Errorf("Compare(lone L, lone L) = %d, want 0", got)
	}
}

func TestSortIdempotent(t *testing.T) {
	tree := buildTree(t, "P",
		[]records.Individual{
			{ID: "P", SpouseFamilies: []string{"F", "G"}},
			{ID: "W1", Sex: records.SexFemale}, {ID: "W2", Sex: records.SexFemale},
			born("C1", "1970"), born("C2", "1968"), {ID: "C3"}, born("C4", "1972"),
		},
		[]records.Family{
			{ID: "F", Husband: "P", Wife: "W1", MarriageDate: "1969", Children: []string{"C1", "C2"}},
			{ID: "G", Husband: "P", Wife: "W2", MarriageDate: "1965", Children: []string{"C4", "C3"}},
		})

	snapshot := func() []string {
		var out []string
		tree.Walk(func(n *familytree.Node, _ int, _ []*familytree.Node) bool {
			out = append(out, n.Key())
			return true
		})
		return out
	}

	Sort(tree, Comparator{})
	first := snapshot()
	Sort(tree, Comparator{})
	if second := snapshot(); !slices.Equal(first, second) {
		t.Errorf("second Sort = %v, want %v", second, first)
	}
	if first[0] != "P-W2" {
		t.Errorf("first root = %s, want P-W2 (earlier marriage)", first[0])
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", OldestFirst, false},
		{"oldest", OldestFirst, false},
		{"Youngest", YoungestFirst, false},
		{"newest", OldestFirst, true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ParseDirection(%q) error code = %s", tt.in, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
