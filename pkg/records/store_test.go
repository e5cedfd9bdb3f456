package records

import (
	"testing"

	"github.com/matzehuels/familytree/pkg/errors"
)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	inds := []Individual{
		{ID: "I1", Sex: SexMale, SpouseFamilies: []string{"F1", "F2"}},
		{ID: "I2", Sex: SexFemale, SpouseFamilies: []string{"F1"}},
		{ID: "I3", Sex: SexFemale, SpouseFamilies: []string{"F2"}},
		{ID: "I4", Sex: SexMale, ChildFamilies: []string{"F1"}},
	}
	for _, ind := range inds {
		if err := s.AddIndividual(ind); err != nil {
			t.Fatalf("AddIndividual(%s): %v", ind.ID, err)
		}
	}
	fams := []Family{
		{ID: "F1", Husband: "I1", Wife: "I2", Children: []string{"I4", "I9"}, Status: StatusMarried},
		{ID: "F2", Husband: "I1", Wife: "I3", Status: StatusDivorced},
	}
	for _, f := range fams {
		if err := s.AddFamily(f); err != nil {
			t.Fatalf("AddFamily(%s): %v", f.ID, err)
		}
	}
	return s
}

func TestMemoryStoreLookups(t *testing.T) {
	s := newTestStore(t)

	if !s.HasIndividual("I1") || s.HasIndividual("I9") {
		t.Error("HasIndividual mismatch")
	}
	if !s.HasFamily("F2") || s.HasFamily("F3") {
		t.Error("HasFamily mismatch")
	}
	if ind, ok := s.Individual("I2"); !ok || ind.Sex != SexFemale {
		t.Errorf("Individual(I2) = %v, %v", ind, ok)
	}
	if _, ok := s.Family("missing"); ok {
		t.Error("Family(missing) should not be found")
	}

	fams := s.FamiliesAsParent("I1")
	if len(fams) != 2 || fams[0].ID != "F1" || fams[1].ID != "F2" {
		t.Errorf("FamiliesAsParent(I1) = %v, want [F1 F2]", familyIDs(fams))
	}
	if got := s.FamiliesAsChild("I4"); len(got) != 1 || got[0].ID != "F1" {
		t.Errorf("FamiliesAsChild(I4) = %v, want [F1]", familyIDs(got))
	}
	if got := s.FamiliesAsChild("I9"); len(got) != 1 {
		t.Errorf("FamiliesAsChild(I9) = %v, want [F1] for dangling child", familyIDs(got))
	}
	if got := s.FamiliesAsParent("nobody"); len(got) != 0 {
		t.Errorf("FamiliesAsParent(nobody) = %v, want empty", familyIDs(got))
	}
}

func TestMemoryStoreDuplicateID(t *testing.T) {
	s := newTestStore(t)

	err := s.AddIndividual(Individual{ID: "I1"})
	if !errors.Is(err, errors.ErrCodeDuplicateID) {
		t.Errorf("AddIndividual(dup) error = %v, want DUPLICATE_ID", err)
	}
	err = s.AddFamily(Family{ID: "F1"})
	if !errors.Is(err, errors.ErrCodeDuplicateID) {
		t.Errorf("AddFamily(dup) error = %v, want DUPLICATE_ID", err)
	}
	if n, f := s.Len(); n != 4 || f != 2 {
		t.Errorf("Len() = %d, %d, want 4, 2", n, f)
	}
}

func TestMemoryStoreInvalidID(t *testing.T) {
	s := NewMemoryStore()
	if err := s.AddIndividual(Individual{}); !errors.Is(err, errors.ErrCodeInvalidRecord) {
		t.Errorf("AddIndividual(empty id) error = %v, want INVALID_RECORD", err)
	}
	if err := s.AddFamily(Family{ID: "F 1"}); !errors.Is(err, errors.ErrCodeInvalidRecord) {
		t.Errorf("AddFamily(space id) error = %v, want INVALID_RECORD", err)
	}
}

func TestFamilyOfParents(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		a, b string
		want string
	}{
		{"I1", "I2", "F1"},
		{"I2", "I1", "F1"},
		{"I1", "I3", "F2"},
		{"I2", "I3", ""},
		{"I4", "I1", ""},
	}
	for _, tt := range tests {
		f, err := s.FamilyOfParents(tt.a, tt.b)
		if err != nil {
			t.Fatalf("FamilyOfParents(%s, %s) error: %v", tt.a, tt.b, err)
		}
		got := ""
		if f != nil {
			got = f.ID
		}
		if got != tt.want {
			t.Errorf("FamilyOfParents(%s, %s) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFamilyOfParentsAmbiguous(t *testing.T) {
	s := newTestStore(t)
	if err := s.AddFamily(Family{ID: "F3", Husband: "I1", Wife: "I2"}); err != nil {
		t.Fatal(err)
	}
	_, err := s.FamilyOfParents("I1", "I2")
	if !errors.Is(err, errors.ErrCodeAmbiguousFamily) {
		t.Errorf("FamilyOfParents error = %v, want AMBIGUOUS_FAMILY", err)
	}
}

func TestDangling(t *testing.T) {
	s := newTestStore(t)
	if err := s.AddIndividual(Individual{ID: "I5", SpouseFamilies: []string{"F9", ""}}); err != nil {
		t.Fatal(err)
	}

	got := s.Dangling()
	want := []Reference{
		{"F1", "children", "I9"},
		{"I5", "spouse_families", "F9"},
	}
	if len(got) != len(want) {
		t.Fatalf("Dangling() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dangling()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIndividualNames(t *testing.T) {
	ind := Individual{
		ID: "I1",
		Names: []Name{
			{Given: "Anna", Surname: "Muster"},
			{Given: "Anna Maria", Surname: "Keller", Type: NameMarried},
		},
	}
	if got := ind.DisplayName(); got != "Anna Maria Keller" {
		t.Errorf("DisplayName() = %q", got)
	}
	if n := ind.LastName(NameOther); n == nil || n.Surname != "Muster" {
		t.Errorf("LastName(NameOther) = %v", n)
	}
	if n := ind.LastName(NameMarried); n == nil || n.Surname != "Keller" {
		t.Errorf("LastName(NameMarried) = %v", n)
	}
	if got := (&Individual{ID: "I2"}).DisplayName(); got != "I2" {
		t.Errorf("DisplayName() without names = %q, want id", got)
	}
}

func TestParseHelpers(t *testing.T) {
	if ParseSex("female") != SexFemale || ParseSex("M") != SexMale || ParseSex("x") != SexUnknown {
		t.Error("ParseSex mismatch")
	}
	if st, ok := ParseStatus("Divorced"); !ok || st != StatusDivorced {
		t.Errorf("ParseStatus(Divorced) = %v, %v", st, ok)
	}
	if _, ok := ParseStatus("engaged"); ok {
		t.Error("ParseStatus(engaged) should fail")
	}
	if ParseNameType("MARRIED") != NameMarried || ParseNameType("birth") != NameOther {
		t.Error("ParseNameType mismatch")
	}
	if got := (Address{Street1: "Main 1", City: "Bern"}).String(); got != "Main 1, Bern" {
		t.Errorf("Address.String() = %q", got)
	}
}

func familyIDs(fams []*Family) []string {
	ids := make([]string, len(fams))
	for i, f := range fams {
		ids[i] = f.ID
	}
	return ids
}
