// Package rendertest provides the record fixture shared by the renderer
// tests.
//
// The fixture family, built from I1:
//
//	I1 Hans Muster ♂ ⚭ I2 Anna Keller (married name Muster)   F1, married 1946
//	├── I3 Peter Hans Muster ♂ ⚯ I6 Rosa Meier                F3, unmarried
//	└── I4 Vreni Muster ♀                                     lone
//	I1 Hans Muster ♂ ⚮ I5 Berta Frei                          F2, divorced, childless
package rendertest

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/familytree/pkg/familytree"
	"github.com/matzehuels/familytree/pkg/records"
)

var home = records.Address{Street1: "Hauptstrasse 1", Post: "3000", City: "Bern", Country: "CH"}

// Store returns the fixture records.
func Store(tb testing.TB) *records.MemoryStore {
	tb.Helper()
	s := records.NewMemoryStore()
	inds := []records.Individual{
		{
			ID: "I1", Sex: records.SexMale,
			Names:          []records.Name{{Given: "Hans", Surname: "Muster"}},
			Birth:          records.Event{Occurred: true, Date: "12 MAR 1920"},
			Death:          records.Event{Occurred: true, Date: "MAY 1990"},
			Emails:         []string{"hans@example.org"},
			Addresses:      []records.Address{home},
			SpouseFamilies: []string{"F1", "F2"},
		},
		{
			ID: "I2", Sex: records.SexFemale,
			Names: []records.Name{
				{Given: "Anna", Surname: "Keller"},
				{Given: "Anna", Surname: "Muster", Type: records.NameMarried},
			},
			Birth:          records.Event{Occurred: true, Date: "1925"},
			Addresses:      []records.Address{home},
			SpouseFamilies: []string{"F1"},
		},
		{
			ID: "I3", Sex: records.SexMale,
			Names:          []records.Name{{Given: "Peter, Hans", Surname: "Muster"}},
			Birth:          records.Event{Occurred: true, Date: "1950"},
			ChildFamilies:  []string{"F1"},
			SpouseFamilies: []string{"F3"},
		},
		{
			ID: "I4", Sex: records.SexFemale,
			Names:         []records.Name{{Given: "Vreni", Surname: "Muster"}},
			Birth:         records.Event{Occurred: true, Date: "2 JAN 1952"},
			ChildFamilies: []string{"F1"},
		},
		{
			ID: "I5", Sex: records.SexFemale,
			Names:          []records.Name{{Given: "Berta", Surname: "Frei"}},
			Birth:          records.Event{Occurred: true, Date: "1930"},
			SpouseFamilies: []string{"F2"},
		},
		{
			ID: "I6", Sex: records.SexFemale,
			Names:          []records.Name{{Given: "Rosa", Surname: "Meier"}},
			Death:          records.Event{Occurred: true},
			SpouseFamilies: []string{"F3"},
		},
	}
	fams := []records.Family{
		{ID: "F1", Husband: "I1", Wife: "I2", Children: []string{"I3", "I4"}, Status: records.StatusMarried, MarriageDate: "1946"},
		{ID: "F2", Husband: "I1", Wife: "I5", Status: records.StatusDivorced},
		{ID: "F3", Husband: "I3", Wife: "I6", Status: records.StatusUnmarried},
	}
	for _, ind := range inds {
		if err := s.AddIndividual(ind); err != nil {
			tb.Fatal(err)
		}
	}
	for _, f := range fams {
		if err := s.AddFamily(f); err != nil {
			tb.Fatal(err)
		}
	}
	return s
}

// Tree builds the fixture tree from I1, in record order.
func Tree(tb testing.TB) *familytree.Tree {
	tb.Helper()
	t, err := familytree.NewBuilder(Store(tb), familytree.WithLogger(log.New(io.Discard))).Build("I1")
	if err != nil {
		tb.Fatal(err)
	}
	return t
}
