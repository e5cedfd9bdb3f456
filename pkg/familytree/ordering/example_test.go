package ordering_test

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/familytree/pkg/familytree"
	"github.com/matzehuels/familytree/pkg/familytree/ordering"
	"github.com/matzehuels/familytree/pkg/records"
)

func ExampleSort() {
	s := records.NewMemoryStore()
	_ = s.AddIndividual(records.Individual{ID: "I1", Sex: records.SexMale, SpouseFamilies: []string{"F1"}})
	_ = s.AddIndividual(records.Individual{ID: "I2", Birth: records.Event{Date: "1982"}})
	_ = s.AddIndividual(records.Individual{ID: "I3", Birth: records.Event{Date: "5 MAY 1979"}})
	_ = s.AddIndividual(records.Individual{ID: "I4", Birth: records.Event{Date: "1980-01-31"}})
	_ = s.AddFamily(records.Family{ID: "F1", Husband: "I1", Children: []string{"I2", "I3", "I4"}})

	tree, _ := familytree.NewBuilder(s, familytree.WithLogger(log.New(io.Discard))).Build("I1")
	ordering.Sort(tree, ordering.Comparator{Direction: ordering.OldestFirst})

	for _, c := range tree.Roots()[0].Children() {
		fmt.Println(c.Primary().ID, c.Primary().Birth.Date)
	}
	// Output:
	// I3 5 MAY 1979
	// I4 1980-01-31
	// I2 1982
}
