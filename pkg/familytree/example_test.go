package familytree_test

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/familytree/pkg/familytree"
	"github.com/matzehuels/familytree/pkg/records"
)

func Example() {
	s := records.NewMemoryStore()
	_ = s.AddIndividual(records.Individual{ID: "I1", Sex: records.SexMale, SpouseFamilies: []string{"F1"}})
	_ = s.AddIndividual(records.Individual{ID: "I2", Sex: records.SexFemale, SpouseFamilies: []string{"F1"}})
	_ = s.AddIndividual(records.Individual{ID: "I3", Sex: records.SexFemale})
	_ = s.AddIndividual(records.Individual{ID: "I4", Sex: records.SexMale})
	_ = s.AddFamily(records.Family{ID: "F1", Husband: "I1", Wife: "I2", Children: []string{"I3", "I4"}})

	b := familytree.NewBuilder(s, familytree.WithLogger(log.New(io.Discard)))
	tree, err := b.Build("I1")
	if err != nil {
		fmt.Println(err)
		return
	}

	tree.Walk(func(n *familytree.Node, depth int, _ []*familytree.Node) bool {
		fmt.Printf("%s%s\n", strings.Repeat("  ", depth), n.Key())
		return true
	})
	// Output:
	// I1-I2
	//   -I3
	//   I4-
}

func ExampleShouldPrintPartner() {
	s := records.NewMemoryStore()
	_ = s.AddIndividual(records.Individual{ID: "I1", Sex: records.SexMale, SpouseFamilies: []string{"F1", "F2"}})
	_ = s.AddIndividual(records.Individual{ID: "I2", Sex: records.SexFemale})
	_ = s.AddIndividual(records.Individual{ID: "I3", Sex: records.SexFemale})
	_ = s.AddFamily(records.Family{ID: "F1", Husband: "I1", Wife: "I2", Status: records.StatusDivorced})
	_ = s.AddFamily(records.Family{ID: "F2", Husband: "I1", Wife: "I3", Status: records.StatusMarried})

	tree, _ := familytree.NewBuilder(s, familytree.WithLogger(log.New(io.Discard))).Build("I1")
	policy := familytree.DefaultPrintPolicy()
	for _, n := range tree.Roots() {
		fmt.Println(n.Partner().ID, familytree.ShouldPrintPartner(n, tree.Roots(), policy))
	}
	// Output:
	// I2 false
	// I3 true
}
