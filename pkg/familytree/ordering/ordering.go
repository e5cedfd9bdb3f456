package ordering

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/familytree"
)

// Direction is the birth-date order of siblings.
type Direction int

const (
	OldestFirst Direction = iota
	YoungestFirst
)

// Directions lists the accepted direction names.
var Directions = []string{"oldest", "youngest"}

// ParseDirection maps "oldest" and "youngest" to a Direction. An empty
// string is OldestFirst.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "oldest":
		return OldestFirst, nil
	case "youngest":
		return YoungestFirst, nil
	}
	return OldestFirst, errors.New(errors.ErrCodeInvalidInput,
		"invalid sort order: %s (must be one of %s)", s, strings.Join(Directions, ", "))
}

// String returns "oldest" or "youngest".
func (d Direction) String() string {
	if d == YoungestFirst {
		return "youngest"
	}
	return "oldest"
}

// Comparator orders sibling units. The zero value sorts oldest first.
type Comparator struct {
	Direction Direction
}

// Compare returns a negative number when a sorts before b, a positive
// number when after and 0 when they are the same union.
func (c Comparator) Compare(a, b *familytree.Node) int {
	if familytree.SameFamily(a, b) {
		return 0
	}
	if r := c.compareBirth(a, b); r != 0 {
		return r
	}
	if r := compareMarriage(a, b); r != 0 {
		return r
	}
	return compareIdentity(a, b)
}

func (c Comparator) compareBirth(a, b *familytree.Node) int {
	da, okA := a.Primary().BirthDate()
	db, okB := b.Primary().BirthDate()
	if !okA || !okB {
		return 0
	}
	r := da.Compare(db)
	if c.Direction == YoungestFirst {
		return -r
	}
	return r
}

func compareMarriage(a, b *familytree.Node) int {
	da, okA := a.Family().Marriage()
	db, okB := b.Family().Marriage()
	if !okA || !okB {
		return 0
	}
	return da.Compare(db)
}

func compareIdentity(a, b *familytree.Node) int {
	if r := compareIDs(a.Primary().ID, b.Primary().ID); r != 0 {
		return r
	}
	if r := compareOptional(partnerID(a), partnerID(b)); r != 0 {
		return r
	}
	return compareOptional(familyID(a), familyID(b))
}

// compareOptional compares ids where "" stands for a missing record,
// which sorts last.
func compareOptional(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	return compareIDs(a, b)
}

// compareIDs compares numerically when both ids are integers and
// lexicographically otherwise.
func compareIDs(a, b string) int {
	ai, errA := strconv.ParseInt(a, 10, 64)
	bi, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return cmp.Compare(ai, bi)
	}
	return strings.Compare(a, b)
}

func partnerID(n *familytree.Node) string {
	if p := n.Partner(); p != nil {
		return p.ID
	}
	return ""
}

func familyID(n *familytree.Node) string {
	if f := n.Family(); f != nil {
		return f.ID
	}
	return ""
}

// Sort orders every children list of t, and its roots, by c.
func Sort(t *familytree.Tree, c Comparator) {
	t.Sort(c.Compare)
}
