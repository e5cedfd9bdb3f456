package familytree

import "github.com/matzehuels/familytree/pkg/records"

// Slot is the union role a node's primary individual occupies.
type Slot int

const (
	SlotHusband Slot = iota
	SlotWife
)

// String returns "husband" or "wife".
func (s Slot) String() string {
	if s == SlotWife {
		return "wife"
	}
	return "husband"
}

// Node is one family unit in a descendant tree.
//
// Nodes are created by [Builder.Build] and owned by their parent node, or
// by the [Tree] for the root units.
type Node struct {
	primary  *records.Individual
	partner  *records.Individual
	family   *records.Family
	slot     Slot
	children []*Node
}

// Primary returns the individual the tree follows through this node.
func (n *Node) Primary() *records.Individual { return n.primary }

// Partner returns the other member of the union, or nil.
func (n *Node) Partner() *records.Individual { return n.partner }

// Value returns the (primary, partner) pair. partner may be nil.
func (n *Node) Value() (primary, partner *records.Individual) { return n.primary, n.partner }

// Family returns the union record, or nil for a lone-individual node.
func (n *Node) Family() *records.Family { return n.family }

// Children returns the child units in their current order. The slice is
// owned by the node and must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Slot returns the role of the primary individual in the union.
func (n *Node) Slot() Slot { return n.slot }

// IsLone reports whether the node stands for an individual without a
// recorded union.
func (n *Node) IsLone() bool { return n.family == nil }

// Key returns "<husbandID>-<wifeID>" for the members in their slots, with
// an empty side for a missing member. Keys address nodes in reports; two
// distinct nodes may share a key.
func (n *Node) Key() string {
	var pid string
	if n.partner != nil {
		pid = n.partner.ID
	}
	if n.slot == SlotWife {
		return pid + "-" + n.primary.ID
	}
	return n.primary.ID + "-" + pid
}

// Husband returns the member in the husband slot, or nil.
func (n *Node) Husband() *records.Individual {
	if n.slot == SlotHusband {
		return n.primary
	}
	return n.partner
}

// Wife returns the member in the wife slot, or nil.
func (n *Node) Wife() *records.Individual {
	if n.slot == SlotWife {
		return n.primary
	}
	return n.partner
}

// SameFamily reports whether a and b stand for the same union: both
// reference the same family record, or, when at least one of them has
// none, their members match as an unordered pair.
func SameFamily(a, b *Node) bool {
	if a.family != nil && b.family != nil {
		return a.family.ID == b.family.ID
	}
	a1, a2 := memberIDs(a)
	b1, b2 := memberIDs(b)
	return (a1 == b1 && a2 == b2) || (a1 == b2 && a2 == b1)
}

func memberIDs(n *Node) (primary, partner string) {
	primary = n.primary.ID
	if n.partner != nil {
		partner = n.partner.ID
	}
	return primary, partner
}
