package familytree

// PrintPolicy controls which divorced partners renderers show.
type PrintPolicy struct {
	// ShowDivorcedWithChildren prints the partner of a divorced union
	// that has children.
	ShowDivorcedWithChildren bool
	// ShowDivorcedWithoutChildren allows printing the partner of a
	// divorced, childless union. At most one such partner is printed per
	// primary individual, and only when no other union of theirs is
	// printed anyway.
	ShowDivorcedWithoutChildren bool
}

// DefaultPrintPolicy shows all divorced partners allowed by the
// de-duplication rule.
func DefaultPrintPolicy() PrintPolicy {
	return PrintPolicy{
		ShowDivorcedWithChildren:    true,
		ShowDivorcedWithoutChildren: true,
	}
}

// ShouldPrintPartner reports whether a renderer prints the partner line of
// n. siblings is the children list n belongs to (the tree's roots for a
// root node), in its current order.
//
// A node without partner never prints one. A union that is not divorced
// always prints its partner. A divorced union with children prints it
// when policy allows. A divorced, childless union is suppressed when the
// same primary has another union that is printed anyway (not divorced, or
// with children); otherwise only the last divorced, childless union of
// that primary is printed.
func ShouldPrintPartner(n *Node, siblings []*Node, policy PrintPolicy) bool {
	if n.partner == nil {
		return false
	}
	fam := n.family
	if fam == nil || !fam.IsDivorced() {
		return true
	}
	if fam.ChildCount() > 0 {
		return policy.ShowDivorcedWithChildren
	}
	if !policy.ShowDivorcedWithoutChildren {
		return false
	}

	var last *Node
	for _, s := range siblings {
		if s.primary.ID != n.primary.ID || s.family == nil {
			continue
		}
		if !s.family.IsDivorced() || s.family.ChildCount() > 0 {
			return false
		}
		last = s
	}
	return last == nil || last == n
}
