package familytree

import (
	"fmt"
	"slices"
)

// Tree is the root of a descendant tree.
//
// The root individual's own units are [Tree.Roots]; a root individual with
// k unions has k roots.
type Tree struct {
	ID     string // unique per build
	Title  string
	RootID string

	roots    []*Node
	warnings []Warning
}

// Roots returns the root individual's units.
func (t *Tree) Roots() []*Node { return t.roots }

// Warnings returns the non-fatal problems found while building, in the
// order they were found.
func (t *Tree) Warnings() []Warning { return t.warnings }

// Walk visits every node depth-first in the current order. fn receives the
// node, its generation (0 for roots) and the sibling list the node belongs
// to. Returning false skips the node's descendants.
func (t *Tree) Walk(fn func(n *Node, depth int, siblings []*Node) bool) {
	walk(t.roots, 0, fn)
}

func walk(nodes []*Node, depth int, fn func(*Node, int, []*Node) bool) {
	for _, n := range nodes {
		if fn(n, depth, nodes) {
			walk(n.children, depth+1, fn)
		}
	}
}

// NodeCount returns the total number of nodes.
func (t *Tree) NodeCount() int {
	count := 0
	t.Walk(func(*Node, int, []*Node) bool {
		count++
		return true
	})
	return count
}

// Depth returns the number of generations in the tree, 0 when empty.
func (t *Tree) Depth() int {
	deepest := 0
	t.Walk(func(_ *Node, d int, _ []*Node) bool {
		deepest = max(deepest, d+1)
		return true
	})
	return deepest
}

// Sort stably reorders the roots and every children list by cmp, which
// returns a negative number when a sorts before b. It is the only
// mutation a built tree allows; sorting twice with the same cmp gives the
// same order as sorting once.
func (t *Tree) Sort(cmp func(a, b *Node) int) {
	sortNodes(t.roots, cmp)
}

func sortNodes(nodes []*Node, cmp func(a, b *Node) int) {
	slices.SortStableFunc(nodes, cmp)
	for _, n := range nodes {
		sortNodes(n.children, cmp)
	}
}

// WarningKind classifies a [Warning].
type WarningKind int

const (
	WarnMissingFamily WarningKind = iota
	WarnMissingSpouse
	WarnNotMember
	WarnMissingChild
	WarnCycle
	WarnMaxDepth
)

// Warning is a dangling or malformed reference skipped during a build.
type Warning struct {
	Kind    WarningKind
	Subject string // record holding the reference
	Ref     string // referenced id
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnMissingFamily:
		return fmt.Sprintf("individual %s is linked to family %s, which does not exist; family skipped", w.Subject, w.Ref)
	case WarnMissingSpouse:
		return fmt.Sprintf("family %s names parent %s, who does not exist; family skipped", w.Subject, w.Ref)
	case WarnNotMember:
		return fmt.Sprintf("individual %s is linked to family %s but is not one of its parents; family skipped", w.Ref, w.Subject)
	case WarnMissingChild:
		return fmt.Sprintf("family %s names child %s, who does not exist; child skipped", w.Subject, w.Ref)
	case WarnCycle:
		return fmt.Sprintf("family %s names child %s, who is also an ancestor; child skipped", w.Subject, w.Ref)
	case WarnMaxDepth:
		return fmt.Sprintf("maximum depth reached at family %s; descendants of %s skipped", w.Subject, w.Ref)
	}
	return fmt.Sprintf("warning %d: %s -> %s", w.Kind, w.Subject, w.Ref)
}
