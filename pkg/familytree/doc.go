// Package familytree builds descendant trees from genealogical records.
//
// # Overview
//
// A descendant tree follows child links downward from one root individual.
// Each [Node] is a family unit: a primary individual, their partner in one
// union (or nobody), the union record itself and the units of their
// children. Tree edges mirror the child-of relation, not marriage: the
// primary of every non-root node is a child of its parent node's primary.
//
// An individual who is a parent in several unions yields several sibling
// nodes with the same primary, one per union. An individual without any
// union yields one lone node with no partner and no family record; its
// pseudo-slot is wife for females and husband for everybody else, which
// shows through [Node.Key] and [Node.Slot].
//
// # Building
//
// [Builder.Build] reads from any [records.Store]:
//
//	b := familytree.NewBuilder(store, familytree.WithLogger(logger))
//	t, err := b.Build("I1")
//	if errors.Is(err, errors.ErrCodeIndividualNotFound) {
//	    // unknown root
//	}
//
// Only an unknown root is fatal. Dangling references (a spousal link to a
// missing family, a missing partner, a missing child) are logged as
// warnings, recorded on the tree ([Tree.Warnings]) and the affected branch
// is left out. Siblings of a skipped branch are still expanded.
//
// The builder also stops on two kinds of malformed input: an individual
// that appears among their own ancestors (the child link is skipped) and
// a tree deeper than [WithMaxDepth] generations.
//
// # Ordering
//
// A freshly built tree keeps source order. [Tree.Sort] reorders every
// children list in place with a caller-supplied comparison; the ordering
// subpackage provides the standard birth-date comparator. Sorting is the
// only mutation a built tree allows.
//
// # Printing Divorced Partners
//
// Renderers decide per node whether to print the partner line with
// [ShouldPrintPartner], which hides redundant divorced-and-childless
// unions according to a [PrintPolicy].
//
// # Concurrency
//
// A Builder holds no per-build state and can be shared. A Tree is not
// safe for concurrent mutation; concurrent readers are fine once sorting
// is done.
package familytree
