// Package ordering provides the sibling order for descendant trees.
//
// [Comparator] orders the units of one children list by these keys, each
// consulted only when the previous ones tie:
//
//  1. Same union: two nodes referencing the same family record, or whose
//     members match as an unordered pair when at least one of them has no
//     family record, compare equal.
//  2. Birth date of the primary individual, oldest first by default. A
//     missing or unparseable date ties.
//  3. Marriage date of the union, earliest first. Lone units and unions
//     without a parseable date tie.
//  4. Identifiers: primary id, then partner id (a unit without partner
//     sorts after one with a partner), then family id. Ids that both
//     parse as integers compare numerically, all others as strings.
//
// [Sort] applies a Comparator to every children list of a tree:
//
//	ordering.Sort(tree, ordering.Comparator{Direction: ordering.OldestFirst})
//
// Sorting is stable and idempotent.
package ordering
