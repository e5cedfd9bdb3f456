// Package records provides the genealogical record model and a read-only
// lookup store used to build descendant trees.
//
// # Overview
//
// A record set is flat: [Individual] records reference the families they
// belong to by identifier, and [Family] records reference their husband,
// wife and children by identifier. Nothing is resolved up front; the
// [Store] interface answers point lookups plus two derived indexes:
//
//   - families in which an individual is a parent ([Store.FamiliesAsParent])
//   - families in which an individual is a child ([Store.FamiliesAsChild])
//
// # Basic Usage
//
// Create a store with [NewMemoryStore] and add records. Identifiers must be
// unique per record kind; adding a duplicate returns an error with code
// DUPLICATE_ID:
//
//	s := records.NewMemoryStore()
//	_ = s.AddIndividual(records.Individual{ID: "I1", Sex: records.SexMale, SpouseFamilies: []string{"F1"}})
//	_ = s.AddIndividual(records.Individual{ID: "I2", Sex: records.SexFemale, SpouseFamilies: []string{"F1"}})
//	_ = s.AddFamily(records.Family{ID: "F1", Husband: "I1", Wife: "I2", Status: records.StatusMarried})
//
// References are not checked on insertion. A family may name a child that is
// never added; consumers treat such dangling references as recoverable and
// [MemoryStore.Dangling] lists them for diagnostics.
//
// # Dates
//
// Vital and marriage dates are kept as the strings found in the source and
// parsed on demand with [ParseDate], which understands GEDCOM date values
// ("12 MAR 1950", "ABT 1900", "BET 1890 AND 1900") as well as ISO and
// dotted day-first dates. A [Date] remembers its [Precision] so renderers can
// print "1950", "03.1950" or "12.03.1950".
//
// # Concurrency
//
// A [MemoryStore] is safe for concurrent readers once loading is finished.
// Adding records while other goroutines read is not supported.
package records
