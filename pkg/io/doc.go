// Package io reads and writes genealogical record sets as JSON or YAML.
//
// # Overview
//
// A record set is a flat dataset of individuals and families that
// reference each other by id. This package converts between that
// dataset and a [records.MemoryStore]. The format is meant for:
//
//   - Exports from genealogy software converted with external tools
//   - Hand-written fixtures for tests and examples
//   - Round-trips: import, inspect, export and re-import identically
//
// # Format
//
// Two top-level arrays, the same in JSON and YAML:
//
//	{
//	  "individuals": [
//	    {"id": "I1", "sex": "M",
//	     "names": [{"given": "Hans", "surname": "Muster"}],
//	     "birth": {"date": "12 MAR 1920"},
//	     "death": {"occurred": true},
//	     "spouse_families": ["F1"]}
//	  ],
//	  "families": [
//	    {"id": "F1", "husband": "I1", "wife": "I2", "children": ["I3"],
//	     "status": "married", "marriage_date": "1946"}
//	  ]
//	}
//
// # Individual Fields
//
// Required:
//   - id: Unique identifier
//
// Optional:
//   - sex: "M", "F" or anything else for unknown
//   - names: list of {given, surname, type}; type "married" marks a name
//     taken by marriage
//   - birth, death: {occurred, date}; a date implies occurred
//   - addresses: list of {street1, street2, post, city, country}
//   - emails: list of strings
//   - spouse_families, child_families: family ids
//
// # Family Fields
//
// Required:
//   - id: Unique identifier
//
// Optional:
//   - husband, wife: individual ids
//   - children: individual ids in birth order as recorded
//   - status: "married", "divorced" or "unmarried"; when omitted a family
//     with a marriage_date is married and one without is unmarried
//   - marriage_date: date value, see [records.ParseDate]
//
// # Import
//
// Use [Import] to read a file by extension (.json, .yaml, .yml), or
// [ReadJSON] / [ReadYAML] for any io.Reader:
//
//	store, err := io.Import("family.yaml")
//
// Import fails on malformed input, invalid or duplicate ids (codes
// INVALID_RECORD and DUPLICATE_ID) and unknown family status values.
// References between records are not checked; see
// [records.MemoryStore.Dangling].
//
// # Export
//
// [WriteJSON], [WriteYAML] and [Export] write a store back out. Records
// keep their insertion order.
package io
