// Package render provides the report renderers for descendant trees.
//
// # Overview
//
// Every renderer implements [Renderer] and lives in its own subpackage:
//
//   - [text]: vertical text tree with genealogical symbols
//   - [csv]: one row per printed person, optionally with level columns
//   - [html]: standalone HTML page with a nested list
//   - [nodelink]: Graphviz DOT and SVG node-link diagrams
//   - [jsontree]: nested JSON for other tools
//
// # Options
//
// [Options] holds the show/hide switches shared by all renderers and the
// divorced-partner [familytree.PrintPolicy]. [DefaultOptions] shows
// everything. [Formatter] applies the options to one individual and is
// what renderers use to produce field values, so that every format
// prints the same name, date and address for a person:
//
//	f := render.NewFormatter(render.DefaultOptions())
//	f.FirstName(ind)    // given name of the last birth name, commas removed
//	f.BirthDate(ind)    // "12.03.1920", "03.1920", "1920" or "?"
//	f.Address(ind)      // last address, empty parts collapsed
//
// # Partner Lines
//
// A node's partner is printed only when [familytree.ShouldPrintPartner]
// allows it under the configured policy. Renderers never print a
// suppressed partner, but they still descend into the node's children.
//
// [text]: github.com/matzehuels/familytree/pkg/render/text
// [csv]: github.com/matzehuels/familytree/pkg/render/csv
// [html]: github.com/matzehuels/familytree/pkg/render/html
// [nodelink]: github.com/matzehuels/familytree/pkg/render/nodelink
// [jsontree]: github.com/matzehuels/familytree/pkg/render/jsontree
package render
