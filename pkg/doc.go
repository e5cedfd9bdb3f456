// Package pkg provides the libraries behind familytree, a descendant tree
// printer for genealogy records.
//
// # Overview
//
// familytree starts at one individual and prints every union of that
// person with the children below it, recursively. The pkg directory is
// organized into four areas:
//
//  1. [records], [io], [source] - Record model, datasets and loaders
//  2. [familytree] - Tree construction, sibling ordering and partner policy
//  3. [render] - Report formats (text, CSV, HTML, Graphviz, JSON)
//  4. [pipeline], [cache], [config], [observability] - Orchestration and infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	JSON / YAML file or MongoDB
//	         ↓
//	    [source] package (load records into a records.MemoryStore)
//	         ↓
//	    [familytree] package (build the tree, sort siblings)
//	         ↓
//	    [render] subpackages (text, csv, html, nodelink, jsontree)
//	         ↓
//	    report bytes
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/familytree/pkg/familytree"
//	    "github.com/matzehuels/familytree/pkg/familytree/ordering"
//	    "github.com/matzehuels/familytree/pkg/io"
//	    "github.com/matzehuels/familytree/pkg/render"
//	    "github.com/matzehuels/familytree/pkg/render/text"
//	)
//
//	// 1. Load records
//	store, _ := io.Import("family.json")
//
//	// 2. Build and sort the tree
//	tree, _ := familytree.NewBuilder(store).Build("I1")
//	ordering.Sort(tree, ordering.Comparator{Direction: ordering.OldestFirst})
//
//	// 3. Print it
//	text.New(render.DefaultOptions()).Render(os.Stdout, tree)
//
// The [pipeline] package runs the same steps with caching and is what the
// CLI and the HTTP API use.
//
// # Main Packages
//
// [records] - Individuals, families, dates and the record store with its
// lookups (families as parent or child, the family of two parents).
//
// [familytree] - The tree builder. One node per union of a person, lone
// nodes for people without a usable union, warnings instead of failures
// for dangling references. [familytree/ordering] holds the sibling
// comparator.
//
// [render] - Field formatting shared by the report formats, and one
// subpackage per format.
//
// [pipeline] - Load, build and render with dataset and report caching.
//
// [cache] - File, Redis and null caches with content-hash keys.
//
// [config] - The optional TOML configuration.
//
// [observability] - Hooks for pipeline, cache and HTTP events; the
// metrics subpackage exports them to Prometheus.
//
// # Testing
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/familytree/... # Specific package
//	go test -run Example         # Examples only
//
// [records]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/records
// [io]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/io
// [source]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/source
// [familytree]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/familytree
// [familytree/ordering]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/familytree/ordering
// [render]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/familytree/pkg/observability
package pkg
