// Package pkg provides the core libraries for the Kinship genealogy viewer.
//
// # Overview
//
// Kinship loads a small, static genealogical dataset (people and events)
// and derives the views a family-history site needs: person profiles, a
// pedigree diagram, and a chronological timeline. The pkg directory is
// organized by concern:
//
//  1. [family] - Domain records (Person, Event) and identifier lookup
//  2. [store] - Loading and indexing the JSON data sources
//  3. [pedigree] - Ancestor-tree construction, DOT export, and Graphviz rendering
//  4. [timeline] - Chronological ordering of events
//  5. [config] - TOML site configuration
//  6. [errors] - Structured error codes shared by all entry points
//
// # Architecture
//
// Data flows one way and nothing mutates after load:
//
//	people.json / events.json
//	         ↓
//	    [store] package (load once, degrade gracefully)
//	         ↓
//	    [family] package (lookup, link resolution)
//	         ↓
//	    [pedigree] / [timeline] packages (derived views)
//	         ↓
//	    web pages, terminal UI, SVG/PNG/DOT/JSON output
//
// The core packages expose plain data structures only; the web server in
// internal/web and the terminal surfaces in internal/cli are
// interchangeable renderers on top of them.
//
// # Quick Start
//
// Load the dataset and build a pedigree:
//
//	st := store.Load("data/people.json", "data/events.json", logger)
//	g := pedigree.Build(st.People, "beverage_john_1778", pedigree.DefaultMaxGenerations)
//	dot := pedigree.ToDOT(g)
//	svg, err := pedigree.RenderSVG(ctx, dot)
//
// Order the timeline:
//
//	events := timeline.Chronological(st.Events)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/pedigree/...  # Specific package
//
// [family]: https://pkg.go.dev/github.com/northhaven/kinship/pkg/family
// [store]: https://pkg.go.dev/github.com/northhaven/kinship/pkg/store
// [pedigree]: https://pkg.go.dev/github.com/northhaven/kinship/pkg/pedigree
// [timeline]: https://pkg.go.dev/github.com/northhaven/kinship/pkg/timeline
// [config]: https://pkg.go.dev/github.com/northhaven/kinship/pkg/config
// [errors]: https://pkg.go.dev/github.com/northhaven/kinship/pkg/errors
package pkg
