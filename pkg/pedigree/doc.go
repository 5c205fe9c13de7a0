// Package pedigree builds and renders ancestor trees.
//
// # Overview
//
// [Build] performs a depth-first expansion strictly along the Parents
// relation, producing a [Graph] of nodes (people, labeled with resolved
// display names) and directed parent→child edges. A visited set keyed
// by identifier makes the traversal idempotent per node: pedigree
// collapse and even accidental cycles in the source data terminate
// cleanly, and each identifier is visited at most once, so construction
// is O(V+E) in the induced ancestor subgraph.
//
// The traversal is bounded by a generation count measured in
// parent-hops from the start person. [DefaultMaxGenerations] is deep
// enough to exhaust any realistic tree.
//
// # Output
//
// A built graph has three consumers:
//
//   - [ToDOT] emits Graphviz DOT, which [RenderSVG] and [RenderPNG]
//     rasterize via goccy/go-graphviz for the web tree view and the
//     tree CLI command
//   - [MarshalGraph] / [WriteGraphFile] / [ReadGraph] round-trip the
//     node-link JSON format for downstream tooling
//
// # JSON Format
//
//	{
//	  "nodes": [{"id": "p1", "label": "Ann"}, {"id": "p2", "label": "Bob"}],
//	  "edges": [{"from": "p2", "to": "p1"}]
//	}
package pedigree
