package pedigree

import "github.com/northhaven/kinship/pkg/family"

// DefaultMaxGenerations is the generation bound used for exploratory
// browsing. Twenty parent-hops exhausts any realistic family dataset.
const DefaultMaxGenerations = 20

// Node is a person appearing in a pedigree graph. Label is the resolved
// display name, or the raw identifier when the record is absent from
// the collection.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed parent→child link in a pedigree graph.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is an ancestor tree: the start person plus everyone reachable
// by following Parents links, with edges pointing from parent to child.
// Graphs are ephemeral — built fresh per request, never persisted, and
// owned by the request that built them.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Build constructs the ancestor graph for startID, following the
// Parents relation only (never siblings, spouses, or children) up to
// maxGenerations parent-hops from the start.
//
// Each identifier is expanded at most once: re-encountering a node
// through pedigree collapse (cousin marriages) adds the extra edge but
// does not re-expand the branch, and the same guard makes the traversal
// terminate even if the source data accidentally contains a cycle.
// Parent identifiers with no record in the collection still produce a
// node (labeled by the raw identifier) and an edge; the graph
// represents dangling references rather than silently dropping them.
//
// A maxGenerations of 0 yields exactly the start node and no edges, as
// does a person with no recorded parents. Node order is depth-first
// discovery order with parents expanded in source order, so output is
// deterministic for a given collection.
func Build(people []family.Person, startID string, maxGenerations int) Graph {
	b := &builder{
		people:  people,
		maxGen:  maxGenerations,
		visited: make(map[string]bool),
	}
	b.visit(startID, 0)
	return Graph{Nodes: b.nodes, Edges: b.edges}
}

// builder threads the visited set and accumulators through the
// recursive expansion.
type builder struct {
	people  []family.Person
	maxGen  int
	visited map[string]bool
	nodes   []Node
	edges   []Edge
}

func (b *builder) visit(id string, generation int) {
	if b.visited[id] {
		return
	}
	b.visited[id] = true

	person, ok := family.Find(b.people, id)
	label := id
	if ok {
		label = person.DisplayName()
	}
	b.nodes = append(b.nodes, Node{ID: id, Label: label})

	if !ok {
		// Dangling reference: node and inbound edge exist, but there is
		// no record to walk further.
		return
	}
	for _, parentID := range person.Parents {
		if generation+1 > b.maxGen {
			continue
		}
		b.edges = append(b.edges, Edge{From: parentID, To: id})
		b.visit(parentID, generation+1)
	}
}
