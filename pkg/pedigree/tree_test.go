package pedigree

import (
	"testing"

	"github.com/northhaven/kinship/pkg/family"
)

func nodeIDs(g Graph) map[string]string {
	out := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		out[n.ID] = n.Label
	}
	return out
}

func hasEdge(g Graph, from, to string) bool {
	for _, e := range g.Edges {
		if e.From == from && e.To == to {
			return true
		}
	}
	return false
}

func TestBuildTwoGenerations(t *testing.T) {
	people := []family.Person{
		{ID: "p1", FullName: "Ann", Parents: []string{"p2"}},
		{ID: "p2", FullName: "Bob"},
	}

	g := Build(people, "p1", 5)

	if len(g.Nodes) != 2 {
		t.Fatalf("len(Nodes) = %d, want 2", len(g.Nodes))
	}
	labels := nodeIDs(g)
	if labels["p1"] != "Ann" || labels["p2"] != "Bob" {
		t.Errorf("node labels = %v, want resolved names", labels)
	}
	if len(g.Edges) != 1 || !hasEdge(g, "p2", "p1") {
		t.Errorf("Edges = %v, want exactly (p2→p1)", g.Edges)
	}
}

func TestBuildZeroGenerations(t *testing.T) {
	people := []family.Person{
		{ID: "p1", FullName: "Ann", Parents: []string{"p2", "p3"}},
		{ID: "p2", FullName: "Bob"},
	}

	g := Build(people, "p1", 0)

	if len(g.Nodes) != 1 || g.Nodes[0].ID != "p1" {
		t.Errorf("Nodes = %v, want only the start person", g.Nodes)
	}
	if len(g.Edges) != 0 {
		t.Errorf("Edges = %v, want none", g.Edges)
	}
}

func TestBuildNoParents(t *testing.T) {
	people := []family.Person{{ID: "p1", FullName: "Ann"}}

	g := Build(people, "p1", DefaultMaxGenerations)

	if len(g.Nodes) != 1 || len(g.Edges) != 0 {
		t.Errorf("got %d nodes / %d edges, want 1 / 0", len(g.Nodes), len(g.Edges))
	}
}

func TestBuildDanglingParent(t *testing.T) {
	people := []family.Person{
		{ID: "p1", FullName: "Ann", Parents: []string{"ghost"}},
	}

	g := Build(people, "p1", 5)

	labels := nodeIDs(g)
	if labels["ghost"] != "ghost" {
		t.Errorf("dangling parent label = %q, want raw identifier", labels["ghost"])
	}
	if !hasEdge(g, "ghost", "p1") {
		t.Errorf("Edges = %v, want edge from dangling parent", g.Edges)
	}
}

func TestBuildDanglingStart(t *testing.T) {
	g := Build(nil, "nobody", 5)

	if len(g.Nodes) != 1 || g.Nodes[0].Label != "nobody" {
		t.Errorf("Nodes = %v, want single raw-labeled node", g.Nodes)
	}
	if len(g.Edges) != 0 {
		t.Errorf("Edges = %v, want none", g.Edges)
	}
}

// Cousin marriage: both lines reach the same grandparent. The shared
// ancestor appears once but keeps both inbound paths' edges.
func TestBuildPedigreeCollapse(t *testing.T) {
	people := []family.Person{
		{ID: "c", Parents: []string{"f", "m"}},
		{ID: "f", Parents: []string{"g"}},
		{ID: "m", Parents: []string{"g"}},
		{ID: "g"},
	}

	g := Build(people, "c", 5)

	if len(g.Nodes) != 4 {
		t.Fatalf("len(Nodes) = %d, want 4 (shared ancestor emitted once)", len(g.Nodes))
	}
	if !hasEdge(g, "g", "f") || !hasEdge(g, "g", "m") {
		t.Errorf("Edges = %v, want both paths into the shared ancestor", g.Edges)
	}
}

// A parent cycle is invalid genealogical data but must terminate.
func TestBuildCycleTerminates(t *testing.T) {
	people := []family.Person{
		{ID: "a", Parents: []string{"b"}},
		{ID: "b", Parents: []string{"a"}},
	}

	g := Build(people, "a", DefaultMaxGenerations)

	if len(g.Nodes) != 2 {
		t.Errorf("len(Nodes) = %d, want 2", len(g.Nodes))
	}
	if !hasEdge(g, "b", "a") || !hasEdge(g, "a", "b") {
		t.Errorf("Edges = %v, want both cycle edges represented", g.Edges)
	}
}

func TestBuildGenerationBound(t *testing.T) {
	people := []family.Person{
		{ID: "child", Parents: []string{"parent"}},
		{ID: "parent", Parents: []string{"grandparent"}},
		{ID: "grandparent", Parents: []string{"greatgrandparent"}},
	}

	g := Build(people, "child", 2)

	labels := nodeIDs(g)
	if _, ok := labels["grandparent"]; !ok {
		t.Error("grandparent missing, want it within the 2-hop bound")
	}
	if _, ok := labels["greatgrandparent"]; ok {
		t.Error("greatgrandparent present, want it cut by the bound")
	}
	if hasEdge(g, "greatgrandparent", "grandparent") {
		t.Errorf("Edges = %v, want no edge past the bound", g.Edges)
	}
}

func TestBuildDeterministicOrder(t *testing.T) {
	people := []family.Person{
		{ID: "c", Parents: []string{"f", "m"}},
		{ID: "f"},
		{ID: "m"},
	}

	first := Build(people, "c", 5)
	second := Build(people, "c", 5)

	if len(first.Nodes) != len(second.Nodes) {
		t.Fatalf("node counts differ: %d vs %d", len(first.Nodes), len(second.Nodes))
	}
	for i := range first.Nodes {
		if first.Nodes[i] != second.Nodes[i] {
			t.Errorf("node order differs at %d: %v vs %v", i, first.Nodes[i], second.Nodes[i])
		}
	}
	// Parents expand in source order: father's line before mother's.
	if first.Nodes[1].ID != "f" || first.Nodes[2].ID != "m" {
		t.Errorf("Nodes = %v, want source-order expansion c, f, m", first.Nodes)
	}
}
