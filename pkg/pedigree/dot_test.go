package pedigree

import (
	"bytes"
	"strings"
	"testing"
)

func TestToDOT(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{ID: "p1", Label: "Ann \"Annie\" Beverage"},
			{ID: "p2", Label: "Bob"},
		},
		Edges: []Edge{{From: "p2", To: "p1"}},
	}

	dot := ToDOT(g)

	for _, want := range []string{
		"digraph pedigree {",
		"rankdir=TB;",
		`"p1" [label="Ann \"Annie\" Beverage"];`,
		`"p2" [label="Bob"];`,
		`"p2" -> "p1";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTLabelFallsBackToID(t *testing.T) {
	dot := ToDOT(Graph{Nodes: []Node{{ID: "ghost"}}})
	if !strings.Contains(dot, `"ghost" [label="ghost"];`) {
		t.Errorf("DOT missing raw-id label:\n%s", dot)
	}
}

func TestToDOTEmptyGraph(t *testing.T) {
	dot := ToDOT(Graph{})
	if !strings.Contains(dot, "digraph pedigree {") || !strings.Contains(dot, "}") {
		t.Errorf("empty graph should still be valid DOT:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8.5in" height="11in" viewBox="0.00 0.00 612.00 792.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)

	out := normalizeViewBox(in)

	if !bytes.Contains(out, []byte(`viewBox="0 0 612.00 792.00"`)) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !bytes.Contains(out, []byte(`width="612" height="792"`)) {
		t.Errorf("pixel dimensions missing: %s", out)
	}
	if !bytes.Contains(out, []byte("<g/>")) {
		t.Errorf("body lost during normalization: %s", out)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte("<svg><g/></svg>")
	if out := normalizeViewBox(in); !bytes.Equal(out, in) {
		t.Errorf("input without viewBox should pass through unchanged, got %s", out)
	}
}
