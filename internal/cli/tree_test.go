package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/northhaven/kinship/pkg/errors"
	"github.com/northhaven/kinship/pkg/pedigree"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"svg", "svg", false},
		{"png", "png", false},
		{"dot", "dot", false},
		{"json", "json", false},
		{"unknown", "pdf", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
			}
		})
	}
}

func TestRenderTreeDOT(t *testing.T) {
	g := pedigree.Graph{
		Nodes: []pedigree.Node{{ID: "p1", Label: "Ann"}},
	}

	data, err := renderTree(context.Background(), g, FormatDOT)
	if err != nil {
		t.Fatalf("renderTree: %v", err)
	}
	if !strings.Contains(string(data), `"p1" [label="Ann"];`) {
		t.Errorf("DOT output missing node: %s", data)
	}
}

func TestRenderTreeJSON(t *testing.T) {
	g := pedigree.Graph{
		Nodes: []pedigree.Node{{ID: "p1", Label: "Ann"}, {ID: "p2", Label: "Bob"}},
		Edges: []pedigree.Edge{{From: "p2", To: "p1"}},
	}

	data, err := renderTree(context.Background(), g, FormatJSON)
	if err != nil {
		t.Fatalf("renderTree: %v", err)
	}
	for _, want := range []string{`"id": "p1"`, `"from": "p2"`, `"to": "p1"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("JSON output missing %q: %s", want, data)
		}
	}
}

func TestRenderTreeUnknownFormat(t *testing.T) {
	_, err := renderTree(context.Background(), pedigree.Graph{}, "gif")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestVitals(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		place string
		want  string
	}{
		{"both", "1778-04-02", "North Haven", "1778-04-02 – North Haven"},
		{"date only", "1778-04-02", "", "1778-04-02"},
		{"place only", "", "North Haven", "North Haven"},
		{"neither", "", "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vitals(tt.date, tt.place); got != tt.want {
				t.Errorf("vitals(%q, %q) = %q, want %q", tt.date, tt.place, got, tt.want)
			}
		})
	}
}
