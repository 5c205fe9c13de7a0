package pedigree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MarshalGraph converts a pedigree graph to indented JSON bytes in the
// node-link format documented on [Graph].
func MarshalGraph(g Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph writes a pedigree graph as JSON to an io.Writer.
func WriteGraph(g Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteGraphFile writes a pedigree graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// ReadGraph decodes a JSON pedigree graph from an io.Reader.
func ReadGraph(r io.Reader) (Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Graph{}, fmt.Errorf("decode: %w", err)
	}
	return g, nil
}
