// Package graphfile reads and writes graph documents for the command line
// tool.
//
// A document lists edges and, optionally, nodes:
//
//	directed: false
//	nodes: [A, B, C]
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C}
//
// Nodes listed under nodes are added first, in order, which fixes the
// enumeration order and allows isolated nodes. Edge endpoints not listed are
// added as they appear. An edge without weight takes the compile-time default
// weight. JSON documents are accepted as well, being valid YAML.
//
// Files ending in .zst, .lz4 or .gz are decompressed transparently.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/cgraph"
)

// ErrEmptyEndpoint is returned for an edge without from or to.
var ErrEmptyEndpoint = errors.New("graphfile: edge endpoint is empty")

// Document is the decoded form of a graph document.
type Document struct {
	Directed bool     `yaml:"directed"`
	Nodes    []string `yaml:"nodes,omitempty"`
	Edges    []Edge   `yaml:"edges"`
}

// Edge is one edge of a Document.
type Edge struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// Decode reads a document from r. An empty input decodes to an empty
// undirected document.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}
	return &doc, nil
}

// ReadFile reads the document at path, decompressing it according to the
// file extension.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	c := CompressionFor(path)
	r, err := decompress(f, c)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %s: %w", c, err)
	}
	defer r.Close()

	return Decode(r)
}

// Load reads the document at path and builds its graph.
func Load(path string) (*cgraph.MapGraph[string], error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return doc.Graph()
}

// Encode writes d to w as YAML.
func Encode(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}
	return enc.Close()
}

// WriteFile writes d to path, compressed according to the file extension.
func WriteFile(path string, d *Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphfile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("graphfile: %w", cerr)
		}
	}()

	c := CompressionFor(path)
	w, err := compress(f, c)
	if err != nil {
		return fmt.Errorf("graphfile: %s: %w", c, err)
	}
	if err := Encode(w, d); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("graphfile: %s: %w", c, err)
	}
	return nil
}

// Graph builds the MapGraph described by the document.
func (d *Document) Graph() (*cgraph.MapGraph[string], error) {
	g := cgraph.NewMapGraph[string](d.Directed)
	for _, n := range d.Nodes {
		g.AddNode(n)
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("edge %d: %w", i, ErrEmptyEndpoint)
		}
		if e.Weight != nil {
			g.AddEdge(e.From, e.To, *e.Weight)
		} else {
			g.AddUnweightedEdge(e.From, e.To)
		}
	}
	return g, nil
}
