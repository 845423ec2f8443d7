// SPDX-License-Identifier: MIT
//
// Package network reads and writes YAML network definitions and drives a
// store.Store from them: nodes first, then connections.
//
// File format:
//
//	limits:              # optional, non-zero fields override the caller's limits
//	  max_nodes: 30
//	nodes: [VLV, SPC]
//	edges:
//	  - {from: VLV, to: SPC, weight: 95}
//
// Build keeps going after a rejected operation, logging each rejection and
// returning all of them joined, so one bad line does not hide the rest.
package network

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/store"
)

// ErrInvalidDefinition indicates a definition that cannot be decoded.
var ErrInvalidDefinition = errors.New("network: invalid definition")

//go:embed canaries.yaml
var canariesYAML []byte

// EdgeDef is one undirected connection.
type EdgeDef struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Definition is the decoded form of a network file.
type Definition struct {
	Limits *store.Limits `yaml:"limits,omitempty"`
	Nodes  []string      `yaml:"nodes"`
	Edges  []EdgeDef     `yaml:"edges"`
}

// Summary counts the outcome of Build.
type Summary struct {
	NodesInserted int
	NodesRejected int
	EdgesSet      int
	EdgesRejected int
}

// Parse decodes a definition. Unknown fields are rejected.
func Parse(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	return &def, nil
}

// Load reads and parses the definition file at path.
func Load(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("network: open %s: %w", path, err)
	}
	defer f.Close()

	def, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return def, nil
}

// Sample returns the embedded Canary Islands reference network.
func Sample() *Definition {
	def, err := Parse(bytes.NewReader(canariesYAML))
	if err != nil {
		// The embedded file is part of the build.
		panic(err)
	}

	return def
}

// ApplyLimits returns base with every non-zero limit of the definition applied.
func (d *Definition) ApplyLimits(base store.Limits) store.Limits {
	if d.Limits == nil {
		return base
	}

	return base.Merge(*d.Limits)
}

// Build inserts the definition's nodes, then its edges, into s. Rejected
// operations are logged at WARN level and returned joined; the summary
// always reflects what was applied. A nil logger discards output.
func Build(def *Definition, s *store.Store, logger *slog.Logger) (Summary, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var (
		sum  Summary
		errs []error
	)
	for _, id := range def.Nodes {
		if _, err := s.InsertNode(id); err != nil {
			sum.NodesRejected++
			errs = append(errs, err)
			logger.Warn("could not add node", "id", id, "position", s.Len(), "error", err)
			continue
		}
		sum.NodesInserted++
	}
	for _, e := range def.Edges {
		if err := s.SetEdge(e.From, e.To, e.Weight); err != nil {
			sum.EdgesRejected++
			errs = append(errs, err)
			logger.Warn("could not set distance", "from", e.From, "to", e.To, "weight", e.Weight, "error", err)
			continue
		}
		sum.EdgesSet++
	}
	logger.Debug("network built",
		"nodes", sum.NodesInserted, "edges", sum.EdgesSet,
		"rejected_nodes", sum.NodesRejected, "rejected_edges", sum.EdgesRejected)

	return sum, errors.Join(errs...)
}

// New creates a store sized by base (overridden by the definition's limits)
// and builds the definition into it.
func New(def *Definition, base store.Limits, logger *slog.Logger) (*store.Store, Summary, error) {
	s, err := store.New(store.WithLimits(def.ApplyLimits(base)))
	if err != nil {
		return nil, Summary{}, err
	}
	sum, err := Build(def, s, logger)

	return s, sum, err
}

// Export converts a store back into a definition. Each connection appears
// once, from its lower-index endpoint, in neighbor order.
func Export(g store.Reader) *Definition {
	limits := g.Limits()
	nodes := g.Nodes()
	def := &Definition{
		Limits: &limits,
		Nodes:  make([]string, len(nodes)),
		Edges:  []EdgeDef{},
	}
	for i, n := range nodes {
		def.Nodes[i] = n.ID
	}
	for _, n := range nodes {
		for _, e := range n.Neighbors {
			if e.To < n.Index {
				continue
			}
			def.Edges = append(def.Edges, EdgeDef{From: n.ID, To: nodes[e.To].ID, Weight: e.Weight})
		}
	}

	return def
}

// Encode writes the definition as YAML.
func (d *Definition) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("network: encode: %w", err)
	}

	return enc.Close()
}
