package main

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/render"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// graphFile is the on-disk YAML shape:
//
//	title: roads
//	nodes:
//	  - {name: A, x: 0, y: 0}
//	edges:
//	  - {from: A, to: B, weight: 1.5}
type graphFile struct {
	Title string     `yaml:"title,omitempty"`
	Nodes []nodeSpec `yaml:"nodes"`
	Edges []edgeSpec `yaml:"edges"`
}

type nodeSpec struct {
	Name string   `yaml:"name"`
	X    *float64 `yaml:"x,omitempty"`
	Y    *float64 `yaml:"y,omitempty"`
}

type edgeSpec struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// loadedGraph is a graph file materialized into core types.
type loadedGraph struct {
	title     string
	graph     *core.Graph
	byName    map[string]*core.Node
	locations map[*core.Node]render.Point // nil unless every node has x and y
}

// loadGraph reads and materializes the graph file at path.
func loadGraph(fs afero.Fs, path string) (*loadedGraph, error) {
	if path == "" {
		return nil, errors.New("no graph file given, use --graph")
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open graph file")
	}
	defer f.Close()

	var gf graphFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&gf); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	lg := &loadedGraph{
		title:     gf.Title,
		graph:     core.NewGraph(),
		byName:    make(map[string]*core.Node, len(gf.Nodes)),
		locations: make(map[*core.Node]render.Point, len(gf.Nodes)),
	}
	for _, ns := range gf.Nodes {
		if ns.Name == "" {
			return nil, errors.Wrap(core.ErrInvalidInput, "node without name")
		}
		if _, dup := lg.byName[ns.Name]; dup {
			return nil, errors.Wrapf(core.ErrInvalidInput, "duplicate node name %q", ns.Name)
		}
		n := lg.graph.AddNode(ns.Name)
		lg.byName[ns.Name] = n
		if ns.X != nil && ns.Y != nil {
			lg.locations[n] = render.Point{X: *ns.X, Y: *ns.Y}
		}
	}
	if len(lg.locations) != len(gf.Nodes) {
		lg.locations = nil
	}

	for i, es := range gf.Edges {
		u, err := lg.node(es.From)
		if err != nil {
			return nil, errors.Wrapf(err, "edge %d", i)
		}
		v, err := lg.node(es.To)
		if err != nil {
			return nil, errors.Wrapf(err, "edge %d", i)
		}
		if _, err := lg.graph.AddEdge(u, v, es.Weight); err != nil {
			return nil, errors.Wrapf(err, "edge %d", i)
		}
	}

	return lg, nil
}

// node resolves a node name.
func (lg *loadedGraph) node(name string) (*core.Node, error) {
	n, ok := lg.byName[name]
	if !ok {
		return nil, errors.Wrapf(core.ErrNodeNotFound, "node %q", name)
	}

	return n, nil
}
