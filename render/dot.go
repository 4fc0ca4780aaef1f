package render

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/katalvlaran/spantree/core"
)

// ErrMissingLocation indicates Scene.Locations is set but lacks a node.
var ErrMissingLocation = errors.New("render: node has no location")

// Point is a 2D drawing coordinate.
type Point struct {
	X, Y float64
}

// Scene is everything needed to draw a graph with its forest highlighted.
type Scene struct {
	// Title names the DOT graph. Empty means "mst".
	Title string

	Nodes []*core.Node
	Edges []*core.Edge // the whole input graph

	// Forest edges are drawn bold; other edges dashed. Forest edges missing
	// from Edges are drawn as well.
	Forest []*core.Edge

	// Locations pins nodes to fixed positions (neato layout). Optional, but when
	// present it must cover every node.
	Locations map[*core.Node]Point
}

type dotGraph struct {
	Title      string
	Positioned bool
	Nodes      []dotNode
	Edges      []dotEdge
}

type dotNode struct {
	ID    string
	Attrs dotAttrs
}

type dotEdge struct {
	From  string
	To    string
	Attrs dotAttrs
}

type dotAttrs map[string]string

// String renders attributes sorted by key so output is reproducible.
func (p dotAttrs) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	l := make([]string, 0, len(keys))
	for _, k := range keys {
		l = append(l, fmt.Sprintf("%s=%q", k, p[k]))
	}

	return strings.Join(l, " ")
}

var dotTmpl = template.Must(template.New("dot").Funcs(template.FuncMap{"quote": strconv.Quote}).Parse(
	`graph {{ quote .Title }} {
{{- if .Positioned }}
  layout="neato";
{{- end }}
  node [shape="circle"];
{{- range .Nodes }}
  {{ .ID }} [{{ .Attrs }}];
{{- end }}
{{- range .Edges }}
  {{ .From }} -- {{ .To }} [{{ .Attrs }}];
{{- end }}
}
`))

// DOT writes s as an undirected Graphviz graph. Node identifiers are positional
// (n0, n1, ...) following s.Nodes; labels use the node payload and edge labels
// the weight with two decimals.
//
// Errors:
//   - core.ErrNodeNotFound if an edge touches a node outside s.Nodes.
//   - ErrMissingLocation if s.Locations is non-empty and misses a node.
func DOT(w io.Writer, s Scene) error {
	g := dotGraph{Title: s.Title, Positioned: len(s.Locations) > 0}
	if g.Title == "" {
		g.Title = "mst"
	}

	ids := make(map[*core.Node]string, len(s.Nodes))
	for i, n := range s.Nodes {
		id := "n" + strconv.Itoa(i)
		ids[n] = id
		attrs := dotAttrs{"label": n.String()}
		if g.Positioned {
			p, ok := s.Locations[n]
			if !ok {
				return errors.Wrapf(ErrMissingLocation, "node %s", n)
			}
			attrs["pos"] = fmt.Sprintf("%s,%s!", formatFloat(p.X), formatFloat(p.Y))
		}
		g.Nodes = append(g.Nodes, dotNode{ID: id, Attrs: attrs})
	}

	inForest := mapset.NewThreadUnsafeSet(s.Forest...)
	drawn := mapset.NewThreadUnsafeSet[*core.Edge]()
	edges := append(slices.Clone(s.Edges), s.Forest...)
	for _, e := range edges {
		if !drawn.Add(e) {
			continue
		}
		u, v := e.Endpoints()
		from, ok := ids[u]
		if !ok {
			return errors.Wrapf(core.ErrNodeNotFound, "render: edge %s", e)
		}
		to, ok := ids[v]
		if !ok {
			return errors.Wrapf(core.ErrNodeNotFound, "render: edge %s", e)
		}
		attrs := dotAttrs{"label": fmt.Sprintf("%.2f", e.Weight)}
		if inForest.Contains(e) {
			attrs["penwidth"] = "2.5"
		} else {
			attrs["style"] = "dashed"
			attrs["color"] = "gray"
		}
		g.Edges = append(g.Edges, dotEdge{From: from, To: to, Attrs: attrs})
	}

	return dotTmpl.Execute(w, g)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
