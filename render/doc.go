// Package render turns a graph and its spanning forest into artifacts a human
// can inspect: a Graphviz DOT scene and an edge table.
//
// The engines never depend on this package. Coordinates are supplied by the
// caller through Scene.Locations; render does no layout of its own.
package render
