// Package adjacency renders room adjacency diagrams using Graphviz.
//
// The adjacency graph shows which rooms the layout engine placed next to
// each other: rooms become colored boxes, recorded adjacencies become
// undirected edges. This is the quickest way to sanity-check a plan's
// circulation without reading coordinates.
//
// Typical usage:
//
//	dot := adjacency.ToDOT(p, adjacency.Options{})
//	svg, err := adjacency.RenderSVG(dot)
package adjacency
