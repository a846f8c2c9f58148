// Package render provides visualization rendering for floor plans.
//
// # Overview
//
// This package contains the rendering layer that transforms floor plans
// into visual outputs. It provides:
//
//   - Scaled 2-D floor plan drawings as SVG ([RenderSVG])
//   - Room adjacency diagrams (in [adjacency] subpackage)
//
// # Floor Plan SVG
//
// [RenderSVG] draws the placed rooms to scale on a fixed canvas: each room
// as a filled rectangle with its name and area, doors and windows as short
// tick lines on the walls.
//
//	svg := render.RenderSVG(p)
//	svg := render.RenderSVG(p, render.WithSize(1600, 1200))
//
// # Adjacency Diagrams
//
// The [adjacency] subpackage renders the room adjacency graph using
// Graphviz. Rooms appear as colored boxes connected by edges.
//
//	dot := adjacency.ToDOT(p, adjacency.Options{})
//	svg, err := adjacency.RenderSVG(dot)
package render
