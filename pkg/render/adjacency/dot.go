package adjacency

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/floorforge/floorforge/pkg/plan"
)

// Options configures adjacency diagram rendering.
type Options struct {
	// Detailed includes room type and area in node labels.
	// When false, only the room name is shown.
	Detailed bool
}

// ToDOT converts a floor plan's adjacency annotations to Graphviz DOT
// format. The resulting DOT string can be rendered using [RenderSVG].
//
// Each recorded adjacency appears once as an undirected edge, deduplicated
// by room name order.
func ToDOT(p *plan.FloorPlan, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph adjacency {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, room := range p.Rooms {
		label := fmtLabel(room, opts.Detailed)
		fill := room.Color
		if fill == "" {
			fill = "#ffffff"
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", room.Name, label, fill)
	}

	buf.WriteString("\n")
	seen := make(map[string]bool)
	for _, room := range p.Rooms {
		for _, neighbor := range room.AdjacentRooms {
			a, b := room.Name, neighbor
			if a > b {
				a, b = b, a
			}
			key := a + "\x00" + b
			if seen[key] {
				continue
			}
			seen[key] = true
			fmt.Fprintf(&buf, "  %q -- %q;\n", a, b)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(room plan.Room, detailed bool) string {
	if !detailed {
		return room.Name
	}
	return fmt.Sprintf("%s\n%s\n%.0f sq ft", room.Name, room.Type, room.Area)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
