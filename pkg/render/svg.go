package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/floorforge/floorforge/pkg/plan"
)

const (
	// DefaultWidth is the default SVG canvas width in pixels.
	DefaultWidth = 1000

	// DefaultHeight is the default SVG canvas height in pixels.
	DefaultHeight = 800

	// canvasMargin keeps the drawing off the canvas edges.
	canvasMargin = 50
)

const planCSS = `        <style>
            .wall { fill: none; stroke: #000; stroke-width: 3; }
            .room-fill { stroke: #333; stroke-width: 2; opacity: 0.7; }
            .room-label { font-family: Arial; font-size: 14px; font-weight: bold; text-anchor: middle; }
            .room-area { font-family: Arial; font-size: 11px; text-anchor: middle; fill: #666; }
            .door { stroke: #4CAF50; stroke-width: 2; fill: none; }
            .window { stroke: #2196F3; stroke-width: 2; fill: none; }
        </style>`

// SVGOption configures floor plan SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width  int
	height int
}

// WithSize overrides the SVG canvas dimensions in pixels.
func WithSize(width, height int) SVGOption {
	return func(r *svgRenderer) {
		r.width = width
		r.height = height
	}
}

// RenderSVG draws a floor plan to scale as an SVG document.
//
// The plan is scaled to fit the canvas with a fixed margin: rooms become
// filled rectangles labeled with name and area, doors and windows become
// short tick lines on the walls. A plan with no rooms renders as an empty
// SVG element.
func RenderSVG(p *plan.FloorPlan, opts ...SVGOption) []byte {
	r := svgRenderer{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&r)
	}

	if len(p.Rooms) == 0 {
		return []byte("<svg></svg>")
	}

	minX, minY, maxX, maxY := p.Bounds()
	scale := fitScale(maxX-minX, maxY-minY, r.width, r.height)

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&buf, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", r.width, r.height)
	buf.WriteString("    <defs>\n")
	buf.WriteString(planCSS + "\n")
	buf.WriteString("    </defs>\n\n")
	buf.WriteString(`    <rect width="100%" height="100%" fill="#f5f5f5"/>` + "\n\n")
	fmt.Fprintf(&buf, `    <g transform="translate(%d, %d)">`+"\n", canvasMargin, canvasMargin)

	for _, room := range p.Rooms {
		renderRoom(&buf, room, minX, minY, scale)
	}

	buf.WriteString("    </g>\n</svg>")
	return buf.Bytes()
}

// fitScale returns the scale factor that fits a plan of the given size
// into the canvas, leaving the margin on every side.
func fitScale(planWidth, planHeight float64, width, height int) float64 {
	scaleX, scaleY := 1.0, 1.0
	if planWidth > 0 {
		scaleX = float64(width-2*canvasMargin) / planWidth
	}
	if planHeight > 0 {
		scaleY = float64(height-2*canvasMargin) / planHeight
	}
	return min(scaleX, scaleY)
}

func renderRoom(buf *bytes.Buffer, room plan.Room, minX, minY, scale float64) {
	x := (room.X - minX) * scale
	y := (room.Y - minY) * scale
	w := room.Width * scale
	h := room.Height * scale
	cx, cy := x+w/2, y+h/2

	fill := room.Color
	if fill == "" {
		fill = "#ffffff"
	}

	fmt.Fprintf(buf, `        <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" class="room-fill" fill="%s"/>`+"\n",
		x, y, w, h, fill)
	fmt.Fprintf(buf, `        <text x="%.1f" y="%.1f" class="room-label">%s</text>`+"\n",
		cx, cy-5, escapeText(room.Name))
	fmt.Fprintf(buf, `        <text x="%.1f" y="%.1f" class="room-area">%.0f sq ft</text>`+"\n",
		cx, cy+15, room.Area)

	for _, door := range room.Doors {
		dx := (door.X - minX) * scale
		dy := (door.Y - minY) * scale
		dw := door.Width * scale
		fmt.Fprintf(buf, `        <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" class="door"/>`+"\n",
			dx-dw/2, dy, dx+dw/2, dy)
	}

	for _, window := range room.Windows {
		wx := (window.X - minX) * scale
		wy := (window.Y - minY) * scale
		ww := window.Width * scale
		fmt.Fprintf(buf, `        <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" class="window"/>`+"\n",
			wx-ww/2, wy, wx+ww/2, wy)
	}
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
