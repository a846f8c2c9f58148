package layout

import (
	"cmp"
	"math"
	"slices"

	"github.com/floorforge/floorforge/pkg/knowledge"
	"github.com/floorforge/floorforge/pkg/plan"
)

// Placement geometry constants, all in feet.
const (
	// DefaultMinRoomSize floors every requested room area.
	DefaultMinRoomSize = 50

	// gridSize aligns room dimensions to a coarse layout grid.
	gridSize = 10

	// scanStep is the distance between candidate positions along the free
	// axis of an edge scan.
	scanStep = 50

	// edgeClearance offsets the first candidate from the building edge.
	edgeClearance = 50

	// fallbackStep is the raster step used when no edge-scan candidate
	// is available.
	fallbackStep = 25

	// placementMargin is the required clearance between placed rooms.
	placementMargin = 5

	// adjacencyRange bounds the distance at which a placed room
	// contributes to a candidate's adjacency score.
	adjacencyRange = 100
)

// Placer positions room requests inside a building envelope.
//
// Placement never fails: when the edge scans find no free candidate the
// placer falls back to a dense raster scan, and when even that fails it
// places the room at the default position regardless of overlap. A layout
// is always produced; packing problems surface later as code violations,
// not errors.
type Placer struct {
	// MinRoomSize is the floor applied to every requested area, in sq ft.
	MinRoomSize float64
}

// NewPlacer returns a Placer with the default minimum room size.
func NewPlacer() *Placer {
	return &Placer{MinRoomSize: DefaultMinRoomSize}
}

// rect is an occupied region of the envelope.
type rect struct {
	x, y, w, h float64
}

// Place converts room requests into placed rooms inside a
// buildingWidth×buildingDepth envelope.
//
// Requests are processed in descending priority order (stable for ties).
// Each room's rectangle is derived from its type's ideal aspect ratio and
// snapped to the layout grid, then positioned by scanning the building
// edges matching the type's preferred orientations and picking the
// available candidate with the highest adjacency score against the rooms
// placed so far.
func (pl *Placer) Place(requests []Request, buildingWidth, buildingDepth float64) []plan.Room {
	reqs := slices.Clone(requests)
	for i := range reqs {
		if reqs[i].Priority == 0 {
			reqs[i].Priority = knowledge.PlacementPriority(reqs[i].Type)
		}
	}
	slices.SortStableFunc(reqs, func(a, b Request) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	placed := make([]plan.Room, 0, len(reqs))
	occupied := make([]rect, 0, len(reqs))

	for _, req := range reqs {
		area := math.Max(req.Area, pl.MinRoomSize)
		width, height := roomDimensions(area, knowledge.AspectRatio(req.Type))

		x, y, orientation := findBestPosition(req.Type, width, height,
			buildingWidth, buildingDepth, occupied, placed)

		room := plan.Room{
			Name:        req.Name,
			Type:        req.Type,
			X:           x,
			Y:           y,
			Width:       width,
			Height:      height,
			Area:        width * height,
			Color:       knowledge.Color(req.Type),
			Orientation: orientation,
			FloorLevel:  1,
			Priority:    req.Priority,
		}

		placed = append(placed, room)
		occupied = append(occupied, rect{x: x, y: y, w: width, h: height})
	}

	return placed
}

// roomDimensions derives a grid-snapped rectangle for the given area and
// ideal aspect ratio. Snapping rounds to the nearest grid unit, so the
// placed area (width×height) may diverge from the requested area; the
// divergence is intentional and not corrected downstream.
func roomDimensions(area, aspectRatio float64) (width, height float64) {
	height = math.Sqrt(area / aspectRatio)
	width = area / height

	width = math.Round(width/gridSize) * gridSize
	height = math.Round(height/gridSize) * gridSize
	return width, height
}

// findBestPosition scans the building edges matching the room type's
// preferred orientations and returns the available candidate with the
// highest adjacency score. When no candidate is available it falls back to
// firstAvailable.
func findBestPosition(
	t plan.RoomType,
	width, height float64,
	buildingWidth, buildingDepth float64,
	occupied []rect,
	placed []plan.Room,
) (x, y float64, orientation plan.Orientation) {
	bestX, bestY := float64(edgeClearance), float64(edgeClearance)
	bestScore := -1.0
	bestOrientation := plan.South

	for _, o := range knowledge.OrientationPreferences(t) {
		for _, c := range scanCandidates(o, width, height, buildingWidth, buildingDepth) {
			if !positionAvailable(c.x, c.y, width, height, occupied) {
				continue
			}
			score := positionScore(t, c.x, c.y, width, height, placed)
			if score > bestScore {
				bestScore = score
				bestX, bestY = c.x, c.y
				bestOrientation = o
			}
		}
	}

	if bestScore == -1 {
		bestX, bestY = firstAvailable(width, height, buildingWidth, buildingDepth, occupied)
	}

	return bestX, bestY, bestOrientation
}

type candidate struct {
	x, y float64
}

// scanCandidates generates the candidate positions for one orientation.
// South and north orientations scan a single row across the building;
// east and west scan a single column. Scan bounds truncate the fractional
// part of the envelope dimensions, so a partial trailing grid step is not
// scanned.
func scanCandidates(o plan.Orientation, width, height, buildingWidth, buildingDepth float64) []candidate {
	var out []candidate

	switch o {
	case plan.South, plan.Southeast, plan.Southwest:
		y := float64(edgeClearance)
		for x := edgeClearance; x < int(buildingWidth-width); x += scanStep {
			out = append(out, candidate{x: float64(x), y: y})
		}
	case plan.North, plan.Northeast, plan.Northwest:
		y := buildingDepth - height - edgeClearance
		for x := edgeClearance; x < int(buildingWidth-width); x += scanStep {
			out = append(out, candidate{x: float64(x), y: y})
		}
	case plan.East:
		x := float64(edgeClearance)
		for y := edgeClearance; y < int(buildingDepth-height); y += scanStep {
			out = append(out, candidate{x: x, y: float64(y)})
		}
	default: // west
		x := buildingWidth - width - edgeClearance
		for y := edgeClearance; y < int(buildingDepth-height); y += scanStep {
			out = append(out, candidate{x: x, y: float64(y)})
		}
	}

	return out
}

// positionAvailable reports whether a rectangle at (x,y) keeps the
// placement margin from every occupied rectangle, using an axis-aligned
// separating-interval test.
func positionAvailable(x, y, width, height float64, occupied []rect) bool {
	for _, o := range occupied {
		separated := x+width+placementMargin < o.x ||
			x-placementMargin > o.x+o.w ||
			y+height+placementMargin < o.y ||
			y-placementMargin > o.y+o.h
		if !separated {
			return false
		}
	}
	return true
}

// positionScore rates a candidate by adjacency preference against the
// rooms placed so far. Each placed room within range contributes its
// preference weighted by proximity; rooms farther than the adjacency range
// contribute nothing.
func positionScore(t plan.RoomType, x, y, width, height float64, placed []plan.Room) float64 {
	score := 0.0
	cx := x + width/2
	cy := y + height/2

	for _, room := range placed {
		rx, ry := room.Center()
		distance := math.Hypot(cx-rx, cy-ry)
		if distance >= adjacencyRange {
			continue
		}
		pref := knowledge.AdjacencyPreference(t, room.Type)
		score += float64(pref) * (adjacencyRange - distance) / adjacencyRange
	}

	return score
}

// firstAvailable rasters the whole envelope at a dense step and returns the
// first free cell. Returns the default corner position when nothing fits.
func firstAvailable(width, height, buildingWidth, buildingDepth float64, occupied []rect) (x, y float64) {
	for yi := edgeClearance; yi < int(buildingDepth-height); yi += fallbackStep {
		for xi := edgeClearance; xi < int(buildingWidth-width); xi += fallbackStep {
			if positionAvailable(float64(xi), float64(yi), width, height, occupied) {
				return float64(xi), float64(yi)
			}
		}
	}
	return edgeClearance, edgeClearance
}
