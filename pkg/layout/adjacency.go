package layout

import (
	"math"

	"github.com/floorforge/floorforge/pkg/plan"
)

// adjacencyThreshold is the center-to-center distance below which two rooms
// are recorded as adjacent.
const adjacencyThreshold = 50

// AnnotateAdjacency records, for every placed room, the names of the other
// rooms whose centers lie within the adjacency threshold.
//
// The relation is evaluated independently per ordered pair, so the result
// is symmetric in practice (distance is symmetric) but each room's list is
// built from its own scan and keeps detection order.
func AnnotateAdjacency(p *plan.FloorPlan) {
	for i := range p.Rooms {
		room := &p.Rooms[i]
		cx, cy := room.Center()
		for j := range p.Rooms {
			if i == j {
				continue
			}
			ox, oy := p.Rooms[j].Center()
			if math.Hypot(cx-ox, cy-oy) < adjacencyThreshold {
				if !room.IsAdjacentTo(p.Rooms[j].Name) {
					room.AdjacentRooms = append(room.AdjacentRooms, p.Rooms[j].Name)
				}
			}
		}
	}
}
