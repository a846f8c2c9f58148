package layout

import "github.com/floorforge/floorforge/pkg/plan"

// Opening dimensions in feet.
const (
	entryDoorWidth = 3

	egressWindowWidth  = 4
	egressWindowHeight = 4.5

	pictureWindowWidth  = 6
	casementWindowWidth = 4
	livingWindowHeight  = 5
)

// PlaceOpenings attaches doors and windows to placed rooms by type.
//
// Bedrooms get an entry door centered on the south edge and a code-required
// egress window on the north edge. Living rooms get a picture and a
// casement window for daylight. Other types receive no openings in this
// pass; missing required openings are the validator's concern.
func PlaceOpenings(p *plan.FloorPlan) {
	for i := range p.Rooms {
		room := &p.Rooms[i]

		switch {
		case room.Type.IsBedroom():
			room.Doors = append(room.Doors, plan.Door{
				X:     room.X + room.Width/2,
				Y:     room.Y,
				Width: entryDoorWidth,
				Kind:  plan.DoorEntry,
			})
			room.Windows = append(room.Windows, plan.Window{
				X:      room.X + room.Width*0.7,
				Y:      room.Y + room.Height,
				Width:  egressWindowWidth,
				Height: egressWindowHeight,
				Kind:   plan.WindowEgress,
			})

		case room.Type == plan.Living:
			room.Windows = append(room.Windows,
				plan.Window{
					X:      room.X + room.Width/3,
					Y:      room.Y + room.Height,
					Width:  pictureWindowWidth,
					Height: livingWindowHeight,
					Kind:   plan.WindowPicture,
				},
				plan.Window{
					X:      room.X + room.Width*2/3,
					Y:      room.Y + room.Height,
					Width:  casementWindowWidth,
					Height: livingWindowHeight,
					Kind:   plan.WindowCasement,
				},
			)
		}
	}
}
