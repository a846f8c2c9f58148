package layout_test

import (
	"fmt"

	"github.com/floorforge/floorforge/pkg/layout"
)

func ExampleEnvelope() {
	// A 40x40 lot leaves a 32x32 usable footprint after setbacks, so the
	// depth grows in 5-foot steps to fit the requested area.
	width, depth := layout.Envelope(2000, 40, 40)
	fmt.Printf("%.0f x %.0f\n", width, depth)
	// Output:
	// 32 x 67
}

func ExampleRoomList() {
	alloc := layout.Allocate(2000, 2, 1, "modern")
	for _, r := range layout.RoomList(alloc, 2, 1, layout.SpecialRooms{Garage: true}) {
		fmt.Println(r.Name)
	}
	// Output:
	// Living Room
	// Kitchen
	// Dining Room
	// Master Bedroom
	// Bedroom 2
	// Master Bathroom
	// 2-Car Garage
}
