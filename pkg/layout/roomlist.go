package layout

import (
	"fmt"

	"github.com/floorforge/floorforge/pkg/plan"
)

// Request describes one room to be placed: its target area and the
// priority that orders the placement pass. A zero Priority takes the
// type's default from the knowledge base.
type Request struct {
	Name     string
	Type     plan.RoomType
	Area     float64
	Priority int
}

// SpecialRooms flags optional rooms requested by the caller. Each special
// room has a fixed area independent of the allocation budget.
type SpecialRooms struct {
	Office  bool `json:"office,omitempty"`
	Laundry bool `json:"laundry,omitempty"`
	Garage  bool `json:"garage,omitempty"`
	Temple  bool `json:"temple,omitempty"`

	// GarageCars sizes the garage at 200 sq ft per car. Zero means the
	// default two-car garage.
	GarageCars int `json:"garage_cars,omitempty"`
}

// Fixed areas for special rooms, in square feet.
const (
	officeArea        = 120
	laundryArea       = 60
	garageAreaPerCar  = 200
	templeArea        = 80
	defaultGarageCars = 2
)

// minDiningArea gates the dining room: below this budget the dining share
// is folded into open living space instead of a dedicated room.
const minDiningArea = 80

// RoomList expands an allocation into concrete room requests.
//
// The first bedroom becomes a 40%-larger master bedroom and the remaining
// bedrooms are slightly undersized relative to the even split, keeping the
// total near the bedroom budget. The first bathroom is likewise a 30%-larger
// master bathroom.
func RoomList(alloc Allocation, bedrooms, bathrooms int, special SpecialRooms) []Request {
	var rooms []Request

	rooms = append(rooms, Request{
		Name:     "Living Room",
		Type:     plan.Living,
		Area:     alloc.Living,
		Priority: 10,
	})
	rooms = append(rooms, Request{
		Name:     "Kitchen",
		Type:     plan.Kitchen,
		Area:     alloc.Kitchen,
		Priority: 9,
	})

	if alloc.Dining > minDiningArea {
		rooms = append(rooms, Request{
			Name:     "Dining Room",
			Type:     plan.Dining,
			Area:     alloc.Dining,
			Priority: 7,
		})
	}

	bedroomArea := alloc.Bedrooms / float64(bedrooms)
	for i := 0; i < bedrooms; i++ {
		if i == 0 {
			rooms = append(rooms, Request{
				Name:     "Master Bedroom",
				Type:     plan.MasterBedroom,
				Area:     bedroomArea * 1.4,
				Priority: 8,
			})
			continue
		}
		rooms = append(rooms, Request{
			Name:     fmt.Sprintf("Bedroom %d", i+1),
			Type:     plan.Bedroom,
			Area:     bedroomArea * 0.9,
			Priority: 5,
		})
	}

	bathroomArea := alloc.Bathrooms / float64(bathrooms)
	for i := 0; i < bathrooms; i++ {
		if i == 0 {
			rooms = append(rooms, Request{
				Name:     "Master Bathroom",
				Type:     plan.MasterBathroom,
				Area:     bathroomArea * 1.3,
				Priority: 7,
			})
			continue
		}
		rooms = append(rooms, Request{
			Name:     fmt.Sprintf("Bathroom %d", i+1),
			Type:     plan.Bathroom,
			Area:     bathroomArea,
			Priority: 4,
		})
	}

	if special.Office {
		rooms = append(rooms, Request{
			Name:     "Home Office",
			Type:     plan.Office,
			Area:     officeArea,
			Priority: 6,
		})
	}
	if special.Laundry {
		rooms = append(rooms, Request{
			Name:     "Laundry Room",
			Type:     plan.Laundry,
			Area:     laundryArea,
			Priority: 3,
		})
	}
	if special.Garage {
		cars := special.GarageCars
		if cars == 0 {
			cars = defaultGarageCars
		}
		rooms = append(rooms, Request{
			Name:     fmt.Sprintf("%d-Car Garage", cars),
			Type:     plan.Garage,
			Area:     float64(cars * garageAreaPerCar),
			Priority: 6,
		})
	}
	if special.Temple {
		rooms = append(rooms, Request{
			Name:     "Prayer Room",
			Type:     plan.Temple,
			Area:     templeArea,
			Priority: 5,
		})
	}

	return rooms
}
