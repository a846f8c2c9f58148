// Package plan defines the floor-plan data model.
//
// The model consists of value types only: Room and FloorPlan are created
// fresh for every generation or validation request and never mutated across
// requests. Derived quantities (perimeter, aspect ratio, center, living
// area, efficiency) are computed on demand rather than stored.
//
// All geometry is in feet with the origin at the south-west corner of the
// building envelope (y grows northward).
package plan

import "fmt"

// RoomType classifies a room. The set is closed: every lookup table in the
// knowledge base is keyed by one of these values.
type RoomType string

// Standard room types.
const (
	Living         RoomType = "living"
	Dining         RoomType = "dining"
	Kitchen        RoomType = "kitchen"
	Bedroom        RoomType = "bedroom"
	MasterBedroom  RoomType = "master_bedroom"
	Bathroom       RoomType = "bathroom"
	MasterBathroom RoomType = "master_bathroom"
	Office         RoomType = "office"
	Laundry        RoomType = "laundry"
	Garage         RoomType = "garage"
	Hallway        RoomType = "hallway"
	Storage        RoomType = "storage"
	Pantry         RoomType = "pantry"
	Mudroom        RoomType = "mudroom"
	Temple         RoomType = "temple"
	Gym            RoomType = "gym"
	Library        RoomType = "library"
)

// roomTypes is the set of valid room types for parsing.
var roomTypes = map[RoomType]bool{
	Living: true, Dining: true, Kitchen: true, Bedroom: true,
	MasterBedroom: true, Bathroom: true, MasterBathroom: true,
	Office: true, Laundry: true, Garage: true, Hallway: true,
	Storage: true, Pantry: true, Mudroom: true, Temple: true,
	Gym: true, Library: true,
}

// ParseRoomType validates a room type string.
// Returns an error for values outside the closed enumeration.
func ParseRoomType(s string) (RoomType, error) {
	t := RoomType(s)
	if !roomTypes[t] {
		return "", fmt.Errorf("unknown room type %q", s)
	}
	return t, nil
}

// IsBedroom reports whether the type counts as a bedroom (regular or master).
func (t RoomType) IsBedroom() bool {
	return t == Bedroom || t == MasterBedroom
}

// IsBathroom reports whether the type counts as a bathroom (regular or master).
func (t RoomType) IsBathroom() bool {
	return t == Bathroom || t == MasterBathroom
}

// Orientation is a compass direction assigned to a placed room, derived from
// which building edge the placement search used.
type Orientation string

// The eight cardinal and intercardinal directions.
const (
	North     Orientation = "north"
	South     Orientation = "south"
	East      Orientation = "east"
	West      Orientation = "west"
	Northeast Orientation = "northeast"
	Northwest Orientation = "northwest"
	Southeast Orientation = "southeast"
	Southwest Orientation = "southwest"
)

// IsSouthern reports whether the orientation faces south (including the
// intercardinal south directions). Used by the energy analysis.
func (o Orientation) IsSouthern() bool {
	return o == South || o == Southeast || o == Southwest
}

// Door is a door opening attached to a room. X and Y locate the opening
// center on the wall in plan coordinates.
type Door struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
	Kind  string  `json:"type"`
}

// Window is a window opening attached to a room.
type Window struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Kind   string  `json:"type"`
}

// Window kinds used by the opening placer and the egress rules.
const (
	WindowEgress   = "egress"
	WindowPicture  = "picture"
	WindowCasement = "casement"
	DoorEntry      = "entry"
)

// Room is a single placed room: an axis-aligned rectangle plus its
// classification, openings and placement metadata.
//
// Area is stored separately from Width×Height because grid snapping during
// placement can make the placed rectangle diverge slightly from the
// requested area; the stored value is the one code checks run against.
type Room struct {
	Name        string      `json:"name"`
	Type        RoomType    `json:"type"`
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	Area        float64     `json:"area"`
	Color       string      `json:"color,omitempty"`
	Orientation Orientation `json:"orientation,omitempty"`
	FloorLevel  int         `json:"floor_level,omitempty"`
	Doors       []Door      `json:"doors,omitempty"`
	Windows     []Window    `json:"windows,omitempty"`

	// AdjacentRooms lists the names of rooms whose centers are within the
	// adjacency threshold, in detection order.
	AdjacentRooms []string `json:"adjacent_rooms,omitempty"`

	// Priority is the placement priority (1-10, higher places first).
	Priority int `json:"priority,omitempty"`
}

// Perimeter returns the room perimeter in feet.
func (r Room) Perimeter() float64 { return 2 * (r.Width + r.Height) }

// AspectRatio returns width divided by height, or 1.0 for a degenerate room.
func (r Room) AspectRatio() float64 {
	if r.Height == 0 {
		return 1.0
	}
	return r.Width / r.Height
}

// Center returns the room's center point.
func (r Room) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// EgressWindows returns the room's windows tagged as egress openings.
func (r Room) EgressWindows() []Window {
	var out []Window
	for _, w := range r.Windows {
		if w.Kind == WindowEgress {
			out = append(out, w)
		}
	}
	return out
}

// IsAdjacentTo reports whether name is already recorded as a neighbor.
func (r Room) IsAdjacentTo(name string) bool {
	for _, n := range r.AdjacentRooms {
		if n == name {
			return true
		}
	}
	return false
}
