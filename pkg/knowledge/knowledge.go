// Package knowledge holds the static architectural knowledge base: room
// adjacency preferences, orientation preferences, ideal aspect ratios,
// placement priorities, display colors and per-style area allocation
// tables.
//
// All tables are constructed once at package initialization and never
// mutated, so concurrent readers need no synchronization. Lookups fall
// back to documented defaults for types that are absent from a table.
package knowledge

import (
	"strings"

	"github.com/floorforge/floorforge/pkg/plan"
)

// DefaultAdjacencyPreference is used for room-type pairs absent from the
// adjacency matrix: neutral on a 1-10 desirability scale.
const DefaultAdjacencyPreference = 5

// adjacencyMatrix rates how desirable it is for two room types to be near
// each other (1 = keep apart, 10 = highly preferred). The relation is not
// symmetric; the first key is the room being placed.
var adjacencyMatrix = map[plan.RoomType]map[plan.RoomType]int{
	plan.Living: {
		plan.Dining:  10,
		plan.Kitchen: 8,
		plan.Office:  6,
		plan.Bedroom: 2,
		plan.Garage:  3,
	},
	plan.Kitchen: {
		plan.Dining:  10,
		plan.Living:  8,
		plan.Pantry:  9,
		plan.Garage:  6,
		plan.Bedroom: 1,
	},
	plan.MasterBedroom: {
		plan.MasterBathroom: 10,
		plan.Living:         2,
		plan.Kitchen:        1,
	},
	plan.Bedroom: {
		plan.Bathroom: 8,
		plan.Hallway:  7,
		plan.Living:   2,
		plan.Kitchen:  1,
	},
	plan.Garage: {
		plan.Mudroom: 10,
		plan.Laundry: 8,
		plan.Kitchen: 6,
		plan.Bedroom: 1,
	},
}

// AdjacencyPreference returns the desirability rating for placing a room of
// type a near an already-placed room of type b.
func AdjacencyPreference(a, b plan.RoomType) int {
	if prefs, ok := adjacencyMatrix[a]; ok {
		if p, ok := prefs[b]; ok {
			return p
		}
	}
	return DefaultAdjacencyPreference
}

// orientationPreferences lists preferred building edges per room type, in
// descending preference order. Chosen for natural light and energy use:
// living spaces face south, sleeping spaces catch morning light from the
// east, service spaces go north.
var orientationPreferences = map[plan.RoomType][]plan.Orientation{
	plan.Living:        {plan.South, plan.Southwest},
	plan.Kitchen:       {plan.East, plan.Southeast},
	plan.MasterBedroom: {plan.East, plan.Northeast},
	plan.Bedroom:       {plan.East, plan.Northeast},
	plan.Dining:        {plan.South, plan.East},
	plan.Office:        {plan.North, plan.Northeast},
	plan.Bathroom:      {plan.North, plan.West},
	plan.Garage:        {plan.North, plan.Northwest},
}

// OrientationPreferences returns the preferred orientations for a room
// type. Types without an entry default to a single south preference.
func OrientationPreferences(t plan.RoomType) []plan.Orientation {
	if prefs, ok := orientationPreferences[t]; ok {
		return prefs
	}
	return []plan.Orientation{plan.South}
}

// DefaultAspectRatio is the width:height ratio used for room types without
// a table entry.
const DefaultAspectRatio = 1.2

// aspectRatios holds ideal width:height ratios. Garages are long and
// narrow; bathrooms close to square.
var aspectRatios = map[plan.RoomType]float64{
	plan.Living:        1.5,
	plan.Kitchen:       1.3,
	plan.Dining:        1.4,
	plan.Bedroom:       1.2,
	plan.MasterBedroom: 1.3,
	plan.Bathroom:      1.1,
	plan.Office:        1.2,
	plan.Garage:        2.0,
}

// AspectRatio returns the ideal width:height ratio for a room type.
func AspectRatio(t plan.RoomType) float64 {
	if r, ok := aspectRatios[t]; ok {
		return r
	}
	return DefaultAspectRatio
}

// placementPriorities orders room placement: anchor spaces first so that
// later rooms can score adjacency against them.
var placementPriorities = map[plan.RoomType]int{
	plan.Living:        10,
	plan.Kitchen:       9,
	plan.MasterBedroom: 8,
	plan.Dining:        7,
	plan.Garage:        6,
	plan.Bedroom:       5,
	plan.Bathroom:      4,
	plan.Office:        5,
	plan.Laundry:       3,
}

// DefaultPlacementPriority is used for types without a priority entry.
const DefaultPlacementPriority = 5

// PlacementPriority returns the placement priority for a room type
// (higher places first).
func PlacementPriority(t plan.RoomType) int {
	if p, ok := placementPriorities[t]; ok {
		return p
	}
	return DefaultPlacementPriority
}

// DefaultRoomColor is the fill color for room types without a palette entry.
const DefaultRoomColor = "#ffffff"

// roomColors is the display palette keyed by room type.
var roomColors = map[plan.RoomType]string{
	plan.Living:         "#a8d5ff",
	plan.Dining:         "#ffd9a8",
	plan.Kitchen:        "#ffb6a8",
	plan.Bedroom:        "#c8ffc8",
	plan.MasterBedroom:  "#b3ffb3",
	plan.Bathroom:       "#e6d5ff",
	plan.MasterBathroom: "#d4bdff",
	plan.Office:         "#fff4a8",
	plan.Garage:         "#d4d4d4",
	plan.Laundry:        "#c4e5f4",
	plan.Hallway:        "#f5f5f5",
	plan.Storage:        "#e0e0e0",
	plan.Pantry:         "#ffe4cc",
	plan.Mudroom:        "#e8dcc4",
	plan.Temple:         "#fff0e6",
}

// Color returns the display color for a room type.
func Color(t plan.RoomType) string {
	if c, ok := roomColors[t]; ok {
		return c
	}
	return DefaultRoomColor
}

// Shares is the fractional split of total floor area across space
// categories for one architectural style. The base tables sum to 1.0.
type Shares struct {
	Living      float64
	Kitchen     float64
	Dining      float64
	Bedrooms    float64
	Bathrooms   float64
	Circulation float64
	Storage     float64
}

// DefaultStyle is the allocation table used when a style is unknown.
const DefaultStyle = "modern"

// styleShares holds the base allocation per architectural style.
var styleShares = map[string]Shares{
	"modern": {
		Living: 0.25, Kitchen: 0.15, Dining: 0.10,
		Bedrooms: 0.30, Bathrooms: 0.10, Circulation: 0.08, Storage: 0.02,
	},
	"traditional": {
		Living: 0.22, Kitchen: 0.12, Dining: 0.12,
		Bedrooms: 0.32, Bathrooms: 0.12, Circulation: 0.08, Storage: 0.02,
	},
	"ranch": {
		Living: 0.28, Kitchen: 0.16, Dining: 0.08,
		Bedrooms: 0.28, Bathrooms: 0.10, Circulation: 0.08, Storage: 0.02,
	},
	"luxury": {
		Living: 0.30, Kitchen: 0.18, Dining: 0.10,
		Bedrooms: 0.25, Bathrooms: 0.12, Circulation: 0.03, Storage: 0.02,
	},
}

// AllocationShares returns the base area shares for a style. Lookup is
// case-insensitive; unknown styles fall back to the modern table.
func AllocationShares(style string) Shares {
	if s, ok := styleShares[strings.ToLower(style)]; ok {
		return s
	}
	return styleShares[DefaultStyle]
}

// Styles returns the known style names. The returned slice is a copy.
func Styles() []string {
	out := make([]string, 0, len(styleShares))
	for name := range styleShares {
		out = append(out, name)
	}
	return out
}
