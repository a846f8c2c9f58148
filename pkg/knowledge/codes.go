package knowledge

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Codes is the residential building-code rule table the compliance
// validator evaluates against. Values follow the International Residential
// Code (IRC) with a few best-practice advisories.
type Codes struct {
	RoomMinimums  RoomMinimums  `toml:"room_minimums"`
	Egress        Egress        `toml:"egress"`
	CeilingHeight CeilingHeight `toml:"ceiling_height"`
}

// RoomMinimums holds minimum room sizes in square feet, plus the minimum
// hallway width in feet.
type RoomMinimums struct {
	Bedroom      float64 `toml:"bedroom"`
	Bathroom     float64 `toml:"bathroom"`
	Kitchen      float64 `toml:"kitchen"`
	Living       float64 `toml:"living"`
	HallwayWidth float64 `toml:"hallway_width"`
}

// Egress holds emergency-escape opening requirements for bedrooms.
type Egress struct {
	BedroomWindowMinArea   float64 `toml:"bedroom_window_min_area"`   // sq ft
	BedroomWindowMinWidth  float64 `toml:"bedroom_window_min_width"`  // inches
	BedroomWindowMinHeight float64 `toml:"bedroom_window_min_height"` // inches
}

// CeilingHeight holds minimum ceiling heights in feet.
type CeilingHeight struct {
	HabitableRooms float64 `toml:"habitable_rooms"`
	Bathrooms      float64 `toml:"bathrooms"`
}

// DefaultCodes returns the built-in IRC rule table.
func DefaultCodes() Codes {
	return Codes{
		RoomMinimums: RoomMinimums{
			Bedroom:      70,
			Bathroom:     35,
			Kitchen:      50,
			Living:       120,
			HallwayWidth: 3,
		},
		Egress: Egress{
			BedroomWindowMinArea:   5.7,
			BedroomWindowMinWidth:  20,
			BedroomWindowMinHeight: 24,
		},
		CeilingHeight: CeilingHeight{
			HabitableRooms: 7,
			Bathrooms:      6.67,
		},
	}
}

// LoadCodes reads a TOML rule file and overlays it on the defaults.
// Fields absent from the file keep their default values, so a file can
// override a single limit:
//
//	[room_minimums]
//	bedroom = 100
func LoadCodes(path string) (Codes, error) {
	codes := DefaultCodes()
	data, err := os.ReadFile(path)
	if err != nil {
		return codes, fmt.Errorf("read codes file: %w", err)
	}
	if err := toml.Unmarshal(data, &codes); err != nil {
		return codes, fmt.Errorf("parse %s: %w", path, err)
	}
	return codes, nil
}
