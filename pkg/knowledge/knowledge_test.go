package knowledge

import (
	"math"
	"slices"
	"testing"

	"github.com/floorforge/floorforge/pkg/plan"
)

func TestAdjacencyPreference(t *testing.T) {
	tests := []struct {
		name string
		a, b plan.RoomType
		want int
	}{
		{name: "kitchen next to dining", a: plan.Kitchen, b: plan.Dining, want: 10},
		{name: "bedroom away from kitchen", a: plan.Bedroom, b: plan.Kitchen, want: 1},
		{name: "unknown pair is neutral", a: plan.Temple, b: plan.Gym, want: DefaultAdjacencyPreference},
		{name: "asymmetric relation", a: plan.Garage, b: plan.Living, want: DefaultAdjacencyPreference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjacencyPreference(tt.a, tt.b); got != tt.want {
				t.Errorf("AdjacencyPreference(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestOrientationPreferences(t *testing.T) {
	living := OrientationPreferences(plan.Living)
	if len(living) == 0 || living[0] != plan.South {
		t.Errorf("OrientationPreferences(living) = %v, want south first", living)
	}

	// Types without an entry default to a single south preference.
	fallback := OrientationPreferences(plan.Library)
	if len(fallback) != 1 || fallback[0] != plan.South {
		t.Errorf("OrientationPreferences(library) = %v, want [south]", fallback)
	}
}

func TestAspectRatio(t *testing.T) {
	if got := AspectRatio(plan.Garage); got != 2.0 {
		t.Errorf("AspectRatio(garage) = %v, want 2.0", got)
	}
	if got := AspectRatio(plan.Mudroom); got != DefaultAspectRatio {
		t.Errorf("AspectRatio(mudroom) = %v, want default %v", got, DefaultAspectRatio)
	}
}

func TestPlacementPriority(t *testing.T) {
	if got := PlacementPriority(plan.Living); got != 10 {
		t.Errorf("PlacementPriority(living) = %d, want 10", got)
	}
	if got := PlacementPriority(plan.Gym); got != DefaultPlacementPriority {
		t.Errorf("PlacementPriority(gym) = %d, want default %d", got, DefaultPlacementPriority)
	}
}

func TestColor(t *testing.T) {
	if got := Color(plan.Kitchen); got != "#ffb6a8" {
		t.Errorf("Color(kitchen) = %q, want #ffb6a8", got)
	}
	if got := Color(plan.Library); got != DefaultRoomColor {
		t.Errorf("Color(library) = %q, want default %q", got, DefaultRoomColor)
	}
}

func TestAllocationShares(t *testing.T) {
	modern := AllocationShares("modern")
	if modern.Living != 0.25 || modern.Bedrooms != 0.30 {
		t.Errorf("AllocationShares(modern) = %+v, want Living 0.25, Bedrooms 0.30", modern)
	}

	// Lookup is case-insensitive.
	if got := AllocationShares("TRADITIONAL"); got != AllocationShares("traditional") {
		t.Error("AllocationShares should be case-insensitive")
	}

	// Unknown styles fall back to the modern table.
	if got := AllocationShares("brutalist"); got != modern {
		t.Errorf("AllocationShares(brutalist) = %+v, want modern fallback", got)
	}
}

func TestStyleSharesSumToOne(t *testing.T) {
	for _, style := range Styles() {
		s := AllocationShares(style)
		sum := s.Living + s.Kitchen + s.Dining + s.Bedrooms +
			s.Bathrooms + s.Circulation + s.Storage
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("style %q shares sum to %v, want 1.0", style, sum)
		}
	}
}

func TestStyles(t *testing.T) {
	styles := Styles()
	for _, want := range []string{"modern", "traditional", "ranch", "luxury"} {
		if !slices.Contains(styles, want) {
			t.Errorf("Styles() = %v, missing %q", styles, want)
		}
	}
}
