package adjacency

import (
	"strings"
	"testing"

	"github.com/floorforge/floorforge/pkg/plan"
)

func testPlan() *plan.FloorPlan {
	return &plan.FloorPlan{
		Rooms: []plan.Room{
			{
				Name: "Kitchen", Type: plan.Kitchen, Area: 300, Color: "#FFE0B2",
				AdjacentRooms: []string{"Dining Room"},
			},
			{
				Name: "Dining Room", Type: plan.Dining, Area: 200,
				AdjacentRooms: []string{"Kitchen", "Living Room"},
			},
			{
				Name: "Living Room", Type: plan.Living, Area: 400,
				AdjacentRooms: []string{"Dining Room"},
			},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testPlan(), Options{})

	for _, want := range []string{
		"graph adjacency {",
		`"Kitchen" [label="Kitchen", fillcolor="#FFE0B2"];`,
		`"Dining Room" -- "Kitchen";`,
		`"Dining Room" -- "Living Room";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\ngot:\n%s", want, dot)
		}
	}
}

func TestToDOTDeduplicatesEdges(t *testing.T) {
	dot := ToDOT(testPlan(), Options{})

	// Kitchen–Dining is recorded on both rooms but must appear once.
	if got := strings.Count(dot, `"Dining Room" -- "Kitchen";`); got != 1 {
		t.Errorf("edge count = %d, want 1", got)
	}
	if got := strings.Count(dot, " -- "); got != 2 {
		t.Errorf("total edges = %d, want 2", got)
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	dot := ToDOT(testPlan(), Options{Detailed: true})

	if !strings.Contains(dot, "Kitchen\\nkitchen\\n300 sq ft") {
		t.Errorf("detailed label missing, got:\n%s", dot)
	}
}

func TestToDOTUncoloredRoomFallsBackToWhite(t *testing.T) {
	p := &plan.FloorPlan{
		Rooms: []plan.Room{{Name: "Storage", Type: plan.Storage, Area: 40}},
	}
	dot := ToDOT(p, Options{})
	if !strings.Contains(dot, `fillcolor="#ffffff"`) {
		t.Error("uncolored room should fall back to white")
	}
}
