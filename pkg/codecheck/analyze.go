package codecheck

import (
	"fmt"
	"math"

	"github.com/floorforge/floorforge/pkg/plan"
)

// idealCompactness is the area-to-perimeter ratio of an ideal square room
// footprint, used as the reference point for the compactness score.
const idealCompactness = 0.25

// EnergyEfficiency estimates how energy efficient a plan is from its
// geometry: compact room shapes lose less heat through walls, and
// south-facing rooms gain more passive solar light.
type EnergyEfficiency struct {
	Score       float64 `json:"score"`
	Grade       string  `json:"grade"`
	Compactness float64 `json:"compactness"`
	Orientation float64 `json:"orientation"`

	BuildingCompactness float64 `json:"building_compactness"`
	SouthFacingRooms    int     `json:"south_facing_rooms"`
	TotalRooms          int     `json:"total_rooms"`
}

// AnalyzeEnergy computes the energy-efficiency estimate for a plan.
// The overall score blends compactness (60%) and orientation (40%).
// An empty plan scores zero with grade "N/A".
func AnalyzeEnergy(p *plan.FloorPlan) EnergyEfficiency {
	if len(p.Rooms) == 0 {
		return EnergyEfficiency{Grade: "N/A"}
	}

	totalArea := p.TotalRoomArea()
	var totalPerimeter float64
	for _, r := range p.Rooms {
		totalPerimeter += r.Perimeter()
	}

	var compactness float64
	if totalPerimeter > 0 {
		compactness = totalArea / totalPerimeter
	}
	compactnessScore := min(100, compactness/idealCompactness*100)

	southFacing := 0
	for _, r := range p.Rooms {
		if r.Orientation.IsSouthern() {
			southFacing++
		}
	}
	orientationScore := min(100, float64(southFacing)/float64(len(p.Rooms))*200)

	score := compactnessScore*0.6 + orientationScore*0.4

	// Grade from the unrounded score; the reported numbers round to one
	// decimal (three for the raw compactness ratio).
	return EnergyEfficiency{
		Score:               round1(score),
		Grade:               energyGrade(score),
		Compactness:         round1(compactnessScore),
		Orientation:         round1(orientationScore),
		BuildingCompactness: round3(compactness),
		SouthFacingRooms:    southFacing,
		TotalRooms:          len(p.Rooms),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

func energyGrade(score float64) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 70:
		return "B"
	case score >= 55:
		return "C"
	default:
		return "D"
	}
}

// Recommendation is one actionable improvement suggestion derived from
// validation results and plan statistics.
type Recommendation struct {
	Priority    string `json:"priority"` // high, medium, low
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// maxRecommendations caps the recommendation list at the most important
// items.
const maxRecommendations = 10

// Recommend derives improvement suggestions from a validation result and
// the plan's geometry: unresolved critical violations first, then space
// efficiency, then room proportion issues.
func Recommend(p *plan.FloorPlan, result Result) []Recommendation {
	var recs []Recommendation

	if result.Summary.Critical > 0 {
		recs = append(recs, Recommendation{
			Priority: "high",
			Category: "Building Code",
			Title:    "Critical Code Violations",
			Description: fmt.Sprintf(
				"Address %d critical building code violations before construction",
				result.Summary.Critical),
			Action: "Review validation report and make necessary changes",
		})
	}

	if efficiency := p.EfficiencyRatio(); efficiency < 80 {
		recs = append(recs, Recommendation{
			Priority: "medium",
			Category: "Space Efficiency",
			Title:    "Improve Space Utilization",
			Description: fmt.Sprintf(
				"Current efficiency is %.1f%%. Consider reducing circulation areas",
				efficiency),
			Action: "Optimize hallway and transition spaces",
		})
	}

	for _, room := range p.Rooms {
		if ratio := room.AspectRatio(); ratio > 2.5 {
			recs = append(recs, Recommendation{
				Priority: "low",
				Category: "Room Design",
				Title:    fmt.Sprintf("Balance %s Proportions", room.Name),
				Description: fmt.Sprintf(
					"Room has unusual aspect ratio (%.1f:1)", ratio),
				Action: "Consider more balanced width-to-length ratio",
			})
		}
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
