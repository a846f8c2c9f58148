package codecheck

import (
	"fmt"
	"math"

	"github.com/floorforge/floorforge/pkg/knowledge"
	"github.com/floorforge/floorforge/pkg/plan"
)

// Plan-level thresholds.
const (
	// maxAreaVariancePct is the allowed divergence between summed room
	// area and the declared target square footage.
	maxAreaVariancePct = 10

	// minEfficiencyPct is the recommended minimum space efficiency.
	minEfficiencyPct = 75

	// maxAspectRatio flags unusually narrow rooms.
	maxAspectRatio = 3.0

	// hallwayRecommendedAbove is the bedroom count above which a
	// dedicated hallway is recommended.
	hallwayRecommendedAbove = 2
)

// Validator evaluates floor plans against a building-code rule table.
// A Validator is immutable after construction and safe for concurrent use.
type Validator struct {
	codes knowledge.Codes
}

// NewValidator creates a validator using the given rule table.
func NewValidator(codes knowledge.Codes) *Validator {
	return &Validator{codes: codes}
}

// Validate runs all rule passes over the plan and returns the accumulated
// violations with the derived compliance score and grade.
//
// Four passes run in order: per-room rules, plan-level rules, egress rules
// and circulation rules. Violations accumulate across passes; nothing short
// circuits.
func (v *Validator) Validate(p *plan.FloorPlan) Result {
	var violations []Violation

	for _, room := range p.Rooms {
		violations = append(violations, v.validateRoom(room)...)
	}
	violations = append(violations, v.validateOverallPlan(p)...)
	violations = append(violations, v.validateEgress(p)...)
	violations = append(violations, v.validateCirculation(p)...)

	summary := summarize(violations)
	score := scoreViolations(summary)

	return Result{
		Compliant:  summary.Critical == 0,
		Score:      score,
		Grade:      Grade(float64(score)),
		Violations: violations,
		Summary:    summary,
	}
}

// validateRoom checks one room against minimum sizes, proportions and the
// bedroom egress-window requirement.
func (v *Validator) validateRoom(room plan.Room) []Violation {
	var violations []Violation
	minimums := v.codes.RoomMinimums

	switch {
	case room.Type.IsBedroom():
		if room.Area < minimums.Bedroom {
			violations = append(violations, Violation{
				Severity: SeverityCritical,
				Room:     room.Name,
				Code:     "IRC R304.1",
				Message: fmt.Sprintf("Bedroom area %.0f sq ft is below minimum %.0f sq ft",
					room.Area, minimums.Bedroom),
				Recommendation: fmt.Sprintf("Increase room area by %.0f sq ft",
					minimums.Bedroom-room.Area),
			})
		}
	case room.Type.IsBathroom():
		if room.Area < minimums.Bathroom {
			violations = append(violations, Violation{
				Severity: SeverityCritical,
				Room:     room.Name,
				Code:     "IRC R307",
				Message: fmt.Sprintf("Bathroom area %.0f sq ft is below minimum %.0f sq ft",
					room.Area, minimums.Bathroom),
				Recommendation: fmt.Sprintf("Increase room area by %.0f sq ft",
					minimums.Bathroom-room.Area),
			})
		}
	case room.Type == plan.Kitchen:
		if room.Area < minimums.Kitchen {
			violations = append(violations, Violation{
				Severity: SeverityWarning,
				Room:     room.Name,
				Code:     "IRC R305",
				Message: fmt.Sprintf("Kitchen area %.0f sq ft is below recommended %.0f sq ft",
					room.Area, minimums.Kitchen),
				Recommendation: "Consider increasing kitchen size for better functionality",
			})
		}
	case room.Type == plan.Living:
		if room.Area < minimums.Living {
			violations = append(violations, Violation{
				Severity: SeverityWarning,
				Room:     room.Name,
				Code:     "Best Practice",
				Message: fmt.Sprintf("Living room area %.0f sq ft is below recommended %.0f sq ft",
					room.Area, minimums.Living),
				Recommendation: "Consider larger living space for comfort",
			})
		}
	}

	if room.AspectRatio() > maxAspectRatio {
		violations = append(violations, Violation{
			Severity: SeverityInfo,
			Room:     room.Name,
			Code:     "Design Guideline",
			Message: fmt.Sprintf("Room aspect ratio %.1f:1 is unusually narrow",
				room.AspectRatio()),
			Recommendation: "Consider more balanced proportions for better space utilization",
		})
	}

	if room.Type.IsBedroom() {
		violations = append(violations, v.validateBedroomEgress(room)...)
	}

	return violations
}

// validateBedroomEgress enforces the emergency-escape window requirement:
// every bedroom needs at least one egress window, and each egress window
// must meet the minimum clear opening area.
func (v *Validator) validateBedroomEgress(room plan.Room) []Violation {
	egress := room.EgressWindows()
	if len(egress) == 0 {
		return []Violation{{
			Severity: SeverityCritical,
			Room:     room.Name,
			Code:     "IRC R310.1",
			Message:  "Bedroom requires egress window for emergency escape",
			Recommendation: fmt.Sprintf("Add egress window with min %.1f sq ft opening",
				v.codes.Egress.BedroomWindowMinArea),
		}}
	}

	var violations []Violation
	minArea := v.codes.Egress.BedroomWindowMinArea
	for _, w := range egress {
		area := w.Width * w.Height
		if area < minArea {
			violations = append(violations, Violation{
				Severity: SeverityCritical,
				Room:     room.Name,
				Code:     "IRC R310.2.1",
				Message: fmt.Sprintf("Egress window %.1f sq ft is below minimum %.1f sq ft",
					area, minArea),
				Recommendation: fmt.Sprintf("Increase window size by %.1f sq ft",
					minArea-area),
			})
		}
	}
	return violations
}

// validateOverallPlan checks plan-level consistency: area variance against
// the declared target, space efficiency, and the required bedroom and
// bathroom counts.
func (v *Validator) validateOverallPlan(p *plan.FloorPlan) []Violation {
	var violations []Violation

	// Variance is only meaningful when a target was declared; reconstructed
	// plans may carry a zero target.
	if p.TotalSqFt > 0 {
		actual := p.TotalRoomArea()
		variance := math.Abs(actual-p.TotalSqFt) / p.TotalSqFt * 100
		if variance > maxAreaVariancePct {
			violations = append(violations, Violation{
				Severity: SeverityWarning,
				Room:     PlanScope,
				Code:     "Design Consistency",
				Message: fmt.Sprintf("Total room area %.0f sq ft differs from target %.0f sq ft by %.1f%%",
					actual, p.TotalSqFt, variance),
				Recommendation: "Adjust room sizes to match target square footage",
			})
		}
	}

	if efficiency := p.EfficiencyRatio(); efficiency < minEfficiencyPct {
		violations = append(violations, Violation{
			Severity: SeverityInfo,
			Room:     PlanScope,
			Code:     "Space Efficiency",
			Message: fmt.Sprintf("Space efficiency %.1f%% is below recommended %d%%",
				efficiency, minEfficiencyPct),
			Recommendation: "Review circulation and storage areas to improve efficiency",
		})
	}

	if bedrooms := p.BedroomRoomCount(); bedrooms < p.Bedrooms {
		violations = append(violations, Violation{
			Severity: SeverityCritical,
			Room:     PlanScope,
			Code:     "Design Requirement",
			Message: fmt.Sprintf("Plan has %d bedrooms but requires %d",
				bedrooms, p.Bedrooms),
			Recommendation: fmt.Sprintf("Add %d more bedroom(s)", p.Bedrooms-bedrooms),
		})
	}

	if bathrooms := p.BathroomRoomCount(); bathrooms < p.Bathrooms {
		violations = append(violations, Violation{
			Severity: SeverityCritical,
			Room:     PlanScope,
			Code:     "Design Requirement",
			Message: fmt.Sprintf("Plan has %d bathrooms but requires %d",
				bathrooms, p.Bathrooms),
			Recommendation: fmt.Sprintf("Add %d more bathroom(s)", p.Bathrooms-bathrooms),
		})
	}

	return violations
}

// validateEgress requires at least one exterior-capable room (living,
// kitchen or garage) with a door, as a proxy for a clear exit path.
// Bedroom escape windows are covered by the per-room pass.
func (v *Validator) validateEgress(p *plan.FloorPlan) []Violation {
	for _, room := range p.Rooms {
		switch room.Type {
		case plan.Living, plan.Kitchen, plan.Garage:
			if len(room.Doors) > 0 {
				return nil
			}
		}
	}

	return []Violation{{
		Severity:       SeverityCritical,
		Room:           PlanScope,
		Code:           "IRC R311.2",
		Message:        "No clear egress door to exterior identified",
		Recommendation: "Ensure at least one exterior door for building exit",
	}}
}

// validateCirculation recommends a hallway for plans with many bedrooms
// and enforces the minimum hallway width where hallways exist.
func (v *Validator) validateCirculation(p *plan.FloorPlan) []Violation {
	var violations []Violation

	if p.BedroomRoomCount() > hallwayRecommendedAbove && len(p.RoomsByType(plan.Hallway)) == 0 {
		violations = append(violations, Violation{
			Severity:       SeverityInfo,
			Room:           PlanScope,
			Code:           "Design Guideline",
			Message:        "Multiple bedrooms without dedicated hallway circulation",
			Recommendation: "Consider adding hallway for better privacy and access",
		})
	}

	minWidth := v.codes.RoomMinimums.HallwayWidth
	for _, room := range p.Rooms {
		if room.Type != plan.Hallway {
			continue
		}
		if dim := math.Min(room.Width, room.Height); dim < minWidth {
			violations = append(violations, Violation{
				Severity: SeverityCritical,
				Room:     room.Name,
				Code:     "IRC R311.6",
				Message: fmt.Sprintf("Hallway width %.1f ft is below minimum %.0f ft",
					dim, minWidth),
				Recommendation: fmt.Sprintf("Increase hallway width to at least %.0f ft", minWidth),
			})
		}
	}

	return violations
}
