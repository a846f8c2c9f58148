package layout

import "math"

// idealEnvelopeRatio is the target width:depth ratio for the building
// envelope. Close to square minimizes perimeter for a given area, which
// keeps construction and energy costs down.
const idealEnvelopeRatio = 1.3

// setbackFactor is the fraction of each lot dimension usable by the
// building; the remainder is reserved for setback margins.
const setbackFactor = 0.8

// envelopeGrowStep is the increment used to grow an undersized envelope.
const envelopeGrowStep = 5

// Envelope computes building envelope dimensions for the requested floor
// area. lotWidth and lotDepth bound the result when non-zero (the usable
// portion after setbacks); zero means unbounded.
//
// If rounding leaves width×depth short of the requested area, whichever
// dimension still has headroom grows in 5-foot steps until the envelope
// fits. Results are rounded to 2 decimals.
func Envelope(totalSqFt, lotWidth, lotDepth float64) (width, depth float64) {
	maxWidth := math.Inf(1)
	maxDepth := math.Inf(1)
	if lotWidth > 0 && lotDepth > 0 {
		maxWidth = lotWidth * setbackFactor
		maxDepth = lotDepth * setbackFactor
	}

	width = math.Min(math.Sqrt(totalSqFt*idealEnvelopeRatio), maxWidth)
	depth = math.Min(totalSqFt/width, maxDepth)

	for width*depth < totalSqFt {
		if width < maxWidth {
			width += envelopeGrowStep
		} else {
			depth += envelopeGrowStep
		}
	}

	return round2(width), round2(depth)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
