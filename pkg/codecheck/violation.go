// Package codecheck evaluates floor plans against residential building-code
// rules and renders the results.
//
// Validation is a pure function of the plan and the rule table: domain
// problems are never errors, they are Violations with a severity, and every
// rule pass accumulates into one weighted compliance score and letter grade.
// The validator works on any FloorPlan, including plans reconstructed from
// external data; it checks code rules only and does not re-verify geometric
// consistency.
package codecheck

// Severity classifies a violation's impact.
type Severity string

// Violation severities, in decreasing order of score impact.
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// PlanScope is the room label for violations that apply to the whole plan
// rather than one room.
const PlanScope = "Overall Plan"

// Violation is one building-code or best-practice finding.
type Violation struct {
	Severity Severity `json:"severity"`
	Room     string   `json:"room"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`

	// Recommendation suggests a fix. May be empty.
	Recommendation string `json:"recommendation,omitempty"`
}

// Summary counts violations by severity.
type Summary struct {
	Critical int `json:"critical"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
	Total    int `json:"total"`
}

// Result is the outcome of validating one floor plan.
type Result struct {
	// Compliant is true when no critical violations were found.
	Compliant bool `json:"compliant"`

	// Score is the weighted compliance score in [0,100].
	Score int `json:"compliance_score"`

	// Grade is the letter grade derived from Score.
	Grade string `json:"grade"`

	Violations []Violation `json:"violations"`
	Summary    Summary     `json:"summary"`
}

// Score weights per severity.
const (
	criticalPenalty = 20
	warningPenalty  = 5
	infoPenalty     = 1
)

// scoreViolations computes the weighted compliance score from severity
// counts, clamped at zero.
func scoreViolations(s Summary) int {
	score := 100 - s.Critical*criticalPenalty - s.Warnings*warningPenalty - s.Info*infoPenalty
	return max(score, 0)
}

// summarize counts violations by severity.
func summarize(violations []Violation) Summary {
	s := Summary{Total: len(violations)}
	for _, v := range violations {
		switch v.Severity {
		case SeverityCritical:
			s.Critical++
		case SeverityWarning:
			s.Warnings++
		case SeverityInfo:
			s.Info++
		}
	}
	return s
}

// Grade maps a compliance score to a letter grade. Boundaries are
// inclusive lower bounds: 95 and above is A+, 90 and above A, and so on
// down to F below 60.
func Grade(score float64) string {
	switch {
	case score >= 95:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 85:
		return "B+"
	case score >= 80:
		return "B"
	case score >= 75:
		return "C+"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
