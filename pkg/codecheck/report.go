package codecheck

import (
	"fmt"
	"strings"
)

// Report renders a validation result as a human-readable text block:
// a grade/score/status header, a severity summary, and the violations
// grouped by severity in decreasing order. Pure formatting; calling it
// twice on the same result yields identical strings.
func Report(result Result) string {
	var b strings.Builder

	status := "NON-COMPLIANT"
	if result.Compliant {
		status = "COMPLIANT"
	}

	fmt.Fprintf(&b, `
BUILDING CODE COMPLIANCE REPORT
================================

Overall Grade: %s
Compliance Score: %d/100
Status: %s

Summary:
--------
Critical Violations: %d
Warnings: %d
Informational: %d
Total Issues: %d

`,
		result.Grade, result.Score, status,
		result.Summary.Critical, result.Summary.Warnings,
		result.Summary.Info, result.Summary.Total)

	if len(result.Violations) == 0 {
		b.WriteString("\n✓ No violations found. Plan is fully compliant!\n")
		return b.String()
	}

	b.WriteString("\nDetailed Violations:\n")
	b.WriteString("-------------------\n\n")

	for _, severity := range []Severity{SeverityCritical, SeverityWarning, SeverityInfo} {
		var group []Violation
		for _, v := range result.Violations {
			if v.Severity == severity {
				group = append(group, v)
			}
		}
		if len(group) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(string(severity)))
		for _, v := range group {
			fmt.Fprintf(&b, "  [%s] %s\n", v.Code, v.Room)
			fmt.Fprintf(&b, "    Issue: %s\n", v.Message)
			if v.Recommendation != "" {
				fmt.Fprintf(&b, "    Fix: %s\n", v.Recommendation)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
