package codecheck

import (
	"strings"
	"testing"
)

func TestReportCompliant(t *testing.T) {
	result := Result{
		Compliant: true,
		Score:     100,
		Grade:     "A+",
	}

	report := Report(result)
	for _, want := range []string{
		"BUILDING CODE COMPLIANCE REPORT",
		"Overall Grade: A+",
		"Compliance Score: 100/100",
		"Status: COMPLIANT",
		"✓ No violations found. Plan is fully compliant!",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if strings.Contains(report, "Detailed Violations") {
		t.Error("compliant report should not list violations")
	}
}

func TestReportGroupsBySeverity(t *testing.T) {
	violations := []Violation{
		{Severity: SeverityInfo, Room: "Overall Plan", Code: "Space Efficiency",
			Message: "Space efficiency 60.0% is below recommended 75%"},
		{Severity: SeverityCritical, Room: "Bedroom 2", Code: "IRC R310.1",
			Message:        "Bedroom requires egress window for emergency escape",
			Recommendation: "Add egress window with min 5.7 sq ft opening"},
		{Severity: SeverityWarning, Room: "Kitchen", Code: "IRC R305",
			Message: "Kitchen area 42 sq ft is below recommended 50 sq ft"},
	}
	result := Result{
		Score:      74,
		Grade:      "C",
		Violations: violations,
		Summary:    summarize(violations),
	}

	report := Report(result)

	// Severity groups appear in decreasing order regardless of input order.
	critical := strings.Index(report, "CRITICAL:")
	warning := strings.Index(report, "WARNING:")
	info := strings.Index(report, "INFO:")
	if critical == -1 || warning == -1 || info == -1 {
		t.Fatalf("report missing severity groups:\n%s", report)
	}
	if !(critical < warning && warning < info) {
		t.Errorf("severity groups out of order: critical=%d warning=%d info=%d", critical, warning, info)
	}

	for _, want := range []string{
		"Status: NON-COMPLIANT",
		"[IRC R310.1] Bedroom 2",
		"Issue: Bedroom requires egress window for emergency escape",
		"Fix: Add egress window with min 5.7 sq ft opening",
		"Critical Violations: 1",
		"Warnings: 1",
		"Informational: 1",
		"Total Issues: 3",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestReportIsDeterministic(t *testing.T) {
	result := Result{
		Grade: "B",
		Score: 80,
		Violations: []Violation{
			{Severity: SeverityWarning, Room: "Kitchen", Code: "IRC R305", Message: "too small"},
		},
	}
	if Report(result) != Report(result) {
		t.Error("identical results produced different reports")
	}
}
