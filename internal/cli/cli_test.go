package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/floorforge/floorforge/pkg/plan"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestRootCommandWiring(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"generate", "validate", "report", "analyze", "export", "serve", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestGenerateValidateExportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.json")

	err := runCommand(t, "generate",
		"--sqft", "2000", "--bedrooms", "3", "--bathrooms", "2",
		"--style", "modern", "-o", planPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	p, err := plan.ReadPlanFile(planPath)
	if err != nil {
		t.Fatalf("generated plan does not parse: %v", err)
	}
	if p.RoomCount() == 0 {
		t.Fatal("generated plan has no rooms")
	}

	if err := runCommand(t, "validate", planPath); err != nil {
		t.Errorf("validate: %v", err)
	}

	if err := runCommand(t, "report", planPath); err != nil {
		t.Errorf("report: %v", err)
	}

	if err := runCommand(t, "analyze", planPath); err != nil {
		t.Errorf("analyze: %v", err)
	}

	svgPath := filepath.Join(dir, "out.svg")
	if err := runCommand(t, "export", planPath, "-o", svgPath); err != nil {
		t.Fatalf("export svg: %v", err)
	}
	svg, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("exported file is not SVG")
	}

	dotPath := filepath.Join(dir, "adjacency.dot")
	if err := runCommand(t, "export", planPath, "--format", "dot", "-o", dotPath); err != nil {
		t.Fatalf("export dot: %v", err)
	}
	dot, err := os.ReadFile(dotPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(dot), "graph adjacency {") {
		t.Error("exported file is not a DOT graph")
	}
}

func TestGenerateRejectsOutOfRangeInput(t *testing.T) {
	if err := runCommand(t, "generate", "--sqft", "100"); err == nil {
		t.Error("expected error for out-of-range square footage")
	}
}

func TestGenerateRejectsMalformedStyle(t *testing.T) {
	err := runCommand(t, "generate", "--style", "mid century!")
	if err == nil || !strings.Contains(err.Error(), "invalid style name") {
		t.Errorf("err = %v, want invalid style name error", err)
	}
}

func TestGenerateRejectsTraversalOutputPath(t *testing.T) {
	err := runCommand(t, "generate", "-o", "../plan.json")
	if err == nil || !strings.Contains(err.Error(), "path traversal") {
		t.Errorf("err = %v, want path traversal error", err)
	}
}

func TestExportRejectsTraversalOutputPath(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.json")
	if err := runCommand(t, "generate", "-o", planPath); err != nil {
		t.Fatalf("generate: %v", err)
	}

	err := runCommand(t, "export", planPath, "-o", "../out.svg")
	if err == nil || !strings.Contains(err.Error(), "path traversal") {
		t.Errorf("err = %v, want path traversal error", err)
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.json")
	if err := runCommand(t, "generate", "-o", planPath); err != nil {
		t.Fatalf("generate: %v", err)
	}

	err := runCommand(t, "export", planPath, "--format", "gif")
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("err = %v, want invalid format error", err)
	}
}

func TestValidateMissingFile(t *testing.T) {
	if err := runCommand(t, "validate", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing plan file")
	}
}
