package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/floorforge/floorforge/pkg/errors"
)

// =============================================================================
// Plan Serialization API
// =============================================================================

// MarshalPlan converts a FloorPlan to indented JSON bytes.
func MarshalPlan(p *FloorPlan) ([]byte, error) {
	var buf bytes.Buffer
	if err := writePlanTo(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePlanFile writes a FloorPlan to a JSON file.
// The file is created with 0644 permissions.
func WritePlanFile(p *FloorPlan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writePlanTo(p, f)
}

// WritePlan writes a FloorPlan as JSON to an io.Writer.
func WritePlan(p *FloorPlan, w io.Writer) error {
	return writePlanTo(p, w)
}

// ReadPlanFile reads a JSON file and returns the decoded FloorPlan.
// Room types are validated against the closed enumeration.
func ReadPlanFile(path string) (*FloorPlan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadPlan(f)
}

// ReadPlan decodes a JSON floor plan from an io.Reader.
// Use ReadPlanFile for files or pass bytes.NewReader for in-memory data.
//
// Room names pass through the untrusted-input rules (non-empty, bounded
// length, no control characters or traversal sequences) since they later
// appear in filenames, SVG text and report output.
func ReadPlan(r io.Reader) (*FloorPlan, error) {
	var p FloorPlan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	for i, room := range p.Rooms {
		if err := errors.ValidateRoomName(room.Name); err != nil {
			return nil, fmt.Errorf("room %d: %w", i, err)
		}
		if _, err := ParseRoomType(string(room.Type)); err != nil {
			return nil, fmt.Errorf("room %q: %w", room.Name, err)
		}
	}
	return &p, nil
}

func writePlanTo(p *FloorPlan, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
