package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/floorforge/floorforge/pkg/pipeline"
	"github.com/floorforge/floorforge/pkg/plan"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := httptest.NewServer(NewServer(pipeline.NewRunner(nil, logger), logger).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

// generatePlan round-trips a generated plan through the API for use as
// input to the validate/analyze/export endpoints.
func generatePlan(t *testing.T, srv *httptest.Server) map[string]any {
	t.Helper()
	resp := postJSON(t, srv.URL+"/api/generate", map[string]any{
		"totalSqFt": 2000, "bedrooms": 3, "bathrooms": 2, "style": "modern",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("generate status = %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	fp, ok := body["floorPlan"].(map[string]any)
	if !ok {
		t.Fatal("floorPlan missing from generate response")
	}
	return fp
}

func TestHealth(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", body["status"])
	}
	features, ok := body["features"].(map[string]any)
	if !ok || features["code_validation"] != true {
		t.Errorf("features = %v, want code_validation enabled", body["features"])
	}
}

func TestGenerate(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/generate", map[string]any{
		"totalSqFt": 2000, "bedrooms": 3, "bathrooms": 2, "style": "modern",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}

	fp := body["floorPlan"].(map[string]any)
	rooms, ok := fp["rooms"].([]any)
	if !ok || len(rooms) == 0 {
		t.Error("floorPlan.rooms should be non-empty")
	}
	stats, ok := fp["stats"].(map[string]any)
	if !ok {
		t.Fatal("floorPlan.stats missing")
	}
	if stats["room_count"].(float64) != float64(len(rooms)) {
		t.Errorf("stats.room_count = %v, want %d", stats["room_count"], len(rooms))
	}

	if _, ok := body["validation"].(map[string]any); !ok {
		t.Error("validation missing from response")
	}
}

func TestGenerateValidationErrors(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/generate", map[string]any{
		"totalSqFt": 100, "bedrooms": 3, "bathrooms": 2,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["error"] != "Validation failed" {
		t.Errorf("error = %v, want Validation failed", body["error"])
	}
	errs, ok := body["errors"].([]any)
	if !ok || len(errs) != 1 {
		t.Fatalf("errors = %v, want one message", body["errors"])
	}
	if errs[0] != "totalSqFt must be between 500 and 20,000" {
		t.Errorf("errors[0] = %v", errs[0])
	}
}

func TestGenerateMalformedBody(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/api/generate", "application/json", strings.NewReader("not json"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestValidate(t *testing.T) {
	srv := testServer(t)
	fp := generatePlan(t, srv)

	resp := postJSON(t, srv.URL+"/api/validate", fp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	report, ok := body["report"].(string)
	if !ok || !strings.Contains(report, "BUILDING CODE COMPLIANCE REPORT") {
		t.Errorf("report missing or malformed: %v", body["report"])
	}
}

func TestValidateRequiresRooms(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/validate", map[string]any{"total_sqft": 2000})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["error"] != "Floor plan data is required" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestAnalyze(t *testing.T) {
	srv := testServer(t)
	fp := generatePlan(t, srv)

	resp := postJSON(t, srv.URL+"/api/analyze", fp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	for _, key := range []string{"validation", "stats", "energyEfficiency", "recommendations"} {
		if _, ok := body[key]; !ok {
			t.Errorf("response missing %q", key)
		}
	}
}

func TestExportSVG(t *testing.T) {
	srv := testServer(t)
	fp := generatePlan(t, srv)

	resp := postJSON(t, srv.URL+"/api/export/svg", fp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}

	svg, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("response is not SVG")
	}
}

func TestUnknownEndpoint(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["error"] != "Endpoint not found" {
		t.Errorf("error = %v", body["error"])
	}
}

// Guard against the wire format drifting from the plan package: the
// generate response must decode back into a FloorPlan.
func TestGenerateRoundTripsThroughPlanCodec(t *testing.T) {
	srv := testServer(t)
	fp := generatePlan(t, srv)

	data, err := json.Marshal(fp)
	if err != nil {
		t.Fatal(err)
	}
	p, err := plan.ReadPlan(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadPlan: %v", err)
	}
	if p.RoomCount() == 0 {
		t.Error("round-tripped plan has no rooms")
	}
}
