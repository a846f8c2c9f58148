package api

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/floorforge/floorforge/pkg/buildinfo"
	"github.com/floorforge/floorforge/pkg/codecheck"
	"github.com/floorforge/floorforge/pkg/errors"
	"github.com/floorforge/floorforge/pkg/observability"
	"github.com/floorforge/floorforge/pkg/pipeline"
	"github.com/floorforge/floorforge/pkg/plan"
	"github.com/floorforge/floorforge/pkg/render"
	"github.com/floorforge/floorforge/pkg/render/adjacency"
)

// handleHealth reports service status and available features.
func (s *Server) handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "FloorForge",
		"version": buildinfo.Version,
		"features": map[string]bool{
			"generation":      true,
			"code_validation": true,
			"svg_export":      true,
			"adjacency_graph": true,
			"analysis":        true,
		},
	})
}

// handleGenerate generates a floor plan from program requirements.
func (s *Server) handleGenerate(w http.ResponseWriter, req *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(req.Body).Decode(&opts); err != nil {
		writeError(w, http.StatusBadRequest, "Request body is required")
		return
	}

	if errs := opts.ValidationErrors(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	result, err := s.runner.Generate(req.Context(), opts)
	if err != nil {
		s.logger.Error("generation failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Floor plan generation failed: "+errors.UserMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"floorPlan":  planEnvelope{FloorPlan: result.Plan, Stats: statsFor(result.Plan)},
		"validation": result.Validation,
		"message":    "Floor plan generated successfully",
	})
}

// handleValidate validates a posted plan against building codes.
func (s *Server) handleValidate(w http.ResponseWriter, req *http.Request) {
	p, ok := s.decodePlan(w, req)
	if !ok {
		return
	}

	validation, _, err := s.runner.Validate(req.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Validation failed: "+errors.UserMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"validation": validation,
		"report":     codecheck.Report(validation),
	})
}

// handleAnalyze runs the full analysis suite on a posted plan.
func (s *Server) handleAnalyze(w http.ResponseWriter, req *http.Request) {
	p, ok := s.decodePlan(w, req)
	if !ok {
		return
	}

	analysis, err := s.runner.Analyze(req.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Analysis failed: "+errors.UserMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"validation":       analysis.Validation,
		"stats":            statsFor(p),
		"energyEfficiency": analysis.Energy,
		"recommendations":  analysis.Recommendations,
	})
}

// handleExportSVG renders a posted plan as a scaled SVG drawing.
func (s *Server) handleExportSVG(w http.ResponseWriter, req *http.Request) {
	p, ok := s.decodePlan(w, req)
	if !ok {
		return
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(req.Context(), "svg")
	svg := render.RenderSVG(p)
	observability.Pipeline().OnRenderComplete(req.Context(), "svg", time.Since(start), nil)

	writeSVG(w, "floor-plan.svg", svg)
}

// handleExportAdjacency renders a posted plan's room adjacency diagram.
func (s *Server) handleExportAdjacency(w http.ResponseWriter, req *http.Request) {
	p, ok := s.decodePlan(w, req)
	if !ok {
		return
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(req.Context(), "adjacency")
	dot := adjacency.ToDOT(p, adjacency.Options{})
	svg, err := adjacency.RenderSVG(dot)
	observability.Pipeline().OnRenderComplete(req.Context(), "adjacency", time.Since(start), err)
	if err != nil {
		s.logger.Error("adjacency export failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Adjacency export failed")
		return
	}

	writeSVG(w, "adjacency.svg", svg)
}

// decodePlan reads a floor plan from the request body, writing a 400
// response on malformed or empty input.
func (s *Server) decodePlan(w http.ResponseWriter, req *http.Request) (*plan.FloorPlan, bool) {
	p, err := plan.ReadPlan(req.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.UserMessage(err))
		return nil, false
	}
	if len(p.Rooms) == 0 {
		writeError(w, http.StatusBadRequest, "Floor plan data is required")
		return nil, false
	}
	return p, true
}

// planEnvelope augments the wire plan with derived statistics.
type planEnvelope struct {
	*plan.FloorPlan
	Stats planStats `json:"stats"`
}

type planStats struct {
	TotalLivingArea float64 `json:"total_living_area"`
	EfficiencyRatio float64 `json:"efficiency_ratio"`
	RoomCount       int     `json:"room_count"`
	TotalArea       float64 `json:"total_area"`
}

func statsFor(p *plan.FloorPlan) planStats {
	return planStats{
		TotalLivingArea: round2(p.TotalLivingArea()),
		EfficiencyRatio: round2(p.EfficiencyRatio()),
		RoomCount:       p.RoomCount(),
		TotalArea:       round2(p.TotalRoomArea()),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
