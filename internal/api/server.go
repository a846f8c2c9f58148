// Package api implements the FloorForge REST API.
//
// The API exposes the generation pipeline over HTTP:
//
//	GET  /api/health            service status and feature flags
//	POST /api/generate          generate a plan from program requirements
//	POST /api/validate          validate a posted plan against building codes
//	POST /api/analyze           full analysis: codes, energy, recommendations
//	POST /api/export/svg        render a posted plan as an SVG drawing
//	POST /api/export/adjacency  render a posted plan's adjacency diagram
//
// All endpoints accept and return JSON except the export endpoints, which
// return image/svg+xml attachments.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/floorforge/floorforge/pkg/observability"
	"github.com/floorforge/floorforge/pkg/pipeline"
)

// Server handles API requests. It is safe for concurrent use.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates an API server backed by the given runner.
// If runner is nil, one with default building codes is created.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, logger)
	}
	return &Server{
		runner: runner,
		logger: logger,
	}
}

// Routes returns the HTTP handler with all API routes mounted.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/generate", s.handleGenerate)
		r.Post("/validate", s.handleValidate)
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/export/svg", s.handleExportSVG)
		r.Post("/export/adjacency", s.handleExportAdjacency)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":  "Endpoint not found",
			"status": http.StatusNotFound,
		})
	})

	return r
}

// logRequests logs each request and feeds the API observability hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		observability.API().OnRequest(req.Context(), req.Method, req.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)

		elapsed := time.Since(start)
		observability.API().OnResponse(req.Context(), req.Method, req.URL.Path, ww.Status(), elapsed)
		s.logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", elapsed)
	})
}
