package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/floorforge/floorforge/pkg/codecheck"
	"github.com/floorforge/floorforge/pkg/knowledge"
	"github.com/floorforge/floorforge/pkg/layout"
	"github.com/floorforge/floorforge/pkg/observability"
	"github.com/floorforge/floorforge/pkg/plan"
)

// Runner encapsulates pipeline execution.
// Both CLI and API can use this to avoid duplicating generation logic.
//
// The Runner is stateless except for the validator and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Validator *codecheck.Validator
	Logger    *log.Logger
}

// NewRunner creates a runner with the given validator.
// If validator is nil, one using the default building codes is created.
func NewRunner(v *codecheck.Validator, logger *log.Logger) *Runner {
	if v == nil {
		v = codecheck.NewValidator(knowledge.DefaultCodes())
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Validator: v,
		Logger:    logger,
	}
}

// Generate runs the complete allocate → place → validate pipeline.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1 + 2: allocate and place
	layoutStart := time.Now()
	observability.Pipeline().OnGenerateStart(ctx, opts.Style, opts.TotalSqFt)

	p, err := r.Layout(ctx, opts)
	roomCount := 0
	if p != nil {
		roomCount = p.RoomCount()
	}
	observability.Pipeline().OnGenerateComplete(ctx, opts.Style, roomCount, time.Since(layoutStart), err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Plan = p
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.RoomCount = p.RoomCount()

	r.Logger.Info("generated floor plan",
		"rooms", p.RoomCount(),
		"envelope", fmt.Sprintf("%.0fx%.0f", p.LotWidth, p.LotDepth),
		"duration", result.Stats.LayoutTime)

	// Stage 3: validate
	validation, validateTime, err := r.Validate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	result.Validation = validation
	result.Stats.ValidateTime = validateTime

	r.Logger.Info("validated against building codes",
		"score", validation.Score,
		"grade", validation.Grade,
		"violations", len(validation.Violations),
		"duration", result.Stats.ValidateTime)

	return result, nil
}

// Layout runs only the generation stages: square footage allocation,
// room list assembly, envelope sizing, placement, adjacency annotation,
// and door/window placement. The returned plan is not yet validated.
func (r *Runner) Layout(ctx context.Context, opts Options) (*plan.FloorPlan, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	alloc := layout.Allocate(opts.TotalSqFt, opts.Bedrooms, opts.Bathrooms, opts.Style)
	requests := layout.RoomList(alloc, opts.Bedrooms, opts.Bathrooms, opts.Special)
	width, depth := layout.Envelope(opts.TotalSqFt, opts.LotWidth, opts.LotDepth)

	r.Logger.Debug("sized building envelope",
		"width", width,
		"depth", depth,
		"requests", len(requests))

	rooms := layout.NewPlacer().Place(requests, width, depth)

	p := &plan.FloorPlan{
		ID:        uuid.NewString(),
		TotalSqFt: opts.TotalSqFt,
		Rooms:     rooms,
		Bedrooms:  opts.Bedrooms,
		Bathrooms: opts.Bathrooms,
		Floors:    DefaultFloors,
		Style:     opts.Style,
		LotWidth:  width,
		LotDepth:  depth,
	}

	layout.AnnotateAdjacency(p)
	layout.PlaceOpenings(p)

	return p, nil
}

// Validate checks a plan against building codes, emitting observability
// events and returning the elapsed time alongside the result.
func (r *Runner) Validate(ctx context.Context, p *plan.FloorPlan) (codecheck.Result, time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return codecheck.Result{}, 0, err
	}

	start := time.Now()
	observability.Pipeline().OnValidateStart(ctx, p.RoomCount())

	validation := r.Validator.Validate(p)
	elapsed := time.Since(start)
	observability.Pipeline().OnValidateComplete(ctx, validation.Score, len(validation.Violations), elapsed, nil)

	return validation, elapsed, nil
}

// Analysis bundles the outputs of Analyze.
type Analysis struct {
	Validation      codecheck.Result           `json:"validation"`
	Energy          codecheck.EnergyEfficiency `json:"energyEfficiency"`
	Recommendations []codecheck.Recommendation `json:"recommendations"`
}

// Analyze runs the full analysis suite on an existing plan: code
// validation, energy efficiency estimation, and design recommendations.
func (r *Runner) Analyze(ctx context.Context, p *plan.FloorPlan) (*Analysis, error) {
	validation, _, err := r.Validate(ctx, p)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Validation:      validation,
		Energy:          codecheck.AnalyzeEnergy(p),
		Recommendations: codecheck.Recommend(p, validation),
	}, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
