// Package pipeline provides the core plan generation pipeline for FloorForge.
//
// This package implements the complete allocate → place → validate pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Allocate: Distribute square footage across rooms by style and program
//  2. Place: Size the building envelope and lay out rooms, adjacency, openings
//  3. Validate: Check the finished plan against residential building codes
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(validator, logger)
//	opts := pipeline.Options{
//	    TotalSqFt: 2000,
//	    Bedrooms:  3,
//	    Bathrooms: 2,
//	    Style:     "modern",
//	}
//	result, err := runner.Generate(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Validation.Score)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/floorforge/floorforge/pkg/codecheck"
	"github.com/floorforge/floorforge/pkg/layout"
	"github.com/floorforge/floorforge/pkg/plan"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// MinTotalSqFt is the smallest plan the pipeline will generate.
	MinTotalSqFt = 500.0

	// MaxTotalSqFt is the largest plan the pipeline will generate.
	MaxTotalSqFt = 20000.0

	// MinBedrooms and MaxBedrooms bound the bedroom count.
	MinBedrooms = 1
	MaxBedrooms = 10

	// MinBathrooms and MaxBathrooms bound the bathroom count.
	MinBathrooms = 1
	MaxBathrooms = 8

	// DefaultStyle is the architectural style used when none is requested.
	DefaultStyle = "modern"

	// DefaultFloors is the number of floors in generated plans.
	DefaultFloors = 1
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Program requirements
	TotalSqFt float64 `json:"totalSqFt"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	Style     string  `json:"style,omitempty"`

	// Optional special rooms (office, laundry, garage, temple)
	Special layout.SpecialRooms `json:"specialRooms,omitempty"`

	// Optional lot constraints; zero means unconstrained
	LotWidth float64 `json:"lotWidth,omitempty"`
	LotDepth float64 `json:"lotDepth,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Plan is the generated floor plan.
	Plan *plan.FloorPlan

	// Validation is the building code compliance result for the plan.
	Validation codecheck.Result

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RoomCount    int
	LayoutTime   time.Duration
	ValidateTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidationErrors returns all parameter range violations as user-facing
// messages. An empty slice means the options are valid.
func (o *Options) ValidationErrors() []string {
	var errs []string

	if o.TotalSqFt == 0 {
		errs = append(errs, "totalSqFt is required and must be a number")
	} else if o.TotalSqFt < MinTotalSqFt || o.TotalSqFt > MaxTotalSqFt {
		errs = append(errs, "totalSqFt must be between 500 and 20,000")
	}

	if o.Bedrooms == 0 {
		errs = append(errs, "bedrooms is required and must be an integer")
	} else if o.Bedrooms < MinBedrooms || o.Bedrooms > MaxBedrooms {
		errs = append(errs, "bedrooms must be between 1 and 10")
	}

	if o.Bathrooms == 0 {
		errs = append(errs, "bathrooms is required and must be a number")
	} else if o.Bathrooms < MinBathrooms || o.Bathrooms > MaxBathrooms {
		errs = append(errs, "bathrooms must be between 1 and 8")
	}

	return errs
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if errs := o.ValidationErrors(); len(errs) > 0 {
		return fmt.Errorf("invalid options: %s", errs[0])
	}

	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}
