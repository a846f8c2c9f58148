// Package pkg provides the core libraries for FloorForge floor-plan
// generation and building-code compliance checking.
//
// # Overview
//
// FloorForge turns a handful of inputs (square footage, bedroom and bathroom
// counts, an architectural style) into a complete single-story residential
// floor plan and checks it against IRC-derived building codes. The pkg
// directory is organized into five main areas:
//
//  1. [knowledge] - Code requirements, style share tables, room dimension data
//  2. [layout] - Area allocation, envelope sizing, placement, openings
//  3. [codecheck] - Compliance validation, scoring, energy analysis
//  4. [render] - SVG floor plans and adjacency graph output
//  5. [pipeline] - Orchestration (allocate, place, validate)
//
// # Architecture
//
// The typical data flow through FloorForge:
//
//	Generation request (sqft, bedrooms, bathrooms, style)
//	         |
//	    [layout] package (allocate areas, place rooms, cut openings)
//	         |
//	    [plan] package (floor-plan data model)
//	         |
//	    [codecheck] package (validate, score, analyze)
//	         |
//	    [render] package (SVG / DOT / adjacency output)
//
// # Quick Start
//
// Generate a plan and validate it against the default codes:
//
//	import (
//	    "context"
//	    "github.com/floorforge/floorforge/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil)
//	result, err := runner.Generate(context.Background(), pipeline.Options{
//	    TotalSqFt: 2000,
//	    Bedrooms:  3,
//	    Bathrooms: 2,
//	    Style:     "modern",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Validation.Grade)
//
// # Main Packages
//
// [plan] - The shared data model: FloorPlan, Room, doors, windows, and the
// JSON codec used by the CLI and the HTTP API.
//
// [knowledge] - The building knowledge base: IRC code requirements (loadable
// from TOML), per-style area share tables, room dimension presets, and color
// palettes.
//
// [layout] - The generation engine. Allocates area shares per room, sizes
// the building envelope, places rooms with an edge-biased grid scan,
// annotates adjacency, and cuts door and window openings.
//
// [codecheck] - The compliance engine. Validates a plan against the
// knowledge base, scores and grades it, produces the text report, and runs
// the energy-efficiency analysis with recommendations.
//
// [render] - SVG rendering of placed plans; the [render/adjacency]
// subpackage emits Graphviz DOT and rendered adjacency graphs.
//
// [pipeline] - The complete generation pipeline used by both the CLI and
// the HTTP API, keeping behavior consistent across entry points.
//
// Supporting packages: [errors] defines the structured error codes,
// [observability] the pipeline and API hook registries, and [buildinfo] the
// embedded version information.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/codecheck/...  # Specific package
//
// [plan]: https://pkg.go.dev/github.com/floorforge/floorforge/pkg/plan
// [knowledge]: https://pkg.go.dev/github.com/floorforge/floorforge/pkg/knowledge
// [layout]: https://pkg.go.dev/github.com/floorforge/floorforge/pkg/layout
// [codecheck]: https://pkg.go.dev/github.com/floorforge/floorforge/pkg/codecheck
// [render]: https://pkg.go.dev/github.com/floorforge/floorforge/pkg/render
// [render/adjacency]: https://pkg.go.dev/github.com/floorforge/floorforge/pkg/render/adjacency
// [pipeline]: https://pkg.go.dev/github.com/floorforge/floorforge/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/floorforge/floorforge/pkg/errors
// [observability]: https://pkg.go.dev/github.com/floorforge/floorforge/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/floorforge/floorforge/pkg/buildinfo
package pkg
