package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/floorforge/floorforge/pkg/codecheck"
	"github.com/floorforge/floorforge/pkg/errors"
	"github.com/floorforge/floorforge/pkg/layout"
	"github.com/floorforge/floorforge/pkg/pipeline"
	"github.com/floorforge/floorforge/pkg/plan"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	sqft       float64 // target total square footage
	bedrooms   int
	bathrooms  int
	style      string
	office     bool
	laundry    bool
	garage     bool
	garageCars int
	temple     bool
	lotWidth   float64
	lotDepth   float64
	output     string // output file path (stdout if empty)
	codes      string // building codes TOML override
	report     bool   // print the full compliance report
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		sqft:       2000,
		bedrooms:   3,
		bathrooms:  2,
		style:      pipeline.DefaultStyle,
		garageCars: 2,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a floor plan from program requirements",
		Long: `Generate a single-story floor plan from square footage, room counts,
and an architectural style, then validate it against building codes.

Examples:
  floorforge generate --sqft 2000 --bedrooms 3 --bathrooms 2
  floorforge generate --sqft 2400 --style traditional --office --garage
  floorforge generate --sqft 1800 -o plan.json --report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.sqft, "sqft", opts.sqft, "target total square footage")
	cmd.Flags().IntVar(&opts.bedrooms, "bedrooms", opts.bedrooms, "number of bedrooms")
	cmd.Flags().IntVar(&opts.bathrooms, "bathrooms", opts.bathrooms, "number of bathrooms")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "architectural style (modern, traditional, ranch, luxury)")
	cmd.Flags().BoolVar(&opts.office, "office", false, "include a home office")
	cmd.Flags().BoolVar(&opts.laundry, "laundry", false, "include a laundry room")
	cmd.Flags().BoolVar(&opts.garage, "garage", false, "include a garage")
	cmd.Flags().IntVar(&opts.garageCars, "garage-cars", opts.garageCars, "garage size in cars")
	cmd.Flags().BoolVar(&opts.temple, "temple", false, "include a prayer room")
	cmd.Flags().Float64Var(&opts.lotWidth, "lot-width", 0, "maximum lot width in feet (0 = unconstrained)")
	cmd.Flags().Float64Var(&opts.lotDepth, "lot-depth", 0, "maximum lot depth in feet (0 = unconstrained)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output plan file (stdout if empty)")
	cmd.Flags().StringVar(&opts.codes, "codes", "", "building codes TOML file (defaults to IRC-based values)")
	cmd.Flags().BoolVar(&opts.report, "report", false, "print the full compliance report")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := errors.ValidateStyleName(opts.style); err != nil {
		return err
	}
	if opts.output != "" {
		if err := errors.ValidatePath(opts.output); err != nil {
			return err
		}
	}
	if opts.codes != "" {
		if err := errors.ValidatePath(opts.codes); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(opts.codes)
	if err != nil {
		return err
	}

	pipeOpts := pipeline.Options{
		TotalSqFt: opts.sqft,
		Bedrooms:  opts.bedrooms,
		Bathrooms: opts.bathrooms,
		Style:     opts.style,
		Special: layout.SpecialRooms{
			Office:     opts.office,
			Laundry:    opts.laundry,
			Garage:     opts.garage,
			GarageCars: opts.garageCars,
			Temple:     opts.temple,
		},
		LotWidth: opts.lotWidth,
		LotDepth: opts.lotDepth,
		Logger:   logger,
	}

	spinner := newSpinnerWithContext(ctx, "Generating floor plan...")
	spinner.Start()
	prog := newProgress(logger)
	result, err := runner.Generate(ctx, pipeOpts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Placed %d rooms", result.Stats.RoomCount))

	printSuccess("Generated %s plan", StyleHighlight.Render(result.Plan.Style))
	printPlanStats(result.Stats.RoomCount, result.Plan.LotWidth, result.Plan.LotDepth)
	printCompliance(result.Validation)
	for _, v := range result.Validation.Violations {
		printViolation(v)
	}

	if opts.report {
		printNewline()
		fmt.Println(codecheck.Report(result.Validation))
	}

	if opts.output == "" {
		printNewline()
		return plan.WritePlan(result.Plan, os.Stdout)
	}

	if err := plan.WritePlanFile(result.Plan, opts.output); err != nil {
		return err
	}
	printFile(opts.output)
	printNewline()
	printNextStep("Render it", "floorforge export "+opts.output)
	printNextStep("Full analysis", "floorforge analyze "+opts.output)
	return nil
}
