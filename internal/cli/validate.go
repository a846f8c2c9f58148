package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/floorforge/floorforge/pkg/codecheck"
	"github.com/floorforge/floorforge/pkg/plan"
)

// validateOpts holds the command-line flags for the validate command.
type validateOpts struct {
	codes  string // building codes TOML override
	report bool   // print the full compliance report
}

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var opts validateOpts

	cmd := &cobra.Command{
		Use:   "validate <plan.json>",
		Short: "Validate a plan file against building codes",
		Long: `Validate a floor plan file against residential building codes.

The plan is checked room by room (minimum areas, aspect ratios, bedroom
egress) and as a whole (area variance, efficiency, emergency egress,
circulation).

Examples:
  floorforge validate plan.json
  floorforge validate plan.json --report
  floorforge validate plan.json --codes strict-codes.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.codes, "codes", "", "building codes TOML file (defaults to IRC-based values)")
	cmd.Flags().BoolVar(&opts.report, "report", false, "print the full compliance report")

	return cmd
}

func (c *CLI) runValidate(cmd *cobra.Command, path string, opts *validateOpts) error {
	runner, err := c.newRunner(opts.codes)
	if err != nil {
		return err
	}

	p, err := plan.ReadPlanFile(path)
	if err != nil {
		return err
	}

	result, _, err := runner.Validate(cmd.Context(), p)
	if err != nil {
		return err
	}

	printCompliance(result)
	for _, v := range result.Violations {
		printViolation(v)
	}

	if opts.report {
		printNewline()
		fmt.Println(codecheck.Report(result))
	}

	return nil
}
