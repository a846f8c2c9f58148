package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/floorforge/floorforge/pkg/codecheck"
	"github.com/floorforge/floorforge/pkg/plan"
)

// reportCommand creates the report command.
func (c *CLI) reportCommand() *cobra.Command {
	var codes string

	cmd := &cobra.Command{
		Use:   "report <plan.json>",
		Short: "Print the full compliance report for a plan file",
		Long: `Print the building-code compliance report for a floor plan file.

The report contains the grade, score and status header, a summary of
violation counts by severity, and the detailed violations grouped by
severity.

Examples:
  floorforge report plan.json
  floorforge report plan.json --codes strict-codes.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReport(cmd, args[0], codes)
		},
	}

	cmd.Flags().StringVar(&codes, "codes", "", "building codes TOML file (defaults to IRC-based values)")

	return cmd
}

func (c *CLI) runReport(cmd *cobra.Command, path, codes string) error {
	runner, err := c.newRunner(codes)
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

	fmt.Fprintln(cmd.OutOrStdout(), codecheck.Report(result))
	return nil
}
