package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/floorforge/floorforge/pkg/plan"
)

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var codes string

	cmd := &cobra.Command{
		Use:   "analyze <plan.json>",
		Short: "Analyze a plan: codes, energy efficiency, recommendations",
		Long: `Run the full analysis suite on a floor plan file: building code
validation, an energy efficiency estimate based on compactness and
orientation, and design recommendations.

Examples:
  floorforge analyze plan.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd, args[0], codes)
		},
	}

	cmd.Flags().StringVar(&codes, "codes", "", "building codes TOML file (defaults to IRC-based values)")

	return cmd
}

func (c *CLI) runAnalyze(cmd *cobra.Command, path, codes string) error {
	runner, err := c.newRunner(codes)
	if err != nil {
		return err
	}

	p, err := plan.ReadPlanFile(path)
	if err != nil {
		return err
	}

	analysis, err := runner.Analyze(cmd.Context(), p)
	if err != nil {
		return err
	}

	printCompliance(analysis.Validation)
	printNewline()

	fmt.Println(StyleTitle.Render("Energy Efficiency"))
	printKeyValue("Grade", analysis.Energy.Grade)
	printKeyValue("Score", fmt.Sprintf("%.1f/100", analysis.Energy.Score))
	printKeyValue("Compactness", fmt.Sprintf("%.1f", analysis.Energy.Compactness))
	printKeyValue("Orientation", fmt.Sprintf("%.1f", analysis.Energy.Orientation))
	printDetail("%d of %d rooms face south", analysis.Energy.SouthFacingRooms, analysis.Energy.TotalRooms)

	if len(analysis.Recommendations) > 0 {
		printNewline()
		fmt.Println(StyleTitle.Render("Recommendations"))
		for _, rec := range analysis.Recommendations {
			printInfo("%s %s", StyleDim.Render("["+rec.Priority+"]"), rec.Title)
			printDetail("%s. %s", rec.Description, rec.Action)
		}
	}

	return nil
}
