package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/floorforge/floorforge/pkg/errors"
	"github.com/floorforge/floorforge/pkg/plan"
	"github.com/floorforge/floorforge/pkg/render"
	"github.com/floorforge/floorforge/pkg/render/adjacency"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	format string // svg, adjacency, or dot
	output string // output file path
	width  int    // SVG canvas width
	height int    // SVG canvas height
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{
		format: "svg",
		width:  render.DefaultWidth,
		height: render.DefaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "export <plan.json>",
		Short: "Render a plan file as SVG or adjacency diagram",
		Long: `Render a floor plan file to a visual format.

Formats:
  svg        scaled floor plan drawing (default)
  adjacency  room adjacency diagram rendered with Graphviz
  dot        room adjacency graph in DOT format

Examples:
  floorforge export plan.json
  floorforge export plan.json -o drawing.svg
  floorforge export plan.json --format adjacency -o rooms.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format (svg, adjacency, dot)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (derived from format if empty)")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "SVG canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "SVG canvas height in pixels")

	return cmd
}

func (c *CLI) runExport(path string, opts *exportOpts) error {
	if opts.output != "" {
		if err := errors.ValidatePath(opts.output); err != nil {
			return err
		}
	}

	p, err := plan.ReadPlanFile(path)
	if err != nil {
		return err
	}

	var data []byte
	switch opts.format {
	case "svg":
		data = render.RenderSVG(p, render.WithSize(opts.width, opts.height))
	case "dot":
		data = []byte(adjacency.ToDOT(p, adjacency.Options{}))
	case "adjacency":
		dot := adjacency.ToDOT(p, adjacency.Options{})
		data, err = adjacency.RenderSVG(dot)
		if err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, adjacency, dot)", opts.format)
	}

	output := opts.output
	if output == "" {
		output = defaultOutputName(opts.format)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Exported %s", StyleHighlight.Render(opts.format))
	printFile(output)
	return nil
}

func defaultOutputName(format string) string {
	switch format {
	case "dot":
		return "adjacency.dot"
	case "adjacency":
		return "adjacency.svg"
	default:
		return "floor-plan.svg"
	}
}
