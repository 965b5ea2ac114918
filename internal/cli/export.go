package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/sketch"
)

// exportCommand creates the export command for writing board wireframes.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output     string
		frameWidth float64
		showIDs    bool
	)

	cmd := &cobra.Command{
		Use:   "export [board]",
		Short: "Write a board wireframe as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boardID := boardIDFromArgs(args)
			ctx := cmd.Context()

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			gw, closeGW, err := c.openGateway(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeGW()

			items := gw.Load(ctx, boardID)

			opts := []sketch.SVGOption{
				sketch.WithTitle(boardID),
				sketch.WithFrameWidth(frameWidth),
			}
			if showIDs {
				opts = append(opts, sketch.WithIDs())
			}
			svg := sketch.RenderSVG(items, opts...)

			if output == "" {
				output = boardID + ".svg"
			}
			if err := os.WriteFile(output, svg, 0o644); err != nil {
				return err
			}

			printSuccess("exported board %s", boardID)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <board>.svg)")
	cmd.Flags().Float64Var(&frameWidth, "width", 1000, "frame width in pixels")
	cmd.Flags().BoolVar(&showIDs, "ids", false, "label blocks with item ids instead of types")
	return cmd
}
