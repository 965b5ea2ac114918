package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/arrange"
)

// arrangeCommand creates the arrange command for repacking a saved board.
func (c *CLI) arrangeCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "arrange [board]",
		Short: "Repack a board into tidy rows",
		Long: `Repack a board into tidy rows.

Items are grouped into rows by visual proximity, ordered left to right,
and laid out flush with uniform gaps. The pass is deterministic: running
it twice leaves the board unchanged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boardID := boardIDFromArgs(args)
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			gw, closeGW, err := c.openGateway(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeGW()

			prog := newProgress(logger)
			items := gw.Load(ctx, boardID)
			packed := arrange.Pack(items, cfg.ArrangeOptions())

			if dryRun {
				printBoardTable(boardID, packed, false)
				printInfo("dry run, board not saved")
				return nil
			}

			if err := gw.Save(ctx, boardID, packed); err != nil {
				return err
			}
			prog.done("Arranged board " + boardID)
			printSuccess("board %s arranged into %d rows", boardID, len(arrange.Rows(packed)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the arranged layout without saving")
	return cmd
}
