package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/board"
)

// editCommand creates the edit command for the interactive board editor.
func (c *CLI) editCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [board]",
		Short: "Open a board in the interactive terminal canvas",
		Long: `Open a board in the interactive terminal canvas.

Widgets can be dragged with the mouse; pressing near an edge or corner
starts a resize from that handle. Releasing a resize triggers an
auto-arrange pass that repacks the board into tidy rows.

A board that has never been saved starts from the default catalogue.`,
		Args: cobra.MaximumNArgs(1),
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

			onSave := func(items []board.Item) error {
				return gw.Save(ctx, boardID, items)
			}
			model := NewCanvasModel(boardID, items, cfg.GridConfig(), cfg.ArrangeOptions(), cfg.BoardPresence(), onSave)

			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithContext(ctx),
			)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running editor: %w", err)
			}

			if m, ok := final.(*CanvasModel); ok {
				if m.dirty {
					printWarning("board has unsaved changes")
					printNextStep("Save next time with", "s")
				} else if m.saved {
					printSuccess("board %s saved", boardID)
				}
			}
			return nil
		},
	}
	return cmd
}
