package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/arrange"
	"github.com/matzehuels/gridboard/pkg/board"
)

// showCommand creates the show command for printing a board layout.
func (c *CLI) showCommand() *cobra.Command {
	var (
		editMode bool
		display  bool
	)

	cmd := &cobra.Command{
		Use:   "show [board]",
		Short: "Print a board's layout as a table",
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
			if display {
				items = board.VisibleItems(items, cfg.BoardPresence(), false)
			}
			printBoardTable(boardID, items, editMode)
			return nil
		},
	}

	cmd.Flags().BoolVar(&editMode, "edit", false, "show minimum sizes with the edit-mode scale applied")
	cmd.Flags().BoolVar(&display, "display", false, "apply the display-mode visibility filter from config")
	return cmd
}

// printBoardTable renders items row by row in reading order.
func printBoardTable(boardID string, items []board.Item, editMode bool) {
	fmt.Println(StyleTitle.Render("Board: " + boardID))
	fmt.Println()

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, rowItems := range arrange.Rows(items) {
		for _, it := range rowItems {
			rows = append(rows, []string{
				it.ID,
				string(it.Type),
				fmt.Sprintf("%.0f%%", it.X),
				fmt.Sprintf("%.0fpx", it.Y),
				fmt.Sprintf("%.0f%%", it.W),
				fmt.Sprintf("%.0fpx", it.H),
				fmt.Sprintf("%.0fpx", board.MinHeight(it.Type, editMode)),
			})
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Type", "X", "Y", "W", "H", "Min H").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
	printDetail("%d widgets in %d rows", len(items), len(arrange.Rows(items)))
}
