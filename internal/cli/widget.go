package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/errors"
)

// widgetCommand creates the widget command group.
func (c *CLI) widgetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "widget",
		Short: "Add, remove, and list board widgets",
	}

	cmd.AddCommand(c.widgetAddCommand())
	cmd.AddCommand(c.widgetRemoveCommand())
	cmd.AddCommand(c.widgetListCommand())
	return cmd
}

func widgetTypeNames() string {
	names := make([]string, len(board.WidgetTypes))
	for i, t := range board.WidgetTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// widgetAddCommand appends a widget of the given type below the board.
func (c *CLI) widgetAddCommand() *cobra.Command {
	var boardID string

	cmd := &cobra.Command{
		Use:   "add <type>",
		Short: "Add a widget to a board",
		Long:  "Add a widget to a board. Each board holds at most one widget per type.\n\nAvailable types: " + widgetTypeNames(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			t, ok := board.ParseWidgetType(args[0])
			if !ok {
				return errors.New(errors.ErrCodeInvalidWidgetType,
					"unknown widget type %q (available: %s)", args[0], widgetTypeNames())
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			gw, closeGW, err := c.openGateway(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeGW()

			store := board.NewStore(gw.Load(ctx, boardID))
			item, added := store.AddItem(t)
			if !added {
				printWarning("board %s already has a %s widget", boardID, t)
				return nil
			}

			if err := gw.Save(ctx, boardID, store.Items()); err != nil {
				return err
			}
			printSuccess("added %s at (%.0f%%, %.0fpx)", item.ID, item.X, item.Y)
			return nil
		},
	}

	cmd.Flags().StringVarP(&boardID, "board", "b", defaultBoardID, "board to modify")
	return cmd
}

// widgetRemoveCommand removes a widget by ID or type.
func (c *CLI) widgetRemoveCommand() *cobra.Command {
	var boardID string

	cmd := &cobra.Command{
		Use:   "remove <id|type>",
		Short: "Remove a widget from a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			store := board.NewStore(gw.Load(ctx, boardID))

			id := args[0]
			if _, ok := store.Get(id); !ok {
				// Accept a bare type name when it is unambiguous on this board.
				if t, ok := board.ParseWidgetType(id); ok {
					for _, it := range store.Items() {
						if it.Type == t {
							id = it.ID
							break
						}
					}
				}
			}

			if !store.RemoveItem(id) {
				return errors.New(errors.ErrCodeItemNotFound, "no widget %q on board %s", args[0], boardID)
			}

			if err := gw.Save(ctx, boardID, store.Items()); err != nil {
				return err
			}
			printSuccess("removed %s", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&boardID, "board", "b", defaultBoardID, "board to modify")
	return cmd
}

// widgetListCommand prints the widgets of a board with type metadata.
func (c *CLI) widgetListCommand() *cobra.Command {
	var boardID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the widgets of a board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			present := make(map[board.WidgetType]string, len(items))
			for _, it := range items {
				present[it.Type] = it.ID
			}

			for _, t := range board.WidgetTypes {
				if id, ok := present[t]; ok {
					fmt.Println(StyleSuccess.Render(iconSuccess) + " " +
						StyleValue.Render(fmt.Sprintf("%-14s", string(t))) + " " + StyleDim.Render(id))
				} else {
					fmt.Println(StyleDim.Render("  " + string(t)))
				}
			}
			printDetail("%d of %d types placed", len(present), len(board.WidgetTypes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&boardID, "board", "b", defaultBoardID, "board to inspect")
	return cmd
}
