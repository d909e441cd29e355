package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"priolist/internal/application/commands"
)

var moveCmd = &cobra.Command{
	Use:   "move <line> <category>",
	Short: "Move an item to another category",
	Long: `Move the item at the given line, together with its sub-items, to the
end of another category. The target is a category name or its shortcut
character. Moving clears the item's priority tag.

Examples:
  priolist-cli move 12 Work
  priolist-cli move 12 w`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lineNo, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid line number: %q", args[0])
		}

		buf, err := openBuffer()
		if err != nil {
			return err
		}

		result, err := commands.NewMoveCommand(buf, rules(), lineNo, args[1]).Execute(context.Background())
		if err != nil {
			return err
		}

		if result.Moved > 0 {
			if err := buf.Save(); err != nil {
				return fmt.Errorf("failed to save document: %w", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
