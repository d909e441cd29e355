package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"priolist/internal/application/commands"
)

var tagCmd = &cobra.Command{
	Use:   "tag <line> <priority>",
	Short: "Set the priority tag on an item",
	Long: `Set or replace the priority tag on the item at the given line.
Priority runs from 1 (highest) to 9.

Examples:
  priolist-cli tag 12 1
  priolist-cli tag 7 5`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lineNo, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid line number: %q", args[0])
		}
		priority, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid priority: %q", args[1])
		}

		buf, err := openBuffer()
		if err != nil {
			return err
		}

		result, err := commands.NewTagCommand(buf, rules(), lineNo, priority).Execute(context.Background())
		if err != nil {
			return err
		}

		if result.Changed {
			if err := buf.Save(); err != nil {
				return fmt.Errorf("failed to save document: %w", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
}
