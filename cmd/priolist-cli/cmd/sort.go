package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"priolist/internal/application/commands"
)

var (
	sortFrom int
	sortTo   int
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort items by priority within each category",
	Long: `Sort the items of the document: tagged items first in ascending
priority order, then untagged items, with checked items last. Items never
cross category boundaries and sub-items travel with their parent.

Examples:
  priolist-cli sort
  priolist-cli sort --from 5 --to 25`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := openBuffer()
		if err != nil {
			return err
		}

		result, err := commands.NewSortCommand(buf, rules(), sortFrom, sortTo).Execute(context.Background())
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
	sortCmd.Flags().IntVar(&sortFrom, "from", 0, "first line of the selection (1-based)")
	sortCmd.Flags().IntVar(&sortTo, "to", 0, "last line of the selection (1-based, inclusive)")
	rootCmd.AddCommand(sortCmd)
}
