package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"priolist/internal/application/commands"
	"priolist/internal/domain"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search indexed documents by keyword",
	Long: `Search the item text of all indexed documents. Run sync first to
bring the index up to date.

Examples:
  priolist-cli search "quarterly report"
  priolist-cli search groceries`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		query := strings.Join(args, " ")
		items, err := commands.NewSearchCommand(idx, query).Execute(context.Background())
		if err != nil {
			return err
		}

		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results.")
			return nil
		}
		printItems(cmd, items)
		return nil
	},
}

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Show the highest-priority open items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		items, err := commands.NewAgendaCommand(idx, agendaLimit).Execute(context.Background())
		if err != nil {
			return err
		}

		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No prioritized items.")
			return nil
		}
		printItems(cmd, items)
		return nil
	},
}

var agendaLimit int

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Bring the search index up to date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		stats, err := commands.NewSyncCommand(idx).Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "scanned %d files, re-indexed %d (%d items), dropped %d in %v\n",
			stats.FilesScanned, stats.FilesIndexed, stats.ItemsIndexed,
			stats.FilesDeleted, stats.Duration.Round(time.Millisecond))
		return nil
	},
}

func printItems(cmd *cobra.Command, items []domain.IndexedItem) {
	for _, it := range items {
		pri := "    "
		if it.Priority > 0 {
			pri = fmt.Sprintf("[p%d]", it.Priority)
		}
		cat := it.Category
		if cat == "" {
			cat = "-"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s:%d  %s  %-15s %s\n",
			it.Path, it.Line+1, pri, cat, it.Text)
	}
}

func init() {
	agendaCmd.Flags().IntVarP(&agendaLimit, "limit", "n", 20, "maximum number of items")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(agendaCmd)
	rootCmd.AddCommand(syncCmd)
}
