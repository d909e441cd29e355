package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"priolist/internal/adapters/console"
	"priolist/internal/application/commands"
	"priolist/internal/config"
)

var (
	prioritizeFrom  int
	prioritizeTo    int
	prioritizeRetag bool
	prioritizeDebug bool
)

var prioritizeCmd = &cobra.Command{
	Use:   "prioritize",
	Short: "Walk through untagged items and assign priorities",
	Long: `Walk through the open items of the document one by one. For each item
answer with a priority (1-9), a category shortcut to move it there, s to
skip, or q to stop.

Already-tagged items are skipped unless --retag is given. Use --from/--to
to restrict the run to a line range.

Examples:
  priolist-cli prioritize
  priolist-cli prioritize --from 10 --to 40
  priolist-cli prioritize --retag`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := openBuffer()
		if err != nil {
			return err
		}

		prompter := console.NewPrompter(os.Stdin, cmd.OutOrStdout())
		run := commands.NewPrioritizeCommand(buf, prompter, rules(),
			prioritizeFrom, prioritizeTo, !prioritizeRetag)
		run.Debug = prioritizeDebug

		result, err := run.Execute(context.Background())
		if err != nil {
			return err
		}

		if buf.Dirty() {
			if err := buf.Save(); err != nil {
				return fmt.Errorf("failed to save document: %w", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	prioritizeCmd.Flags().IntVar(&prioritizeFrom, "from", 0, "first line of the selection (1-based)")
	prioritizeCmd.Flags().IntVar(&prioritizeTo, "to", 0, "last line of the selection (1-based, inclusive)")
	prioritizeCmd.Flags().BoolVar(&prioritizeRetag, "retag", false, "offer already-tagged items too")
	prioritizeCmd.Flags().BoolVar(&prioritizeDebug, "debug", config.Debug(), "show a diagnostic notification per applied edit")
	rootCmd.AddCommand(prioritizeCmd)
}
