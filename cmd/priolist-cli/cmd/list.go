package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"priolist/internal/application/commands"
	"priolist/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list [categories|items] [category]",
	Short: "List categories or items of the document",
	Long: `List the categories of the document with their shortcut characters,
or the items of one category.

Examples:
  priolist-cli list categories
  priolist-cli list items Work
  priolist-cli list items w`,
}

var listCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all categories with shortcuts and item counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := openBuffer()
		if err != nil {
			return err
		}

		infos, err := commands.NewListCategoriesCommand(buf, rules()).Execute(context.Background())
		if err != nil {
			return err
		}

		for _, info := range infos {
			shortcut := "-"
			if info.Shortcut != domain.ShortcutExhausted {
				shortcut = string(info.Shortcut)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %-20s %3d items  (line %d)\n",
				shortcut, info.Name, info.Items, info.Start+1)
		}
		return nil
	},
}

var listItemsCmd = &cobra.Command{
	Use:   "items <category>",
	Short: "List the items of a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := openBuffer()
		if err != nil {
			return err
		}

		groups, err := commands.NewListItemsCommand(buf, rules(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		for _, g := range groups {
			fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", g.Pos+1, g.Parent.Raw)
			for _, sub := range g.Subtree {
				fmt.Fprintf(cmd.OutOrStdout(), "      %s\n", sub)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listCategoriesCmd)
	listCmd.AddCommand(listItemsCmd)
}
