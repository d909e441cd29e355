package cmd

import (
	"github.com/spf13/cobra"

	"priolist/internal/adapters/editor"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the todo document in $EDITOR",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return editor.NewOpener().OpenFile(filePath)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
