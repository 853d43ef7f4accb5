package cmd

import (
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <quiz>",
	Short: "Open a quiz file in your editor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := resolveLibrary(cmd)
		if err != nil {
			return err
		}
		return lib.Edit(args[0])
	},
}
