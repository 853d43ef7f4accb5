package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path [quiz]",
	Short: "Print the quiz directory, or a quiz's file path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := resolveLibrary(cmd)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Println(lib.Dir())
			return nil
		}

		p, err := lib.Resolve(args[0])
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	},
}
