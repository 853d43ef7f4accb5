package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdrill/quizdrill/internal/schedule"
)

var countCmd = &cobra.Command{
	Use:   "count <quiz>",
	Short: "Count the questions matching the tag filters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := resolveLibrary(cmd)
		if err != nil {
			return err
		}

		qz, err := lib.Load(args[0])
		if err != nil {
			return err
		}

		tags, _ := cmd.Flags().GetStringSlice("tag")
		exclude, _ := cmd.Flags().GetStringSlice("exclude")

		selected := schedule.Select(qz.Questions, tags, exclude)
		fmt.Println(len(selected))
		return nil
	},
}

func init() {
	countCmd.Flags().StringSlice("tag", nil, "Only count questions with this tag (repeatable)")
	countCmd.Flags().StringSlice("exclude", nil, "Skip questions with this tag (repeatable)")
}
