package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results [quiz]",
	Short: "Print past take results",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		quizName := ""
		if len(args) == 1 {
			quizName = args[0]
		}
		limit, _ := cmd.Flags().GetInt("num")

		takes, err := st.EventRepo().RecentTakes(cmd.Context(), quizName, limit)
		if err != nil {
			return err
		}
		if len(takes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No takes recorded.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tQUIZ\tSCORE\tPERCENT\tDURATION")
		for _, t := range takes {
			graded := t.Correct + t.Incorrect
			extra := ""
			if t.Ungraded > 0 {
				extra = fmt.Sprintf(" (+%d ungraded)", t.Ungraded)
			}
			fmt.Fprintf(w, "%s\t%s\t%d/%d%s\t%.1f%%\t%d:%02d\n",
				t.Timestamp.Format("2006-01-02 15:04"),
				t.Quiz,
				t.Correct, graded, extra,
				t.Percent,
				t.DurationSecs/60, t.DurationSecs%60,
			)
		}
		return w.Flush()
	},
}

func init() {
	resultsCmd.Flags().IntP("num", "n", 20, "Show at most N takes (0 = all)")
}
