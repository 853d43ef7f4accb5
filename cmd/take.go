package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/quizdrill/quizdrill/internal/app"
	"github.com/quizdrill/quizdrill/internal/quiz"
	"github.com/quizdrill/quizdrill/internal/session"
)

var takeCmd = &cobra.Command{
	Use:   "take <quiz>",
	Short: "Take a quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := resolveLibrary(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tags, _ := cmd.Flags().GetStringSlice("tag")
		exclude, _ := cmd.Flags().GetStringSlice("exclude")
		num, _ := cmd.Flags().GetInt("num")
		inOrder, _ := cmd.Flags().GetBool("in-order")

		opts := session.TakeOptions{
			IncludeTags: tags,
			ExcludeTags: exclude,
			Limit:       num,
		}

		qs, cs := newShufflers()
		if !inOrder {
			opts.Shuffle = qs
		}

		return app.RunTake(app.Options{
			Library:       lib,
			EventRepo:     st.EventRepo(),
			ChoiceShuffle: cs,
		}, args[0], opts)
	},
}

func init() {
	takeCmd.Flags().StringSlice("tag", nil, "Only ask questions with this tag (repeatable)")
	takeCmd.Flags().StringSlice("exclude", nil, "Skip questions with this tag (repeatable)")
	takeCmd.Flags().IntP("num", "n", 0, "Limit the take to the first N scheduled questions")
	takeCmd.Flags().Bool("in-order", false, "Ask questions in file order instead of shuffling")
}

// newShufflers returns seeded shuffle functions for question order and
// multiple-choice pools. Randomness lives here so the core stays
// deterministic and testable.
func newShufflers() (func([]quiz.Question), func([]string)) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	qs := func(questions []quiz.Question) {
		rng.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}
	cs := func(items []string) {
		rng.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
	}
	return qs, cs
}
