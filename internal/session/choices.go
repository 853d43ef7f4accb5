package session

import "github.com/quizdrill/quizdrill/internal/quiz"

// maxWrongChoices is how many wrong options are shown alongside the answer.
const maxWrongChoices = 3

// BuildChoices assembles the options shown for a multiple-choice question:
// up to three candidates plus the canonical answer. The shuffle function is
// applied once to the candidate pool (so the same three aren't always
// picked) and once to the final list (so the answer's position varies).
// A nil shuffle keeps everything in declared order with the answer last,
// which tests rely on.
//
// Returns the display options and the index of the correct answer.
func BuildChoices(q *quiz.Question, shuffle func([]string)) ([]string, int) {
	pool := make([]string, len(q.Candidates))
	copy(pool, q.Candidates)
	if shuffle != nil {
		shuffle(pool)
	}
	if len(pool) > maxWrongChoices {
		pool = pool[:maxWrongChoices]
	}

	choices := append(pool, q.Answer.Canonical())
	if shuffle != nil {
		shuffle(choices)
	}

	for i, c := range choices {
		if q.Answer.Matches(c) {
			return choices, i
		}
	}
	return choices, len(choices) - 1
}
