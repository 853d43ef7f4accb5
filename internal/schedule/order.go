package schedule

import "github.com/quizdrill/quizdrill/internal/quiz"

// Options configures Order.
type Options struct {
	// Shuffle permutes the independent questions in place before ordering.
	// Nil keeps the original document order. The scheduler never invents
	// randomness itself; the caller owns the randomness source.
	Shuffle func([]quiz.Question)
}

// Order produces the take-order for an already-validated question set.
//
// Questions declaring depends are held back, then spliced in directly after
// the question they depend on. Dependents whose target was never placed
// (typically because tag filtering removed it) are appended at the end in
// their original order rather than dropped.
//
// Only single-hop dependencies are guaranteed: chains and fan-in reflect
// whatever the splice happens to do, a deliberate limitation carried over
// from the quiz file format. Cross-set validation (dangling depends,
// duplicate ids) happens at parse time, not here.
func Order(questions []quiz.Question, opts Options) []quiz.Question {
	var independent, dependent []quiz.Question
	for i := range questions {
		if questions[i].Depends != "" {
			dependent = append(dependent, questions[i])
		} else {
			independent = append(independent, questions[i])
		}
	}

	if opts.Shuffle != nil {
		opts.Shuffle(independent)
	}

	placed := make([]bool, len(dependent))
	ordered := make([]quiz.Question, 0, len(questions))
	for i := range independent {
		ordered = append(ordered, independent[i])
		id := independent[i].ID
		if id == "" {
			continue
		}
		for j := range dependent {
			if !placed[j] && dependent[j].Depends == id {
				placed[j] = true
				ordered = append(ordered, dependent[j])
			}
		}
	}

	// Fallback: dependents whose target never appeared keep their original
	// relative order at the end.
	for j := range dependent {
		if !placed[j] {
			ordered = append(ordered, dependent[j])
		}
	}

	return ordered
}
