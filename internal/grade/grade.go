// Package grade classifies free-form responses against a question's
// canonical answer. Grading is a pure, total function: malformed input is
// classified Incorrect, never rejected.
package grade

import (
	"github.com/quizdrill/quizdrill/internal/quiz"
)

// Verdict is the three-way classification of a graded response.
type Verdict int

const (
	Correct Verdict = iota
	Incorrect
	Ungraded
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Ungraded:
		return "ungraded"
	}
	return "unknown"
}

// Result is the outcome of grading one response.
type Result struct {
	Verdict Verdict

	// Explanation is supplementary text for a recognized wrong answer.
	// Only set on Incorrect, and only for ShortAnswer and MultipleChoice.
	Explanation string

	// SampleAnswer is the model answer for an Ungraded question.
	SampleAnswer string
}

// Grade classifies response against q. All comparisons are case-insensitive
// and whitespace-trimmed. For list kinds the response is split into items,
// one per non-empty line (see SplitItems).
func Grade(q *quiz.Question, response string) Result {
	switch q.Kind {
	case quiz.KindShortAnswer, quiz.KindMultipleChoice:
		return gradeSingle(q, response)

	case quiz.KindListAnswer:
		if matchUnordered(SplitItems(response), q.AnswerItems) {
			return Result{Verdict: Correct}
		}
		return Result{Verdict: Incorrect}

	case quiz.KindOrderedListAnswer:
		if matchOrdered(SplitItems(response), q.AnswerItems) {
			return Result{Verdict: Correct}
		}
		return Result{Verdict: Incorrect}

	case quiz.KindUngraded:
		// Structural: the variant carries no comparable answer, so no
		// match is ever attempted.
		return Result{Verdict: Ungraded, SampleAnswer: q.SampleAnswer}
	}

	return Result{Verdict: Incorrect}
}

func gradeSingle(q *quiz.Question, response string) Result {
	if q.Answer.Matches(response) {
		return Result{Verdict: Correct}
	}
	res := Result{Verdict: Incorrect}
	if expl, ok := q.Explanations[quiz.Normalize(response)]; ok {
		res.Explanation = expl
	}
	return res
}

// matchOrdered compares response items position-by-position. Every position
// must match a variant of the answer item at the same position, and the
// counts must be equal.
func matchOrdered(items []string, answers []quiz.VariantSet) bool {
	if len(items) != len(answers) {
		return false
	}
	for i, item := range items {
		if !answers[i].Matches(item) {
			return false
		}
	}
	return true
}

// matchUnordered reports whether a bijection exists between response items
// and answer items such that each response item matches a variant of its
// paired answer item. Cardinality must match exactly; greedy first-match is
// not enough when variant sets overlap, so this runs Kuhn's augmenting-path
// matching over the compatibility graph.
func matchUnordered(items []string, answers []quiz.VariantSet) bool {
	if len(items) != len(answers) {
		return false
	}

	// adj[i] lists the answer items compatible with response item i.
	adj := make([][]int, len(items))
	for i, item := range items {
		for j, ans := range answers {
			if ans.Matches(item) {
				adj[i] = append(adj[i], j)
			}
		}
		if len(adj[i]) == 0 {
			return false
		}
	}

	matchedTo := make([]int, len(answers))
	for j := range matchedTo {
		matchedTo[j] = -1
	}

	var augment func(i int, seen []bool) bool
	augment = func(i int, seen []bool) bool {
		for _, j := range adj[i] {
			if seen[j] {
				continue
			}
			seen[j] = true
			if matchedTo[j] == -1 || augment(matchedTo[j], seen) {
				matchedTo[j] = i
				return true
			}
		}
		return false
	}

	for i := range items {
		if !augment(i, make([]bool, len(answers))) {
			return false
		}
	}
	return true
}
