// Package schedule selects the eligible subset of a question set and turns
// it into the linear order a take session walks through.
package schedule

import "github.com/quizdrill/quizdrill/internal/quiz"

// Select filters questions by tag, preserving their relative order.
// A question is kept iff its tags intersect include (or include is empty)
// and do not intersect exclude (or exclude is empty). An empty result is
// valid and simply means an empty session.
func Select(questions []quiz.Question, include, exclude []string) []quiz.Question {
	var selected []quiz.Question
	for i := range questions {
		q := &questions[i]
		if len(include) > 0 && !q.HasAnyTag(include) {
			continue
		}
		if len(exclude) > 0 && q.HasAnyTag(exclude) {
			continue
		}
		selected = append(selected, questions[i])
	}
	return selected
}
