// Package session holds the state of one interactive take of a quiz: the
// scheduled question order, per-question results, and the running totals.
// It performs no I/O; presentation and persistence live with the caller.
package session

import (
	"errors"
	"time"

	"github.com/quizdrill/quizdrill/internal/grade"
	"github.com/quizdrill/quizdrill/internal/quiz"
	"github.com/quizdrill/quizdrill/internal/schedule"
)

// ErrEmptyQuiz means tag filtering left no questions to ask.
var ErrEmptyQuiz = errors.New("no questions to ask")

// TakeOptions configures a take session.
type TakeOptions struct {
	IncludeTags []string
	ExcludeTags []string

	// Limit caps the number of questions asked. 0 means no cap.
	Limit int

	// Shuffle permutes the independent questions before ordering. Nil
	// keeps document order. Randomness is always supplied by the caller.
	Shuffle func([]quiz.Question)
}

// QuestionResult records the outcome of one asked question.
type QuestionResult struct {
	Question *quiz.Question
	Response string
	Result   grade.Result
}

// State is the live state of a take session.
type State struct {
	SessionID    string
	QuizName     string
	Instructions string
	Questions    []quiz.Question
	Index        int
	Results      []QuestionResult
	StartedAt    time.Time
}

// Start filters, orders, and truncates the quiz's questions into a session.
// Returns ErrEmptyQuiz when nothing survives filtering.
func Start(sessionID, quizName string, qz *quiz.Quiz, opts TakeOptions) (*State, error) {
	selected := schedule.Select(qz.Questions, opts.IncludeTags, opts.ExcludeTags)
	ordered := schedule.Order(selected, schedule.Options{Shuffle: opts.Shuffle})
	if opts.Limit > 0 && len(ordered) > opts.Limit {
		ordered = ordered[:opts.Limit]
	}
	if len(ordered) == 0 {
		return nil, ErrEmptyQuiz
	}

	return &State{
		SessionID:    sessionID,
		QuizName:     quizName,
		Instructions: qz.Instructions,
		Questions:    ordered,
		StartedAt:    time.Now(),
	}, nil
}

// Current returns the question being asked, or nil when the session is done.
func (s *State) Current() *quiz.Question {
	if s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Submit grades the response to the current question, records the result,
// and advances to the next question.
func (s *State) Submit(response string) grade.Result {
	q := s.Current()
	if q == nil {
		return grade.Result{Verdict: grade.Incorrect}
	}

	result := grade.Grade(q, response)
	s.Results = append(s.Results, QuestionResult{
		Question: q,
		Response: response,
		Result:   result,
	})
	s.Index++
	return result
}

// Done reports whether every scheduled question has been asked.
func (s *State) Done() bool {
	return s.Index >= len(s.Questions)
}
