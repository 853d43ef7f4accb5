package store

import (
	"context"
	"time"

	"github.com/quizdrill/quizdrill/ent"
)

// TakeEventData captures the summary of one completed take of a quiz.
type TakeEventData struct {
	SessionID    string
	Quiz         string
	Total        int
	Correct      int
	Incorrect    int
	Ungraded     int
	Percent      float64
	DurationSecs int
}

// AnswerEventData captures the grading of a single question during a take.
type AnswerEventData struct {
	SessionID    string
	Quiz         string
	QuestionID   string
	QuestionText string
	Kind         string
	Response     string
	Verdict      string
	Explanation  string
}

// TakeRecord is a stored take with its timestamp, for results listings.
type TakeRecord struct {
	Timestamp    time.Time
	Quiz         string
	Total        int
	Correct      int
	Incorrect    int
	Ungraded     int
	Percent      float64
	DurationSecs int
}

// QuestionStats aggregates a question's history across all takes.
type QuestionStats struct {
	QuestionID string
	Correct    int
	Incorrect  int
	Ungraded   int
}

// EventRepo provides append and query access to quiz history events.
type EventRepo interface {
	// AppendTake records the summary of a finished take.
	AppendTake(ctx context.Context, data TakeEventData) error

	// AppendAnswer records a single graded answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// RecentTakes returns the most recent takes, newest first. A non-empty
	// quiz name restricts results to that quiz; limit 0 means unlimited.
	RecentTakes(ctx context.Context, quiz string, limit int) ([]TakeRecord, error)

	// QuestionHistory aggregates per-question verdict counts for a quiz.
	// Answers to questions without an id are skipped.
	QuestionHistory(ctx context.Context, quiz string) ([]QuestionStats, error)
}

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}
