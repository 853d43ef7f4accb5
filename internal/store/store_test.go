package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndRecentTakes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	takes := []TakeEventData{
		{SessionID: "s1", Quiz: "geography", Total: 4, Correct: 3, Incorrect: 1, Percent: 75, DurationSecs: 60},
		{SessionID: "s2", Quiz: "history", Total: 2, Correct: 2, Percent: 100, DurationSecs: 30},
		{SessionID: "s3", Quiz: "geography", Total: 4, Correct: 4, Percent: 100, DurationSecs: 45},
	}
	for _, td := range takes {
		if err := repo.AppendTake(ctx, td); err != nil {
			t.Fatalf("append take: %v", err)
		}
	}

	got, err := repo.RecentTakes(ctx, "", 0)
	if err != nil {
		t.Fatalf("recent takes: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d takes, want 3", len(got))
	}
	// Newest first.
	if got[0].Quiz != "geography" || got[0].Percent != 100 {
		t.Errorf("newest take = %+v", got[0])
	}

	got, err = repo.RecentTakes(ctx, "geography", 0)
	if err != nil {
		t.Fatalf("recent takes filtered: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d geography takes, want 2", len(got))
	}

	got, err = repo.RecentTakes(ctx, "", 1)
	if err != nil {
		t.Fatalf("recent takes limited: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d takes with limit 1, want 1", len(got))
	}
}

func TestQuestionHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", Quiz: "geography", QuestionID: "capitals", QuestionText: "Capital of France?", Kind: "ShortAnswer", Response: "Paris", Verdict: "correct"},
		{SessionID: "s1", Quiz: "geography", QuestionID: "rivers", QuestionText: "Longest river?", Kind: "ShortAnswer", Response: "Amazon", Verdict: "incorrect", Explanation: "The Nile is longer."},
		{SessionID: "s2", Quiz: "geography", QuestionID: "capitals", QuestionText: "Capital of France?", Kind: "ShortAnswer", Response: "Lyon", Verdict: "incorrect"},
		{SessionID: "s2", Quiz: "geography", QuestionText: "No id here", Kind: "Ungraded", Verdict: "ungraded"},
	}
	for _, ad := range answers {
		if err := repo.AppendAnswer(ctx, ad); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	stats, err := repo.QuestionHistory(ctx, "geography")
	if err != nil {
		t.Fatalf("question history: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d question stats, want 2 (no-id answer skipped)", len(stats))
	}
	if stats[0].QuestionID != "capitals" || stats[0].Correct != 1 || stats[0].Incorrect != 1 {
		t.Errorf("capitals stats = %+v", stats[0])
	}
	if stats[1].QuestionID != "rivers" || stats[1].Incorrect != 1 {
		t.Errorf("rivers stats = %+v", stats[1])
	}
}

func TestSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev {
			t.Errorf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}
