package results

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdrill/quizdrill/internal/store"
)

type stubRepo struct {
	takes []store.TakeRecord
	err   error
}

func (r *stubRepo) AppendTake(context.Context, store.TakeEventData) error     { return nil }
func (r *stubRepo) AppendAnswer(context.Context, store.AnswerEventData) error { return nil }
func (r *stubRepo) RecentTakes(context.Context, string, int) ([]store.TakeRecord, error) {
	return r.takes, r.err
}
func (r *stubRepo) QuestionHistory(context.Context, string) ([]store.QuestionStats, error) {
	return nil, nil
}

func loadedScreen(t *testing.T, repo *stubRepo) *ResultsScreen {
	t.Helper()
	s := New(repo)
	msg := s.Init()()
	scr, _ := s.Update(msg)
	return scr.(*ResultsScreen)
}

func TestResultsScreen_Empty(t *testing.T) {
	s := loadedScreen(t, &stubRepo{})
	view := s.View(80, 24)
	if !strings.Contains(view, "No takes yet") {
		t.Error("expected empty-state message")
	}
}

func TestResultsScreen_Error(t *testing.T) {
	s := loadedScreen(t, &stubRepo{err: errors.New("db locked")})
	view := s.View(80, 24)
	if !strings.Contains(view, "db locked") {
		t.Error("expected error message in view")
	}
}

func TestResultsScreen_List(t *testing.T) {
	repo := &stubRepo{takes: []store.TakeRecord{
		{Timestamp: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC), Quiz: "geography", Total: 4, Correct: 3, Incorrect: 1, Percent: 75, DurationSecs: 95},
		{Timestamp: time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC), Quiz: "history", Total: 2, Correct: 2, Percent: 100, DurationSecs: 40},
	}}
	s := loadedScreen(t, repo)
	view := s.View(100, 24)
	if !strings.Contains(view, "geography") || !strings.Contains(view, "history") {
		t.Errorf("expected both quizzes listed, got:\n%s", view)
	}
	if !strings.Contains(view, "3/4 correct") {
		t.Error("expected score in listing")
	}
}

func TestResultsScreen_Navigation(t *testing.T) {
	repo := &stubRepo{takes: []store.TakeRecord{
		{Quiz: "a", Timestamp: time.Now()},
		{Quiz: "b", Timestamp: time.Now()},
	}}
	s := loadedScreen(t, repo)

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s = scr.(*ResultsScreen)
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected pop command on escape")
	}
}
