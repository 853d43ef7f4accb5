package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdrill/quizdrill/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		Total:     6,
		Correct:   3,
		Incorrect: 2,
		Ungraded:  1,
		Percent:   60,
		Duration:  3*time.Minute + 20*time.Second,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New("geography", testSummary())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New("geography", testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "geography") {
		t.Error("expected quiz name in view")
	}
	if !strings.Contains(view, "60.0%") {
		t.Error("expected percent score in view")
	}
	if !strings.Contains(view, "3:20") {
		t.Error("expected duration in view")
	}
}

func TestSummaryScreen_NothingGraded(t *testing.T) {
	s := New("essays", session.Summary{Total: 2, Ungraded: 2})
	view := s.View(80, 24)
	if !strings.Contains(view, "Nothing graded") {
		t.Error("expected nothing-graded notice")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	s := New("geography", testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected pop command on enter")
	}
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected pop command on escape")
	}
}
