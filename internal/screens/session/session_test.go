package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdrill/quizdrill/internal/library"
	"github.com/quizdrill/quizdrill/internal/router"
	"github.com/quizdrill/quizdrill/internal/screen"
	sess "github.com/quizdrill/quizdrill/internal/session"
	"github.com/quizdrill/quizdrill/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	takes   []store.TakeEventData
	answers []store.AnswerEventData
}

func (m *mockEventRepo) AppendTake(_ context.Context, data store.TakeEventData) error {
	m.takes = append(m.takes, data)
	return nil
}
func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}
func (m *mockEventRepo) RecentTakes(_ context.Context, _ string, _ int) ([]store.TakeRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QuestionHistory(_ context.Context, _ string) ([]store.QuestionStats, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func writeQuiz(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write quiz: %v", err)
	}
}

func testTakeScreen(t *testing.T, quizJSON string) (*TakeScreen, *mockEventRepo) {
	t.Helper()
	dir := t.TempDir()
	writeQuiz(t, dir, "test.json", quizJSON)

	repo := &mockEventRepo{}
	s := New(library.New(dir), repo, "test", sess.TakeOptions{}, nil)
	return s, repo
}

// started loads the quiz and feeds the start message through Update.
func started(t *testing.T, s *TakeScreen) *TakeScreen {
	t.Helper()
	msg := s.startTake()()
	scr, _ := s.Update(msg)
	ts := scr.(*TakeScreen)
	if ts.errMsg != "" {
		t.Fatalf("take failed to start: %s", ts.errMsg)
	}
	return ts
}

const shortAnswerQuiz = `[
	{"text": "Capital of France?", "answer": "Paris", "explanations": {"lyon": "Lyon is not the capital."}}
]`

func TestTakeScreen_Title(t *testing.T) {
	s, _ := testTakeScreen(t, shortAnswerQuiz)
	if s.Title() != "test" {
		t.Errorf("Title = %q, want %q", s.Title(), "test")
	}
}

func TestTakeScreen_View_Loading(t *testing.T) {
	s, _ := testTakeScreen(t, shortAnswerQuiz)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestTakeScreen_View_Error(t *testing.T) {
	s, _ := testTakeScreen(t, shortAnswerQuiz)
	s.errMsg = "test error"
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for error state")
	}
}

func TestTakeScreen_StartFailure(t *testing.T) {
	dir := t.TempDir()
	s := New(library.New(dir), nil, "missing", sess.TakeOptions{}, nil)
	msg := s.startTake()()
	scr, _ := s.Update(msg)
	if scr.(*TakeScreen).errMsg == "" {
		t.Error("expected error message for missing quiz")
	}
}

func TestTakeScreen_SubmitShortAnswer(t *testing.T) {
	s, repo := testTakeScreen(t, shortAnswerQuiz)
	s = started(t, s)

	if s.mode != modeText {
		t.Fatalf("mode = %v, want modeText", s.mode)
	}

	s.input.Model.SetValue("paris")
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*TakeScreen)

	if !s.showingFeedback {
		t.Error("expected feedback after submit")
	}
	if len(repo.answers) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answers))
	}
	if repo.answers[0].Verdict != "correct" {
		t.Errorf("verdict = %q, want correct", repo.answers[0].Verdict)
	}
}

func TestTakeScreen_WrongAnswerExplanation(t *testing.T) {
	s, repo := testTakeScreen(t, shortAnswerQuiz)
	s = started(t, s)

	s.input.Model.SetValue("Lyon")
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*TakeScreen)

	if repo.answers[0].Verdict != "incorrect" {
		t.Errorf("verdict = %q, want incorrect", repo.answers[0].Verdict)
	}
	if repo.answers[0].Explanation != "Lyon is not the capital." {
		t.Errorf("explanation = %q", repo.answers[0].Explanation)
	}
}

func TestTakeScreen_EndRecordsTake(t *testing.T) {
	s, repo := testTakeScreen(t, shortAnswerQuiz)
	s = started(t, s)

	s.input.Model.SetValue("Paris")
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*TakeScreen)

	// Dismiss feedback; the single question is done, so the screen ends
	// the take and replaces itself with the summary.
	scr, cmd := s.Update(keyPress(' '))
	s = scr.(*TakeScreen)
	if cmd == nil {
		t.Fatal("expected command after feedback dismiss")
	}
	scr, cmd = s.Update(cmd())
	if cmd == nil {
		t.Fatal("expected command from feedbackDone")
	}
	_, cmd = scr.Update(cmd())
	if cmd == nil {
		t.Fatal("expected replace command at end of take")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg at end of take")
	}

	if len(repo.takes) != 1 {
		t.Fatalf("take events = %d, want 1", len(repo.takes))
	}
	if repo.takes[0].Correct != 1 || repo.takes[0].Total != 1 {
		t.Errorf("take event = %+v", repo.takes[0])
	}
}

const multipleChoiceQuiz = `[
	{
		"kind": "MultipleChoice",
		"text": "Capital of Australia?",
		"answer": "Canberra",
		"candidates": ["Sydney", "Melbourne", "Perth"]
	}
]`

func TestTakeScreen_MultipleChoice(t *testing.T) {
	s, repo := testTakeScreen(t, multipleChoiceQuiz)
	s = started(t, s)

	if s.mode != modeChoice {
		t.Fatalf("mode = %v, want modeChoice", s.mode)
	}
	// Without a shuffle the answer lands after the three candidates.
	if len(s.mc.Options) != 4 || s.mc.CorrectIndex != 3 {
		t.Fatalf("options = %v, correct = %d", s.mc.Options, s.mc.CorrectIndex)
	}

	scr, _ := s.Update(keyPress('4'))
	s = scr.(*TakeScreen)

	if !s.showingFeedback {
		t.Error("expected feedback after MC answer")
	}
	if repo.answers[0].Verdict != "correct" {
		t.Errorf("verdict = %q, want correct", repo.answers[0].Verdict)
	}
}

const listQuiz = `[
	{
		"kind": "ListAnswer",
		"text": "Name the two largest islands of Japan you know.",
		"answer_list": ["Honshu", "Hokkaido"]
	}
]`

func TestTakeScreen_ListAnswer(t *testing.T) {
	s, repo := testTakeScreen(t, listQuiz)
	s = started(t, s)

	if s.mode != modeList {
		t.Fatalf("mode = %v, want modeList", s.mode)
	}

	s.list.Model.SetValue("Hokkaido\nHonshu")
	scr, _ := s.Update(tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl})
	s = scr.(*TakeScreen)

	if repo.answers[0].Verdict != "correct" {
		t.Errorf("verdict = %q, want correct", repo.answers[0].Verdict)
	}
}

const instructionsQuiz = `{
	"instructions": "Answer in English.",
	"questions": [{"text": "Capital of Japan?", "answer": "Tokyo"}]
}`

func TestTakeScreen_Instructions(t *testing.T) {
	s, _ := testTakeScreen(t, instructionsQuiz)
	s = started(t, s)

	if !s.showingInstructions {
		t.Fatal("expected instructions to show first")
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty instructions view")
	}

	scr, _ := s.Update(keyPress(' '))
	s = scr.(*TakeScreen)
	if s.showingInstructions {
		t.Error("expected instructions to be dismissed")
	}
}

func TestTakeScreen_QuitConfirm(t *testing.T) {
	s, repo := testTakeScreen(t, shortAnswerQuiz)
	s = started(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	s = scr.(*TakeScreen)
	if !s.showingQuitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}

	scr, _ = s.Update(keyPress('n'))
	s = scr.(*TakeScreen)
	if s.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}

	scr, _ = s.Update(specialKey(tea.KeyEscape))
	s = scr.(*TakeScreen)
	scr, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected command after quit confirmation")
	}
	scr.Update(cmd())

	// Ending early still records the take summary.
	if len(repo.takes) != 1 {
		t.Errorf("take events = %d, want 1", len(repo.takes))
	}
}

func TestTakeScreen_Status(t *testing.T) {
	s, _ := testTakeScreen(t, shortAnswerQuiz)
	if s.Status() != "" {
		t.Errorf("expected empty status before start, got %q", s.Status())
	}
	s = started(t, s)
	if s.Status() != "Q 1/1" {
		t.Errorf("Status = %q, want %q", s.Status(), "Q 1/1")
	}
}
