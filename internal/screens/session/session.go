package session

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/quizdrill/quizdrill/internal/grade"
	"github.com/quizdrill/quizdrill/internal/library"
	"github.com/quizdrill/quizdrill/internal/quiz"
	"github.com/quizdrill/quizdrill/internal/router"
	"github.com/quizdrill/quizdrill/internal/screen"
	"github.com/quizdrill/quizdrill/internal/screens/summary"
	sess "github.com/quizdrill/quizdrill/internal/session"
	"github.com/quizdrill/quizdrill/internal/store"
	"github.com/quizdrill/quizdrill/internal/ui/components"
	"github.com/quizdrill/quizdrill/internal/ui/layout"
)

// inputMode selects which input widget is active for the current question.
type inputMode int

const (
	modeText inputMode = iota
	modeList
	modeChoice
)

// TakeScreen runs one take of a quiz: question loop, feedback, summary.
type TakeScreen struct {
	lib       *library.Library
	eventRepo store.EventRepo
	quizName  string
	opts      sess.TakeOptions

	// choiceShuffle randomizes the multiple-choice candidate pool. Nil
	// keeps the pool order, which the tests rely on.
	choiceShuffle func([]string)

	state *sess.State

	mode  inputMode
	input components.TextInput
	list  components.ListInput
	mc    components.MultiChoice

	showingInstructions bool
	showingFeedback     bool
	showingQuitConfirm  bool
	lastResult          grade.Result
	lastQuestion        *quiz.Question
	errMsg              string
}

var _ screen.Screen = (*TakeScreen)(nil)
var _ screen.KeyHintProvider = (*TakeScreen)(nil)
var _ screen.StatusProvider = (*TakeScreen)(nil)

// New creates a TakeScreen for the named quiz.
func New(lib *library.Library, eventRepo store.EventRepo, quizName string, opts sess.TakeOptions, choiceShuffle func([]string)) *TakeScreen {
	return &TakeScreen{
		lib:           lib,
		eventRepo:     eventRepo,
		quizName:      quizName,
		opts:          opts,
		choiceShuffle: choiceShuffle,
	}
}

func (s *TakeScreen) Init() tea.Cmd {
	return s.startTake()
}

func (s *TakeScreen) Title() string {
	return s.quizName
}

func (s *TakeScreen) Status() string {
	if s.state == nil || s.state.Done() {
		return ""
	}
	return fmt.Sprintf("Q %d/%d", s.state.Index+1, len(s.state.Questions))
}

func (s *TakeScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End take"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showingFeedback, s.showingInstructions:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case s.mode == modeList:
		return []layout.KeyHint{
			{Key: "Ctrl+D", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *TakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case takeStartedMsg:
		return s.handleStarted(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case takeEndMsg:
		return s.handleEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

// startTake loads the quiz and schedules its questions.
func (s *TakeScreen) startTake() tea.Cmd {
	return func() tea.Msg {
		qz, err := s.lib.Load(s.quizName)
		if err != nil {
			return takeStartedMsg{Err: err}
		}
		st, err := sess.Start(uuid.New().String(), s.quizName, qz, s.opts)
		if err != nil {
			return takeStartedMsg{Err: err}
		}
		return takeStartedMsg{State: st}
	}
}

func (s *TakeScreen) handleStarted(msg takeStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	s.showingInstructions = s.state.Instructions != ""
	return s, s.setupInput()
}

// setupInput prepares the input widget for the current question.
func (s *TakeScreen) setupInput() tea.Cmd {
	q := s.state.Current()
	if q == nil {
		return func() tea.Msg { return takeEndMsg{} }
	}

	switch q.Kind {
	case quiz.KindMultipleChoice:
		choices, correct := sess.BuildChoices(q, s.choiceShuffle)
		s.mode = modeChoice
		s.mc = components.NewMultiChoice(q.Text.Primary(), choices, correct)
		return nil
	case quiz.KindListAnswer, quiz.KindOrderedListAnswer:
		s.mode = modeList
		s.list = components.NewListInput(len(q.AnswerItems))
		return s.list.Init()
	case quiz.KindUngraded:
		s.mode = modeList
		s.list = components.NewListInput(3)
		return s.list.Init()
	default:
		s.mode = modeText
		s.input = components.NewTextInput("Type your answer...", 0)
		return s.input.Init()
	}
}

func (s *TakeScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	if s.state.Done() {
		return s, func() tea.Msg { return takeEndMsg{} }
	}
	return s, s.setupInput()
}

func (s *TakeScreen) handleEnd() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	sum := s.state.Summarize(time.Now())

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendTake(context.Background(), store.TakeEventData{
			SessionID:    s.state.SessionID,
			Quiz:         s.quizName,
			Total:        sum.Total,
			Correct:      sum.Correct,
			Incorrect:    sum.Incorrect,
			Ungraded:     sum.Ungraded,
			Percent:      sum.Percent,
			DurationSecs: int(sum.Duration.Seconds()),
		})
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(s.quizName, sum)}
	}
}

func (s *TakeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.state == nil {
		return s, nil
	}

	if s.showingInstructions {
		s.showingInstructions = false
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return takeEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		if s.mode == modeText {
			return s.submit(s.input.Value())
		}
	case "ctrl+d":
		if s.mode == modeList {
			return s.submit(s.list.Value())
		}
	}

	if s.mode == modeChoice {
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			return s.submit(s.mc.Options[s.mc.ChosenIndex])
		}
		return s, cmd
	}

	return s.forwardToInput(msg)
}

func (s *TakeScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.state == nil || s.showingFeedback || s.showingQuitConfirm || s.showingInstructions {
		return s, nil
	}

	var cmd tea.Cmd
	switch s.mode {
	case modeText:
		s.input, cmd = s.input.Update(msg)
	case modeList:
		s.list, cmd = s.list.Update(msg)
	}
	return s, cmd
}

// submit grades the response, persists the answer event, and shows feedback.
func (s *TakeScreen) submit(response string) (screen.Screen, tea.Cmd) {
	q := s.state.Current()
	if q == nil {
		return s, nil
	}

	result := s.state.Submit(response)
	s.lastResult = result
	s.lastQuestion = q

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendAnswer(context.Background(), store.AnswerEventData{
			SessionID:    s.state.SessionID,
			Quiz:         s.quizName,
			QuestionID:   q.ID,
			QuestionText: q.Text.Primary(),
			Kind:         q.Kind.String(),
			Response:     response,
			Verdict:      result.Verdict.String(),
			Explanation:  result.Explanation,
		})
	}

	s.showingFeedback = true
	return s, nil
}
