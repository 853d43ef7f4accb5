package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdrill/quizdrill/internal/library"
	"github.com/quizdrill/quizdrill/internal/quiz"
	"github.com/quizdrill/quizdrill/internal/router"
	"github.com/quizdrill/quizdrill/internal/screen"
	"github.com/quizdrill/quizdrill/internal/screens/home"
	sessionscreen "github.com/quizdrill/quizdrill/internal/screens/session"
	sess "github.com/quizdrill/quizdrill/internal/session"
	"github.com/quizdrill/quizdrill/internal/store"
	"github.com/quizdrill/quizdrill/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Library   *library.Library
	EventRepo store.EventRepo

	// QuestionShuffle randomizes question order, ChoiceShuffle the
	// multiple-choice pool. Both are seeded by the CLI layer.
	QuestionShuffle func([]quiz.Question)
	ChoiceShuffle   func([]string)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(initial screen.Screen) AppModel {
	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

	case router.PopScreenMsg:
		// Popping the last screen (e.g. after `quizdrill take`) exits.
		if m.router.Depth() == 1 {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); hints != nil {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the TUI at the home screen.
func Run(opts Options) error {
	initial := home.New(opts.Library, opts.EventRepo, opts.QuestionShuffle, opts.ChoiceShuffle)
	return runProgram(initial)
}

// RunTake starts the TUI directly in a take of the named quiz.
func RunTake(opts Options, quizName string, takeOpts sess.TakeOptions) error {
	initial := sessionscreen.New(opts.Library, opts.EventRepo, quizName, takeOpts, opts.ChoiceShuffle)
	return runProgram(initial)
}

func runProgram(initial screen.Screen) error {
	p := tea.NewProgram(newAppModel(initial))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
