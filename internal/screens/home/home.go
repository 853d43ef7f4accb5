package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdrill/quizdrill/internal/library"
	"github.com/quizdrill/quizdrill/internal/quiz"
	"github.com/quizdrill/quizdrill/internal/router"
	"github.com/quizdrill/quizdrill/internal/screen"
	"github.com/quizdrill/quizdrill/internal/screens/results"
	sessionscreen "github.com/quizdrill/quizdrill/internal/screens/session"
	sess "github.com/quizdrill/quizdrill/internal/session"
	"github.com/quizdrill/quizdrill/internal/store"
	"github.com/quizdrill/quizdrill/internal/ui/components"
	"github.com/quizdrill/quizdrill/internal/ui/theme"
)

// HomeScreen is the quiz picker: one menu entry per quiz in the library,
// plus past results and quit.
type HomeScreen struct {
	menu      components.Menu
	quizCount int
	libDir    string
	errMsg    string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen listing the library's quizzes. The shuffle
// functions seed randomized question and choice order for takes started
// from the menu.
func New(lib *library.Library, eventRepo store.EventRepo, questionShuffle func([]quiz.Question), choiceShuffle func([]string)) *HomeScreen {
	names, err := lib.List()
	if err != nil {
		return &HomeScreen{errMsg: err.Error(), libDir: lib.Dir()}
	}

	var items []components.MenuItem
	for _, name := range names {
		name := name
		items = append(items, components.MenuItem{
			Label: name,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: sessionscreen.New(lib, eventRepo, name,
							sess.TakeOptions{Shuffle: questionShuffle}, choiceShuffle),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label: "PAST TAKES",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: results.New(eventRepo)}
				}
			},
			Disabled: eventRepo == nil,
		},
		components.MenuItem{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return &HomeScreen{
		menu:      components.NewMenu(items),
		quizCount: len(names),
		libDir:    lib.Dir(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(theme.Title.Width(width).Render("QuizDrill"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Pick a quiz to take"))
	b.WriteString("\n\n")

	if h.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Error: " + h.errMsg))
		return b.String()
	}

	if h.quizCount == 0 {
		hint := fmt.Sprintf("No quizzes yet.\n\nDrop .json or .yaml quiz files into\n%s", h.libDir)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(hint))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
