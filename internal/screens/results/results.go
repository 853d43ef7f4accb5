package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdrill/quizdrill/internal/router"
	"github.com/quizdrill/quizdrill/internal/screen"
	"github.com/quizdrill/quizdrill/internal/store"
	"github.com/quizdrill/quizdrill/internal/ui/layout"
	"github.com/quizdrill/quizdrill/internal/ui/theme"
)

const maxListed = 50

type resultsLoadedMsg struct {
	Takes []store.TakeRecord
	Err   error
}

// ResultsScreen lists past takes from the event store.
type ResultsScreen struct {
	eventRepo store.EventRepo
	takes     []store.TakeRecord
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen.
func New(eventRepo store.EventRepo) *ResultsScreen {
	return &ResultsScreen{eventRepo: eventRepo}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		takes, err := s.eventRepo.RecentTakes(context.Background(), "", maxListed)
		return resultsLoadedMsg{Takes: takes, Err: err}
	}
}

func (s *ResultsScreen) Title() string {
	return "Past Takes"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.takes = msg.Takes
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.takes)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading results...")
	}
	if len(s.takes) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No takes yet. Pick a quiz from the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, take := range s.takes {
		dateStr := take.Timestamp.Format("Jan 02, 2006")
		mins := take.DurationSecs / 60
		secs := take.DurationSecs % 60

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-20s  %d/%d correct  %.0f%%  %d:%02d",
			prefix, dateStr, take.Quiz, take.Correct,
			take.Correct+take.Incorrect, take.Percent, mins, secs)
		if take.Ungraded > 0 {
			line += fmt.Sprintf("  (%d ungraded)", take.Ungraded)
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
