package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdrill/quizdrill/internal/router"
	"github.com/quizdrill/quizdrill/internal/screen"
	"github.com/quizdrill/quizdrill/internal/session"
	"github.com/quizdrill/quizdrill/internal/ui/components"
	"github.com/quizdrill/quizdrill/internal/ui/layout"
	"github.com/quizdrill/quizdrill/internal/ui/theme"
)

// SummaryScreen displays the results of a finished take.
type SummaryScreen struct {
	quizName string
	summary  session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen.
func New(quizName string, sum session.Summary) *SummaryScreen {
	return &SummaryScreen{quizName: quizName, summary: sum}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// The take screen was replaced by this one, so a single
			// pop lands back on home.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s — take complete", s.quizName)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 50)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value int
		style lipgloss.Style
	}{
		{"Correct", sum.Correct, theme.Correct},
		{"Incorrect", sum.Incorrect, theme.Incorrect},
		{"Ungraded", sum.Ungraded, theme.Skipped},
	}
	for _, row := range rows {
		line := fmt.Sprintf("%-10s %3d", row.label, row.value)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			row.style.Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	graded := sum.Correct + sum.Incorrect
	if graded == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render("Nothing graded this take"))
		return b.String()
	}

	scoreLine := fmt.Sprintf("Score: %.1f%% (%d/%d graded)", sum.Percent, sum.Correct, graded)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(scoreLine))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", sum.Percent/100, false, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
