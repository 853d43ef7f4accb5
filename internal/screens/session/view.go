package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizdrill/quizdrill/internal/grade"
	"github.com/quizdrill/quizdrill/internal/quiz"
	"github.com/quizdrill/quizdrill/internal/ui/theme"
)

func (s *TakeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showingInstructions {
		return s.renderInstructions(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

// renderInstructions shows the quiz-level instructions before the first question.
func (s *TakeScreen) renderInstructions(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Instructions"))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(s.state.Instructions)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to begin..."))
	return b.String()
}

func (s *TakeScreen) renderQuestion(width int) string {
	q := s.state.Current()
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder
	b.WriteString("\n")

	// Tag line, when the question carries tags.
	if len(q.Tags) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("[" + strings.Join(q.Tags, ", ") + "]"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// The chooser renders its own question line.
	if s.mode != modeChoice {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(q.Text.Primary()))
		b.WriteString("\n\n")
	}

	switch s.mode {
	case modeChoice:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	case modeList:
		if q.Kind == quiz.KindOrderedListAnswer {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("%d items, in order", len(q.AnswerItems))))
			b.WriteString("\n")
		} else if q.Kind == quiz.KindListAnswer {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("%d items, any order", len(q.AnswerItems))))
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.list.View()))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}

	return b.String()
}

func (s *TakeScreen) renderFeedback(width int) string {
	q := s.lastQuestion
	r := s.lastResult

	var b strings.Builder
	b.WriteString("\n\n")

	switch r.Verdict {
	case grade.Correct:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	case grade.Incorrect:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if q != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Answer: " + canonicalAnswer(q)))
		}
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Sample answer"))
		if r.SampleAnswer != "" {
			b.WriteString("\n\n")
			sample := lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Foreground(theme.Text).
				Render(r.SampleAnswer)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, sample))
		}
	}

	b.WriteString("\n\n")

	if r.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(r.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))
	return b.String()
}

// canonicalAnswer formats the expected answer for the feedback view.
func canonicalAnswer(q *quiz.Question) string {
	switch q.Kind {
	case quiz.KindListAnswer, quiz.KindOrderedListAnswer:
		items := make([]string, 0, len(q.AnswerItems))
		for _, vs := range q.AnswerItems {
			items = append(items, vs.Canonical())
		}
		return strings.Join(items, ", ")
	default:
		return q.Answer.Canonical()
	}
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this take early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers so far will be recorded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end take"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Loading quiz...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
