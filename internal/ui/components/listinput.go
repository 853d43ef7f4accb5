package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdrill/quizdrill/internal/ui/theme"
)

// ListInput is a multi-line input for list answers, one item per line.
type ListInput struct {
	Model textarea.Model
}

// NewListInput creates a multi-line input sized for n expected items.
func NewListInput(n int) ListInput {
	ta := textarea.New()
	ta.Placeholder = "One item per line"
	ta.SetHeight(clampLines(n))
	ta.Focus()
	return ListInput{Model: ta}
}

func clampLines(n int) int {
	if n < 2 {
		return 2
	}
	if n > 8 {
		return 8
	}
	return n
}

// Init returns the initial command.
func (l ListInput) Init() tea.Cmd {
	return l.Model.Focus()
}

// Update handles messages.
func (l ListInput) Update(msg tea.Msg) (ListInput, tea.Cmd) {
	var cmd tea.Cmd
	l.Model, cmd = l.Model.Update(msg)
	return l, cmd
}

// View renders the input with a short usage hint.
func (l ListInput) View() string {
	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("ctrl+d to submit")
	return l.Model.View() + "\n" + hint
}

// Value returns the raw multi-line text.
func (l ListInput) Value() string {
	return l.Model.Value()
}
