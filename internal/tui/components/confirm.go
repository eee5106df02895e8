package components

import (
	"github.com/Veraticus/spend/internal/form"
	"github.com/Veraticus/spend/internal/model"
	"github.com/Veraticus/spend/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel is a yes/no dialog guarding a delete.
type ConfirmModel struct {
	theme  themes.Theme
	prompt string
	detail string
	id     model.ExpenseID
	active bool
}

// NewConfirmModel creates an inactive dialog.
func NewConfirmModel(theme themes.Theme) ConfirmModel {
	return ConfirmModel{theme: theme, prompt: form.ConfirmPrompt}
}

// SetTheme replaces the theme.
func (m *ConfirmModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// Open activates the dialog for id. detail describes the expense.
func (m *ConfirmModel) Open(id model.ExpenseID, detail string) {
	m.id = id
	m.detail = detail
	m.active = true
}

// Active reports whether the dialog is waiting for an answer.
func (m ConfirmModel) Active() bool {
	return m.active
}

// Update handles messages.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.active {
		return m, nil
	}

	var confirmed bool
	switch keyMsg.String() {
	case "y", "Y":
		confirmed = true
	case "n", "N", "esc", "q":
		confirmed = false
	default:
		return m, nil
	}

	id := m.id
	m.active = false
	m.id = ""
	return m, func() tea.Msg { return ConfirmedMsg{ID: id, Confirmed: confirmed} }
}

// View renders the dialog.
func (m ConfirmModel) View() string {
	if !m.active {
		return ""
	}

	lines := []string{m.theme.Bold.Render(m.prompt)}
	if m.detail != "" {
		lines = append(lines, m.theme.Subtitle.Render(m.detail))
	}
	lines = append(lines,
		"",
		m.theme.StatusError.Render("[y] Delete")+"   "+lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[n] Keep"),
	)

	return m.theme.RoundedBox.
		BorderForeground(m.theme.Error).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
