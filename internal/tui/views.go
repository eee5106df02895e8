package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/spend/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// renderFullView renders the two-column layout for wide terminals.
func (m Model) renderFullView() string {
	left := m.panel(m.list.View(), m.focus == viewmodel.ComponentList)

	right := lipgloss.JoinVertical(
		lipgloss.Left,
		m.panel(m.breakdown.View(), false),
		m.panel(m.formView.View(), m.focus == viewmodel.ComponentForm),
	)

	content := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	return m.wrapWithStatus(content)
}

// renderCompactView stacks the panels for narrow terminals.
func (m Model) renderCompactView() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.breakdown.View(),
		"",
		m.list.View(),
		"",
		m.formView.View(),
	)
	return m.wrapWithStatus(content)
}

// renderConfirm centers the delete confirmation dialog.
func (m Model) renderConfirm() string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.confirm.View(),
	)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.
			Width(min(m.width-4, 80)).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.theme.Title.Render("spend - Help"),
				h.View(m.keymap),
				"",
				lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help"),
			)),
	)
}

func (m Model) panel(content string, active bool) string {
	style := m.theme.RoundedBox
	if active {
		style = style.BorderForeground(m.theme.Primary)
	}
	return style.Render(content)
}

// wrapWithStatus adds the status bar and short help below content.
func (m Model) wrapWithStatus(content string) string {
	parts := []string{content, m.renderStatusBar()}
	if m.config.ShowHelp {
		parts = append(parts, m.help.View(m.keymap))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	left := m.theme.StatusInfo.Render(m.state.String())

	var center string
	switch m.statusKind {
	case statusSuccess:
		center = m.theme.StatusSuccess.Render(m.status)
	case statusWarning:
		center = m.theme.StatusWarning.Render("⚠ " + m.status)
	case statusError:
		center = m.theme.StatusError.Render(m.status)
	case statusInfo:
		center = m.theme.Normal.Render(m.status)
	}

	right := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(fmt.Sprintf("%d expenses · %s", len(m.Expenses()), m.theme.Mode))

	spacing := max(m.width-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right), 2)
	leftPad := spacing / 2

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", spacing-leftPad) + right
}
