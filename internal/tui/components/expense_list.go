package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/spend/internal/palette"
	"github.com/Veraticus/spend/internal/tui/themes"
	"github.com/Veraticus/spend/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ExpenseListModel manages the expense list view.
type ExpenseListModel struct {
	theme   themes.Theme
	lastKey string
	view    viewmodel.ExpenseListView
	cursor  int
	offset  int
	width   int
	height  int
	focused bool
}

// NewExpenseList creates an empty expense list.
func NewExpenseList(theme themes.Theme) ExpenseListModel {
	return ExpenseListModel{
		theme:   theme,
		width:   60,
		height:  20,
		focused: true,
	}
}

// SetTheme replaces the theme.
func (m *ExpenseListModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// SetView replaces the rows, keeping the cursor in range.
func (m *ExpenseListModel) SetView(v viewmodel.ExpenseListView) {
	m.view = v
	m.cursor = min(max(m.cursor, 0), max(len(v.Rows)-1, 0))
	m.ensureVisible()
}

// Cursor returns the index of the highlighted row.
func (m ExpenseListModel) Cursor() int {
	return m.cursor
}

// Focus gives the list keyboard focus.
func (m *ExpenseListModel) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *ExpenseListModel) Blur() { m.focused = false }

// Update handles messages.
func (m ExpenseListModel) Update(msg tea.Msg) (ExpenseListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	var cmd tea.Cmd
	switch keyMsg.String() {
	case "j", "down":
		m.cursor = min(m.cursor+1, max(len(m.view.Rows)-1, 0))

	case "k", "up":
		m.cursor = max(m.cursor-1, 0)

	case "G", "end":
		m.cursor = max(len(m.view.Rows)-1, 0)

	case "g":
		if m.lastKey == "g" {
			m.cursor = 0
		}

	case "home":
		m.cursor = 0

	case "enter", "e":
		if row, ok := m.selected(); ok {
			cmd = func() tea.Msg { return EditRequestedMsg{ID: row.ID} }
		}

	case "d", "delete":
		if row, ok := m.selected(); ok {
			cmd = func() tea.Msg { return DeleteRequestedMsg{ID: row.ID} }
		}
	}

	m.lastKey = keyMsg.String()
	m.ensureVisible()
	return m, cmd
}

// View renders the expense list.
func (m ExpenseListModel) View() string {
	header := m.theme.Title.Render("Expenses")
	if m.view.IsEmpty() {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render(m.view.EmptyMessage()),
		)
	}

	lines := []string{header}
	end := min(m.offset+m.visibleRows(), len(m.view.Rows))
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(m.view.Rows[i], i == m.cursor))
	}

	if len(m.view.Rows) > m.visibleRows() {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render(fmt.Sprintf("%d-%d of %d", m.offset+1, end, len(m.view.Rows))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m ExpenseListModel) renderRow(row viewmodel.RowView, selected bool) string {
	icon := palette.Swatch(row.Category, string(m.theme.Background)).
		Padding(0, 1).
		Render(row.Icon.Glyph)

	amountWidth := 12
	descWidth := max(m.width-amountWidth-lipgloss.Width(icon)-16, 8)

	description := viewmodel.TruncateString(row.Description, descWidth)
	text := fmt.Sprintf("%-*s %-13s %*s",
		descWidth, description,
		row.Category.String(),
		amountWidth, row.Amount,
	)

	style := m.theme.Normal
	switch {
	case selected && m.focused:
		style = m.theme.Selected
	case row.IsEditing:
		style = m.theme.Editing
	}

	marker := "  "
	if row.IsEditing {
		marker = "✎ "
	}
	return icon + " " + style.Render(marker+strings.TrimRight(text, " "))
}

func (m ExpenseListModel) selected() (viewmodel.RowView, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Rows) {
		return viewmodel.RowView{}, false
	}
	return m.view.Rows[m.cursor], true
}

func (m ExpenseListModel) visibleRows() int {
	// Title with its margin and the position footer.
	return max(m.height-3, 1)
}

func (m *ExpenseListModel) ensureVisible() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = max(m.offset, 0)
}

// Resize updates the component size.
func (m *ExpenseListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}
