package components

import (
	"slices"
	"strings"

	"github.com/Veraticus/spend/internal/form"
	"github.com/Veraticus/spend/internal/model"
	"github.com/Veraticus/spend/internal/palette"
	"github.com/Veraticus/spend/internal/tui/themes"
	"github.com/Veraticus/spend/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form fields in focus order.
const (
	FieldDescription = iota
	FieldAmount
	FieldCategory
	fieldCount
)

// FormModel renders the add/edit form and feeds keystrokes into a
// form.Controller.
type FormModel struct {
	theme       themes.Theme
	controller  *form.Controller
	err         string
	description textinput.Model
	amount      textinput.Model
	focus       int
	width       int
	focused     bool
}

// NewFormModel creates a form bound to controller.
func NewFormModel(controller *form.Controller, theme themes.Theme) FormModel {
	description := textinput.New()
	description.Placeholder = "What did you spend on?"
	description.CharLimit = 120
	description.Cursor.SetMode(cursor.CursorStatic)

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 16
	amount.Cursor.SetMode(cursor.CursorStatic)

	m := FormModel{
		theme:       theme,
		controller:  controller,
		description: description,
		amount:      amount,
		width:       40,
	}
	m.Sync()
	return m
}

// SetTheme replaces the theme.
func (m *FormModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// Sync copies the controller's fields into the inputs, after the
// controller changed state outside the form.
func (m *FormModel) Sync() {
	fields := m.controller.Fields()
	m.description.SetValue(fields.Description)
	m.description.CursorEnd()
	m.amount.SetValue(fields.Amount)
	m.amount.CursorEnd()
}

// SetError sets the inline message; empty clears it.
func (m *FormModel) SetError(msg string) {
	m.err = msg
}

// Error returns the inline message.
func (m FormModel) Error() string {
	return m.err
}

// FocusedField returns the index of the field with focus.
func (m FormModel) FocusedField() int {
	return m.focus
}

// Focused reports whether the form has keyboard focus.
func (m FormModel) Focused() bool {
	return m.focused
}

// Focus gives the form keyboard focus, starting at the description.
func (m *FormModel) Focus() tea.Cmd {
	m.focused = true
	m.focus = FieldDescription
	return m.applyFocus()
}

// Blur removes keyboard focus.
func (m *FormModel) Blur() {
	m.focused = false
	m.description.Blur()
	m.amount.Blur()
}

// Update handles messages.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch keyMsg.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount
		return m, m.applyFocus()

	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m, m.applyFocus()

	case "enter":
		return m, func() tea.Msg { return SubmitRequestedMsg{} }

	case "esc":
		return m, func() tea.Msg { return CancelRequestedMsg{} }
	}

	var cmd tea.Cmd
	switch m.focus {
	case FieldDescription:
		m.description, cmd = m.description.Update(msg)
		m.controller.SetDescription(m.description.Value())
		m.err = ""

	case FieldAmount:
		m.amount, cmd = m.amount.Update(msg)
		m.controller.SetAmount(m.amount.Value())
		m.err = ""

	case FieldCategory:
		switch keyMsg.String() {
		case "left", "h":
			m.controller.SetCategory(m.stepCategory(-1))
		case "right", "l", " ":
			m.controller.SetCategory(m.stepCategory(1))
		}
	}
	return m, cmd
}

func (m FormModel) stepCategory(delta int) model.Category {
	categories := model.Categories()
	i := slices.Index(categories, m.controller.Fields().Category)
	if i < 0 {
		return model.DefaultCategory
	}
	return categories[(i+delta+len(categories))%len(categories)]
}

func (m *FormModel) applyFocus() tea.Cmd {
	m.description.Blur()
	m.amount.Blur()
	switch m.focus {
	case FieldDescription:
		return m.description.Focus()
	case FieldAmount:
		return m.amount.Focus()
	}
	return nil
}

// View renders the form.
func (m FormModel) View() string {
	v := viewmodel.NewFormView(m.controller, m.focus, m.err)
	inputWidth := max(m.width-6, 20)

	field := func(index int, label, content string) string {
		style := m.theme.Input
		if m.focused && m.focus == index {
			style = m.theme.FocusedInput
		}
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.Subtitle.Render(label),
			style.Width(inputWidth).Render(content),
		)
	}

	sections := []string{
		m.theme.Title.Render(v.Title),
		field(FieldDescription, "Description", m.description.View()),
		field(FieldAmount, "Amount", m.amount.View()),
		field(FieldCategory, "Category", m.renderCategories(v)),
	}

	if v.HasError() {
		sections = append(sections, m.theme.StatusError.Render(v.Error))
	}

	hints := []string{"[Enter] " + v.SubmitLabel, "[Tab] Next field"}
	if v.IsEditing {
		hints = append(hints, "[Esc] Cancel")
	}
	sections = append(sections,
		"",
		m.theme.Button.Render(v.SubmitLabel),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  ")),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m FormModel) renderCategories(v viewmodel.FormView) string {
	parts := make([]string, 0, len(v.Categories))
	for _, c := range v.Categories {
		label := palette.IconOf(c).Glyph + " " + c.String()
		if c == v.Category {
			parts = append(parts, palette.Swatch(c, string(m.theme.Background)).Bold(true).Render("‹"+label+"›"))
			continue
		}
		if m.focused && m.focus == FieldCategory {
			parts = append(parts, lipgloss.NewStyle().Foreground(m.theme.Muted).Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// Resize updates the component size.
func (m *FormModel) Resize(width int) {
	m.width = width
	m.description.Width = max(width-10, 10)
	m.amount.Width = max(width-10, 10)
}
