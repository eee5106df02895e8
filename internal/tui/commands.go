package tui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/spend/internal/common"
	"github.com/Veraticus/spend/internal/form"
	"github.com/Veraticus/spend/internal/model"
	"github.com/Veraticus/spend/internal/tui/components"
	"github.com/Veraticus/spend/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
)

// handleNew opens an empty form, abandoning any edit in progress.
func (m *Model) handleNew() tea.Cmd {
	if m.form.Mode() == form.Editing {
		m.form.Cancel()
		m.formView.Sync()
		m.refresh()
	}
	m.formView.SetError("")
	return m.focusForm()
}

// handleEdit loads an expense into the form.
func (m *Model) handleEdit(id model.ExpenseID) tea.Cmd {
	e, ok := m.store.Get(id)
	if !ok {
		m.setStatus(statusError, common.UserMessage(&common.NotFoundError{Kind: "expense", ID: string(id)}))
		return nil
	}

	m.form.StartEdit(e)
	m.formView.Sync()
	m.formView.SetError("")
	m.refresh()
	return m.focusForm()
}

// handleDeleteRequest opens the confirmation dialog.
func (m *Model) handleDeleteRequest(id model.ExpenseID) {
	e, ok := m.store.Get(id)
	if !ok {
		return
	}
	m.confirm.Open(id, fmt.Sprintf("%s · %s · %s", e.Description, e.Category, m.formatter.Format(e.Amount)))
	m.state = viewmodel.StateConfirming
}

// handleConfirmed applies the answer of the confirmation dialog.
func (m *Model) handleConfirmed(msg components.ConfirmedMsg) {
	m.state = viewmodel.StateBrowsing
	if !msg.Confirmed {
		return
	}

	editingBefore := m.form.Mode() == form.Editing
	err := m.form.DeleteCurrent(m.ctx, msg.ID, true)
	if editingBefore && m.form.Mode() == form.Creating {
		m.formView.Sync()
		m.focusList()
	}
	m.refresh()

	if m.report(err) {
		return
	}
	m.setStatus(statusSuccess, "Expense deleted.")
}

// handleSubmit commits the form.
func (m *Model) handleSubmit() {
	wasEditing := m.form.Mode() == form.Editing
	saved, err := m.form.Submit(m.ctx)

	if errors.Is(err, common.ErrValidation) {
		m.formView.SetError(common.UserMessage(err))
		return
	}

	m.formView.Sync()
	m.refresh()

	if m.report(err) {
		if common.IsWarning(err) && wasEditing {
			m.focusList()
		}
		return
	}

	slog.Debug("expense saved", "id", saved.ID, "editing", wasEditing)
	if wasEditing {
		m.setStatus(statusSuccess, "Expense updated.")
		m.focusList()
		return
	}
	m.setStatus(statusSuccess, "Expense added.")
}

// handleToggleTheme flips between light and dark.
func (m *Model) handleToggleTheme() {
	mode, err := m.themeCtl.Toggle(m.ctx)
	m.refresh()
	if m.report(err) {
		return
	}
	m.setStatus(statusInfo, fmt.Sprintf("Switched to %s theme.", mode))
}

// report shows err in the status bar and reports whether there was one.
// Persistence failures are warnings; the change itself was applied.
func (m *Model) report(err error) bool {
	switch {
	case err == nil:
		return false
	case common.IsWarning(err):
		m.setStatus(statusWarning, common.UserMessage(err))
	default:
		m.setStatus(statusError, common.UserMessage(err))
		m.state = viewmodel.StateError
	}
	return true
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func (m *Model) clearStatus() {
	m.statusKind = statusNone
	m.status = ""
	if m.state == viewmodel.StateError {
		m.state = viewmodel.StateBrowsing
		if m.focus == viewmodel.ComponentForm {
			m.state = viewmodel.StateEditing
		}
	}
}
