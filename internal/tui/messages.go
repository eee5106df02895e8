package tui

import (
	"sync"

	"github.com/Veraticus/spend/internal/model"
)

// statusKind selects the style of the status bar message.
type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusSuccess
	statusWarning
	statusError
)

// toggleThemeMsg requests a light/dark switch.
type toggleThemeMsg struct{}

// liveData receives store and theme notifications. Subscribers write it
// synchronously during a mutation, and Update reads it afterwards.
type liveData struct {
	expenses []model.Expense
	mode     model.ThemeMode
	mu       sync.Mutex
}

func (d *liveData) setExpenses(expenses []model.Expense) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.expenses = expenses
}

func (d *liveData) setMode(mode model.ThemeMode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mode = mode
}

func (d *liveData) snapshot() ([]model.Expense, model.ThemeMode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.expenses, d.mode
}
