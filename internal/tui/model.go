package tui

import (
	"context"

	"github.com/Veraticus/spend/internal/aggregate"
	"github.com/Veraticus/spend/internal/expense"
	"github.com/Veraticus/spend/internal/form"
	"github.com/Veraticus/spend/internal/model"
	"github.com/Veraticus/spend/internal/theme"
	"github.com/Veraticus/spend/internal/tui/components"
	"github.com/Veraticus/spend/internal/tui/themes"
	"github.com/Veraticus/spend/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the main TUI state.
type Model struct {
	ctx         context.Context
	store       *expense.Store
	themeCtl    *theme.Controller
	form        *form.Controller
	live        *liveData
	unsubscribe func()
	theme       themes.Theme
	formatter   viewmodel.Formatter
	status      string
	list        components.ExpenseListModel
	formView    components.FormModel
	confirm     components.ConfirmModel
	breakdown   components.BreakdownModel
	help        help.Model
	config      Config
	keymap      KeyMap
	statusKind  statusKind
	state       viewmodel.AppState
	focus       viewmodel.ComponentType
	height      int
	width       int
	quitting    bool
}

// newModel creates a new model with the given configuration. The store
// and theme controller must already be loaded.
func newModel(ctx context.Context, cfg Config) Model {
	th := themes.ForMode(cfg.Theme.Mode())
	live := &liveData{
		expenses: cfg.Store.List(),
		mode:     cfg.Theme.Mode(),
	}

	unsubscribe := cfg.Store.Subscribe(live.setExpenses)
	cfg.Theme.Subscribe(live.setMode)

	controller := form.NewController(cfg.Store)
	m := Model{
		ctx:         ctx,
		store:       cfg.Store,
		themeCtl:    cfg.Theme,
		form:        controller,
		live:        live,
		unsubscribe: unsubscribe,
		theme:       th,
		formatter:   viewmodel.NewFormatter(cfg.Currency),
		list:        components.NewExpenseList(th),
		formView:    components.NewFormModel(controller, th),
		confirm:     components.NewConfirmModel(th),
		breakdown:   components.NewBreakdownModel(th),
		help:        help.New(),
		config:      cfg,
		keymap:      DefaultKeyMap(),
		state:       viewmodel.StateBrowsing,
		focus:       viewmodel.ComponentList,
		width:       cfg.Width,
		height:      cfg.Height,
	}
	m.handleResize()
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case components.EditRequestedMsg:
		return m, m.handleEdit(msg.ID)

	case components.DeleteRequestedMsg:
		m.handleDeleteRequest(msg.ID)
		return m, nil

	case components.ConfirmedMsg:
		m.handleConfirmed(msg)
		return m, nil

	case components.SubmitRequestedMsg:
		m.handleSubmit()
		return m, nil

	case components.CancelRequestedMsg:
		m.form.Cancel()
		m.formView.Sync()
		m.formView.SetError("")
		m.focusList()
		return m, nil

	case toggleThemeMsg:
		m.handleToggleTheme()
		return m, nil
	}

	return m, nil
}

// handleKey routes a key press to the active component.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	m.clearStatus()

	if m.confirm.Active() {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}

	if m.focus == viewmodel.ComponentHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Cancel, m.keymap.Quit) {
			m.focusList()
		}
		return m, nil
	}

	if m.focus == viewmodel.ComponentForm {
		if msg.String() == "ctrl+t" {
			return m, toggleTheme
		}
		var cmd tea.Cmd
		m.formView, cmd = m.formView.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.focus = viewmodel.ComponentHelp
		m.list.Blur()
		return m, nil

	case key.Matches(msg, m.keymap.ToggleTheme):
		return m, toggleTheme

	case key.Matches(msg, m.keymap.New):
		return m, m.handleNew()

	case key.Matches(msg, m.keymap.Switch):
		return m, m.focusForm()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func toggleTheme() tea.Msg {
	return toggleThemeMsg{}
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.focus == viewmodel.ComponentHelp {
		return m.renderHelp()
	}

	if m.confirm.Active() {
		return m.renderConfirm()
	}

	if m.width < 100 {
		return m.renderCompactView()
	}
	return m.renderFullView()
}

// refresh rebuilds every view from the latest notified state.
func (m *Model) refresh() {
	expenses, mode := m.live.snapshot()

	if mode != m.theme.Mode {
		m.theme = themes.ForMode(mode)
		m.list.SetTheme(m.theme)
		m.formView.SetTheme(m.theme)
		m.confirm.SetTheme(m.theme)
		m.breakdown.SetTheme(m.theme)
	}

	editing, _ := m.form.EditingID()
	m.list.SetView(viewmodel.NewExpenseListView(expenses, m.formatter, m.list.Cursor(), editing))

	chart := viewmodel.NewChartView(aggregate.ByCategory(expenses), m.themeCtl)
	m.breakdown.SetData(viewmodel.NewSummaryView(expenses, m.formatter, m.themeCtl), chart)
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	if m.width >= 100 {
		left := m.width * 3 / 5
		right := m.width - left - 3
		m.list.Resize(left-2, m.height-4)
		m.formView.Resize(right)
		m.breakdown.Resize(right)
		return
	}

	m.list.Resize(m.width-2, max(m.height/3, 5))
	m.formView.Resize(m.width - 2)
	m.breakdown.Resize(m.width - 2)
}

func (m *Model) focusList() {
	m.focus = viewmodel.ComponentList
	m.state = viewmodel.StateBrowsing
	m.formView.Blur()
	m.list.Focus()
}

func (m *Model) focusForm() tea.Cmd {
	m.focus = viewmodel.ComponentForm
	m.state = viewmodel.StateEditing
	m.list.Blur()
	return m.formView.Focus()
}

// Expenses returns the expenses currently shown.
func (m Model) Expenses() []model.Expense {
	expenses, _ := m.live.snapshot()
	return expenses
}
