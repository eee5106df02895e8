package viewmodel

// AppState represents the overall application state.
type AppState int

const (
	// StateBrowsing indicates the user is moving through the expense list.
	StateBrowsing AppState = iota
	// StateEditing indicates the form has focus.
	StateEditing
	// StateConfirming indicates a delete confirmation is pending.
	StateConfirming
	// StateError indicates the last action failed. It lasts until the
	// next key press.
	StateError
)

// ComponentType identifies which component is active.
type ComponentType int

const (
	// ComponentList indicates the expense list is active.
	ComponentList ComponentType = iota
	// ComponentForm indicates the add/edit form is active.
	ComponentForm
	// ComponentHelp indicates the help overlay is active.
	ComponentHelp
)

// Empty-state messages.
const (
	EmptyListMessage  = "No expenses"
	EmptyChartMessage = "No data to display"
)

// Colors is the set of theme colors the view models need.
type Colors interface {
	TextColor() string
	BorderColor() string
	Background() string
	Surface() string
	Muted() string
	Accent() string
}
