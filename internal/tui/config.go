package tui

import (
	"github.com/Veraticus/spend/internal/expense"
	"github.com/Veraticus/spend/internal/theme"
	"github.com/Veraticus/spend/internal/tui/viewmodel"
)

// Config holds TUI configuration.
type Config struct {
	Store    *expense.Store
	Theme    *theme.Controller
	Currency string
	Width    int
	Height   int
	ShowHelp bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Currency: viewmodel.DefaultCurrency,
		Width:    100,
		Height:   30,
		ShowHelp: true,
	}
}

// WithStore sets the expense store.
func WithStore(store *expense.Store) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithTheme sets the theme controller.
func WithTheme(theme *theme.Controller) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithCurrency sets the ISO 4217 code amounts are shown in.
func WithCurrency(code string) Option {
	return func(c *Config) {
		c.Currency = code
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithHelp toggles the short help line.
func WithHelp(enabled bool) Option {
	return func(c *Config) {
		c.ShowHelp = enabled
	}
}
