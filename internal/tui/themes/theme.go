package themes

import (
	"github.com/Veraticus/spend/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Selected      lipgloss.Style
	Editing       lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Total         lipgloss.Style
	Input         lipgloss.Style
	FocusedInput  lipgloss.Style
	Button        lipgloss.Style
	BorderedBox   lipgloss.Style
	RoundedBox    lipgloss.Style
	Mode          model.ThemeMode
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Surface       lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
}

// palette is the set of base colors a Theme is built from.
type palette struct {
	primary    string
	muted      string
	border     string
	foreground string
	background string
	surface    string
	error      string
	warning    string
	success    string
}

// Light is the default theme.
var Light = build(model.ThemeLight, palette{
	primary:    "#4f46e5",
	muted:      "#6b7280",
	border:     "#d1d5db",
	foreground: "#1f2937",
	background: "#f3f4f6",
	surface:    "#ffffff",
	error:      "#dc2626",
	warning:    "#d97706",
	success:    "#059669",
})

// Dark is the dark theme.
var Dark = build(model.ThemeDark, palette{
	primary:    "#818cf8",
	muted:      "#9ca3af",
	border:     "#374151",
	foreground: "#f9fafb",
	background: "#111827",
	surface:    "#1f2937",
	error:      "#f87171",
	warning:    "#fbbf24",
	success:    "#34d399",
})

func build(mode model.ThemeMode, p palette) Theme {
	t := Theme{
		Mode:       mode,
		Primary:    lipgloss.Color(p.primary),
		Muted:      lipgloss.Color(p.muted),
		Border:     lipgloss.Color(p.border),
		Foreground: lipgloss.Color(p.foreground),
		Background: lipgloss.Color(p.background),
		Surface:    lipgloss.Color(p.surface),
		Error:      lipgloss.Color(p.error),
		Warning:    lipgloss.Color(p.warning),
		Success:    lipgloss.Color(p.success),
	}

	// Text styles
	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Foreground).
		MarginBottom(1)
	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted)
	t.Normal = lipgloss.NewStyle().
		Foreground(t.Foreground)
	t.Bold = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Foreground)
	t.Total = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)
	t.Selected = lipgloss.NewStyle().
		Background(t.Primary).
		Foreground(t.Surface).
		Bold(true)
	t.Editing = lipgloss.NewStyle().
		Foreground(t.Primary).
		Italic(true)

	// Component styles
	t.Input = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.FocusedInput = t.Input.
		BorderForeground(t.Primary)
	t.Button = lipgloss.NewStyle().
		Background(t.Primary).
		Foreground(t.Surface).
		Bold(true).
		Padding(0, 2)
	t.BorderedBox = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	t.RoundedBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	// Status styles
	t.StatusSuccess = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)
	t.StatusWarning = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)
	t.StatusError = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)
	t.StatusInfo = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	return t
}

// ForMode returns the theme for a mode. Unknown modes get Light.
func ForMode(mode model.ThemeMode) Theme {
	if mode == model.ThemeDark {
		return Dark
	}
	return Light
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	return ForMode(model.ThemeMode(name))
}
