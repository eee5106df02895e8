package model

// ThemeMode is the user's light/dark display preference.
type ThemeMode string

const (
	// ThemeLight is the default mode.
	ThemeLight ThemeMode = "light"
	// ThemeDark is the dark mode.
	ThemeDark ThemeMode = "dark"
)

// IsValid reports whether m is one of the two supported modes.
func (m ThemeMode) IsValid() bool {
	return m == ThemeLight || m == ThemeDark
}

// Opposite returns the other mode. Invalid modes flip to dark, as they
// are treated as light everywhere else.
func (m ThemeMode) Opposite() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
