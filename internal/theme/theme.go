// Package theme owns the light/dark preference.
package theme

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/Veraticus/spend/internal/common"
	"github.com/Veraticus/spend/internal/model"
	"github.com/Veraticus/spend/internal/service"
)

// Contrast colors per mode.
const (
	darkText        = "#f9fafb"
	lightText       = "#1f2937"
	darkBorder      = "#1f2937"
	lightBorder     = "#ffffff"
	darkBackground  = "#111827"
	lightBackground = "#f3f4f6"
	darkSurface     = "#1f2937"
	lightSurface    = "#ffffff"
	darkMuted       = "#9ca3af"
	lightMuted      = "#6b7280"
	darkAccent      = "#818cf8"
	lightAccent     = "#4f46e5"
)

// ChangeFunc is notified with the new mode after every change.
type ChangeFunc func(mode model.ThemeMode)

// Controller holds the current mode and writes every change through to
// the key-value store.
type Controller struct {
	kv          service.KeyValueStore
	subscribers []ChangeFunc
	mode        model.ThemeMode
	mu          sync.RWMutex
}

// New creates a controller in light mode. Call Load to read the stored
// preference.
func New(kv service.KeyValueStore) *Controller {
	return &Controller{kv: kv, mode: model.ThemeLight}
}

// Load reads the stored preference. Missing or unrecognized values fall
// back to light.
func (c *Controller) Load(ctx context.Context) error {
	raw, found, err := c.kv.Get(ctx, service.KeyTheme)
	if err != nil {
		return &common.PersistenceError{Op: "load", Key: service.KeyTheme, Err: err}
	}

	mode := model.ThemeLight
	if found {
		if parsed, ok := ParseStored(raw); ok {
			mode = parsed
		} else {
			slog.Warn("ignoring unrecognized theme preference", "value", raw)
		}
	}

	c.mu.Lock()
	c.mode = mode
	c.mu.Unlock()
	return nil
}

// ParseStored accepts a JSON string literal ("dark") or a bare value (dark).
func ParseStored(raw string) (model.ThemeMode, bool) {
	raw = strings.TrimSpace(raw)
	var decoded string
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		raw = decoded
	}
	mode := model.ThemeMode(strings.ToLower(strings.TrimSpace(raw)))
	return mode, mode.IsValid()
}

// Toggle flips the mode and persists it. The mode flips even when the
// write fails.
func (c *Controller) Toggle(ctx context.Context) (model.ThemeMode, error) {
	c.mu.RLock()
	next := c.mode.Opposite()
	c.mu.RUnlock()

	return next, c.Set(ctx, next)
}

// Set changes the mode and persists it.
func (c *Controller) Set(ctx context.Context, mode model.ThemeMode) error {
	if !mode.IsValid() {
		return common.NewValidationError("theme", "Theme must be light or dark.")
	}

	c.mu.Lock()
	c.mode = mode
	subs := slices.Clone(c.subscribers)
	c.mu.Unlock()

	var persistErr error
	data, _ := json.Marshal(string(mode))
	if err := c.kv.Set(ctx, service.KeyTheme, string(data)); err != nil {
		common.LogWarn(err, "theme preference may not survive a restart", common.Fields{"mode": string(mode)})
		persistErr = &common.PersistenceError{Op: "set", Key: service.KeyTheme, Err: err}
	}

	for _, fn := range subs {
		fn(mode)
	}
	return persistErr
}

// Subscribe registers fn to run after every change.
func (c *Controller) Subscribe(fn ChangeFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Mode returns the current mode.
func (c *Controller) Mode() model.ThemeMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// IsDark reports whether the dark theme is active.
func (c *Controller) IsDark() bool {
	return c.Mode() == model.ThemeDark
}

func (c *Controller) pick(dark, light string) string {
	if c.IsDark() {
		return dark
	}
	return light
}

// TextColor is the primary text color.
func (c *Controller) TextColor() string { return c.pick(darkText, lightText) }

// BorderColor separates chart segments and panels.
func (c *Controller) BorderColor() string { return c.pick(darkBorder, lightBorder) }

// Background is the page background.
func (c *Controller) Background() string { return c.pick(darkBackground, lightBackground) }

// Surface is the card background.
func (c *Controller) Surface() string { return c.pick(darkSurface, lightSurface) }

// Muted is used for secondary text.
func (c *Controller) Muted() string { return c.pick(darkMuted, lightMuted) }

// Accent highlights the total and active controls.
func (c *Controller) Accent() string { return c.pick(darkAccent, lightAccent) }
