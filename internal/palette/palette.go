// Package palette maps expense categories to display colors and icons.
package palette

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/spend/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with an alpha channel in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

// CSS renders the color as an rgba() expression.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Hex renders the opaque base color, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// base colors per category, at full opacity.
var base = map[model.Category]Color{
	model.CategoryFood:          {R: 251, G: 146, B: 60},
	model.CategoryTransport:     {R: 59, G: 130, B: 246},
	model.CategoryBills:         {R: 239, G: 68, B: 68},
	model.CategoryEntertainment: {R: 168, G: 85, B: 247},
	model.CategoryShopping:      {R: 236, G: 72, B: 153},
	model.CategoryOther:         {R: 107, G: 114, B: 128},
}

// ColorOf returns the category color with its alpha set to opacity.
// Unknown categories use the Other color; opacity is clamped to [0, 1].
func ColorOf(category model.Category, opacity float64) Color {
	c, ok := base[category]
	if !ok {
		c = base[model.CategoryOther]
	}
	c.A = clamp(opacity)
	return c
}

// Blend composites the category color at opacity over background (a hex
// color), for surfaces without an alpha channel such as terminals.
func Blend(category model.Category, opacity float64, background string) lipgloss.Color {
	c := ColorOf(category, opacity)
	fg := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}

	bg, err := colorful.Hex(background)
	if err != nil {
		// Without a usable background the opaque color is the best match.
		return lipgloss.Color(c.Hex())
	}

	return lipgloss.Color(bg.BlendRgb(fg, c.A).Clamped().Hex())
}

// Swatch returns a lipgloss style that paints text in the category color
// over a tint of the same hue, as the expense list does for its icons.
func Swatch(category model.Category, background string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Blend(category, 1, background)).
		Background(Blend(category, 0.1, background))
}

func clamp(v float64) float64 {
	switch {
	case v != v: // NaN
		return 1
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
