package components

import (
	"fmt"

	"github.com/Veraticus/spend/internal/palette"
	"github.com/Veraticus/spend/internal/tui/themes"
	"github.com/Veraticus/spend/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// BreakdownModel renders the total and the per-category chart.
type BreakdownModel struct {
	theme   themes.Theme
	summary viewmodel.SummaryView
	chart   viewmodel.ChartView
	width   int
}

// NewBreakdownModel creates an empty breakdown panel.
func NewBreakdownModel(theme themes.Theme) BreakdownModel {
	return BreakdownModel{theme: theme, width: 40}
}

// SetTheme replaces the theme.
func (m *BreakdownModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// SetData replaces the summary and chart.
func (m *BreakdownModel) SetData(summary viewmodel.SummaryView, chart viewmodel.ChartView) {
	m.summary = summary
	m.chart = chart
}

// View renders the panel.
func (m BreakdownModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderSummary(),
		"",
		m.renderChart(),
	)
}

func (m BreakdownModel) renderSummary() string {
	accent := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.summary.AccentColor))

	card := lipgloss.NewStyle().Padding(0, 1)
	if m.summary.SurfaceColor != "" {
		surface := lipgloss.Color(m.summary.SurfaceColor)
		card = card.Background(surface)
		accent = accent.Background(surface)
	}

	return card.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render(m.summary.Heading),
		accent.Render(m.summary.Amount),
	))
}

func (m BreakdownModel) renderChart() string {
	title := m.theme.Title.Render("By Category")
	if m.chart.IsEmpty() {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			m.mutedStyle().Render(m.chart.EmptyMessage()),
		)
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.chart.TextColor)).
		Width(15)
	barWidth := max(m.width-15-22, 10)

	lines := []string{title}
	for i, label := range m.chart.Labels {
		category := m.chart.Categories[i]
		fill := palette.Blend(category, viewmodel.ChartSliceOpacity, string(m.theme.Background))

		bar := progress.New(
			progress.WithSolidFill(string(fill)),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		)
		bar.EmptyColor = m.chart.BorderColor

		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			labelStyle.Render(palette.IconOf(category).Glyph+" "+label),
			bar.ViewAs(m.chart.Percentages[i]/100),
			lipgloss.NewStyle().Foreground(lipgloss.Color(m.chart.TextColor)).Width(12).Align(lipgloss.Right).
				Render(viewmodel.NewFormatter(m.summary.Currency).Format(m.chart.Series[i])),
			m.mutedStyle().Width(7).Align(lipgloss.Right).
				Render(viewmodel.FormatPercentage(m.chart.Percentages[i])),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m BreakdownModel) mutedStyle() lipgloss.Style {
	if m.chart.MutedColor == "" {
		return lipgloss.NewStyle().Foreground(m.theme.Muted)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.chart.MutedColor))
}

// Resize updates the component size.
func (m *BreakdownModel) Resize(width int) {
	m.width = width
}
