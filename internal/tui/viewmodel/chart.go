package viewmodel

import (
	"github.com/Veraticus/spend/internal/aggregate"
	"github.com/Veraticus/spend/internal/model"
	"github.com/Veraticus/spend/internal/palette"
)

// ChartView is the input of a category breakdown chart. Labels, Series,
// Colors and Percentages are parallel slices.
type ChartView struct {
	TextColor   string
	BorderColor string
	MutedColor  string
	Labels      []string
	Series      []float64
	Colors      []palette.Color
	Percentages []float64
	Categories  []model.Category
}

// NewChartView reshapes category totals for a chart.
func NewChartView(totals []aggregate.CategoryTotal, colors Colors) ChartView {
	shares := aggregate.Share(totals)
	v := ChartView{
		Labels:      make([]string, len(shares)),
		Series:      make([]float64, len(shares)),
		Colors:      make([]palette.Color, len(shares)),
		Percentages: make([]float64, len(shares)),
		Categories:  make([]model.Category, len(shares)),
		TextColor:   colors.TextColor(),
		BorderColor: colors.BorderColor(),
		MutedColor:  colors.Muted(),
	}
	for i, s := range shares {
		v.Labels[i] = s.Category.String()
		v.Series[i] = s.Amount
		v.Colors[i] = palette.ColorOf(s.Category, ChartSliceOpacity)
		v.Percentages[i] = s.Percentage
		v.Categories[i] = s.Category
	}
	return v
}

// IsEmpty returns true if there is nothing to plot.
func (v ChartView) IsEmpty() bool {
	return len(v.Series) == 0
}

// EmptyMessage is shown in place of the chart when there is no data.
func (v ChartView) EmptyMessage() string {
	if v.IsEmpty() {
		return EmptyChartMessage
	}
	return ""
}

// SummaryView is the headline total.
type SummaryView struct {
	Heading      string
	Amount       string
	AccentColor  string
	SurfaceColor string
	Currency     string
	Total        float64
	Count        int
}

// NewSummaryView builds the total card.
func NewSummaryView(expenses []model.Expense, f Formatter, colors Colors) SummaryView {
	total := aggregate.Total(expenses)
	return SummaryView{
		Heading:      "Total Expenses",
		Total:        total,
		Amount:       f.Format(total),
		Count:        len(expenses),
		AccentColor:  colors.Accent(),
		SurfaceColor: colors.Surface(),
		Currency:     f.Currency(),
	}
}
