package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Veraticus/spend/internal/model"
	tuitest "github.com/Veraticus/spend/internal/tui/testing"
	"github.com/Veraticus/spend/internal/tui/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleExpenses() []model.Expense {
	return []model.Expense{
		{ID: "exp-1", Description: "Coffee", Amount: 4.5, Category: model.CategoryFood},
		{ID: "exp-2", Description: "Bus", Amount: 2.25, Category: model.CategoryTransport},
		{ID: "exp-3", Description: "Lunch | deli", Amount: 11, Category: model.CategoryFood},
	}
}

func TestNewSummary(t *testing.T) {
	s := NewSummary(sampleExpenses(), viewmodel.NewFormatter("USD"))

	assert.Equal(t, "$17.75", s.Total)
	assert.Equal(t, "USD", s.Currency)
	assert.Equal(t, 3, s.Count)

	require.Len(t, s.Categories, 2)
	assert.Equal(t, "Food", s.Categories[0].Name)
	assert.Equal(t, "$15.50", s.Categories[0].Amount)
	assert.Equal(t, "87.3%", s.Categories[0].Percentage)
	assert.Equal(t, "Transport", s.Categories[1].Name)
	assert.Equal(t, "12.7%", s.Categories[1].Percentage)

	require.Len(t, s.Expenses, 3)
	assert.Equal(t, "exp-2", s.Expenses[1].ID)
	assert.Equal(t, "$2.25", s.Expenses[1].Amount)
}

func TestMarkdown(t *testing.T) {
	md, err := Markdown(NewSummary(sampleExpenses(), viewmodel.NewFormatter("USD")))
	require.NoError(t, err)

	assert.Contains(t, md, "# Expense Summary")
	assert.Contains(t, md, "**Total Expenses:** $17.75 (3 expenses)")
	assert.Contains(t, md, "## By Category")
	assert.Contains(t, md, "| $15.50 | 87.3% |")
	assert.Contains(t, md, `| Lunch \| deli |`)
	assert.Less(t, strings.Index(md, "Food"), strings.Index(md, "Transport"))
}

func TestMarkdownEmpty(t *testing.T) {
	md, err := Markdown(NewSummary(nil, viewmodel.NewFormatter("USD")))
	require.NoError(t, err)

	assert.Contains(t, md, "$0.00 (0 expenses)")
	assert.Contains(t, md, "_No data to display_")
	assert.NotContains(t, md, "## By Category")
}

func TestMarkdownSingular(t *testing.T) {
	md, err := Markdown(NewSummary(sampleExpenses()[:1], viewmodel.NewFormatter("USD")))
	require.NoError(t, err)
	assert.Contains(t, md, "(1 expense)")
}

func TestWrite(t *testing.T) {
	s := NewSummary(sampleExpenses(), viewmodel.NewFormatter("USD"))

	tests := []struct {
		name string
		opts Options
	}{
		{name: "plain", opts: Options{Plain: true}},
		{name: "notty style", opts: Options{Style: "notty", WordWrap: 100}},
		{name: "default style", opts: Options{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, s, tt.opts))

			// Styled output puts escape codes between words.
			out := tuitest.PlainText(buf.String())
			assert.Contains(t, out, "Expense Summary")
			assert.Contains(t, out, "$17.75")
		})
	}
}

func TestWritePlainIsMarkdown(t *testing.T) {
	s := NewSummary(sampleExpenses(), viewmodel.NewFormatter("USD"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s, Options{Plain: true}))

	md, err := Markdown(s)
	require.NoError(t, err)
	assert.Equal(t, md, buf.String())
}

func TestWriteUnknownStyle(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, NewSummary(nil, viewmodel.NewFormatter("USD")), Options{Style: "neon"})
	assert.Error(t, err)
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, "dark", StyleFor(model.ThemeDark))
	assert.Equal(t, "light", StyleFor(model.ThemeLight))
}
