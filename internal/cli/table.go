package cli

import (
	"strings"

	"github.com/Veraticus/spend/internal/aggregate"
	"github.com/Veraticus/spend/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// AmountFormatter renders an amount in the display currency.
type AmountFormatter func(amount float64) string

// RenderExpenseTable lays out expenses as aligned columns followed by a
// total row. background is the terminal background the category swatches
// are blended over.
func RenderExpenseTable(expenses []model.Expense, format AmountFormatter, background string) string {
	if len(expenses) == 0 {
		return SubtleStyle.Render("No expenses")
	}

	headers := []string{"ID", "Description", "Category", "Amount"}
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			e.ID.String(),
			e.Description,
			FormatCategory(e.Category, background),
			format(e.Amount),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	b.WriteString(renderRow(headers, widths, TableHeaderStyle))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(renderRow(row, widths, TableCellStyle))
		b.WriteString("\n")
	}

	total := TotalStyle.Render("Total: " + format(aggregate.Total(expenses)))
	b.WriteString(TableCellStyle.Render(total))
	return b.String()
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	rendered := make([]string, len(cells))
	last := len(cells) - 1
	for i, cell := range cells {
		s := style.Width(widths[i] + style.GetHorizontalPadding())
		if i == last {
			s = s.Align(lipgloss.Right)
		}
		rendered[i] = s.Render(cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
