// Package report renders expense summaries as markdown for the terminal.
package report

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Veraticus/spend/internal/aggregate"
	"github.com/Veraticus/spend/internal/model"
	"github.com/Veraticus/spend/internal/palette"
	"github.com/Veraticus/spend/internal/tui/viewmodel"
	"github.com/charmbracelet/glamour"
)

//go:embed templates/*.md
var templates embed.FS

// DefaultWordWrap is the column glamour wraps rendered output at.
const DefaultWordWrap = 80

// Summary is the data behind the summary report.
type Summary struct {
	Total        string
	Currency     string
	EmptyMessage string
	Categories   []CategoryLine
	Expenses     []ExpenseLine
	Count        int
}

// CategoryLine is one row of the per-category breakdown.
type CategoryLine struct {
	Icon       string
	Name       string
	Amount     string
	Percentage string
}

// ExpenseLine is one row of the expense listing.
type ExpenseLine struct {
	ID          string
	Description string
	Category    string
	Amount      string
}

// NewSummary builds a summary of expenses formatted with f.
func NewSummary(expenses []model.Expense, f viewmodel.Formatter) *Summary {
	s := &Summary{
		Total:        f.Format(aggregate.Total(expenses)),
		Currency:     f.Currency(),
		EmptyMessage: viewmodel.EmptyChartMessage,
		Count:        len(expenses),
	}

	for _, share := range aggregate.Share(aggregate.ByCategory(expenses)) {
		s.Categories = append(s.Categories, CategoryLine{
			Icon:       palette.IconOf(share.Category).Glyph,
			Name:       share.Category.String(),
			Amount:     f.Format(share.Amount),
			Percentage: viewmodel.FormatPercentage(share.Percentage),
		})
	}

	for _, e := range expenses {
		s.Expenses = append(s.Expenses, ExpenseLine{
			ID:          e.ID.String(),
			Description: e.Description,
			Category:    e.Category.String(),
			Amount:      f.Format(e.Amount),
		})
	}
	return s
}

// Markdown renders the summary as a markdown document.
func Markdown(s *Summary) (string, error) {
	content, err := templates.ReadFile("templates/summary.md")
	if err != nil {
		return "", fmt.Errorf("failed to read summary template: %w", err)
	}

	tmpl, err := template.New("summary").
		Funcs(template.FuncMap{"cell": escapeCell}).
		Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse summary template: %w", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, s); err != nil {
		return "", fmt.Errorf("failed to execute summary template: %w", err)
	}
	return b.String(), nil
}

// Options control how a summary is written.
type Options struct {
	// Style is a glamour standard style name ("dark", "light", "notty").
	Style string

	// WordWrap defaults to DefaultWordWrap.
	WordWrap int

	// Plain writes the markdown source without terminal styling.
	Plain bool
}

// Write renders s to w.
func Write(w io.Writer, s *Summary, opts Options) error {
	md, err := Markdown(s)
	if err != nil {
		return err
	}

	if opts.Plain {
		_, err = io.WriteString(w, md)
		return err
	}

	style := opts.Style
	if style == "" {
		style = "dark"
	}
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = DefaultWordWrap
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// StyleFor maps a theme mode to the matching glamour style.
func StyleFor(mode model.ThemeMode) string {
	if mode == model.ThemeDark {
		return "dark"
	}
	return "light"
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
