package viewmodel

import (
	"github.com/Veraticus/spend/internal/model"
	"github.com/Veraticus/spend/internal/palette"
)

// Opacities used when rendering categories.
const (
	IconOpacity       = 1.0
	IconTintOpacity   = 0.1
	ChartSliceOpacity = 0.8
)

// ExpenseListView represents the expense list display data.
type ExpenseListView struct {
	EditingID model.ExpenseID
	Rows      []RowView
	Cursor    int
}

// RowView represents a single expense in the list.
type RowView struct {
	ID             model.ExpenseID
	Description    string
	Amount         string
	Category       model.Category
	Icon           palette.Icon
	Color          palette.Color
	IconBackground palette.Color
	RawAmount      float64
	IsSelected     bool
	IsEditing      bool
}

// NewExpenseListView maps the collection into list rows in order.
func NewExpenseListView(expenses []model.Expense, f Formatter, cursor int, editing model.ExpenseID) ExpenseListView {
	rows := make([]RowView, len(expenses))
	for i, e := range expenses {
		rows[i] = NewRowView(e, f)
		rows[i].IsSelected = i == cursor
		rows[i].IsEditing = editing != "" && e.ID == editing
	}
	return ExpenseListView{Rows: rows, Cursor: cursor, EditingID: editing}
}

// NewRowView maps one expense into its row.
func NewRowView(e model.Expense, f Formatter) RowView {
	return RowView{
		ID:             e.ID,
		Description:    e.Description,
		Amount:         f.Format(e.Amount),
		RawAmount:      e.Amount,
		Category:       e.Category,
		Icon:           palette.IconOf(e.Category),
		Color:          palette.ColorOf(e.Category, IconOpacity),
		IconBackground: palette.ColorOf(e.Category, IconTintOpacity),
	}
}

// IsEmpty returns true if there are no expenses in the list.
func (v ExpenseListView) IsEmpty() bool {
	return len(v.Rows) == 0
}

// EmptyMessage is shown in place of the rows when the list is empty.
func (v ExpenseListView) EmptyMessage() string {
	if v.IsEmpty() {
		return EmptyListMessage
	}
	return ""
}

// Selected returns the row under the cursor.
func (v ExpenseListView) Selected() (RowView, bool) {
	if v.Cursor < 0 || v.Cursor >= len(v.Rows) {
		return RowView{}, false
	}
	return v.Rows[v.Cursor], true
}
