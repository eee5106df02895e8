// Package form holds the transient input state of the add/edit form and
// commits it into the expense store.
package form

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/Veraticus/spend/internal/common"
	"github.com/Veraticus/spend/internal/expense"
	"github.com/Veraticus/spend/internal/model"
	"github.com/shopspring/decimal"
)

// Mode is the state of the form.
type Mode int

// Form modes.
const (
	Creating Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "creating"
}

// ConfirmPrompt is the question asked before an expense is deleted.
const ConfirmPrompt = "Are you sure you want to delete this expense?"

// Confirmer answers a yes/no question synchronously.
type Confirmer func(ctx context.Context, prompt string) (bool, error)

// Store is the part of expense.Store the form writes to.
type Store interface {
	Add(ctx context.Context, description string, amount float64, category model.Category) (model.Expense, error)
	Update(ctx context.Context, id model.ExpenseID, description string, amount float64, category model.Category) (model.Expense, error)
	Remove(ctx context.Context, id model.ExpenseID) error
}

// Fields is a snapshot of the raw form input.
type Fields struct {
	Description string
	Amount      string
	Category    model.Category
}

// Controller is a two-state machine: Creating, or Editing a single record.
type Controller struct {
	store     Store
	fields    Fields
	editingID model.ExpenseID
	mode      Mode
}

// NewController creates a controller in Creating mode with empty fields.
func NewController(store Store) *Controller {
	c := &Controller{store: store}
	c.reset()
	return c
}

// SetDescription replaces the description input.
func (c *Controller) SetDescription(v string) { c.fields.Description = v }

// SetAmount replaces the raw amount input.
func (c *Controller) SetAmount(v string) { c.fields.Amount = v }

// SetCategory replaces the selected category.
func (c *Controller) SetCategory(v model.Category) { c.fields.Category = v }

// Fields returns the current input.
func (c *Controller) Fields() Fields { return c.fields }

// Mode returns the current state.
func (c *Controller) Mode() Mode { return c.mode }

// EditingID returns the id of the record being edited and whether the
// form is in Editing mode.
func (c *Controller) EditingID() (model.ExpenseID, bool) {
	return c.editingID, c.mode == Editing
}

// Title is the heading shown above the form.
func (c *Controller) Title() string {
	if c.mode == Editing {
		return "Edit Expense"
	}
	return "Add New Expense"
}

// SubmitLabel is the label of the submit action.
func (c *Controller) SubmitLabel() string {
	if c.mode == Editing {
		return "Update Expense"
	}
	return "Add Expense"
}

// StartEdit switches to Editing the given record and copies its values
// into the fields.
func (c *Controller) StartEdit(e model.Expense) {
	c.mode = Editing
	c.editingID = e.ID
	c.fields = Fields{
		Description: e.Description,
		Amount:      strconv.FormatFloat(e.Amount, 'f', -1, 64),
		Category:    e.Category,
	}
}

// Submit validates the fields and adds or updates a record. On success
// the form is cleared and returns to Creating. A persistence warning
// counts as success and is returned alongside the saved record.
func (c *Controller) Submit(ctx context.Context) (model.Expense, error) {
	description := c.fields.Description
	if strings.TrimSpace(description) == "" {
		return model.Expense{}, common.NewValidationError("description", expense.MsgDescriptionRequired)
	}
	amount, err := ParseAmount(c.fields.Amount)
	if err != nil {
		return model.Expense{}, err
	}
	if _, err := expense.Validate(description, amount, c.fields.Category); err != nil {
		return model.Expense{}, err
	}

	var saved model.Expense
	if c.mode == Editing {
		saved, err = c.store.Update(ctx, c.editingID, description, amount, c.fields.Category)
	} else {
		saved, err = c.store.Add(ctx, description, amount, c.fields.Category)
	}

	switch {
	case err == nil, common.IsWarning(err):
		c.reset()
		return saved, err
	case errors.Is(err, common.ErrNotFound):
		// The record vanished while being edited; keep the input so it
		// can be saved as a new expense.
		c.mode = Creating
		c.editingID = ""
		return model.Expense{}, err
	default:
		return model.Expense{}, err
	}
}

// Cancel clears the fields and returns to Creating without touching the
// store.
func (c *Controller) Cancel() {
	c.reset()
}

// DeleteCurrent removes id when confirmed is true. If id is the record
// being edited the form is reset. A missing record is reported but the
// form is still reset when it pointed at that id.
func (c *Controller) DeleteCurrent(ctx context.Context, id model.ExpenseID, confirmed bool) error {
	if !confirmed {
		return nil
	}

	err := c.store.Remove(ctx, id)
	if c.mode == Editing && c.editingID == id {
		c.reset()
	}
	return err
}

// RequestDelete asks confirm before deleting id.
func (c *Controller) RequestDelete(ctx context.Context, id model.ExpenseID, confirm Confirmer) error {
	ok, err := confirm(ctx, ConfirmPrompt)
	if err != nil {
		return err
	}
	return c.DeleteCurrent(ctx, id, ok)
}

func (c *Controller) reset() {
	c.mode = Creating
	c.editingID = ""
	c.fields = Fields{Category: model.DefaultCategory}
}

// ParseAmount converts raw input into a positive finite amount. Only plain
// decimal notation with an optional exponent is accepted.
func ParseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, common.NewValidationError("amount", expense.MsgAmountInvalid)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, common.NewValidationError("amount", expense.MsgAmountInvalid)
	}
	v := d.InexactFloat64()
	if math.IsInf(v, 0) || v <= 0 {
		return 0, common.NewValidationError("amount", expense.MsgAmountInvalid)
	}
	return v, nil
}
