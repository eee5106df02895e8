package viewmodel

import (
	"github.com/Veraticus/spend/internal/form"
	"github.com/Veraticus/spend/internal/model"
)

// FormView represents the add/edit form display data.
type FormView struct {
	Title       string
	SubmitLabel string
	Description string
	Amount      string
	Error       string
	Category    model.Category
	Categories  []model.Category
	Focus       int
	IsEditing   bool
}

// NewFormView reads the form state for display. focus indexes the
// description, amount and category inputs in that order.
func NewFormView(c *form.Controller, focus int, errMsg string) FormView {
	fields := c.Fields()
	return FormView{
		Title:       c.Title(),
		SubmitLabel: c.SubmitLabel(),
		Description: fields.Description,
		Amount:      fields.Amount,
		Category:    fields.Category,
		Categories:  model.Categories(),
		Error:       errMsg,
		Focus:       focus,
		IsEditing:   c.Mode() == form.Editing,
	}
}

// HasError returns true if the form has a message to show.
func (v FormView) HasError() bool {
	return v.Error != ""
}
