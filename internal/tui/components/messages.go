package components

import "github.com/Veraticus/spend/internal/model"

// EditRequestedMsg requests that the form load an expense for editing.
type EditRequestedMsg struct {
	ID model.ExpenseID
}

// DeleteRequestedMsg requests deletion of an expense, pending confirmation.
type DeleteRequestedMsg struct {
	ID model.ExpenseID
}

// SubmitRequestedMsg requests that the form be committed.
type SubmitRequestedMsg struct{}

// CancelRequestedMsg requests that the form be cleared.
type CancelRequestedMsg struct{}

// ConfirmedMsg carries the answer to a delete confirmation.
type ConfirmedMsg struct {
	ID        model.ExpenseID
	Confirmed bool
}
