package expense

import (
	"errors"
	"math"
	"strings"

	"github.com/Veraticus/spend/internal/common"
	"github.com/Veraticus/spend/internal/model"
)

// User-facing validation messages.
const (
	MsgDescriptionRequired = "Please enter a description."
	MsgAmountInvalid       = "Please enter a valid amount greater than zero."
	MsgCategoryInvalid     = "Please choose one of the listed categories."
	MsgAmountTooLarge      = "That amount is too large."
)

// MaxAmount is the largest amount accepted. It keeps minor-unit
// conversions for display inside int64 for every currency.
const MaxAmount = 1e12

// ErrInvalidRecords marks stored records that were skipped on load.
var ErrInvalidRecords = errors.New("invalid stored expenses")

// Validate checks the fields of an expense before it is committed and
// returns the normalized description.
func Validate(description string, amount float64, category model.Category) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", common.NewValidationError("description", MsgDescriptionRequired)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return "", common.NewValidationError("amount", MsgAmountInvalid)
	}
	if amount > MaxAmount {
		return "", common.NewValidationError("amount", MsgAmountTooLarge)
	}
	if !category.IsValid() {
		return "", common.NewValidationError("category", MsgCategoryInvalid)
	}
	return description, nil
}
