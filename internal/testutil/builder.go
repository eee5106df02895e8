package testutil

import (
	"strconv"

	"github.com/Veraticus/spend/internal/model"
)

// Seed describes an expense to create during test setup.
type Seed struct {
	Description string
	Category    model.Category
	Amount      float64
}

// ExpenseBuilder provides a fluent interface for constructing seed data.
type ExpenseBuilder struct {
	seeds []Seed
}

// NewExpenseBuilder creates an empty builder.
func NewExpenseBuilder() *ExpenseBuilder {
	return &ExpenseBuilder{}
}

// WithExpense adds a single expense.
func (b *ExpenseBuilder) WithExpense(description string, amount float64, category model.Category) *ExpenseBuilder {
	b.seeds = append(b.seeds, Seed{Description: description, Amount: amount, Category: category})
	return b
}

// WithBasicExpenses adds one expense per category.
func (b *ExpenseBuilder) WithBasicExpenses() *ExpenseBuilder {
	return b.
		WithExpense("Coffee", 4.5, model.CategoryFood).
		WithExpense("Bus", 2.25, model.CategoryTransport).
		WithExpense("Electricity", 60, model.CategoryBills).
		WithExpense("Cinema", 12, model.CategoryEntertainment).
		WithExpense("Shoes", 80, model.CategoryShopping).
		WithExpense("Gift wrap", 3.1, model.CategoryOther)
}

// Build returns the accumulated seeds.
func (b *ExpenseBuilder) Build() []Seed {
	out := make([]Seed, len(b.seeds))
	copy(out, b.seeds)
	return out
}

// SequentialIDs returns an id generator yielding "exp-1", "exp-2", ...
// so tests can assert on ids.
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return "exp-" + strconv.Itoa(n)
	}
}
