package model

import "strings"

// Category is one of the fixed expense categories.
type Category string

const (
	// CategoryFood covers groceries, restaurants and coffee.
	CategoryFood Category = "Food"
	// CategoryTransport covers fares, fuel and parking.
	CategoryTransport Category = "Transport"
	// CategoryBills covers utilities, rent and subscriptions.
	CategoryBills Category = "Bills"
	// CategoryEntertainment covers leisure spending.
	CategoryEntertainment Category = "Entertainment"
	// CategoryShopping covers general purchases.
	CategoryShopping Category = "Shopping"
	// CategoryOther is the catch-all and the fallback for unknown labels.
	CategoryOther Category = "Other"
)

// DefaultCategory is preselected on a fresh expense form.
const DefaultCategory = CategoryFood

// Categories returns the fixed category enumeration in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryBills,
		CategoryEntertainment,
		CategoryShopping,
		CategoryOther,
	}
}

// IsValid reports whether c belongs to the fixed enumeration.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryBills,
		CategoryEntertainment, CategoryShopping, CategoryOther:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves user input to a category, ignoring case and
// surrounding whitespace. The second result is false when nothing matches.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}
