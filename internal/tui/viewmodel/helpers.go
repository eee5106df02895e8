package viewmodel

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no valid currency code is configured.
const DefaultCurrency = "USD"

// String returns a string representation of the app state.
func (s AppState) String() string {
	switch s {
	case StateBrowsing:
		return "Browsing"
	case StateEditing:
		return "Editing"
	case StateConfirming:
		return "Confirming"
	case StateError:
		return "Error"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// String returns a string representation of the component type.
func (c ComponentType) String() string {
	switch c {
	case ComponentList:
		return "List"
	case ComponentForm:
		return "Form"
	case ComponentHelp:
		return "Help"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Formatter renders amounts in a fixed currency.
type Formatter struct {
	currency string
}

// NewFormatter returns a formatter for an ISO 4217 code. Unknown codes
// fall back to DefaultCurrency.
func NewFormatter(code string) Formatter {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || money.GetCurrency(code) == nil {
		code = DefaultCurrency
	}
	return Formatter{currency: code}
}

// Currency returns the ISO 4217 code in use.
func (f Formatter) Currency() string {
	if f.currency == "" {
		return DefaultCurrency
	}
	return f.currency
}

// Format renders amount with the currency symbol, rounded to the
// currency's minor unit. Amounts whose minor units do not fit in an
// int64 are rendered as the currency code and a plain decimal.
func (f Formatter) Format(amount float64) string {
	code := f.Currency()
	cur := money.GetCurrency(code)
	if cur == nil {
		code = DefaultCurrency
		cur = money.GetCurrency(code)
	}
	d := decimal.NewFromFloat(amount)
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	if !minor.BigInt().IsInt64() {
		return code + " " + d.StringFixed(int32(cur.Fraction))
	}
	return money.New(minor.IntPart(), code).Display()
}

// FormatAmount formats an amount in DefaultCurrency.
func FormatAmount(amount float64) string {
	return Formatter{}.Format(amount)
}

// FormatPercentage formats a share with one decimal place.
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// TruncateString truncates a string to maxLen runes with an ellipsis.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
