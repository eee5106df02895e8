// Package aggregate derives totals from an expense collection.
//
// All functions are pure: they never retain or modify the slice they are
// given. Sums accumulate in decimal arithmetic so that adding currency
// amounts such as 0.1 and 0.2 yields exactly 0.3.
package aggregate

import (
	"github.com/Veraticus/spend/internal/model"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category model.Category
	Amount   float64
	Count    int
}

// CategoryShare is a category total with its fraction of the overall total.
type CategoryShare struct {
	CategoryTotal
	Percentage float64
}

// Total returns the sum of all amounts, or 0 for an empty collection.
func Total(expenses []model.Expense) float64 {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(decimal.NewFromFloat(e.Amount))
	}
	return sum.InexactFloat64()
}

// ByCategory sums amounts per category. Only categories with at least one
// expense appear, in the order they are first seen in the collection.
func ByCategory(expenses []model.Expense) []CategoryTotal {
	index := make(map[model.Category]int)
	sums := make([]decimal.Decimal, 0)
	totals := make([]CategoryTotal, 0)

	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category})
			sums = append(sums, decimal.Zero)
		}
		sums[i] = sums[i].Add(decimal.NewFromFloat(e.Amount))
		totals[i].Count++
	}

	for i := range totals {
		totals[i].Amount = sums[i].InexactFloat64()
	}
	return totals
}

// ByCategoryMap is ByCategory keyed by category, for lookups.
func ByCategoryMap(expenses []model.Expense) map[model.Category]float64 {
	totals := ByCategory(expenses)
	m := make(map[model.Category]float64, len(totals))
	for _, t := range totals {
		m[t.Category] = t.Amount
	}
	return m
}

// Share annotates category totals with their percentage of the sum of all
// totals. Percentages are 0 when the sum is 0.
func Share(totals []CategoryTotal) []CategoryShare {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(decimal.NewFromFloat(t.Amount))
	}

	hundred := decimal.NewFromInt(100)
	shares := make([]CategoryShare, len(totals))
	for i, t := range totals {
		shares[i] = CategoryShare{CategoryTotal: t}
		if !sum.IsZero() {
			shares[i].Percentage = decimal.NewFromFloat(t.Amount).Mul(hundred).Div(sum).InexactFloat64()
		}
	}
	return shares
}
