package aggregate

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/Veraticus/spend/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func expense(id string, amount float64, category model.Category) model.Expense {
	return model.Expense{ID: model.ExpenseID(id), Description: "item " + id, Amount: amount, Category: category}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name     string
		expenses []model.Expense
		want     float64
	}{
		{name: "empty", expenses: nil, want: 0},
		{name: "single", expenses: []model.Expense{expense("1", 4.5, model.CategoryFood)}, want: 4.5},
		{
			name: "coffee and bus",
			expenses: []model.Expense{
				expense("1", 4.5, model.CategoryFood),
				expense("2", 2.25, model.CategoryTransport),
			},
			want: 6.75,
		},
		{
			name: "exact decimal accumulation",
			expenses: []model.Expense{
				expense("1", 0.1, model.CategoryFood),
				expense("2", 0.2, model.CategoryFood),
			},
			want: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Total(tt.expenses))
		})
	}
}

func TestByCategory(t *testing.T) {
	expenses := []model.Expense{
		expense("1", 12, model.CategoryShopping),
		expense("2", 4.5, model.CategoryFood),
		expense("3", 3, model.CategoryShopping),
		expense("4", 2.25, model.CategoryTransport),
	}

	got := ByCategory(expenses)

	assert.Equal(t, []CategoryTotal{
		{Category: model.CategoryShopping, Amount: 15, Count: 2},
		{Category: model.CategoryFood, Amount: 4.5, Count: 1},
		{Category: model.CategoryTransport, Amount: 2.25, Count: 1},
	}, got)
}

func TestByCategory_Empty(t *testing.T) {
	assert.Empty(t, ByCategory(nil))
	assert.Empty(t, ByCategoryMap([]model.Expense{}))
}

func TestByCategoryMap_Scenario(t *testing.T) {
	expenses := []model.Expense{
		expense("1", 4.5, model.CategoryFood),
		expense("2", 2.25, model.CategoryTransport),
	}
	assert.Equal(t, map[model.Category]float64{
		model.CategoryFood:      4.5,
		model.CategoryTransport: 2.25,
	}, ByCategoryMap(expenses))
}

func TestTotalMatchesSumOfCategories(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	categories := model.Categories()

	for round := 0; round < 50; round++ {
		n := rng.Intn(40)
		expenses := make([]model.Expense, n)
		for i := range expenses {
			cents := rng.Int63n(100000) + 1
			expenses[i] = expense(fmt.Sprint(i), float64(cents)/100, categories[rng.Intn(len(categories))])
		}

		sum := decimal.Zero
		for _, ct := range ByCategory(expenses) {
			sum = sum.Add(decimal.NewFromFloat(ct.Amount))
		}
		assert.Equal(t, Total(expenses), sum.InexactFloat64(), "round %d", round)
	}
}

func TestShare(t *testing.T) {
	shares := Share([]CategoryTotal{
		{Category: model.CategoryFood, Amount: 30, Count: 1},
		{Category: model.CategoryBills, Amount: 10, Count: 1},
	})

	assert.Len(t, shares, 2)
	assert.InDelta(t, 75.0, shares[0].Percentage, 1e-9)
	assert.InDelta(t, 25.0, shares[1].Percentage, 1e-9)
	assert.Equal(t, model.CategoryBills, shares[1].Category)

	assert.Empty(t, Share(nil))
}
