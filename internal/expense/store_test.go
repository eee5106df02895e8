package expense_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Veraticus/spend/internal/aggregate"
	"github.com/Veraticus/spend/internal/common"
	"github.com/Veraticus/spend/internal/expense"
	"github.com/Veraticus/spend/internal/model"
	"github.com/Veraticus/spend/internal/service"
	"github.com/Veraticus/spend/internal/storage"
	"github.com/Veraticus/spend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Add(t *testing.T) {
	ts := testutil.SetupTestStore(t, nil, expense.WithIDGenerator(testutil.SequentialIDs()))
	ctx := context.Background()

	created, err := ts.Expenses.Add(ctx, "  Coffee  ", 4.5, model.CategoryFood)
	require.NoError(t, err)

	assert.Equal(t, model.ExpenseID("exp-1"), created.ID)
	assert.Equal(t, "Coffee", created.Description)
	assert.Equal(t, 1, ts.Expenses.Len())

	got, ok := ts.Expenses.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestStore_AddAppendsInOrder(t *testing.T) {
	ts := testutil.SetupTestStore(t, testutil.NewExpenseBuilder().WithBasicExpenses().Build())

	list := ts.Expenses.List()
	require.Len(t, list, 6)
	assert.Equal(t, "Coffee", list[0].Description)
	assert.Equal(t, "Gift wrap", list[5].Description)

	ids := map[model.ExpenseID]bool{}
	for _, e := range list {
		assert.False(t, ids[e.ID], "duplicate id %s", e.ID)
		ids[e.ID] = true
	}
}

func TestStore_AddRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		description string
		category    model.Category
		wantField   string
		amount      float64
	}{
		{name: "empty description", description: "", amount: 1, category: model.CategoryFood, wantField: "description"},
		{name: "whitespace description", description: "  \t ", amount: 1, category: model.CategoryFood, wantField: "description"},
		{name: "zero amount", description: "x", amount: 0, category: model.CategoryFood, wantField: "amount"},
		{name: "negative amount", description: "x", amount: -5, category: model.CategoryFood, wantField: "amount"},
		{name: "NaN amount", description: "x", amount: math.NaN(), category: model.CategoryFood, wantField: "amount"},
		{name: "infinite amount", description: "x", amount: math.Inf(1), category: model.CategoryFood, wantField: "amount"},
		{name: "amount over limit", description: "x", amount: expense.MaxAmount * 10, category: model.CategoryFood, wantField: "amount"},
		{name: "unknown category", description: "x", amount: 1, category: "Travel", wantField: "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := testutil.SetupTestStore(t, nil)

			_, err := ts.Expenses.Add(context.Background(), tt.description, tt.amount, tt.category)

			var validationErr *common.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Equal(t, 0, ts.Expenses.Len())
			assert.Equal(t, 0, ts.Memory.Writes())
		})
	}
}

func TestStore_UpdateKeepsPositionAndLength(t *testing.T) {
	ts := testutil.SetupTestStore(t, testutil.NewExpenseBuilder().
		WithExpense("Coffee", 4.5, model.CategoryFood).
		WithExpense("Bus", 2.25, model.CategoryTransport).
		WithExpense("Lunch", 11, model.CategoryFood).
		Build())
	ctx := context.Background()

	before := ts.Expenses.List()
	target := before[1]

	updated, err := ts.Expenses.Update(ctx, target.ID, "Train", 7.8, model.CategoryTransport)
	require.NoError(t, err)

	after := ts.Expenses.List()
	require.Len(t, after, len(before))
	assert.Equal(t, target.ID, updated.ID)
	assert.Equal(t, updated, after[1])
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
}

func TestStore_UpdateUnknownID(t *testing.T) {
	ts := testutil.SetupTestStore(t, testutil.NewExpenseBuilder().WithExpense("Coffee", 4.5, model.CategoryFood).Build())
	writes := ts.Memory.Writes()

	_, err := ts.Expenses.Update(context.Background(), "missing", "Tea", 3, model.CategoryFood)

	var notFound *common.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ID)
	assert.Equal(t, writes, ts.Memory.Writes())
	assert.Equal(t, "Coffee", ts.Expenses.List()[0].Description)
}

func TestStore_UpdateValidatesBeforeLookup(t *testing.T) {
	ts := testutil.SetupTestStore(t, nil)

	_, err := ts.Expenses.Update(context.Background(), "missing", "", 3, model.CategoryFood)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestStore_RemoveTwice(t *testing.T) {
	ts := testutil.SetupTestStore(t, testutil.NewExpenseBuilder().WithExpense("Coffee", 4.5, model.CategoryFood).Build())
	ctx := context.Background()
	id := ts.Expenses.List()[0].ID

	require.NoError(t, ts.Expenses.Remove(ctx, id))
	assert.ErrorIs(t, ts.Expenses.Remove(ctx, id), common.ErrNotFound)
}

func TestStore_RemoveFromMiddle(t *testing.T) {
	ts := testutil.SetupTestStore(t, testutil.NewExpenseBuilder().WithBasicExpenses().Build())
	list := ts.Expenses.List()

	require.NoError(t, ts.Expenses.Remove(context.Background(), list[2].ID))

	after := ts.Expenses.List()
	require.Len(t, after, 5)
	assert.Equal(t, list[1], after[1])
	assert.Equal(t, list[3], after[2])
	_, ok := ts.Expenses.Get(list[2].ID)
	assert.False(t, ok)
}

func TestStore_DeleteOnlyRecord(t *testing.T) {
	ts := testutil.SetupTestStore(t, testutil.NewExpenseBuilder().WithExpense("Coffee", 4.5, model.CategoryFood).Build())

	require.NoError(t, ts.Expenses.Remove(context.Background(), ts.Expenses.List()[0].ID))

	assert.Equal(t, 0.0, aggregate.Total(ts.Expenses.List()))
	assert.Empty(t, aggregate.ByCategoryMap(ts.Expenses.List()))

	raw, _, err := ts.Memory.Get(context.Background(), service.KeyExpenses)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestStore_PersistsEveryMutation(t *testing.T) {
	ts := testutil.SetupTestStore(t, nil)
	ctx := context.Background()

	created, err := ts.Expenses.Add(ctx, "Coffee", 4.5, model.CategoryFood)
	require.NoError(t, err)
	assert.Equal(t, 1, ts.Memory.Writes())

	_, err = ts.Expenses.Update(ctx, created.ID, "Coffee", 10, model.CategoryFood)
	require.NoError(t, err)
	assert.Equal(t, 2, ts.Memory.Writes())

	require.NoError(t, ts.Expenses.Remove(ctx, created.ID))
	assert.Equal(t, 3, ts.Memory.Writes())
}

func TestStore_RoundTripThroughSQLite(t *testing.T) {
	ts := testutil.SetupSQLiteStore(t, testutil.NewExpenseBuilder().WithBasicExpenses().Build())

	reloaded := ts.Reload()

	assert.Equal(t, ts.Expenses.List(), reloaded.List())
}

func TestStore_PersistenceFailureKeepsMemoryState(t *testing.T) {
	ts := testutil.SetupTestStore(t, nil)
	ctx := context.Background()
	quota := errors.New("quota exceeded")
	ts.Memory.FailWrites(quota)

	var notified int
	ts.Expenses.Subscribe(func([]model.Expense) { notified++ })

	created, err := ts.Expenses.Add(ctx, "Coffee", 4.5, model.CategoryFood)

	var persistErr *common.PersistenceError
	require.ErrorAs(t, err, &persistErr)
	assert.ErrorIs(t, err, quota)
	assert.True(t, common.IsWarning(err))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, ts.Expenses.Len())
	assert.Equal(t, 1, notified)

	ts.Memory.FailWrites(nil)
	_, err = ts.Expenses.Add(ctx, "Bus", 2.25, model.CategoryTransport)
	require.NoError(t, err)

	reloaded := ts.Reload()
	assert.Len(t, reloaded.List(), 2)
}

func TestStore_SubscribersRunAfterPersist(t *testing.T) {
	ts := testutil.SetupTestStore(t, nil)
	ctx := context.Background()

	var calls []string
	var seen []int
	ts.Expenses.Subscribe(func(expenses []model.Expense) {
		raw, _, err := ts.Memory.Get(ctx, service.KeyExpenses)
		require.NoError(t, err)
		persisted, err := expense.Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, expenses, persisted)
		calls = append(calls, "first")
		seen = append(seen, len(expenses))
	})
	unsubscribe := ts.Expenses.Subscribe(func([]model.Expense) {
		calls = append(calls, "second")
	})

	_, err := ts.Expenses.Add(ctx, "Coffee", 4.5, model.CategoryFood)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)

	unsubscribe()
	_, err = ts.Expenses.Add(ctx, "Bus", 2.25, model.CategoryTransport)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "first"}, calls)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestStore_ListIsACopy(t *testing.T) {
	ts := testutil.SetupTestStore(t, testutil.NewExpenseBuilder().WithExpense("Coffee", 4.5, model.CategoryFood).Build())

	list := ts.Expenses.List()
	list[0].Description = "mutated"

	assert.Equal(t, "Coffee", ts.Expenses.List()[0].Description)
}

func TestStore_AddSkipsCollidingIDs(t *testing.T) {
	ids := []string{"same", "same", "other"}
	next := 0
	gen := func() string {
		id := ids[next]
		next++
		return id
	}
	ts := testutil.SetupTestStore(t, nil, expense.WithIDGenerator(gen))
	ctx := context.Background()

	first, err := ts.Expenses.Add(ctx, "Coffee", 4.5, model.CategoryFood)
	require.NoError(t, err)
	second, err := ts.Expenses.Add(ctx, "Bus", 2.25, model.CategoryTransport)
	require.NoError(t, err)

	assert.Equal(t, model.ExpenseID("same"), first.ID)
	assert.Equal(t, model.ExpenseID("other"), second.ID)
}

func TestStore_Load(t *testing.T) {
	tests := []struct {
		name        string
		stored      string
		store       bool
		wantLen     int
		wantWarn    bool
		wantFirst   string
		wantSkipped bool
	}{
		{name: "missing key", store: false, wantLen: 0},
		{name: "empty array", stored: "[]", store: true, wantLen: 0},
		{
			name:      "legacy numeric ids",
			stored:    `[{"id":1717171717171,"description":"Coffee","amount":4.5,"category":"Food"},{"id":1717171717999,"description":"Bus","amount":2.25,"category":"Transport"}]`,
			store:     true,
			wantLen:   2,
			wantFirst: "1717171717171",
		},
		{name: "corrupt payload", stored: "{not json", store: true, wantLen: 0, wantWarn: true},
		{
			name: "invalid records skipped",
			stored: `[{"id":"a","description":"Coffee","amount":4.5,"category":"Food"},` +
				`{"id":"b","description":"Refund","amount":-3,"category":"Food"},` +
				`{"id":"c","description":"Flight","amount":300,"category":"Travel"},` +
				`{"id":"a","description":"Copy","amount":1,"category":"Other"},` +
				`{"id":"d","description":"  ","amount":1,"category":"Other"},` +
				`{"id":"e","description":" Bus ","amount":2.25,"category":"Transport"}]`,
			store:       true,
			wantLen:     2,
			wantWarn:    true,
			wantFirst:   "a",
			wantSkipped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mem := storage.NewMemoryStorage()
			if tt.store {
				require.NoError(t, mem.Set(ctx, service.KeyExpenses, tt.stored))
			}

			store := expense.New(mem)
			err := store.Load(ctx)
			if tt.wantWarn {
				assert.ErrorIs(t, err, common.ErrPersistence)
				assert.True(t, common.IsWarning(err))
				assert.Equal(t, tt.wantSkipped, errors.Is(err, expense.ErrInvalidRecords))
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantLen, store.Len())
			if tt.wantFirst != "" {
				assert.Equal(t, model.ExpenseID(tt.wantFirst), store.List()[0].ID)
			}
		})
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := []model.Expense{
		{ID: "a", Description: "Coffee", Amount: 4.5, Category: model.CategoryFood},
		{ID: "b", Description: "Rent", Amount: 1200.99, Category: model.CategoryBills},
		{ID: "c", Description: "Gift", Amount: 0.01, Category: model.CategoryOther},
	}

	raw, err := expense.Encode(original)
	require.NoError(t, err)

	decoded, err := expense.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)

	empty, err := expense.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)
}

func TestStore_Scenarios(t *testing.T) {
	t.Run("coffee and bus", func(t *testing.T) {
		ts := testutil.SetupTestStore(t, nil)
		ctx := context.Background()

		_, err := ts.Expenses.Add(ctx, "Coffee", 4.5, model.CategoryFood)
		require.NoError(t, err)
		_, err = ts.Expenses.Add(ctx, "Bus", 2.25, model.CategoryTransport)
		require.NoError(t, err)

		list := ts.Expenses.List()
		assert.Equal(t, 6.75, aggregate.Total(list))
		assert.Equal(t, map[model.Category]float64{
			model.CategoryFood:      4.5,
			model.CategoryTransport: 2.25,
		}, aggregate.ByCategoryMap(list))
	})

	t.Run("edit amount only", func(t *testing.T) {
		ts := testutil.SetupTestStore(t, nil)
		ctx := context.Background()

		created, err := ts.Expenses.Add(ctx, "Coffee", 4.5, model.CategoryFood)
		require.NoError(t, err)
		_, err = ts.Expenses.Update(ctx, created.ID, created.Description, 10.0, created.Category)
		require.NoError(t, err)

		assert.Equal(t, 1, ts.Expenses.Len())
		assert.Equal(t, 10.0, aggregate.Total(ts.Expenses.List()))
	})
}
