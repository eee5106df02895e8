package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/spend/internal/common"
	"github.com/Veraticus/spend/internal/expense"
	"github.com/Veraticus/spend/internal/model"
	"github.com/Veraticus/spend/internal/service"
	"github.com/Veraticus/spend/internal/storage"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes spend against dbPath with stdin as input.
func runCLI(t *testing.T, dbPath, stdin string, args ...string) cliResult {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--db", dbPath, "--log-level", "error"}, args...))

	err := root.ExecuteContext(context.Background())
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func newDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "spend.db")
}

// loadExpenses reads the saved expenses straight from the database.
func loadExpenses(t *testing.T, dbPath string) []model.Expense {
	t.Helper()

	db, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	require.NoError(t, db.Migrate(context.Background()))

	store := expense.New(db)
	require.NoError(t, store.Load(context.Background()))
	return store.List()
}

func loadTheme(t *testing.T, dbPath string) string {
	t.Helper()

	db, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	raw, _, err := db.Get(context.Background(), service.KeyTheme)
	require.NoError(t, err)
	return raw
}

func TestAddWithFlags(t *testing.T) {
	db := newDB(t)

	res := runCLI(t, db, "", "add", "-d", "Coffee", "-a", "4.50", "-c", "food")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Coffee · Food · $4.50")

	expenses := loadExpenses(t, db)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Coffee", expenses[0].Description)
	assert.InDelta(t, 4.5, expenses[0].Amount, 1e-9)
	assert.Equal(t, model.CategoryFood, expenses[0].Category)
	assert.NotEmpty(t, expenses[0].ID)
}

func TestAddDefaultsCategory(t *testing.T) {
	db := newDB(t)

	res := runCLI(t, db, "", "add", "-d", "Lunch", "-a", "11")
	require.NoError(t, res.err)

	expenses := loadExpenses(t, db)
	require.Len(t, expenses, 1)
	assert.Equal(t, model.DefaultCategory, expenses[0].Category)
}

func TestAddInteractive(t *testing.T) {
	db := newDB(t)

	res := runCLI(t, db, "Bus ticket\n2.25\n2\n", "add")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Description")
	assert.Contains(t, res.stdout, "[2] Transport")

	expenses := loadExpenses(t, db)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Bus ticket", expenses[0].Description)
	assert.Equal(t, model.CategoryTransport, expenses[0].Category)
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "blank description",
			args:    []string{"add", "-d", "  ", "-a", "3"},
			message: expense.MsgDescriptionRequired,
		},
		{
			name:    "zero amount",
			args:    []string{"add", "-d", "Tea", "-a", "0"},
			message: expense.MsgAmountInvalid,
		},
		{
			name:    "garbage amount",
			args:    []string{"add", "-d", "Tea", "-a", "abc"},
			message: expense.MsgAmountInvalid,
		},
		{
			name:    "unknown category",
			args:    []string{"add", "-d", "Flight", "-a", "300", "-c", "Travel"},
			message: expense.MsgCategoryInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDB(t)

			res := runCLI(t, db, "", tt.args...)
			require.Error(t, res.err)
			assert.ErrorIs(t, res.err, common.ErrValidation)
			assert.Equal(t, tt.message, common.UserMessage(res.err))
			assert.Empty(t, loadExpenses(t, db))
		})
	}
}

func TestListAndSummary(t *testing.T) {
	db := newDB(t)
	require.NoError(t, runCLI(t, db, "", "add", "-d", "Coffee", "-a", "4.5").err)
	require.NoError(t, runCLI(t, db, "", "add", "-d", "Bus", "-a", "2.25", "-c", "Transport").err)

	list := runCLI(t, db, "", "list")
	require.NoError(t, list.err)
	assert.Contains(t, list.stdout, "Coffee")
	assert.Contains(t, list.stdout, "Bus")
	assert.Contains(t, list.stdout, "Total: $6.75")

	filtered := runCLI(t, db, "", "list", "-c", "transport")
	require.NoError(t, filtered.err)
	assert.NotContains(t, filtered.stdout, "Coffee")
	assert.Contains(t, filtered.stdout, "Total: $2.25")

	bad := runCLI(t, db, "", "list", "-c", "Travel")
	assert.ErrorIs(t, bad.err, common.ErrValidation)

	summary := runCLI(t, db, "", "summary", "--plain")
	require.NoError(t, summary.err)
	assert.Contains(t, summary.stdout, "**Total Expenses:** $6.75 (2 expenses)")
	assert.Contains(t, summary.stdout, "66.7%")
}

func TestListEmpty(t *testing.T) {
	res := runCLI(t, newDB(t), "", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "No expenses")
}

func TestEditWithFlags(t *testing.T) {
	db := newDB(t)
	require.NoError(t, runCLI(t, db, "", "add", "-d", "Coffee", "-a", "4.5").err)
	id := loadExpenses(t, db)[0].ID

	res := runCLI(t, db, "", "edit", id.String()[:8], "-a", "10.0")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Coffee · Food · $10.00")

	expenses := loadExpenses(t, db)
	require.Len(t, expenses, 1)
	assert.Equal(t, id, expenses[0].ID)
	assert.Equal(t, "Coffee", expenses[0].Description)
	assert.InDelta(t, 10.0, expenses[0].Amount, 1e-9)
}

func TestEditInteractiveKeepsDefaults(t *testing.T) {
	db := newDB(t)
	require.NoError(t, runCLI(t, db, "", "add", "-d", "Cinema", "-a", "12", "-c", "Entertainment").err)
	id := loadExpenses(t, db)[0].ID

	// Keep the description, change the amount, keep the category.
	res := runCLI(t, db, "\n15\n\n", "edit", id.String())
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Edit Expense")

	expenses := loadExpenses(t, db)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Cinema", expenses[0].Description)
	assert.InDelta(t, 15.0, expenses[0].Amount, 1e-9)
	assert.Equal(t, model.CategoryEntertainment, expenses[0].Category)
}

func TestEditUnknownID(t *testing.T) {
	res := runCLI(t, newDB(t), "", "edit", "nope", "-a", "1")
	assert.ErrorIs(t, res.err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		args      []string
		wantGone  bool
		wantInOut string
	}{
		{name: "confirmed", stdin: "y\n", wantGone: true, wantInOut: "Deleted Coffee"},
		{name: "declined", stdin: "n\n", wantGone: false, wantInOut: "Deletion cancelled."},
		{name: "no input declines", stdin: "", wantGone: false, wantInOut: "Deletion cancelled."},
		{name: "forced", args: []string{"--force"}, wantGone: true, wantInOut: "Deleted Coffee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDB(t)
			require.NoError(t, runCLI(t, db, "", "add", "-d", "Coffee", "-a", "4.5").err)
			id := loadExpenses(t, db)[0].ID

			args := append([]string{"delete", id.String()}, tt.args...)
			res := runCLI(t, db, tt.stdin, args...)
			require.NoError(t, res.err)
			assert.Contains(t, res.stdout, tt.wantInOut)

			if tt.wantGone {
				assert.Empty(t, loadExpenses(t, db))
			} else {
				assert.Len(t, loadExpenses(t, db), 1)
			}
		})
	}
}

func TestDeleteOnlyExpenseLeavesEmptySummary(t *testing.T) {
	db := newDB(t)
	require.NoError(t, runCLI(t, db, "", "add", "-d", "Coffee", "-a", "4.5").err)
	id := loadExpenses(t, db)[0].ID

	require.NoError(t, runCLI(t, db, "", "delete", id.String(), "-f").err)

	summary := runCLI(t, db, "", "summary", "--plain")
	require.NoError(t, summary.err)
	assert.Contains(t, summary.stdout, "$0.00 (0 expenses)")
	assert.Contains(t, summary.stdout, "No data to display")
}

func TestTheme(t *testing.T) {
	db := newDB(t)

	show := runCLI(t, db, "", "theme")
	require.NoError(t, show.err)
	assert.Equal(t, "light\n", show.stdout)

	toggle := runCLI(t, db, "", "theme", "toggle")
	require.NoError(t, toggle.err)
	assert.Contains(t, toggle.stdout, "Switched to dark theme.")
	assert.Equal(t, `"dark"`, loadTheme(t, db))

	again := runCLI(t, db, "", "theme", "show")
	require.NoError(t, again.err)
	assert.Equal(t, "dark\n", again.stdout)

	set := runCLI(t, db, "", "theme", "set", "LIGHT")
	require.NoError(t, set.err)
	assert.Equal(t, `"light"`, loadTheme(t, db))

	bad := runCLI(t, db, "", "theme", "set", "sepia")
	assert.ErrorIs(t, bad.err, common.ErrValidation)
}

func TestDeleteBlankID(t *testing.T) {
	db := newDB(t)
	require.NoError(t, runCLI(t, db, "", "add", "-d", "Coffee", "-a", "4.5").err)
	require.NoError(t, runCLI(t, db, "", "add", "-d", "Bus", "-a", "2").err)

	// A blank id must not match every expense.
	res := runCLI(t, db, "", "delete", " ", "-f")
	assert.ErrorIs(t, res.err, common.ErrNotFound)
	assert.Len(t, loadExpenses(t, db), 2)
}

func TestListSkipsInvalidSavedExpenses(t *testing.T) {
	dbPath := newDB(t)
	db, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))
	require.NoError(t, db.Set(context.Background(), service.KeyExpenses,
		`[{"id":"a","description":"Coffee","amount":4.5,"category":"Food"},`+
			`{"id":"b","description":"Broken","amount":0,"category":"Food"}]`))
	require.NoError(t, db.Close())

	res := runCLI(t, dbPath, "", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Some saved expenses were invalid and were skipped.")
	assert.Contains(t, res.stdout, "Coffee")
	assert.NotContains(t, res.stdout, "Broken")
	assert.Contains(t, res.stdout, "Total: $4.50")
}

func TestVersion(t *testing.T) {
	res := runCLI(t, newDB(t), "", "version")
	require.NoError(t, res.err)
	assert.Equal(t, "spend dev\n", res.stdout)
}

func TestInvalidCurrencyFlag(t *testing.T) {
	res := runCLI(t, newDB(t), "", "--currency", "ZZZ", "list")
	assert.ErrorIs(t, res.err, common.ErrInvalidConfig)
}
