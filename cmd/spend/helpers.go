package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Veraticus/spend/internal/cli"
	"github.com/Veraticus/spend/internal/common"
	"github.com/Veraticus/spend/internal/config"
	"github.com/Veraticus/spend/internal/expense"
	"github.com/Veraticus/spend/internal/model"
	"github.com/Veraticus/spend/internal/service"
	"github.com/Veraticus/spend/internal/storage"
	"github.com/Veraticus/spend/internal/theme"
	"github.com/Veraticus/spend/internal/tui/viewmodel"
	"github.com/spf13/viper"
)

// session is the state every command works against.
type session struct {
	storage   service.Storage
	expenses  *expense.Store
	theme     *theme.Controller
	formatter viewmodel.Formatter
	settings  config.Settings
}

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context, dbPath string) (service.Storage, error) {
	store, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// openSession opens storage and loads expenses and the theme preference.
// Unreadable saved state is reported on warn and replaced by defaults.
func openSession(ctx context.Context, warn io.Writer) (*session, error) {
	settings, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, err
	}

	kv, err := initStorage(ctx, settings.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	s := &session{
		storage:   kv,
		expenses:  expense.New(kv),
		theme:     theme.New(kv),
		formatter: viewmodel.NewFormatter(settings.Currency),
		settings:  settings,
	}

	if err := s.expenses.Load(ctx); err != nil {
		if !common.IsWarning(err) {
			s.Close()
			return nil, err
		}
		if errors.Is(err, expense.ErrInvalidRecords) {
			printWarning(warn, "Some saved expenses were invalid and were skipped.")
		} else {
			printWarning(warn, "Saved expenses could not be read; starting with an empty list.")
		}
	}
	if err := s.theme.Load(ctx); err != nil {
		printWarning(warn, "Saved theme could not be read; using the light theme.")
	}

	return s, nil
}

// Close releases the storage.
func (s *session) Close() {
	if err := s.storage.Close(); err != nil {
		slog.Error("failed to close storage", "error", err)
	}
}

// resolveID finds an expense by exact id or unique id prefix.
func (s *session) resolveID(arg string) (model.Expense, error) {
	arg = strings.TrimSpace(arg)
	if e, ok := s.expenses.Get(model.ExpenseID(arg)); ok {
		return e, nil
	}

	var matches []model.Expense
	if arg != "" {
		for _, e := range s.expenses.List() {
			if strings.HasPrefix(e.ID.String(), arg) {
				matches = append(matches, e)
			}
		}
	}

	switch len(matches) {
	case 0:
		return model.Expense{}, &common.NotFoundError{Kind: "expense", ID: arg}
	case 1:
		return matches[0], nil
	default:
		return model.Expense{}, common.NewUserError(
			fmt.Sprintf("%q matches %d expenses; use more of the id.", arg, len(matches)),
			fmt.Errorf("ambiguous expense id %q", arg),
		)
	}
}

// describe renders a one-line summary of e.
func (s *session) describe(e model.Expense) string {
	return fmt.Sprintf("%s · %s · %s", e.Description, e.Category, s.formatter.Format(e.Amount))
}

// finish turns a persistence warning into a printed notice so the command
// still succeeds; any other error is returned.
func finish(warn io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if common.IsWarning(err) {
		printWarning(warn, common.UserMessage(err))
		return nil
	}
	return err
}

func printWarning(w io.Writer, message string) {
	fmt.Fprintln(w, cli.FormatWarning(message))
}

// parseCategory accepts any case. Unknown names are passed through so
// validation reports them.
func parseCategory(raw string) model.Category {
	if c, ok := model.ParseCategory(raw); ok {
		return c
	}
	return model.Category(strings.TrimSpace(raw))
}
