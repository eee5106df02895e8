package main

import (
	"github.com/Veraticus/spend/internal/tui"
	"github.com/spf13/cobra"
)

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive expense tracker",
		Long: `Open the full-screen expense tracker.

The list, the add/edit form and the category breakdown share one screen.
Press ? inside the UI for key bindings. Logs go to the configured log file.`,
		RunE: runUI,
	}
}

func runUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	s, err := openSession(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	return tui.Run(ctx,
		tui.WithStore(s.expenses),
		tui.WithTheme(s.theme),
		tui.WithCurrency(s.settings.Currency),
	)
}
