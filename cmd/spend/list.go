package main

import (
	"fmt"

	"github.com/Veraticus/spend/internal/cli"
	"github.com/Veraticus/spend/internal/common"
	"github.com/Veraticus/spend/internal/model"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded expenses",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}

	cmd.Flags().StringP("category", "c", "", "only show expenses in this category")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	expenses := s.expenses.List()

	if raw, _ := cmd.Flags().GetString("category"); raw != "" {
		category, ok := model.ParseCategory(raw)
		if !ok {
			return common.NewValidationError("category", fmt.Sprintf("Unknown category %q.", raw))
		}
		filtered := expenses[:0]
		for _, e := range expenses {
			if e.Category == category {
				filtered = append(filtered, e)
			}
		}
		expenses = filtered
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderExpenseTable(expenses, s.formatter.Format, s.theme.Background()))
	return nil
}
