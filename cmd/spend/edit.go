package main

import (
	"fmt"

	"github.com/Veraticus/spend/internal/cli"
	"github.com/Veraticus/spend/internal/common"
	"github.com/Veraticus/spend/internal/form"
	"github.com/spf13/cobra"
)

func editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <expense-id>",
		Short: "Change an existing expense",
		Long: `Change an existing expense.

The id may be shortened to any unique prefix. Values not given as flags are
prompted for, with the current value as the default.`,
		Example: `  spend edit 3f2a -a 5.25
  spend edit 3f2a`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().StringP("description", "d", "", "new description")
	cmd.Flags().StringP("amount", "a", "", "new amount")
	cmd.Flags().StringP("category", "c", "", "new category")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	current, err := s.resolveID(args[0])
	if err != nil {
		return err
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Cancelled. The expense was not changed.")
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	controller := form.NewController(s.expenses)
	controller.StartEdit(current)

	// Any flag means a scripted edit: untouched fields keep their values.
	flags := cmd.Flags()
	if flags.Changed("description") || flags.Changed("amount") || flags.Changed("category") {
		if v, _ := flags.GetString("description"); flags.Changed("description") {
			controller.SetDescription(v)
		}
		if v, _ := flags.GetString("amount"); flags.Changed("amount") {
			controller.SetAmount(v)
		}
		if v, _ := flags.GetString("category"); flags.Changed("category") {
			controller.SetCategory(parseCategory(v))
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatTitle(controller.Title()))
		if err := fillFields(ctx, cmd, controller, current.Category); err != nil {
			return err
		}
	}

	saved, err := controller.Submit(ctx)
	if err != nil && !common.IsWarning(err) {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Updated "+s.describe(saved)))
	return finish(cmd.ErrOrStderr(), err)
}
