package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/spend/internal/cli"
	"github.com/Veraticus/spend/internal/form"
	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <expense-id>",
		Aliases: []string{"rm"},
		Short:   "Delete an expense",
		Long: `Delete an expense after confirmation.

The id may be shortened to any unique prefix.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	s, err := openSession(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	target, err := s.resolveID(args[0])
	if err != nil {
		return err
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Cancelled. Nothing was deleted.")
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	out := cmd.OutOrStdout()
	controller := form.NewController(s.expenses)

	if force {
		err = controller.DeleteCurrent(ctx, target.ID, true)
	} else {
		fmt.Fprintln(out, cli.RenderBox("Delete Expense", s.describe(target)))

		prompter := cli.NewPrompter(cmd.InOrStdin(), out)
		confirmed := false
		confirm := func(ctx context.Context, prompt string) (bool, error) {
			ok, err := prompter.Confirm(ctx, prompt)
			confirmed = ok
			return ok, err
		}

		err = controller.RequestDelete(ctx, target.ID, confirm)
		if err == nil && !confirmed {
			fmt.Fprintln(out, cli.FormatInfo("Deletion cancelled."))
			return nil
		}
	}

	if err := finish(cmd.ErrOrStderr(), err); err != nil {
		return err
	}
	fmt.Fprintln(out, cli.FormatSuccess("Deleted "+s.describe(target)))
	return nil
}
