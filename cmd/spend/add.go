package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/spend/internal/cli"
	"github.com/Veraticus/spend/internal/common"
	"github.com/Veraticus/spend/internal/form"
	"github.com/Veraticus/spend/internal/model"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long: `Record a new expense.

Values not given as flags are prompted for:
  - Description
  - Amount (a positive number)
  - Category (Food, Transport, Bills, Entertainment, Shopping, Other)`,
		Example: `  spend add -d Coffee -a 4.50 -c Food
  spend add`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().StringP("description", "d", "", "what the money was spent on")
	cmd.Flags().StringP("amount", "a", "", "amount spent")
	cmd.Flags().StringP("category", "c", "", "expense category (default Food)")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Cancelled. No expense was saved.")
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	controller := form.NewController(s.expenses)
	if err := fillFields(ctx, cmd, controller, model.DefaultCategory); err != nil {
		return err
	}

	saved, err := controller.Submit(ctx)
	if err != nil && !common.IsWarning(err) {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %s (%s)", s.describe(saved), saved.ID)))
	return finish(cmd.ErrOrStderr(), err)
}

// fillFields copies flag values into the controller and prompts for the
// ones that were not given. The category is only asked for when another
// field had to be prompted.
func fillFields(ctx context.Context, cmd *cobra.Command, c *form.Controller, defCategory model.Category) error {
	prompter := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	flags := cmd.Flags()
	fields := c.Fields()
	prompted := false

	if flags.Changed("description") {
		v, _ := flags.GetString("description")
		c.SetDescription(v)
	} else {
		v, err := prompter.Ask(ctx, "Description", fields.Description)
		if err != nil {
			return fmt.Errorf("failed to get description: %w", err)
		}
		c.SetDescription(v)
		prompted = true
	}

	if flags.Changed("amount") {
		v, _ := flags.GetString("amount")
		c.SetAmount(v)
	} else {
		v, err := prompter.Ask(ctx, "Amount", fields.Amount)
		if err != nil {
			return fmt.Errorf("failed to get amount: %w", err)
		}
		c.SetAmount(v)
		prompted = true
	}

	switch {
	case flags.Changed("category"):
		v, _ := flags.GetString("category")
		c.SetCategory(parseCategory(v))
	case prompted:
		category, err := prompter.ChooseCategory(ctx, defCategory)
		if err != nil {
			return fmt.Errorf("failed to get category: %w", err)
		}
		c.SetCategory(category)
	default:
		c.SetCategory(defCategory)
	}

	return nil
}
