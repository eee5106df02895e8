package main

import (
	"github.com/Veraticus/spend/internal/report"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals by category",
		Long: `Show the overall total, the per-category breakdown and every expense as a
formatted report. Use --plain for the markdown source.`,
		Args: cobra.NoArgs,
		RunE: runSummary,
	}

	cmd.Flags().Bool("plain", false, "print markdown without terminal styling")
	cmd.Flags().Int("width", report.DefaultWordWrap, "column to wrap the report at")

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	plain, _ := cmd.Flags().GetBool("plain")
	width, _ := cmd.Flags().GetInt("width")

	s, err := openSession(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	summary := report.NewSummary(s.expenses.List(), s.formatter)
	return report.Write(cmd.OutOrStdout(), summary, report.Options{
		Style:    report.StyleFor(s.theme.Mode()),
		WordWrap: width,
		Plain:    plain,
	})
}
