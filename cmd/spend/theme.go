package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/spend/internal/cli"
	"github.com/Veraticus/spend/internal/common"
	"github.com/Veraticus/spend/internal/model"
	"github.com/spf13/cobra"
)

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the light/dark theme",
		Args:  cobra.NoArgs,
		RunE:  runThemeShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE:  runThemeShow,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE:  runThemeToggle,
	})
	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Choose a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(model.ThemeLight), string(model.ThemeDark)},
		RunE:      runThemeSet,
	})

	return cmd
}

func runThemeShow(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Fprintln(cmd.OutOrStdout(), s.theme.Mode())
	return nil
}

func runThemeToggle(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	mode, err := s.theme.Toggle(cmd.Context())
	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Switched to %s theme.", mode)))
	return finish(cmd.ErrOrStderr(), err)
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	mode := model.ThemeMode(strings.ToLower(strings.TrimSpace(args[0])))
	err = s.theme.Set(cmd.Context(), mode)
	if err != nil && !common.IsWarning(err) {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Using %s theme.", mode)))
	return finish(cmd.ErrOrStderr(), err)
}
