package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"FLOWADDR/internal/preview"
)

func newShowCmd(getenv func(string) string) *cobra.Command {
	var (
		in    displayInputs
		boxed bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every screen of the address verification menu",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := in.resolve(cmd, getenv)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mode=%s expert=%v path=%s\n", s.ctx.Mode, s.ctx.Expert, s.ctx.Path)
			return preview.Print(cmd.OutOrStdout(), s.ctx, s.labelCap, s.valueCap, boxed)
		},
	}
	in.bind(cmd)
	cmd.Flags().BoolVar(&boxed, "boxed", false, "draw each page as a device screen")
	return cmd
}

func newPreviewCmd(getenv func(string) string) *cobra.Command {
	var in displayInputs
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Step through the verification menu interactively",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := in.resolve(cmd, getenv)
			if err != nil {
				return err
			}
			approved, err := runPreview(cmd, s)
			if err != nil {
				return err
			}
			if approved {
				fmt.Fprintln(cmd.OutOrStdout(), "approved")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "rejected")
			}
			return nil
		},
	}
	in.bind(cmd)
	return cmd
}

func runPreview(cmd *cobra.Command, s screen) (bool, error) {
	return preview.Run(s.ctx, s.labelCap, s.valueCap,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
}
