package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"FLOWADDR/internal/config"
	"FLOWADDR/internal/slot"
)

func newSlotsCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the slot status bitmap and the set-slot payload of each used slot",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile := config.Default()
			if configPath != "" {
				p, err := config.Load(configPath)
				if err != nil {
					return err
				}
				profile = p
			}
			st, err := profile.Store()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			status := st.Status()
			fmt.Fprintf(out, "status %s\n", hex.EncodeToString(status[:]))
			for _, i := range st.Used() {
				s, err := st.Get(i)
				if err != nil {
					return err
				}
				payload, err := slot.EncodeSetSlot(i, s)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "slot %d account=%s path=%s payload=%s\n", i, s.AccountHex(), s.Path, hex.EncodeToString(payload))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "device profile (YAML)")
	return cmd
}
