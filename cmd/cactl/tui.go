package main

import (
	"github.com/spf13/cobra"

	"layered-ca/internal/tui"
)

func newTUICmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Play a scene in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := r.load(cmd)
			if err != nil {
				return err
			}
			log, err := r.presenterLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()
			sc, err := r.scene(log)
			if err != nil {
				return err
			}
			return tui.Run(sc, cfg.TPS, cfg.Seed)
		},
	}
}
