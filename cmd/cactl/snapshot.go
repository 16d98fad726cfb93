package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"layered-ca/internal/render"
)

func newSnapshotCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Run a scene and write the composited frame as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			out, _ := cmd.Flags().GetString("out")
			dt, _ := cmd.Flags().GetFloat64("dt")

			if _, err := r.load(cmd); err != nil {
				return err
			}
			log, err := r.logger(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			sc, err := r.scene(log)
			if err != nil {
				return err
			}
			eng := sc.Engine()
			rend := render.New(eng.Width(), eng.Height())
			for i := 0; i < steps; i++ {
				eng.Step(dt)
			}
			rend.DrawAll(eng.Layers())

			if err := writePNG(out, rend); err != nil {
				return err
			}
			log.Info("snapshot written", zap.String("path", out), zap.Uint64("tick", eng.Ticks()))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, tick %d)\n", out, eng.Width(), eng.Height(), eng.Ticks())
			return nil
		},
	}
	cmd.Flags().Int("steps", 100, "Number of ticks to run before capturing")
	cmd.Flags().String("out", "frame.png", "Output PNG path")
	cmd.Flags().Float64("dt", 1000.0/60, "Elapsed milliseconds passed to each step")
	return cmd
}

func writePNG(path string, r *render.Renderer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, r.Frame()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return f.Close()
}
