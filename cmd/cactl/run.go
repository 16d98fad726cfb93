package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"layered-ca/internal/core"
	"layered-ca/internal/engine"
	"layered-ca/internal/metrics"
	"layered-ca/internal/render"
)

func newRunCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step a scene for a number of ticks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			realtime, _ := cmd.Flags().GetBool("realtime")

			cfg, err := r.load(cmd)
			if err != nil {
				return err
			}
			log, err := r.logger(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			var opts []engine.Option
			if cfg.MetricsAddr != "" {
				reg := metrics.NewRegistry()
				srv := reg.Serve(cfg.MetricsAddr, log)
				defer srv.Close()
				opts = append(opts, engine.WithObserver(reg.Collector(cfg.Scene)))
			}
			sc, err := r.scene(log, opts...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			eng := sc.Engine()
			eng.SetRenderer(render.New(eng.Width(), eng.Height()))
			start := time.Now()
			done := drive(ctx, eng, steps, cfg.TPS, realtime)
			elapsed := time.Since(start)

			log.Info("run finished",
				zap.String("scene", sc.Name()),
				zap.Int("steps", done),
				zap.Duration("elapsed", elapsed),
				zap.Float64("fps", eng.FPS()))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d steps in %s (fps %.1f, scan %s)\n",
				sc.Name(), done, elapsed.Round(time.Millisecond), eng.FPS(), eng.ScanOrder())
			return nil
		},
	}
	cmd.Flags().Int("steps", 100, "Number of ticks to run (0 runs until interrupted)")
	cmd.Flags().Bool("realtime", false, "Pace ticks at --tps instead of running flat out")
	return cmd
}

// drive steps eng until steps ticks have run or ctx is done. In realtime
// mode ticks are paced by a FixedStep at tps; otherwise dt is the measured
// wall time of the previous step.
func drive(ctx context.Context, eng *engine.Engine, steps, tps int, realtime bool) int {
	clock := core.NewFixedStep(tps)
	var wait time.Duration
	if realtime {
		wait = clock.Interval() / 4
	}
	eng.Start()
	defer eng.Stop()
	done := 0
	for steps <= 0 || done < steps {
		select {
		case <-ctx.Done():
			return done
		default:
		}
		if !realtime {
			clock.Advance()
		} else if !clock.ShouldStep() {
			time.Sleep(wait)
			continue
		}
		if eng.Tick(clock.TakeDT()) {
			done++
		}
	}
	return done
}
