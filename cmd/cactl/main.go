package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"layered-ca/internal/app"
	"layered-ca/internal/engine"
	"layered-ca/internal/logging"
	"layered-ca/internal/scene"
	_ "layered-ca/internal/sims/briansbrain"
	_ "layered-ca/internal/sims/elementary"
	_ "layered-ca/internal/sims/life"
	_ "layered-ca/internal/sims/paint"
	_ "layered-ca/internal/sims/sand"
	_ "layered-ca/internal/sims/sandlife"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// root carries the configuration shared by every subcommand.
type root struct {
	cfg *app.Config
	fs  *flag.FlagSet
}

func newRootCmd() *cobra.Command {
	r := &root{cfg: app.NewConfig(), fs: flag.NewFlagSet("cactl", flag.ContinueOnError)}
	r.cfg.Bind(r.fs)

	rootCmd := &cobra.Command{
		Use:   "cactl",
		Short: "Run layered cellular automata without a window",
		Long: `cactl drives the registered scenes headlessly.

It can step a scene for a fixed number of ticks, write the composited
frame as a PNG, or play the scene in the terminal.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().AddGoFlagSet(r.fs)

	rootCmd.AddCommand(
		newListCmd(),
		newRunCmd(r),
		newSnapshotCmd(r),
		newTUICmd(r),
	)
	return rootCmd
}

// load resolves the configuration file and flags for cmd.
func (r *root) load(cmd *cobra.Command) (*app.Config, error) {
	var explicit []string
	r.fs.VisitAll(func(f *flag.Flag) {
		if cmd.Flags().Changed(f.Name) {
			explicit = append(explicit, f.Name)
		}
	})
	if err := r.cfg.LoadFile(r.cfg.File, explicit); err != nil {
		return nil, err
	}
	r.cfg.Normalize()
	return r.cfg, nil
}

// logger builds the run logger tagged with a fresh run id.
func (r *root) logger(cmd *cobra.Command) (*zap.Logger, error) {
	l, err := logging.New(r.cfg.LogLevel, r.cfg.LogOutputs()...)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return l.With(zap.String("run_id", uuid.NewString()), zap.String("command", cmd.Name())), nil
}

// presenterLogger is the logger for commands that own the terminal. Without
// a log file it discards everything.
func (r *root) presenterLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if r.cfg.LogFile == "" {
		return zap.NewNop(), nil
	}
	return r.logger(cmd)
}

// scene builds the configured scene with extra engine options.
func (r *root) scene(log *zap.Logger, opts ...engine.Option) (scene.Scene, error) {
	opts = append([]engine.Option{engine.WithLogger(log)}, opts...)
	sc, err := scene.New(r.cfg.Scene, r.cfg.SceneOptions(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	return sc, nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered scenes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scene.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
