//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"layered-ca/internal/app"
	"layered-ca/internal/engine"
	"layered-ca/internal/logging"
	"layered-ca/internal/metrics"
	"layered-ca/internal/scene"
	_ "layered-ca/internal/sims/briansbrain"
	_ "layered-ca/internal/sims/elementary"
	_ "layered-ca/internal/sims/life"
	_ "layered-ca/internal/sims/paint"
	_ "layered-ca/internal/sims/sand"
	_ "layered-ca/internal/sims/sandlife"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.LoadFile(cfg.File, app.Explicit(flag.CommandLine)); err != nil {
		log.Fatal(err)
	}
	cfg.Normalize()

	logger, err := logging.New(cfg.LogLevel, cfg.LogOutputs()...)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	opts := []engine.Option{engine.WithLogger(logger)}
	if cfg.MetricsAddr != "" {
		reg := metrics.NewRegistry()
		srv := reg.Serve(cfg.MetricsAddr, logger)
		defer srv.Close()
		opts = append(opts, engine.WithObserver(reg.Collector(cfg.Scene)))
	}

	sc, err := scene.New(cfg.Scene, cfg.SceneOptions(), opts...)
	if err != nil {
		logger.Fatal("create scene", zap.Error(err), zap.Strings("available", scene.Names()))
	}

	game := app.New(sc, cfg, logger)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("layered-ca: " + sc.Name())
	ebiten.SetTPS(max(cfg.TPS, ebiten.DefaultTPS))
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run", zap.Error(err))
	}
}
