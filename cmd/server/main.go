package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/xtding233/draw-odds-backend/internal/config"
	"github.com/xtding233/draw-odds-backend/internal/game"
	"github.com/xtding233/draw-odds-backend/internal/rpc"
	"github.com/xtding233/draw-odds-backend/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	presets := game.NewLoader(cfg.ConfigDir)
	if _, _, err := presets.Resolve("", "", game.Overrides{}); err != nil {
		return fmt.Errorf("default preset: %w", err)
	}

	grpcServer, err := rpc.NewWithAddr(cfg.GRPCAddr, presets, log)
	if err != nil {
		return err
	}
	httpServer := server.New(cfg.HTTPAddr, presets, log, server.Options{APIKey: cfg.APIKey})
	watcher := game.WatchLoader(presets, cfg.WatchInterval, log)

	log.Infow("starting", "http", cfg.HTTPAddr, "grpc", cfg.GRPCAddr, "config_dir", cfg.ConfigDir)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpServer.Serve(ctx) })
	g.Go(func() error { return grpcServer.Serve(ctx) })
	g.Go(func() error { return watcher.Run(ctx) })

	if err := g.Wait(); err != nil {
		log.Errorw("server stopped", "error", err)
		return err
	}
	log.Info("server stopped")
	return nil
}
