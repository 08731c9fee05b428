package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"spaceexplorer/internal/config"
	"spaceexplorer/internal/logger"
	"spaceexplorer/internal/server"
	"spaceexplorer/internal/storage"
)

func main() {
	outDir := flag.String("out", "snapshots", "directory snapshots are written to")
	keyword := flag.String("q", "nebula", "image library search keyword (empty skips search)")
	question := flag.String("ask", "", "question for the chat model (empty skips chat)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("❌ Failed to load configuration", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	components, err := server.NewComponents(cfg)
	if err != nil {
		logger.Fatal("❌ Failed to create components", err)
	}

	store, err := storage.NewLocalStorageClient(*outDir)
	if err != nil {
		logger.Fatal("❌ Failed to open snapshot storage", err)
	}
	defer store.Close()

	manifest, err := NewSnapshotRunner(components, store).Run(ctx, *keyword, *question)
	if err != nil {
		logger.Fatal("❌ Snapshot failed", err)
	}

	logger.Infof("📁 Snapshot directory: %s", store.SnapshotDir(manifest.Timestamp))
	if len(manifest.Failures) > 0 {
		logger.Warnf("%d component(s) failed: %v", len(manifest.Failures), manifest.Failures)
		stop()
		os.Exit(1)
	}
}
