package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spaceexplorer/internal/config"
	"spaceexplorer/internal/logger"
	"spaceexplorer/internal/server"
)

// newHTTPServer builds the server with its routes
func newHTTPServer(cfg *config.Config) (*http.Server, error) {
	components, err := server.NewComponents(cfg)
	if err != nil {
		return nil, err
	}

	srv, err := server.NewServer(cfg, components.Images, components.Weather, components.Chat)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.SetupRoutes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.LLMTimeout + 30*time.Second, // Chat answers can take up to LLM_TIMEOUT
		IdleTimeout:       60 * time.Second,
	}, nil
}

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	logger.Info("Starting Space Explorer", map[string]interface{}{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"version":     config.GetVersion(),
		"user":        cfg.CurrentUser,
		"mockup":      cfg.MockupMode,
	})

	httpServer, err := newHTTPServer(cfg)
	if err != nil {
		logger.Fatal("Failed to create server", err)
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}
