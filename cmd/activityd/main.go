// cmd/activityd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/handler"
	"github.com/mergington/activities/internal/service"
	"github.com/mergington/activities/internal/store"
	"github.com/mergington/activities/internal/store/memory"
	"github.com/mergington/activities/internal/store/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := cfg.NewLogger()

	// ── 1. Open the activity directory ───────────────────────────────────
	var directory store.Directory
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		directory, err = sqlite.Open(cfg.SQLiteDSN, store.Seed())
		if err != nil {
			log.Error("open sqlite store", "error", err)
			os.Exit(1)
		}
	default:
		directory = memory.New(store.Seed())
	}
	defer directory.Close()
	log.Info("directory ready", "driver", cfg.StoreDriver)

	// ── 2. Wire up layers ────────────────────────────────────────────────
	svc := service.New(directory)
	h := handler.NewActivityHandler(svc)
	router := handler.NewRouter(h, log, cfg.WebDir)

	// ── 3. Start server with graceful shutdown ───────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
