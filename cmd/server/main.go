// Package main starts the wishing machine HTTP service.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/api/rest"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/app"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/content"
	sqlitestore "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/game/storage/sqlite"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/config"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/otel"
)

// Config holds server configuration.
type Config struct {
	Addr           string `env:"WISHING_MACHINE_ADDR" envDefault:":8080"`
	DBPath         string `env:"WISHING_MACHINE_DB_PATH" envDefault:"data/game.db"`
	ContentDir     string `env:"WISHING_MACHINE_CONTENT_DIR" envDefault:"content"`
	AdminJWTSecret string `env:"WISHING_MACHINE_ADMIN_JWT_SECRET"`
}

func main() {
	log.SetPrefix("[WISHING-MACHINE] ")

	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, "wishing-machine")
	if err != nil {
		config.Exitf("setup tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	contentSet, problems := content.Load(cfg.ContentDir)
	for _, problem := range problems {
		log.Printf("content: %v", problem)
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			config.Exitf("create data dir: %v", err)
		}
	}
	store, err := sqlitestore.Open(cfg.DBPath, content.PathwayBonuses)
	if err != nil {
		config.Exitf("open store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	service, err := app.New(store, contentSet)
	if err != nil {
		config.Exitf("build service: %v", err)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           rest.NewServer(service, []byte(cfg.AdminJWTSecret)).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown server: %v", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Exitf("serve: %v", err)
		}
	}
}
