package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pet-api/internal/adapters/storage/memory"
	"pet-api/internal/adapters/storage/postgres"
	"pet-api/internal/router"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default command)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{Logger: log}

	if cfg.UsesDatabase() {
		db, err := postgres.Open(ctx, cfg.DBDSN)
		if err != nil {
			log.Error("database unavailable", map[string]any{"error": err.Error()})
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Warn("database close failed", map[string]any{"error": err.Error()})
			}
		}()

		if cfg.AutoMigrate {
			applied, err := postgres.Migrate(ctx, db)
			if err != nil {
				log.Error("migrations failed", map[string]any{"error": err.Error()})
				return err
			}
			log.Info("migrations checked", map[string]any{"applied": applied})
		}

		opts.PetRepo = postgres.NewPetsRepo(db)
		opts.DB = db
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
		opts.PetRepo = memory.NewPetRepo()
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": cfg.ShutdownTimeout.String()})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
		return err
	}
	return nil
}
