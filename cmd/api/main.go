package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dog-sitters/internal/adapters/auth/supabase"
	"dog-sitters/internal/adapters/notify/kafka"
	pg "dog-sitters/internal/adapters/storage/postgres"
	rds "dog-sitters/internal/adapters/storage/redis"
	"dog-sitters/internal/config"
	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/platform/logger"
	"dog-sitters/internal/platform/metrics"
	"dog-sitters/internal/router"
)

// @title Dog Sitters API
// @version 1.0
// @description Listado y filtrado de sitters y solicitudes, wizards de registro y publicación.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	m := metrics.NewManager()
	opts := router.Options{Config: cfg, Log: log, Metrics: m}

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		opts.DB = db
	}

	if cfg.RedisAddr != "" {
		client, err := rds.NewClient(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer client.Close()
		opts.Redis = client
	}

	if !cfg.DevAuth() {
		client, err := supabase.NewClient(supabase.Config{
			BaseURL: cfg.AuthBaseURL,
			APIKey:  cfg.AuthAPIKey,
		})
		if err != nil {
			return err
		}
		opts.AuthVerifier = supabase.NewVerifier(client)
	}

	var pub *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		pub = kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer pub.Close()
		opts.Notifier = pub
	}

	app, err := router.New(ctx, opts)
	if err != nil {
		return err
	}

	if pub != nil {
		listener, err := kafka.NewListener(ctx, cfg.KafkaBrokers, cfg.KafkaTopic, log, func(ctx context.Context, c catalog.Change) {
			m.CatalogChange(string(c.Kind), "consumed")
			app.Catalog.Refresh(ctx)
		})
		if err != nil {
			return err
		}
		go func() {
			if err := listener.Run(ctx); err != nil {
				log.Error("kafka listener stopped", map[string]any{"error": err.Error()})
			}
		}()
	}

	if cfg.CatalogRefreshInterval > 0 {
		go refreshLoop(ctx, app.Catalog, cfg.CatalogRefreshInterval)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      app.Handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":           cfg.Addr,
			"catalog_source": cfg.CatalogSource,
			"postgres":       opts.DB != nil,
			"redis":          opts.Redis != nil,
			"kafka":          pub != nil,
			"dev_auth":       cfg.DevAuth(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// refreshLoop recarga el catálogo cada interval (cambios hechos por fuera
// de este proceso, p.ej. el backend remoto).
func refreshLoop(ctx context.Context, store *catalog.Store, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			store.Refresh(ctx)
		}
	}
}
