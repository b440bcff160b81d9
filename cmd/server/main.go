package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/diewo77/smart-order/auth"
	"github.com/diewo77/smart-order/internal/api"
	"github.com/diewo77/smart-order/internal/config"
	"github.com/diewo77/smart-order/internal/db"
	"github.com/diewo77/smart-order/internal/events"
	"github.com/diewo77/smart-order/internal/handlers"
	"github.com/diewo77/smart-order/internal/logging"
	"github.com/diewo77/smart-order/internal/policy"
	"github.com/diewo77/smart-order/internal/session"
	"github.com/diewo77/smart-order/view"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run storage migrations and exit")

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()
	cfg := config.Load()

	log := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Component: "server"}, os.Stdout)
	slog.SetDefault(log)

	storage, closeStorage, err := openStorage(cfg, log)
	if err != nil {
		log.Error("storage setup failed", "error", err)
		os.Exit(1)
	}
	defer closeStorage()
	if *migrateOnlyFlag {
		log.Info("migrations completed")
		return
	}

	publisher, err := openPublisher(cfg.Events, log)
	if err != nil {
		log.Error("event publisher setup failed", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	client, err := api.New(cfg.API.BaseURL, nil)
	if err != nil {
		log.Error("api client setup failed", "error", err)
		os.Exit(1)
	}

	auth.SetSecret(cfg.Session.Secret)
	auth.SetSecureCookies(cfg.Session.SecureCookie)
	view.SetDevMode(cfg.App.Dev)

	registry := session.NewRegistry(storage, cfg.Session.Namespace, log.With("component", "session"))
	env := &handlers.Env{API: client, Events: publisher}
	app := NewApp(policy.NewRouterConfig(env, registry), log, cfg.Session.RestoreWait)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      app,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Server.Port, "api", cfg.API.BaseURL, "dev", cfg.App.Dev)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
	log.Info("server stopped gracefully")
}

// openStorage returns the per-client storage factory for the session
// registry. The memory driver keeps sessions for the process lifetime only.
func openStorage(cfg *config.Config, log *slog.Logger) (session.StorageFactory, func(), error) {
	if cfg.Storage.Driver == db.DriverMemory {
		log.Warn("sessions are kept in memory and lost on restart")
		return session.NewMemoryStorage().Factory(), func() {}, nil
	}
	gdb, err := db.Open(cfg.Storage, cfg.App.Dev, log)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(gdb, cfg.Storage); err != nil {
		return nil, nil, err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, nil, err
	}
	factory := func(clientID string) session.Storage {
		return db.NewClientStorage(gdb, clientID)
	}
	return factory, func() { _ = sqlDB.Close() }, nil
}

func openPublisher(cfg config.EventsConfig, log *slog.Logger) (events.Publisher, error) {
	if cfg.URL == "" {
		return events.Nop{}, nil
	}
	pub, err := events.DialAMQP(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, err
	}
	log.Info("publishing domain events", "exchange", cfg.Exchange)
	return pub, nil
}
