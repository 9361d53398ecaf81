package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-identity-vault/internal/adapter"
	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/crypto"
	"github.com/MKhiriev/go-identity-vault/internal/handler"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/MKhiriev/go-identity-vault/internal/server"
	"github.com/MKhiriev/go-identity-vault/internal/service"
	"github.com/MKhiriev/go-identity-vault/internal/store"
	"github.com/MKhiriev/go-identity-vault/internal/workers"
	"google.golang.org/grpc/health"
)

const healthServiceName = "identity.v1.Vault"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	// a version stamped at link time wins over configuration
	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log := logger.NewLogger("identity-vault", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to datastore")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	notifier, err := adapter.NewNotifier(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating notifier")
	}

	dispatcher := workers.NewAuditDispatcher(storages.AuditRepository, db.IsRetryable, workers.AuditDispatcherConfig{
		QueueSize:  cfg.Workers.AuditQueueSize,
		Workers:    cfg.Workers.AuditWorkers,
		MaxRetries: cfg.Workers.AuditMaxRetries,
		RetryBase:  cfg.Workers.AuditRetryBase,
	}, log)

	services, err := service.NewServices(storages, cfg, service.Dependencies{
		Credentials: crypto.NewCredentialManager(),
		Vault:       crypto.NewKeyVault(cfg.App.VaultPassphrase),
		Notifier:    notifier,
		AuditQueue:  dispatcher,
		CryptoPool:  workers.NewPool("crypto", cfg.Workers.CryptoConcurrency),
		KeygenPool:  workers.NewPool("keygen", cfg.Workers.KeygenConcurrency),
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	healthServer := health.NewServer()

	handlers, err := handler.NewHandlers(services, cfg, healthServer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	probe := workers.NewHealthProbe(db, healthServer, healthServiceName, cfg.Workers.HealthInterval, log)

	if err = workers.NewWorkers(srv, dispatcher, probe).Run(ctx); err != nil {
		log.Err(err).Msg("identity vault stopped with error")
		return
	}
	log.Info().Msg("identity vault stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
