package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/veridoc/veridoc/internal/config"
	"github.com/veridoc/veridoc/internal/handler"
	"github.com/veridoc/veridoc/internal/ledger"
	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/internal/metrics"
	"github.com/veridoc/veridoc/internal/notify"
	"github.com/veridoc/veridoc/internal/server"
	"github.com/veridoc/veridoc/internal/service"
	"github.com/veridoc/veridoc/internal/store"
	"github.com/veridoc/veridoc/internal/workers"
	"github.com/veridoc/veridoc/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("registry-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	db, err := connectDatabase(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	ledgerClient, err := ledger.NewRPCClient(cfg.Ledger, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ledger client")
	}

	coordinator := ledger.NewCoordinator(cfg.Ledger.SignerIdentity, cfg.Ledger.ConfirmTimeout, log)
	defer coordinator.Close()

	storages := store.NewStorages(db, log)
	notifier := notify.New(cfg.Notify, log)
	m := metrics.New(prometheus.DefaultRegisterer)

	services := service.NewServices(storages, ledgerClient, coordinator, notifier, m, cfg, log)

	if err = bootstrapAdmin(ctx, services.AuthService, cfg.App); err != nil {
		log.Fatal().Err(err).Msg("error provisioning bootstrap operator")
	}

	reconcileWorker := workers.NewReconcileWorker(ctx, services.RegistryService, cfg.Workers.ReconcileInterval, m, log)
	workers.NewWorkers(reconcileWorker).Run()

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// connectDatabase opens the metadata store selected by the configured
// driver.
func connectDatabase(ctx context.Context, cfg config.Storage, log *logger.Logger) (*store.DB, error) {
	switch cfg.DB.Driver {
	case "sqlite3":
		return store.NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return store.NewConnectPostgres(ctx, cfg.DB, log)
	}
}

// bootstrapAdmin provisions the initial operator account from env-only
// credentials. Skipped entirely when no credentials are configured; an
// already existing account is not an error.
func bootstrapAdmin(ctx context.Context, auth service.AuthService, cfg config.App) error {
	if cfg.BootstrapAdminEmail == "" || cfg.BootstrapAdminPassword == "" {
		return nil
	}

	admin := models.Admin{
		Email:        cfg.BootstrapAdminEmail,
		Name:         cfg.BootstrapAdminName,
		Role:         "issuer",
		Organization: cfg.BootstrapAdminOrg,
	}

	return auth.BootstrapAdmin(ctx, admin, cfg.BootstrapAdminPassword)
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
