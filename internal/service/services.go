package service

import (
	"github.com/veridoc/veridoc/internal/config"
	"github.com/veridoc/veridoc/internal/ledger"
	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/internal/metrics"
	"github.com/veridoc/veridoc/internal/store"
)

// Services bundles all business-logic services behind their interfaces.
type Services struct {
	RegistryService RegistryService
	AuthService     AuthService
}

// NewServices constructs every service on top of the shared storages,
// ledger client, write coordinator, notifier, and metrics.
func NewServices(
	storages *store.Storages,
	client ledger.Client,
	coordinator *ledger.Coordinator,
	notifier Notifier,
	m *metrics.Metrics,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	return &Services{
		RegistryService: NewRegistryService(storages.DocumentRepository, client, coordinator, notifier, m, cfg.App, cfg.Workers, logger),
		AuthService:     NewAuthService(storages.AdminRepository, notifier, cfg.App, logger),
	}
}
