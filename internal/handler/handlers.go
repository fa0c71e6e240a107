package handler

import (
	"github.com/veridoc/veridoc/internal/config"
	"github.com/veridoc/veridoc/internal/handler/http"
	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
