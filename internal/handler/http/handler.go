package http

import (
	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/internal/service"
	"github.com/veridoc/veridoc/internal/validators"
)

type Handler struct {
	services *service.Services

	metaValidator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		metaValidator: validators.NewUploadMetadataValidator(),
		logger:        logger,
	}
}
