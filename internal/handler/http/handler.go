package http

import (
	"github.com/pankajshindecodes-stack/Eventroop/internal/adapter"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/service"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
)

type Handler struct {
	services *service.Services

	// db and media are only touched by the health endpoint; every other
	// handler reaches storage through the service layer.
	db    *store.DB
	media adapter.MediaStore

	logger *logger.Logger
}

func NewHandler(services *service.Services, db *store.DB, media adapter.MediaStore, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		db:       db,
		media:    media,
		logger:   logger,
	}
}
