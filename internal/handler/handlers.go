package handler

import (
	"github.com/pankajshindecodes-stack/Eventroop/internal/adapter"
	"github.com/pankajshindecodes-stack/Eventroop/internal/handler/http"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/service"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
)

// Handlers aggregates the transport handlers of the application. The REST API
// is currently the only transport.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers wires the HTTP handler over the service layer. The database and
// media store are passed through for the health endpoint's collaborator
// checks.
func NewHandlers(services *service.Services, storages *store.Storages, media adapter.MediaStore, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, storages.DB, media, logger),
	}
}
