package adapter

import (
	"fmt"

	"github.com/pankajshindecodes-stack/Eventroop/internal/config"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
)

// NewMediaStore selects the media backend from configuration: "cdn" builds
// the external store, "local" (or an empty mode) the filesystem store.
func NewMediaStore(cfg config.Media, logger *logger.Logger) (MediaStore, error) {
	switch cfg.Mode {
	case config.MediaModeCDN:
		return NewCDNMediaStore(cfg, logger)
	case config.MediaModeLocal, "":
		return NewLocalMediaStore(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMediaMode, cfg.Mode)
	}
}
