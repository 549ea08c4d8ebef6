package service

import (
	"context"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

type appInfoService struct {
	build models.BuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns an AppInfoService serving the build metadata
// embedded at link time. Missing fields were already normalized to "N/A".
func NewAppInfoService(build models.BuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		build:  build,
		logger: logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.build.Version
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	return s.build
}
