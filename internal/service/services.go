package service

import (
	"github.com/pankajshindecodes-stack/Eventroop/internal/adapter"
	"github.com/pankajshindecodes-stack/Eventroop/internal/config"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// Services aggregates every business-logic service the transport layer
// depends on.
type Services struct {
	AuthService       AuthService
	UserService       UserService
	CatalogService    CatalogService
	PlanService       PlanService
	PatientService    PatientService
	AttendanceService AttendanceService
	PayrollService    PayrollService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, media adapter.MediaStore, cfg config.StructuredConfig, build models.BuildInfo, logger *logger.Logger) *Services {
	attendance := NewAttendanceService(storages.AttendanceRepository, logger)

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, storages.TokenRepository, storages.RoleRepository, cfg.App, logger),
		UserService:       NewUserService(storages.UserRepository, storages.HierarchyRepository, storages.PlanRepository, logger),
		CatalogService:    NewCatalogService(storages, media, logger),
		PlanService:       NewPlanService(storages.PlanRepository, logger),
		PatientService:    NewPatientService(storages.PatientRepository, logger),
		AttendanceService: attendance,
		PayrollService:    NewPayrollService(storages.PayrollRepository, attendance, logger),
		AppInfoService:    NewAppInfoService(build, logger),
	}
}
