package store

import (
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
)

// Storages aggregates every repository of the application over one shared
// database connection. It is the single dependency the service layer takes
// for persistence.
type Storages struct {
	UserRepository       UserRepository
	HierarchyRepository  HierarchyRepository
	RoleRepository       RoleRepository
	TokenRepository      TokenRepository
	PlanRepository       PlanRepository
	VenueRepository      VenueRepository
	ServiceRepository    ServiceRepository
	ResourceRepository   ResourceRepository
	PhotoRepository      PhotoRepository
	PatientRepository    PatientRepository
	AttendanceRepository AttendanceRepository
	PayrollRepository    PayrollRepository

	// DB is the shared connection the repositories run on, exposed for
	// lifecycle operations (migrations, health checks, Close).
	DB *DB
}

// NewStorages wires every repository onto the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Info().Msg("creating storages...")

	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		HierarchyRepository:  NewHierarchyRepository(db, logger),
		RoleRepository:       NewRoleRepository(db, logger),
		TokenRepository:      NewTokenRepository(db, logger),
		PlanRepository:       NewPlanRepository(db, logger),
		VenueRepository:      NewVenueRepository(db, logger),
		ServiceRepository:    NewServiceRepository(db, logger),
		ResourceRepository:   NewResourceRepository(db, logger),
		PhotoRepository:      NewPhotoRepository(db, logger),
		PatientRepository:    NewPatientRepository(db, logger),
		AttendanceRepository: NewAttendanceRepository(db, logger),
		PayrollRepository:    NewPayrollRepository(db, logger),
		DB:                   db,
	}
}
