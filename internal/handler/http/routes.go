package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pankajshindecodes-stack/Eventroop/internal/adapter"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// Roles allowed on the scoped operational surfaces. The permission catalog
// keeps attendance and payroll to the master admin; owners and their managers
// reach them through these role-guarded routes instead.
var (
	attendanceRoles = []models.UserType{
		models.UserTypeMasterAdmin,
		models.UserTypeOwner,
		models.UserTypeManager,
		models.UserTypeLineManager,
	}

	payrollRoles = []models.UserType{
		models.UserTypeMasterAdmin,
		models.UserTypeOwner,
	}
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/status", h.status)
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/accounts/register/customer", h.registerCustomer)
		r.Post("/api/accounts/register/owner", h.registerOwner)
		r.Post("/api/accounts/login", h.login)
		r.Post("/api/accounts/token/refresh", h.refresh)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/accounts/logout", h.logout)
		r.Post("/api/accounts/change-password", h.changePassword)
		r.Get("/api/accounts/profile", h.getProfile)
		r.Put("/api/accounts/profile", h.updateProfile)

		r.With(h.requireUserType(models.UserTypeMasterAdmin)).Get("/api/accounts/owners", h.listOwners)
		r.With(h.requireUserType(models.UserTypeMasterAdmin)).Post("/api/accounts/owners/{id}/approve", h.approveOwner)
		r.With(h.requirePermission(models.PermissionView, "user")).Get("/api/accounts/staff", h.listStaff)
		r.With(h.requirePermission(models.PermissionAdd, "user")).Post("/api/accounts/staff", h.createStaff)

		r.With(h.requirePermission(models.PermissionAdd, "venue")).Post("/api/management/venues", h.createVenue)
		r.With(h.requirePermission(models.PermissionView, "venue")).Get("/api/management/venues", h.listVenues)
		r.With(h.requirePermission(models.PermissionView, "venue")).Get("/api/management/venues/{id}", h.getVenue)
		r.With(h.requirePermission(models.PermissionChange, "venue")).Put("/api/management/venues/{id}", h.updateVenue)
		r.With(h.requirePermission(models.PermissionDelete, "venue")).Delete("/api/management/venues/{id}", h.deleteVenue)

		r.With(h.requirePermission(models.PermissionAdd, "service")).Post("/api/management/services", h.createService)
		r.With(h.requirePermission(models.PermissionView, "service")).Get("/api/management/services", h.listServices)
		r.With(h.requirePermission(models.PermissionView, "service")).Get("/api/management/services/{id}", h.getService)
		r.With(h.requirePermission(models.PermissionChange, "service")).Put("/api/management/services/{id}", h.updateService)
		r.With(h.requirePermission(models.PermissionDelete, "service")).Delete("/api/management/services/{id}", h.deleteService)

		r.With(h.requirePermission(models.PermissionAdd, "resource")).Post("/api/management/resources", h.createResource)
		r.With(h.requirePermission(models.PermissionView, "resource")).Get("/api/management/resources", h.listResources)
		r.With(h.requirePermission(models.PermissionView, "resource")).Get("/api/management/resources/{id}", h.getResource)
		r.With(h.requirePermission(models.PermissionChange, "resource")).Put("/api/management/resources/{id}", h.updateResource)
		r.With(h.requirePermission(models.PermissionDelete, "resource")).Delete("/api/management/resources/{id}", h.deleteResource)

		r.With(h.requirePermission(models.PermissionAdd, "photo")).Post("/api/management/venues/{id}/photos", h.attachPhoto(models.PhotoEntityVenue))
		r.With(h.requirePermission(models.PermissionView, "photo")).Get("/api/management/venues/{id}/photos", h.listPhotos(models.PhotoEntityVenue))
		r.With(h.requirePermission(models.PermissionAdd, "photo")).Post("/api/management/services/{id}/photos", h.attachPhoto(models.PhotoEntityService))
		r.With(h.requirePermission(models.PermissionView, "photo")).Get("/api/management/services/{id}/photos", h.listPhotos(models.PhotoEntityService))
		r.With(h.requirePermission(models.PermissionAdd, "photo")).Post("/api/management/resources/{id}/photos", h.attachPhoto(models.PhotoEntityResource))
		r.With(h.requirePermission(models.PermissionView, "photo")).Get("/api/management/resources/{id}/photos", h.listPhotos(models.PhotoEntityResource))
		r.With(h.requirePermission(models.PermissionDelete, "photo")).Delete("/api/management/photos/{id}", h.removePhoto)

		r.With(h.requirePermission(models.PermissionView, "plan")).Get("/api/management/pricing-plans", h.listPlans)
		r.With(h.requireUserType(models.UserTypeMasterAdmin)).Post("/api/management/pricing-plans", h.createPlan)
		r.With(h.requireUserType(models.UserTypeMasterAdmin)).Post("/api/management/user-plans", h.assignPlan)
		r.With(h.requirePermission(models.PermissionView, "plan")).Get("/api/management/user-plans", h.getActivePlan)

		r.With(h.requirePermission(models.PermissionAdd, "booking")).Post("/api/booking/patients", h.registerPatient)
		r.With(h.requirePermission(models.PermissionView, "booking")).Get("/api/booking/patients", h.listPatients)
		r.With(h.requirePermission(models.PermissionView, "booking")).Get("/api/booking/patients/{id}", h.getPatient)
		r.With(h.requirePermission(models.PermissionChange, "booking")).Put("/api/booking/patients/{id}", h.updatePatient)

		r.With(h.requireUserType(attendanceRoles...)).Get("/api/attendance/statuses", h.listAttendanceStatuses)
		r.With(h.requireUserType(attendanceRoles...)).Post("/api/attendance/mark", h.markAttendance)
		r.With(h.requireUserType(attendanceRoles...)).Post("/api/attendance/bulk-mark", h.bulkMarkAttendance)
		r.With(h.requireUserType(attendanceRoles...)).Get("/api/attendance", h.listAttendance)
		r.With(h.requireUserType(attendanceRoles...)).Get("/api/attendance/summary", h.attendanceSummary)

		r.With(h.requireUserType(payrollRoles...)).Put("/api/payroll/salary-structures/{userID}", h.setSalaryStructure)
		r.With(h.requireUserType(payrollRoles...)).Get("/api/payroll/salary-structures/{userID}", h.getSalaryStructure)
		r.With(h.requireUserType(payrollRoles...)).Get("/api/payroll/salary-structures/{userID}/history", h.listSalaryStructures)
		r.With(h.requireUserType(payrollRoles...)).Post("/api/payroll/payments", h.createPayment)
		r.With(h.requireUserType(payrollRoles...)).Get("/api/payroll/payments", h.listPayments)
		r.With(h.requireUserType(payrollRoles...)).Get("/api/payroll/payments/{id}", h.getPayment)
		r.With(h.requireUserType(payrollRoles...)).Put("/api/payroll/payments/{id}/status", h.updatePaymentStatus)
	})

	// locally stored media needs a static route; the CDN serves its own URLs
	if files, ok := h.media.(adapter.FileServer); ok {
		prefix, fileHandler := files.Static()
		router.Handle(prefix+"/*", fileHandler)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
