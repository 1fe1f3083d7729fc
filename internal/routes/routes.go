package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/audit"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/config"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/domain/scheduling"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/handlers"
	infraRepo "github.com/NovaDentalSystems/clinic-scheduler/internal/infra/repository"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/middleware"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/timezone"
	ucAppointment "github.com/NovaDentalSystems/clinic-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	loc := timezone.Location(cfg.Timezone)

	hours := scheduling.DefaultBusinessHours()
	hours.StrictClose = cfg.StrictClosingHour

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		hours,
		auditDispatcher,
		loc,
	)

	editAppointmentUC := ucAppointment.NewEditAppointment(
		appointmentRepo,
		hours,
		auditDispatcher,
		loc,
		cfg.EditExcludesOwnInterval,
	)

	removeAppointmentUC := ucAppointment.NewRemoveAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listByDentistUC := ucAppointment.NewListByDentist(appointmentRepo, loc)
	listByPatientUC := ucAppointment.NewListByPatient(appointmentRepo, loc)
	listByDayUC := ucAppointment.NewListByDay(appointmentRepo, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	directoryHandler := handlers.NewDirectoryHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		editAppointmentUC,
		removeAppointmentUC,
		listByDentistUC,
		listByPatientUC,
		listByDayUC,
	)

	bookingLimiter := middleware.RateLimitMiddleware(
		rdb,
		cfg.RateLimitPerMinute,
		time.Minute,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/dentists", directoryHandler.ListDentists)
			secured.GET("/patients", directoryHandler.ListPatients)
			secured.GET("/services", directoryHandler.ListServices)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", bookingLimiter, appointmentHandler.Create)
			secured.PUT("/appointments/:id", bookingLimiter, appointmentHandler.Edit)
			secured.DELETE("/appointments/:id", appointmentHandler.Remove)

			secured.GET("/appointments", appointmentHandler.ListByDay)
			secured.GET("/appointments/dentist/:id", appointmentHandler.ListByDentist)
			secured.GET("/appointments/patient/:id", appointmentHandler.ListByPatient)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
