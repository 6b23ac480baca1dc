package routes

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucClosure "github.com/BruksfildServices01/salon-scheduler/internal/usecase/closure"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// Settings turns the salon configuration into availability settings.
func Settings(cfg *config.Config) (domain.Settings, error) {
	policy, err := domain.ParseOccupancyPolicy(cfg.Salon.OccupancyPolicy)
	if err != nil {
		return domain.Settings{}, err
	}
	if !timezone.IsValid(cfg.Salon.Timezone) {
		return domain.Settings{}, fmt.Errorf("unknown salon timezone %q", cfg.Salon.Timezone)
	}

	return domain.Settings{
		Location:    timezone.Location(cfg.Salon.Timezone),
		Hours:       domain.Hours{Open: cfg.Salon.OpenTime, Close: cfg.Salon.CloseTime},
		StepMinutes: cfg.Salon.SlotStepMinutes,
		Policy:      policy,
	}, nil
}

// RegisterRoutes wires the API. rdb may be nil, which disables rate limiting.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	logger zerolog.Logger,
	rdb *redis.Client,
	auditDispatcher *audit.Dispatcher,
) error {

	settings, err := Settings(cfg)
	if err != nil {
		return err
	}
	if err := validators.Register(); err != nil {
		return err
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	closureRepo := infraRepo.NewClosureGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, settings)
	unavailableUC := ucAppointment.NewGetUnavailableDates(appointmentRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		availabilityUC,
		settings,
		auditDispatcher,
	)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, settings.Location)
	listClientAppointmentsUC := ucAppointment.NewListClientAppointments(appointmentRepo, settings.Location)

	globalClosuresUC := ucClosure.NewGlobalClosedDays(closureRepo, auditDispatcher)
	workerClosuresUC := ucClosure.NewWorkerClosedDays(closureRepo, auditDispatcher)
	specialDaysUC := ucClosure.NewSpecialDays(closureRepo, settings, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(db, availabilityUC, unavailableUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		updateStatusUC,
		listAppointmentsUC,
		listClientAppointmentsUC,
	)
	closureHandler := handlers.NewClosureHandler(globalClosuresUC, workerClosuresUC, specialDaysUC)
	catalogHandler := handlers.NewCatalogHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	if rdb != nil {
		limiter := middleware.NewRedisRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute, "salon:rl")
		api.Use(limiter.Middleware())
	}

	// ------------------------------
	// PUBLIC
	// ------------------------------
	publicAPI := api.Group("/public")
	{
		publicAPI.GET("/workers", publicHandler.ListWorkers)
		publicAPI.GET("/services", publicHandler.ListServices)
		publicAPI.GET("/services/:id", publicHandler.GetService)
		publicAPI.GET("/workers/:id/availability", publicHandler.Availability)
		publicAPI.GET("/workers/:id/unavailable-dates", publicHandler.UnavailableDates)
	}

	// ------------------------------
	// CLIENT
	// ------------------------------
	me := api.Group("/me")
	me.Use(middleware.AuthMiddleware(cfg))
	{
		me.POST("/appointments", appointmentHandler.Create)
		me.GET("/appointments", appointmentHandler.ListMine)
		me.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
	}

	// ------------------------------
	// ADMIN
	// ------------------------------
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(middleware.RoleAdmin))
	{
		admin.GET("/appointments", appointmentHandler.List)
		admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

		admin.GET("/closed-days", closureHandler.ListGlobal)
		admin.POST("/closed-days", closureHandler.CreateGlobal)
		admin.DELETE("/closed-days/:id", closureHandler.DeleteGlobal)

		admin.GET("/workers/:id/closed-days", closureHandler.ListWorker)
		admin.POST("/workers/:id/closed-days", closureHandler.CreateWorker)
		admin.DELETE("/worker-closed-days/:id", closureHandler.DeleteWorker)

		admin.GET("/workers/:id/special-days", closureHandler.ListSpecial)
		admin.PUT("/workers/:id/special-days", closureHandler.SaveSpecial)
		admin.DELETE("/special-days/:id", closureHandler.DeleteSpecial)

		admin.POST("/workers", catalogHandler.CreateWorker)
		admin.PATCH("/workers/:id", catalogHandler.UpdateWorker)
		admin.POST("/services", catalogHandler.CreateService)
		admin.PATCH("/services/:id", catalogHandler.UpdateService)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}

	return nil
}
