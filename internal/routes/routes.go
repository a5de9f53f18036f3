package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/audit"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/config"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/handlers"
	infraCache "github.com/VitalisHealthTech/clinic-scheduler/internal/infra/cache"
	infraRepo "github.com/VitalisHealthTech/clinic-scheduler/internal/infra/repository"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/middleware"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/timezone"
	ucAvailability "github.com/VitalisHealthTech/clinic-scheduler/internal/usecase/availability"
	ucBooking "github.com/VitalisHealthTech/clinic-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	var slotCache *infraCache.AvailabilityCache
	if redisClient != nil {
		slotCache = infraCache.NewAvailabilityCache(
			redisClient,
			time.Duration(cfg.CacheTTLSec)*time.Second,
		)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	var availabilityCache ucAvailability.SlotCache
	var invalidator ucBooking.SlotInvalidator
	var handlerInvalidator handlers.SlotInvalidator
	if slotCache != nil {
		availabilityCache = slotCache
		invalidator = slotCache
		handlerInvalidator = slotCache
	}

	getAvailabilityUC := ucAvailability.NewGetAvailability(
		scheduleRepo,
		availabilityCache,
		loc,
	)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		scheduleRepo,
		auditDispatcher,
		invalidator,
		loc,
		cfg.MinAdvanceMinutes,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
		invalidator,
		loc,
	)

	completeAppointmentUC := ucBooking.NewCompleteAppointment(
		bookingRepo,
		auditDispatcher,
		loc,
	)

	listAppointmentsByDateUC := ucBooking.NewListAppointmentsByDate(
		bookingRepo,
		loc,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(
		getAvailabilityUC,
		loc,
		cfg.DefaultSlotMinutes,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listAppointmentsByDateUC,
		loc,
	)

	scheduleHandler := handlers.NewScheduleHandler(db, auditDispatcher, handlerInvalidator)
	holidayHandler := handlers.NewHolidayHandler(db, auditDispatcher, handlerInvalidator, loc)
	blockedSlotHandler := handlers.NewBlockedSlotHandler(db, auditDispatcher, handlerInvalidator, loc)
	professionalHandler := handlers.NewProfessionalHandler(db, auditDispatcher, handlerInvalidator)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	clientHandler := handlers.NewClientHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		api.GET("/availability", availabilityHandler.Get)
		api.GET("/services", serviceHandler.ListPublic)
		api.GET("/professionals", professionalHandler.ListPublic)
		api.POST("/appointments", appointmentHandler.Create)

		// ------------------------------
		// STAFF API
		// ------------------------------
		secured := api.Group("/admin")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/business-hours", scheduleHandler.GetBusinessHours)
			secured.PUT("/business-hours", scheduleHandler.UpdateBusinessHours)

			secured.GET("/breaks", scheduleHandler.GetBreaks)
			secured.PUT("/breaks", scheduleHandler.UpdateBreaks)

			secured.GET("/holidays", holidayHandler.List)
			secured.POST("/holidays", holidayHandler.Create)
			secured.DELETE("/holidays/:id", holidayHandler.Delete)

			secured.GET("/blocked-slots", blockedSlotHandler.List)
			secured.POST("/blocked-slots", blockedSlotHandler.Create)
			secured.DELETE("/blocked-slots/:id", blockedSlotHandler.Delete)

			secured.GET("/professionals", professionalHandler.List)
			secured.POST("/professionals", professionalHandler.Create)
			secured.PATCH("/professionals/:id", professionalHandler.Update)
			secured.GET("/professionals/:id/schedule", professionalHandler.GetSchedule)
			secured.PUT("/professionals/:id/schedule", professionalHandler.UpdateSchedule)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)

			secured.GET("/clients", clientHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
