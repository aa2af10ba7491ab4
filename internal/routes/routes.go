package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/punitsirse123/TempCall/internal/audit"
	authpkg "github.com/punitsirse123/TempCall/internal/auth"
	"github.com/punitsirse123/TempCall/internal/config"
	"github.com/punitsirse123/TempCall/internal/handlers"
	infraRepo "github.com/punitsirse123/TempCall/internal/infra/repository"
	"github.com/punitsirse123/TempCall/internal/middleware"
	"github.com/punitsirse123/TempCall/internal/querycache"
	"github.com/punitsirse123/TempCall/internal/timezone"
	ucBooking "github.com/punitsirse123/TempCall/internal/usecase/booking"
	ucSlot "github.com/punitsirse123/TempCall/internal/usecase/slot"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	cache := querycache.NewRedisCache(rdb)
	denylist := authpkg.NewDenylist(rdb)

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// USE CASES — TIME SLOTS
	// ======================================================
	createSlotUC := ucSlot.NewCreateTimeSlot(bookingRepo, auditDispatcher, cache, loc)
	deleteSlotUC := ucSlot.NewDeleteTimeSlot(bookingRepo, auditDispatcher, cache, loc)
	listSlotsUC := ucSlot.NewListTimeSlotsByDay(bookingRepo, cache, loc)
	listAvailableUC := ucSlot.NewListAvailableTimeSlots(bookingRepo, cache, loc)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(bookingRepo, auditDispatcher, cache, loc)
	updateStatusUC := ucBooking.NewUpdateAppointmentStatus(bookingRepo, auditDispatcher, cache, loc)
	listAppointmentsUC := ucBooking.NewListAppointmentsByDay(bookingRepo, cache, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, denylist)
	meHandler := handlers.NewMeHandler(db)
	timeSlotHandler := handlers.NewTimeSlotHandler(createSlotUC, deleteSlotUC, listSlotsUC, listAvailableUC)
	appointmentHandler := handlers.NewAppointmentHandler(createAppointmentUC, updateStatusUC, listAppointmentsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.OptionalAuthMiddleware(cfg, denylist))
		{
			publicAPI.GET("/time-slots", timeSlotHandler.ListAvailable)
			publicAPI.POST("/appointments", appointmentHandler.Create)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, denylist))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", meHandler.GetMe)
		}

		// ------------------------------
		// ADMIN DASHBOARD
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg, denylist))
		admin.Use(middleware.RequireAdmin(db))
		{
			admin.GET("/time-slots", timeSlotHandler.List)
			admin.POST("/time-slots", timeSlotHandler.Create)
			admin.DELETE("/time-slots/:id", timeSlotHandler.Delete)

			admin.GET("/appointments", appointmentHandler.ListByDay)
			admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
