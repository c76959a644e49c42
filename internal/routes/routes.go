package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/studiobela/salon-booking/internal/audit"
	"github.com/studiobela/salon-booking/internal/cache"
	"github.com/studiobela/salon-booking/internal/config"
	"github.com/studiobela/salon-booking/internal/events"
	"github.com/studiobela/salon-booking/internal/handlers"
	infraRepo "github.com/studiobela/salon-booking/internal/infra/repository"
	"github.com/studiobela/salon-booking/internal/middleware"
	ucBooking "github.com/studiobela/salon-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	redisClient *redis.Client,
	logger *zap.Logger,
	cfg *config.Config,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware(logger))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	slotRepo := infraRepo.NewSlotGormRepository(db)

	dayCache := cache.NewDayCache(
		redisClient,
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
		logger,
	)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	hub := events.NewHub(logger)

	// ======================================================
	// USE CASES
	// ======================================================
	checkAvailabilityUC := ucBooking.NewCheckAvailability(slotRepo)

	reserveSlotUC := ucBooking.NewReserveSlot(
		slotRepo,
		hub,
		dayCache,
		auditDispatcher,
	)

	listSlotsUC := ucBooking.NewListSlots(slotRepo, dayCache)

	seedSlotsUC := ucBooking.NewSeedSlots(
		slotRepo,
		dayCache,
		auditDispatcher,
	)

	updateSlotUC := ucBooking.NewUpdateSlot(
		slotRepo,
		dayCache,
		auditDispatcher,
	)

	deleteSlotUC := ucBooking.NewDeleteSlot(
		slotRepo,
		dayCache,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		checkAvailabilityUC,
		reserveSlotUC,
	)

	eventsHandler := handlers.NewEventsHandler(hub)

	slotAdminHandler := handlers.NewSlotAdminHandler(
		listSlotsUC,
		seedSlotsUC,
		updateSlotUC,
		deleteSlotUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/availability", bookingHandler.CheckAvailability)
			publicAPI.POST("/bookings", bookingHandler.ConfirmBooking)
			publicAPI.GET("/events", eventsHandler.Stream)
		}

		// ------------------------------
		// MANUTENÇÃO (fora das garantias de reserva)
		// ------------------------------
		adminAPI := api.Group("/admin")
		{
			adminAPI.GET("/slots", slotAdminHandler.List)
			adminAPI.POST("/slots/seed", slotAdminHandler.Seed)
			adminAPI.PATCH("/slots/:id", slotAdminHandler.Update)
			adminAPI.DELETE("/slots/:id", slotAdminHandler.Delete)
		}
	}
}
