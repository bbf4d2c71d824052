package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/travelmate/booking-backend/internal/config"
	"github.com/travelmate/booking-backend/internal/database"
	"github.com/travelmate/booking-backend/internal/events"
	"github.com/travelmate/booking-backend/internal/handlers"
	"github.com/travelmate/booking-backend/internal/middleware"
	"github.com/travelmate/booking-backend/internal/models"
	"github.com/travelmate/booking-backend/internal/services"
	"github.com/travelmate/booking-backend/pkg/jwt"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting TravelMate Booking Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize storage
	var (
		db        database.DB
		inventory services.InventoryStore
		ledger    services.BookingLedger
		users     services.UserStore
		offers    handlers.OfferLister
		auditSink services.AuditSink
	)

	switch cfg.Database.Storage {
	case "memory":
		logger.Warn("Using in-memory storage, all data is lost on restart")
		memInventory := database.NewMemoryInventoryStore()
		memOffers := database.NewMemoryOfferStore()
		seedDemoData(memInventory, memOffers)
		inventory = memInventory
		ledger = database.NewMemoryBookingLedger()
		users = database.NewMemoryUserStore()
		offers = memOffers
		auditSink = noopAuditSink{}
	default:
		logger.Info("Connecting to database...")
		db, err = database.NewConnection(cfg.Database)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			logger.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established")

		inventory = database.NewInventoryRepository(db)
		ledger = database.NewBookingRepository(db)
		users = database.NewUserRepository(db)
		offers = database.NewOfferRepository(db)
		auditSink = database.NewAuditRepository(db)
	}

	// Initialize event bus and audit trail
	bus := events.NewBus(logger)
	defer bus.Close()

	auditService := services.NewAuditService(auditSink, bus, logger)
	if err := auditService.Start(); err != nil {
		logger.Fatalf("Failed to start audit service: %v", err)
	}

	// Initialize services
	logger.Info("Initializing services...")
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authService := services.NewAuthService(users, jwtService, cfg.Security.BcryptCost, logger)
	reservationService := services.NewReservationService(
		inventory,
		ledger,
		services.NewPricingCalculator(),
		bus,
		services.ReservationConfig{
			LockWait:      cfg.Engine.LockWait,
			CommitRetries: cfg.Engine.CommitRetries,
		},
		logger,
	)
	assistantService := services.NewAssistantService()
	logger.Info("Services initialized")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	bookingHandler := handlers.NewBookingHandler(reservationService, logger)
	catalogHandler := handlers.NewCatalogHandler(inventory, offers, logger)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", healthCheckHandler(db))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Authentication routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)

			protected := auth.Group("")
			protected.Use(middleware.AuthMiddleware(jwtService))
			{
				protected.POST("/logout", authHandler.Logout)
			}
		}

		// Catalog routes (public)
		v1.GET("/buses", catalogHandler.ListBuses)
		v1.GET("/hotels", catalogHandler.ListHotels)
		v1.GET("/special-offers", catalogHandler.ListSpecialOffers)

		// Travel assistant (public)
		v1.POST("/assistant/chat", assistantHandler.Chat)

		// Booking routes (protected)
		bookings := v1.Group("")
		bookings.Use(middleware.AuthMiddleware(jwtService))
		{
			bookings.POST("/bookings", bookingHandler.CreateBooking)
			bookings.DELETE("/bookings/:id", bookingHandler.CancelBooking)
			bookings.GET("/my-bookings", bookingHandler.MyBookings)
		}
	}

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Infof("Server listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

// requestLogger logs each request with method, path, status and latency
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		logger.WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		}).Info("Request completed")
	}
}

// healthCheckHandler reports process and database health
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "not_configured"
		if db != nil {
			dbStatus = "healthy"
			if err := db.Ping(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":   "unhealthy",
					"database": "unhealthy",
					"error":    err.Error(),
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  dbStatus,
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}

// noopAuditSink drops audit records in memory mode
type noopAuditSink struct{}

func (noopAuditSink) Insert(record *models.BookingAuditRecord) error { return nil }

// seedDemoData loads a small catalog so memory mode is usable out of the box
func seedDemoData(inventory *database.MemoryInventoryStore, offers *database.MemoryOfferStore) {
	now := time.Now().UTC()
	strPtr := func(s string) *string { return &s }

	inventory.Seed(models.InventoryItem{
		ID:             "bus-khi-lhe-2100",
		Kind:           models.KindBus,
		Name:           "GreenLine Intercity",
		Route:          strPtr("Karachi to Lahore"),
		DepartureTime:  strPtr("09:00 PM"),
		ArrivalTime:    strPtr("09:00 AM"),
		TotalUnits:     40,
		AvailableUnits: 40,
		UnitPrice:      decimal.RequireFromString("4200"),
		CreatedAt:      now,
	})
	inventory.Seed(models.InventoryItem{
		ID:             "bus-lhe-isb-0730",
		Kind:           models.KindBus,
		Name:           "SkyLux Executive",
		Route:          strPtr("Lahore to Islamabad"),
		DepartureTime:  strPtr("07:30 AM"),
		ArrivalTime:    strPtr("12:00 PM"),
		TotalUnits:     36,
		AvailableUnits: 36,
		UnitPrice:      decimal.RequireFromString("1800"),
		CreatedAt:      now,
	})
	inventory.Seed(models.InventoryItem{
		ID:             "hotel-serena-isb",
		Kind:           models.KindHotel,
		Name:           "Serena Hotel Islamabad",
		Location:       strPtr("Islamabad"),
		TotalUnits:     25,
		AvailableUnits: 25,
		UnitPrice:      decimal.RequireFromString("20000"),
		CreatedAt:      now,
	})
	inventory.Seed(models.InventoryItem{
		ID:             "hotel-pc-lhe",
		Kind:           models.KindHotel,
		Name:           "Pearl Continental Lahore",
		Location:       strPtr("Lahore"),
		TotalUnits:     30,
		AvailableUnits: 30,
		UnitPrice:      decimal.RequireFromString("18000"),
		CreatedAt:      now,
	})

	offers.Seed(models.SpecialOffer{
		ID:          "offer-summer-bonanza",
		Title:       "Summer Bus Bonanza",
		Description: "20% off Lahore to Islamabad till Aug 31",
		CreatedAt:   now,
	})
	offers.Seed(models.SpecialOffer{
		ID:          "offer-group",
		Title:       "Group Offer",
		Description: "10% off for 5+ people on any bus route",
		CreatedAt:   now,
	})
}
