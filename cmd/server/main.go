package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"logistics_api/internal/config"
	"logistics_api/internal/handler"
	"logistics_api/internal/logger"
	"logistics_api/internal/mailer"
	"logistics_api/internal/middleware"
	"logistics_api/internal/repository"
	"logistics_api/internal/service"
	"logistics_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// --- Logger ---
	zapLogger := logger.New()
	defer zapLogger.Sync()
	log := zapLogger.Sugar()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHours := int64(24)
	if jwtExpHoursStr := os.Getenv("JWT_EXPIRATION_HOURS"); jwtExpHoursStr != "" {
		jwtExpHours, err = strconv.ParseInt(jwtExpHoursStr, 10, 64)
		if err != nil {
			log.Warnf("Invalid JWT_EXPIRATION_HOURS, defaulting to 24: %v", err)
			jwtExpHours = 24
		}
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	mailCfg := mailer.Config{
		Endpoint:  os.Getenv("MAIL_API_URL"),
		ToEmail:   os.Getenv("CONTACT_TO_EMAIL"),
		ToName:    os.Getenv("CONTACT_TO_NAME"),
		FromEmail: os.Getenv("CONTACT_FROM_EMAIL"),
		FromName:  os.Getenv("CONTACT_FROM_NAME"),
	}
	if mailCfg.ToEmail == "" || mailCfg.FromEmail == "" {
		log.Fatalf("CONTACT_TO_EMAIL and CONTACT_FROM_EMAIL not set in environment")
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}
	log.Info("AutoMigrate applied successfully")

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)
	mailClient := mailer.NewClient(mailCfg)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	vehicleRepo := repository.NewVehicleRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil, log)
	userService := service.NewUserService(userRepo)
	vehicleService := service.NewVehicleService(vehicleRepo)
	dashboardService := service.NewDashboardService(userRepo, vehicleRepo)
	enquiryService := service.NewEnquiryService(mailClient)

	// --- Seed Owner Account ---
	// Bootstraps login on a fresh store; a non-empty users table is left alone.
	seedUsername := os.Getenv("INITIAL_OWNER_USERNAME")
	seedPassword := os.Getenv("INITIAL_OWNER_PASSWORD")
	if seedUsername != "" && seedPassword != "" {
		seedName := os.Getenv("INITIAL_OWNER_NAME")
		if seedName == "" {
			seedName = seedUsername
		}
		if err := authService.SeedOwner(context.Background(), seedUsername, seedPassword, seedName); err != nil {
			log.Fatalf("Failed to seed owner account: %v", err)
		}
	}

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, log)
	vehicleHandler := handler.NewVehicleHandler(vehicleService, log)
	dashboardHandler := handler.NewDashboardHandler(authService, dashboardService, log)
	enquiryHandler := handler.NewEnquiryHandler(enquiryService, log)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	// CORS open to any origin; OPTIONS short-circuits to an empty response
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
	router.Use(middleware.RequestIDMiddleware())

	// --- Initialize Middlewares ---
	tokenAuthMW := middleware.TokenAuthMiddleware(jwtUtil)
	identityMW := middleware.IdentityMiddleware(userRepo)
	ownerMW := middleware.OwnerMiddleware()

	// --- Register Routes ---
	enquiryHandler.RegisterEnquiryRoutes(router)

	rootGroup := router.Group("")
	authHandler.RegisterAuthRoutes(rootGroup)

	apiGroup := router.Group("/api")
	dashboardHandler.RegisterDashboardRoutes(apiGroup, tokenAuthMW)
	userHandler.RegisterUserRoutes(apiGroup, tokenAuthMW, identityMW, ownerMW)
	vehicleHandler.RegisterVehicleRoutes(apiGroup, tokenAuthMW, identityMW, ownerMW)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Infof("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exiting")
}
