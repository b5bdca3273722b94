package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "backoffice/api/swagger" // swagger docs
	"backoffice/internal/config"
	"backoffice/internal/database"
	"backoffice/internal/gateway"
	"backoffice/internal/handler"
	"backoffice/internal/logger"
	"backoffice/internal/middleware"
	"backoffice/internal/repository"
	"backoffice/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Payment Back-office API
// @version         1.0
// @description     Read-only back-office API over the upstream payment service.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", "console")
		boot.Fatal().Err(err).Msg("Invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	gw, err := gateway.NewClient(gateway.Options{
		BaseURL:   cfg.APIBaseURL,
		HealthURL: cfg.HealthURL,
		Timeout:   cfg.APITimeout,
		Logger:    log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create upstream client")
	}
	log.Info().Str("base_url", gw.BaseURL()).Str("health_url", gw.HealthURL()).Msg("Upstream API configured")

	healthRepo := newHealthRepository(cfg, log)

	// Set up dependencies (Gateway -> Service -> Handler)
	transactionService := service.NewTransactionService(gw, gw, cfg.ReportLocation)
	merchantService := service.NewMerchantService(gw, gw, cfg.ReportLocation)
	merchantFormService := service.NewMerchantFormService()
	dashboardService := service.NewDashboardService(gw, gw, cfg.ReportLocation)
	codeService := service.NewCodeService(gw)
	healthService := service.NewHealthService(gw, healthRepo)

	transactionHandler := handler.NewTransactionHandler(transactionService)
	merchantHandler := handler.NewMerchantHandler(merchantService, merchantFormService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	codeHandler := handler.NewCodeHandler(codeService)
	healthHandler := handler.NewHealthHandler(healthService)

	router := gin.New()
	router.Use(middleware.RequestID(log), middleware.RequestLogger(), middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := router.Group("")
	transactionHandler.RegisterRoutes(api)
	merchantHandler.RegisterRoutes(api)
	dashboardHandler.RegisterRoutes(api)
	codeHandler.RegisterRoutes(api)
	healthHandler.RegisterRoutes(api)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.HealthPollInterval > 0 {
		log.Info().Dur("interval", cfg.HealthPollInterval).Msg("Starting upstream health poller")
		go healthService.Poll(logger.WithContext(ctx, log), cfg.HealthPollInterval)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2*cfg.APITimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		os.Exit(1)
	}
}

// newHealthRepository stores health history in PostgreSQL when DB_HOST is set
// and in memory otherwise.
func newHealthRepository(cfg *config.Config, log zerolog.Logger) repository.HealthCheckRepository {
	if !cfg.DB.Enabled() {
		return repository.NewMemoryHealthCheckRepository(cfg.HealthHistorySize)
	}

	db, err := database.NewConnection(cfg.DB.DSN(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Database connection failed")
	}
	log.Info().Str("host", cfg.DB.Host).Msg("Connected to PostgreSQL, health history is persisted")
	return repository.NewHealthCheckRepository(db, cfg.HealthHistorySize)
}
