package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/elburim/elburim-backend/config"
	"github.com/elburim/elburim-backend/internal/app/controller"
	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/internal/app/service"
	"github.com/elburim/elburim-backend/internal/db"
	"github.com/elburim/elburim-backend/internal/router"
	"github.com/elburim/elburim-backend/internal/scheduler"
	"github.com/elburim/elburim-backend/internal/storage"
	"github.com/elburim/elburim-backend/pkg/formpdf"
	"github.com/elburim/elburim-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting ELBURIM Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"target_year": cfg.Shop.TargetYear,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations (기본 호칭 규칙/양식 좌표 시드 포함)
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(db.GetDB())
	consultRepo := repository.NewConsultationRepository(db.GetDB())
	measurementRepo := repository.NewMeasurementRepository(db.GetDB())
	workOrderRepo := repository.NewWorkOrderRepository(db.GetDB())
	deliveryRepo := repository.NewDeliveryRepository(db.GetDB())
	stockRepo := repository.NewStockRepository(db.GetDB())
	settingsRepo := repository.NewSettingsRepository(db.GetDB())
	reportRepo := repository.NewReportRepository(db.GetDB())

	// S3 is optional. 버킷이 비어 있으면 로컬 디스크에만 저장한다.
	var s3Storage *storage.S3Storage
	if cfg.S3.Bucket != "" {
		s3Storage = storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.BaseURL,
		)
	}

	stamper := formpdf.NewStamper(cfg.Shop.FormTemplate, cfg.Shop.FormFont)

	// Initialize services
	memberService := service.NewMemberService(memberRepo)
	consultService := service.NewConsultationService(consultRepo, memberRepo)
	measurementService := service.NewMeasurementService(measurementRepo, memberRepo, settingsRepo)
	workOrderService := service.NewWorkOrderService(
		workOrderRepo,
		memberRepo,
		settingsRepo,
		stamper,
		cfg.Shop.FilledFormDir,
		s3Storage,
	)
	calendarService := service.NewCalendarService(deliveryRepo, cfg.Shop.DataCleanDir)
	stockService := service.NewStockService(stockRepo, deliveryRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	reportService := service.NewReportService(deliveryRepo, memberRepo, stockRepo, reportRepo, cfg.Shop.ReportDir)

	// Initialize controllers
	memberController := controller.NewMemberController(memberService)
	consultController := controller.NewConsultationController(consultService)
	measurementController := controller.NewMeasurementController(measurementService)
	workOrderController := controller.NewWorkOrderController(workOrderService)
	calendarController := controller.NewCalendarController(calendarService, cfg.Shop.TargetYear)
	stockController := controller.NewStockController(stockService)
	settingsController := controller.NewSettingsController(settingsService)
	reportController := controller.NewReportController(reportService, cfg.Shop.TargetYear)

	// Setup router
	r := router.NewRouter(
		memberController,
		consultController,
		measurementController,
		workOrderController,
		calendarController,
		stockController,
		settingsController,
		reportController,
		cfg,
	)
	engine := r.Setup()

	// Start report scheduler
	reportScheduler := scheduler.NewReportScheduler(reportService, cfg.Shop.TargetYear)
	if err := reportScheduler.Start(); err != nil {
		logger.Error("Failed to start report scheduler", err)
	}
	defer reportScheduler.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
