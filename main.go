// Package main provides the main entry point for the label printing service
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nmzabith/thermal-printer-label-app-sub001/app/handlers"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/middleware"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/router"
	"github.com/nmzabith/thermal-printer-label-app-sub001/app/services"
	businessflow "github.com/nmzabith/thermal-printer-label-app-sub001/business_flow"
	"github.com/nmzabith/thermal-printer-label-app-sub001/config"
	_ "github.com/nmzabith/thermal-printer-label-app-sub001/docs"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"github.com/google/uuid"

	"github.com/nmzabith/thermal-printer-label-app-sub001/app/scheduler"
)

// Application represents the main application structure
type Application struct {
	router    *router.FiberRouter
	config    *config.ProductionConfig
	server    *fiber.App
	stopFuncs []func()
}

func main() {
	log.Println("Starting label printing service...")

	// Load production configuration
	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Route the standard logger through rotating files when configured
	initializeLogging(cfg.Logging)

	// Initialize application
	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Setup routes
	app.router.SetupRoutes()

	// Setup graceful shutdown
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Server starting on %s", address)

		if err := app.server.Listen(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down gracefully...")

	// Stop background workers
	for _, fn := range app.stopFuncs {
		fn()
	}

	// Graceful  shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// initializeLogging directs the standard logger to a rotating log file,
// keeping stdout when output is set to "both"
func initializeLogging(cfg config.LoggingConfig) {
	if cfg.Output == "stdout" || cfg.FilePath == "" {
		return
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	if cfg.Output == "both" {
		log.SetOutput(io.MultiWriter(os.Stdout, rotator))
		return
	}
	log.SetOutput(rotator)
}

// initializeDatabase initializes the database connection with connection pooling
func initializeDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB for connection pooling configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pooling
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Database connection established with %d max open connections, %d max idle connections",
		cfg.MaxOpenConns, cfg.MaxIdleConns)

	return db, nil
}

// initializeCache initializes the Cache client and verifies connectivity
func initializeCache(cfg config.CacheConfig) (*redis.Client, error) {
	if !cfg.Enabled || cfg.Provider != "redis" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	// Override DB if provided in config
	opt.DB = cfg.RedisDB

	rc := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("Redis connection established to %s (db=%d)", cfg.RedisURL, cfg.RedisDB)
	return rc, nil
}

// startCacheHealthMonitor starts a background goroutine that periodically pings Redis
// to detect connectivity issues. The returned cancel function stops the monitor.
func startCacheHealthMonitor(parent context.Context, client *redis.Client, interval time.Duration) func() {
	monitorCtx, cancel := context.WithCancel(parent)
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-monitorCtx.Done():
				return
			case <-ticker.C:
				ctx, c := context.WithTimeout(context.Background(), 3*time.Second)
				if err := client.Ping(ctx).Err(); err != nil {
					log.Printf("Redis healthcheck failed: %v", err)
				}
				c()
			}
		}
	}()
	return cancel
}

// initializeApplication initializes the main application components
func initializeApplication(cfg *config.ProductionConfig) (*Application, error) {
	var stopFuncs []func()

	// Initialize database
	db, err := initializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	rc, err := initializeCache(cfg.Cache)
	if err != nil {
		return nil, err
	}

	if rc != nil {
		cancel := startCacheHealthMonitor(context.Background(), rc, cfg.Cache.CleanupInterval)
		stopFuncs = append(stopFuncs, cancel)
	}

	// Seed the bootstrap operator account using config
	if err := ensureBootstrapOperator(db, cfg); err != nil {
		return nil, err
	}

	// Make sure the icon upload directory exists before anything writes to it
	if err := os.MkdirAll(cfg.Icons.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create icon upload dir: %w", err)
	}

	// Initialize repositories
	operatorRepo := repository.NewOperatorRepository(db)
	sessionRepo := repository.NewOperatorSessionRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	labelConfigRepo := repository.NewLabelConfigRepository(db)
	labelDesignRepo := repository.NewLabelDesignRepository(db)
	labelElementRepo := repository.NewLabelElementRepository(db)
	fontProfileRepo := repository.NewFontProfileRepository(db)
	printJobRepo := repository.NewPrintJobRepository(db)
	iconAssetRepo := repository.NewIconAssetRepository(db)

	// Captcha service for the login page
	captchaSvc, err := services.NewCaptchaServiceRotate(2*time.Minute, 15, 300)
	if err != nil {
		return nil, err
	}

	// Initialize token service
	tokenService, err := services.NewTokenService(
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		cfg.JWT.UseRSAKeys,
		cfg.JWT.PrivateKey,
		cfg.JWT.PublicKey,
		cfg.JWT.SecretKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Log that services are initialized
	log.Printf("Token service initialized with issuer: %s, audience: %s", cfg.JWT.Issuer, cfg.JWT.Audience)

	// Raw TCP client for port 9100 printers
	printerClient := services.NewRawPrinterClient(cfg.Printer.DialTimeout, cfg.Printer.WriteTimeout)

	// Initialize flows
	authFlow := businessflow.NewAuthFlow(
		operatorRepo,
		sessionRepo,
		auditRepo,
		tokenService,
		captchaSvc,
		db,
	)

	labelConfigFlow := businessflow.NewLabelConfigFlow(
		labelConfigRepo,
		labelDesignRepo,
		auditRepo,
		db,
	)

	labelDesignFlow := businessflow.NewLabelDesignFlow(
		labelDesignRepo,
		labelConfigRepo,
		labelElementRepo,
		fontProfileRepo,
		iconAssetRepo,
		auditRepo,
		db,
	)

	fontSettingsFlow := businessflow.NewFontSettingsFlow(
		fontProfileRepo,
		auditRepo,
		db,
	)

	printFlow := businessflow.NewPrintFlow(
		labelDesignRepo,
		printJobRepo,
		iconAssetRepo,
		auditRepo,
		printerClient,
		cfg.Printer,
		db,
		rc,
		&cfg.Cache,
	)

	iconFlow := businessflow.NewIconFlow(
		iconAssetRepo,
		auditRepo,
		cfg.Icons.UploadDir,
		db,
	)

	reportFlow := businessflow.NewReportFlow(
		printJobRepo,
		auditRepo,
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authFlow)
	configHandler := handlers.NewLabelConfigHandler(labelConfigFlow)
	designHandler := handlers.NewLabelDesignHandler(labelDesignFlow)
	fontHandler := handlers.NewFontSettingsHandler(fontSettingsFlow)
	printHandler := handlers.NewPrintHandler(printFlow)
	iconHandler := handlers.NewIconHandler(iconFlow)
	reportHandler := handlers.NewReportHandler(reportFlow)

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Initialize router
	appRouter := router.NewFiberRouter(
		authMiddleware,
		authHandler,
		configHandler,
		designHandler,
		fontHandler,
		printHandler,
		iconHandler,
		reportHandler,
	)

	// Start maintenance scheduler (session cleanup plus stale job failing)
	sched := scheduler.NewMaintenanceScheduler(sessionRepo, printJobRepo, log.Default(), cfg.Security.SessionCleanupInterval, 10*time.Minute)
	stopScheduler := sched.Start(context.Background())
	stopFuncs = append(stopFuncs, stopScheduler)

	// Create application struct from FiberRouter
	fiberRouter := appRouter.(*router.FiberRouter)
	application := &Application{
		router:    fiberRouter,
		config:    cfg,
		server:    fiberRouter.GetApp(),
		stopFuncs: stopFuncs,
	}

	return application, nil
}

// ensureBootstrapOperator creates the configured operator account if it does
// not exist yet. Without it a fresh deployment has nobody who can log in.
func ensureBootstrapOperator(db *gorm.DB, cfg *config.ProductionConfig) error {
	if cfg.Bootstrap.OperatorEmail == "" || cfg.Bootstrap.OperatorPassword == "" {
		return nil
	}

	operatorRepo := repository.NewOperatorRepository(db)

	existing, err := operatorRepo.ByEmail(context.Background(), cfg.Bootstrap.OperatorEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	operatorUUID := uuid.New()
	if cfg.Bootstrap.OperatorUUID != "" {
		parsed, err := uuid.Parse(cfg.Bootstrap.OperatorUUID)
		if err != nil {
			return fmt.Errorf("invalid bootstrap operator uuid: %w", err)
		}
		operatorUUID = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Bootstrap.OperatorPassword), cfg.Security.BcryptCost)
	if err != nil {
		return err
	}

	op := models.Operator{
		UUID:         operatorUUID,
		Email:        cfg.Bootstrap.OperatorEmail,
		PasswordHash: string(hash),
		FullName:     cfg.Bootstrap.OperatorFullName,
		IsActive:     utils.ToPtr(true),
		CreatedAt:    utils.UTCNow(),
	}
	if err := operatorRepo.Save(context.Background(), &op); err != nil {
		return err
	}

	log.Printf("Bootstrap operator created: %s", cfg.Bootstrap.OperatorEmail)
	return nil
}
