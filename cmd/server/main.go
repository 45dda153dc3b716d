package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"medseal.backend/internal/config"
	"medseal.backend/internal/infrastructure/ai"
	"medseal.backend/internal/infrastructure/jobs"
	"medseal.backend/internal/infrastructure/models"
	"medseal.backend/internal/infrastructure/repositories"
	"medseal.backend/internal/interfaces/http/handlers"
	"medseal.backend/internal/interfaces/http/middleware"
	"medseal.backend/internal/usecases"
	"medseal.backend/pkg/jwt"
	"medseal.backend/pkg/logger"
	"medseal.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		if err := db.AutoMigrate(
			&models.User{},
			&models.SystemFlag{},
			&models.VerificationRequest{},
			&models.PatientCase{},
			&models.ContributionPool{},
			&models.Contribution{},
			&models.Medicine{},
			&models.Prescription{},
			&models.PrescriptionMedicine{},
		); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info(context.Background(), "Database connected and migrated")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	flagRepo := repositories.NewSystemFlagRepository(db)
	verificationRepo := repositories.NewVerificationRepository(db)
	caseRepo := repositories.NewCaseRepository(db)
	poolRepo := repositories.NewPoolRepository(db)
	contributionRepo := repositories.NewContributionRepository(db)
	medicineRepo := repositories.NewMedicineRepository(db)
	prescriptionRepo := repositories.NewPrescriptionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	assistantClient := ai.NewClient(
		cfg.Assistant.BaseURL,
		cfg.Assistant.APIKey,
		cfg.Assistant.Model,
		cfg.Assistant.Timeout,
	)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, flagRepo, uow, jwtService, sessionStore, cfg.Security.SessionTTL)
	verificationUsecase := usecases.NewVerificationUsecase(verificationRepo, userRepo, uow)
	caseUsecase := usecases.NewCaseUsecase(caseRepo, userRepo)
	poolUsecase := usecases.NewPoolUsecase(poolRepo, contributionRepo, caseRepo, userRepo, uow)
	medicineUsecase := usecases.NewMedicineUsecase(medicineRepo, userRepo)
	prescriptionUsecase := usecases.NewPrescriptionUsecase(prescriptionRepo, medicineRepo, userRepo)
	chatUsecase := usecases.NewChatUsecase(assistantClient, prescriptionRepo, medicineRepo, userRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, verificationRepo, caseRepo, poolRepo, medicineRepo, prescriptionRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)
	caseHandler := handlers.NewCaseHandler(caseUsecase)
	poolHandler := handlers.NewPoolHandler(poolUsecase)
	medicineHandler := handlers.NewMedicineHandler(medicineUsecase)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionUsecase)
	chatHandler := handlers.NewChatHandler(chatUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewPoolExpiryJob(poolRepo, cfg.Jobs.PoolExpiryInterval)
	go expiryJob.Start(ctx)

	// Router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.Metrics())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		verificationHandler: verificationHandler,
		caseHandler:         caseHandler,
		poolHandler:         poolHandler,
		medicineHandler:     medicineHandler,
		prescriptionHandler: prescriptionHandler,
		chatHandler:         chatHandler,
		adminHandler:        adminHandler,
		authMiddleware:      authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	logger.Info(ctx, "Server starting", zap.String("port", cfg.Server.Port))

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
