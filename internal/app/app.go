package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"psychportal_backend/database"
	"psychportal_backend/internal/auth"
	"psychportal_backend/internal/config"
	"psychportal_backend/internal/email"
	"psychportal_backend/internal/handlers"
	"psychportal_backend/internal/logger"
	"psychportal_backend/internal/middleware"
	"psychportal_backend/internal/models"
	"psychportal_backend/internal/repositories"
	"psychportal_backend/internal/routes"
	"psychportal_backend/internal/services"
	"psychportal_backend/internal/storage"
	"psychportal_backend/internal/validator"
	"psychportal_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstTeacher(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first teacher account", "error", err)
	}

	auth.InitJWT(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	ginRouter, deadlineWorker := SetupRouter(cfg, gormDB)

	if err := deadlineWorker.Start(); err != nil {
		logger.Fatal("Failed to start deadline worker", "error", err)
	}
	defer deadlineWorker.Stop()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires storage, services and handlers onto a gin engine.
// The deadline worker is returned unstarted so tests can drive it.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *workers.DeadlineWorker) {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     "local",
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "path", cfg.Storage.BasePath)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)

	deadlineWorker := workers.NewDeadlineWorker(serviceContainer.ApplicationService, cfg.Sweep.Spec)

	ginRouter := initializeGinRouter(cfg.Server.Env)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, deadlineWorker
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP host not configured, outbound email disabled")
		emailService = &NoopEmailProvider{}
	} else {
		sender, err := email.NewGomailSender(email.Config{
			SMTPHost:      cfg.Email.SMTPHost,
			SMTPPort:      cfg.Email.SMTPPort,
			Username:      cfg.Email.SMTPUsername,
			Password:      cfg.Email.SMTPPassword,
			FromEmail:     cfg.Email.FromEmail,
			FromName:      cfg.Email.FromName,
			NoticeMailbox: cfg.Email.NoticeMailbox,
		})
		if err != nil {
			logger.Fatal("Failed to initialize email sender", "error", err)
		}
		emailService = sender
	}

	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	appRepo := repositories.NewApplicationRepository(gormDB)
	growthRepo := repositories.NewGrowthRepository(gormDB)

	displayLoc, err := time.LoadLocation(cfg.Portal.DisplayTimezone)
	if err != nil {
		logger.Warn("Unknown display timezone, falling back to UTC", "tz", cfg.Portal.DisplayTimezone)
		displayLoc = time.UTC
	}

	otpStore := auth.NewOTPStore(time.Duration(cfg.Portal.OTPTTLMinutes) * time.Minute)

	applicationService := services.NewApplicationService(
		appRepo, jobRepo, userRepo, storageInstance, emailService,
		time.Duration(cfg.Upload.ResumeDeadlineHours)*time.Hour,
		cfg.Upload.MaxSize,
		displayLoc,
	)

	jobService := services.NewJobService(jobRepo)

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo),
		JobService:         jobService,
		ApplicationService: applicationService,
		GrowthService:      services.NewGrowthService(growthRepo),
		ProfileService:     services.NewProfileService(userRepo, otpStore, emailService),
		ExportService:      services.NewExportService(appRepo),
		DashboardService:   services.NewDashboardService(userRepo, jobRepo, appRepo, growthRepo, applicationService, jobService),
		EmailService:       emailService,
		Storage:            storageInstance,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		Auth:        handlers.NewAuthHandler(baseHandler, container.AuthService),
		Job:         handlers.NewJobHandler(baseHandler, container.JobService),
		Application: handlers.NewApplicationHandler(baseHandler, container.ApplicationService, container.ExportService),
		Growth:      handlers.NewGrowthHandler(baseHandler, container.GrowthService),
		Profile:     handlers.NewProfileHandler(baseHandler, container.ProfileService),
		File:        handlers.NewFileHandler(baseHandler, container.Storage),
		Dashboard:   handlers.NewDashboardHandler(baseHandler, container.DashboardService),
	}
}

func initializeGinRouter(env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstTeacher creates the initial teacher account if none exists.
// Teachers cannot self-register.
func seedFirstTeacher(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstTeacherEmail == "" || cfg.FirstTeacherPassword == "" {
		logger.Warn("FIRST_TEACHER_EMAIL or FIRST_TEACHER_PASSWORD not set, skipping teacher seeding")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("role = ?", models.UserRoleTeacher).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hash, err := auth.HashPassword(cfg.FirstTeacherPassword)
		if err != nil {
			return err
		}

		teacher := &models.User{
			Role:         models.UserRoleTeacher,
			Name:         "Department Teacher",
			Email:        cfg.FirstTeacherEmail,
			PasswordHash: hash,
		}
		if err := tx.Create(teacher).Error; err != nil {
			return err
		}

		logger.Info("Seeded first teacher account", "email", cfg.FirstTeacherEmail)
		return nil
	})
}
