package main

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/application/service"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/config"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/infrastructure/client"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/infrastructure/database"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/infrastructure/repository"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/presentation/http/handler"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/presentation/http/routes"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/email"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/printer"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		logrus.WithError(err).Warn("Failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	foodOrderRepo := repository.NewFoodOrderRepository(db)
	posOrderRepo := repository.NewPOSOrderRepository(db)
	billingRepo := repository.NewBillingRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Expired idempotency keys are only dead weight; sweep them hourly.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				logrus.WithError(err).Warn("Failed to clean up idempotency keys")
			}
		}
	}()

	// Email is optional. Without SMTP_HOST the receipt email endpoint
	// reports that email is not configured.
	var emailService *email.EmailService
	if cfg.Email.SMTPHost != "" {
		smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
		if err != nil {
			logrus.WithError(err).Fatal("Invalid SMTP_PORT")
		}
		emailService = email.NewEmailService(email.EmailConfig{
			SMTPHost:     cfg.Email.SMTPHost,
			SMTPPort:     smtpPort,
			SMTPUsername: cfg.Email.SMTPUser,
			SMTPPassword: cfg.Email.SMTPPassword,
			FromName:     cfg.Email.FromName,
			FromEmail:    cfg.Email.FromAddress,
		})
	}

	// Remote promotion validation is optional as well. Without a validator
	// URL codes are checked only against the local promotions table.
	var promotionValidator client.PromotionValidator
	if cfg.Promotion.ValidatorURL != "" {
		promotionValidator = client.NewPromotionValidatorClient(
			cfg.Promotion.ValidatorURL,
			cfg.Promotion.Timeout,
		)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	roomService := service.NewRoomService(roomRepo, reservationRepo)
	promotionService := service.NewPromotionService(promotionRepo, promotionValidator)
	checkoutService := service.NewCheckoutService(
		roomRepo,
		reservationRepo,
		foodOrderRepo,
		posOrderRepo,
		billingRepo,
		promotionRepo,
		restaurantRepo,
		promotionService,
	)
	settingsService := service.NewSettingsService(restaurantRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
		cfg.Printer.SpoolDir,
	)
	if err != nil {
		logrus.WithError(err).Warn("Failed to initialize printer, falling back to null printer")
		thermalPrinter = printer.NewNullPrinter()
	}
	receiptService := service.NewReceiptService(
		billingRepo,
		foodOrderRepo,
		restaurantRepo,
		thermalPrinter,
		emailService,
		cfg.Printer.Type,
		cfg.Printer.Width,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Room:     handler.NewRoomHandler(roomService),
		Checkout: handler.NewCheckoutHandler(checkoutService, promotionService),
		Billing:  handler.NewBillingHandler(checkoutService, receiptService),
		Settings: handler.NewSettingsHandler(settingsService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	logrus.WithFields(logrus.Fields{
		"service": cfg.App.Name,
		"port":    cfg.App.Port,
		"env":     cfg.App.Env,
	}).Info("starting server")

	if err := router.Run(":" + cfg.App.Port); err != nil {
		logrus.WithError(err).Fatal("Server exited")
	}
}
