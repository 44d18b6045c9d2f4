package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/config"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	logrus.Info("running database migrations")

	err := db.AutoMigrate(
		// Property entities
		&entity.Restaurant{},
		&entity.User{},
		&entity.Room{},
		&entity.Reservation{},

		// Order entities
		&entity.FoodOrder{},
		&entity.FoodOrderItem{},
		&entity.POSOrder{},

		// Checkout entities
		&entity.Promotion{},
		&entity.PromotionUsage{},
		&entity.Billing{},
		&entity.AdditionalCharge{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("database migrations completed")
	return nil
}

// SeedDefaultData creates the default restaurant and an admin user when the
// corresponding environment variables are set. Safe to run on every startup.
func SeedDefaultData(db *gorm.DB) error {
	restaurantName := viper.GetString("RESTAURANT_NAME")
	if restaurantName == "" {
		restaurantName = "Tasty Bite Harbor"
	}

	var restaurant entity.Restaurant
	if err := db.Where("name = ?", restaurantName).First(&restaurant).Error; err != nil {
		restaurant = entity.Restaurant{
			Name:                 restaurantName,
			Address:              viper.GetString("RESTAURANT_ADDRESS"),
			Phone:                viper.GetString("RESTAURANT_PHONE"),
			GSTIN:                viper.GetString("RESTAURANT_GSTIN"),
			Currency:             "INR",
			ServiceChargeEnabled: false,
			TaxRatePercent:       5,
		}
		if err := db.Create(&restaurant).Error; err != nil {
			return fmt.Errorf("failed to create default restaurant: %w", err)
		}
		logrus.WithField("restaurant_id", restaurant.ID).Info("created default restaurant")
	}

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}
			if adminName == "" {
				adminName = "Admin"
			}
			admin := entity.User{
				RestaurantID: restaurant.ID,
				FirstName:    adminName,
				Email:        adminEmail,
				Password:     string(hashedPassword),
				Role:         "admin",
			}
			if err := db.Create(&admin).Error; err != nil {
				return fmt.Errorf("failed to create admin user: %w", err)
			}
			logrus.WithField("email", adminEmail).Info("created admin user")
		}
	}

	// Optional starter rooms for fresh installs
	if viper.GetBool("SEED_SAMPLE_ROOMS") {
		var count int64
		db.Model(&entity.Room{}).Where("restaurant_id = ?", restaurant.ID).Count(&count)
		if count == 0 {
			rooms := []entity.Room{
				{RestaurantID: restaurant.ID, Number: "101", DailyRate: 250000, Status: enum.RoomStatusAvailable},
				{RestaurantID: restaurant.ID, Number: "102", DailyRate: 250000, Status: enum.RoomStatusAvailable},
				{RestaurantID: restaurant.ID, Number: "201", DailyRate: 400000, Status: enum.RoomStatusAvailable},
			}
			for i := range rooms {
				if err := db.Create(&rooms[i]).Error; err != nil {
					logrus.WithError(err).WithField("room", rooms[i].Number).Warn("failed to seed room")
				}
			}
		}
	}

	return nil
}
