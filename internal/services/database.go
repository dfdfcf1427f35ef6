package services

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tailorapp_echo/internal/models"
)

// InitDB initializes the database connection with connection pooling
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Get underlying sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established")
	return db, nil
}

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Client{},
		&models.DressMeasurement{},
		&models.WaistcoatMeasurement{},
		&models.PaymentOrder{},
		&models.PaymentInstallment{},
		&models.ShopSetting{},
		&models.ScheduledTask{},
		&models.ScheduledTaskHistory{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migrations completed")
	return nil
}

// SeedSettings inserts default shop settings when they are missing, so the
// printed slips always have a footer and a shop name.
func SeedSettings(db *gorm.DB) error {
	defaults := map[string]string{
		models.SettingShopName:   "Tailor Shop",
		models.SettingSlipFooter: "Thank you for your business",
		models.SettingOwnerEmail: "",
	}

	for key, value := range defaults {
		var existing models.ShopSetting
		err := db.Where("key = ?", key).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&models.ShopSetting{Key: key, Value: value}).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetSetting reads one setting value, returning the fallback when unset.
func GetSetting(db *gorm.DB, key, fallback string) string {
	var setting models.ShopSetting
	if err := db.Where("key = ?", key).First(&setting).Error; err != nil {
		return fallback
	}
	return setting.Value
}
