package db

import (
	"fmt"
	"log"

	"github.com/elburim/elburim-backend/internal/app/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing.
// ReportRun은 text[] 컬럼 때문에 sqlite에서 제외한다.
func SetupTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	err = db.AutoMigrate(
		&model.Member{},
		&model.Consultation{},
		&model.Measurement{},
		&model.WorkOrder{},
		&model.DeliveryEntry{},
		&model.DeliveryOrder{},
		&model.StockItem{},
		&model.StockMovement{},
		&model.SizeRule{},
		&model.FormField{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	return db, nil
}

// CleanupTestDB cleans up the test database
func CleanupTestDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Failed to get DB instance: %v", err)
		return
	}
	sqlDB.Close()
}
