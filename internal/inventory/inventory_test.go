package inventory

import (
	"path/filepath"
	"testing"

	"ltip-labweb/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.LabInfo{},
		&models.Equipment{},
		&models.Machine{},
		&models.Report{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
