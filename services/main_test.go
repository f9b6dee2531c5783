package services

import (
	"fmt"
	"testing"

	"github.com/yansanity1998/ojt-hours-tracker/config"
	"github.com/yansanity1998/ojt-hours-tracker/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps the package-global DB handle for an in-memory sqlite
// database, mirroring how the service layer runs against postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// :memory: is per-connection; a single connection keeps one database.
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	config.DB = db
	InitNotifier(db, nil, nil)

	// Row IDs restart with every fresh database; per-user state keyed on
	// them has to start over too.
	celebrations = celebrationLatch{fired: make(map[uint]bool)}
	return db
}

var userSeq uint

func createTestUser(t *testing.T) *models.User {
	t.Helper()
	userSeq++
	user := models.User{
		Email:    fmt.Sprintf("intern%d@example.com", userSeq),
		Password: "not-a-real-hash",
		FullName: "Test Intern",
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}
