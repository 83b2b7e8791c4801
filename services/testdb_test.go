package services

import (
	"testing"

	"backend/config"
	"backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB points the global config.DB at a fresh in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// single connection so the in-memory schema is shared
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodEntry{},
		&models.StepsRecord{},
		&models.StepBaseline{},
		&models.DailyActivityLog{},
		&models.MealHistory{},
		&models.MealLine{},
		&models.Restaurant{},
		&models.Alert{},
		&models.UserDevice{},
	))

	config.DB = db
	t.Cleanup(func() { config.DB = nil })
	return db
}

func createTestUser(t *testing.T, u models.User) models.User {
	t.Helper()
	if u.Email == "" {
		u.Email = "test@example.com"
	}
	if u.Password == "" {
		u.Password = "hashed"
	}
	require.NoError(t, config.DB.Create(&u).Error)
	return u
}
