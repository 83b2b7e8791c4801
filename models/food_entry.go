package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodEntry is one confirmed food log record. Immutable once written;
// history views query by user + date.
type FoodEntry struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Name     string `gorm:"not null"`
	Calories int    // kcal, non-negative
	PhotoURL string
	AteAt    time.Time `gorm:"index;not null"`
}
