package models

import (
	"time"

	"gorm.io/gorm"
)

// StepsRecord holds one row per user per day, replaced in full on every
// sensor reading (check-then-set, not an atomic increment).
type StepsRecord struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"` // local midnight
	Count  int
}

// StepBaseline pins the first raw cumulative counter value seen for a
// device so session deltas survive client restarts.
type StepBaseline struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	DeviceID string `gorm:"size:64;index;not null"`
	Baseline int64
}
