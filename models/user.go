package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	Gender            string `gorm:"size:16"` // "Male" | "Female" | "Other"
	Age               int
	WeightKg          float64
	HeightCm          float64
	ActivityLevel     string `gorm:"size:16;default:Sedentary"` // "Sedentary" | "Moderate" | "Active"
	DietaryPreference string

	// Daily targets. CalorieGoal may come from the BMR recommendation or a
	// manual override via profile update.
	CalorieGoal   int
	StepGoal      int
	HydrationGoal float64 // glasses

	ProfilePicture string

	ResetToken    string
	ResetTokenExp time.Time
	Disabled      bool
}
