package models

import (
	"time"

	"gorm.io/gorm"
)

// MealHistory is one generated meal plan with its restaurant matches.
type MealHistory struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null"`
	GeneratedAt time.Time `gorm:"index"`
	Meals       []MealLine
	Restaurants []Restaurant
}

// MealLine keeps the plan's ordering; edits address a line by Position so
// duplicate text stays unambiguous.
type MealLine struct {
	gorm.Model
	MealHistoryID uint `gorm:"index;not null"`
	Position      int
	Text          string `gorm:"type:text"`
}

// Restaurant is stored verbatim from the restaurant-search response.
type Restaurant struct {
	gorm.Model
	MealHistoryID uint   `gorm:"index;not null"`
	Name          string `gorm:"not null"`
	ImageURL      string `gorm:"not null"`
	Address       string
	Phone         string
	Rating        float64 // 0–5
	Price         string  // "$".."$$$$" or "Not Available"
}
