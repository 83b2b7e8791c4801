package services

import (
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

func UpsertHydration(userID uint, hydration float64) error {
	start := dayStartLocal(time.Now())

	log := models.DailyActivityLog{
		UserID:    userID,
		Date:      start,
		Hydration: hydration,
	}

	// Upsert by (user_id, date @ local midnight)
	return config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(log).
		FirstOrCreate(&log).Error
}

func GetHydrationByDate(userID uint, date time.Time) (float64, error) {
	start := dayStartLocal(date)

	var log models.DailyActivityLog
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&log).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return log.Hydration, nil
}
