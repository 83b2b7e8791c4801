// services/summary_service.go
package services

import (
	"time"

	"backend/config"
	"backend/models"
)

// GetDailySummary builds the history-view payload for one calendar day:
// calories, steps and hydration, each against the user's goal.
func GetDailySummary(userID uint, date time.Time) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	start := dayStartLocal(date)
	end := start.Add(24 * time.Hour)

	var entries []models.FoodEntry
	if err := config.DB.
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, start, end).
		Order("ate_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	calories := 0
	for _, e := range entries {
		calories += e.Calories
	}

	var steps models.StepsRecord
	stepCount := 0
	if err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&steps).Error; err == nil {
		stepCount = steps.Count
	}

	hydration, err := GetHydrationByDate(userID, start)
	if err != nil {
		return nil, err
	}

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	return map[string]interface{}{
		"date":    start.Format("2006-01-02"),
		"entries": entries,
		"calories": map[string]float64{
			"consumed": float64(calories),
			"goal":     float64(user.CalorieGoal),
			"percent":  pct(float64(calories), float64(user.CalorieGoal)),
		},
		"steps": map[string]float64{
			"count":   float64(stepCount),
			"goal":    float64(user.StepGoal),
			"percent": pct(float64(stepCount), float64(user.StepGoal)),
		},
		"hydration": map[string]float64{
			"consumed": hydration,
			"goal":     user.HydrationGoal,
			"percent":  pct(hydration, user.HydrationGoal),
		},
	}, nil
}
