package services

import (
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// ErrStepSensorUnavailable is terminal for the session; the client should
// disable the step feature rather than retry.
var ErrStepSensorUnavailable = errors.New("step counting unavailable on this device")

type StepService struct {
	hub *RealtimeHub
}

func NewStepService(hub *RealtimeHub) *StepService {
	return &StepService{hub: hub}
}

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// RecordReading turns a raw cumulative hardware counter value into a session
// step count and upserts today's record for the user.
//
// The first observation for a (user, device) pair captures the baseline; each
// later one yields raw − baseline. A raw value below the baseline means the
// hardware counter reset, so the baseline is re-captured and the delta clamps
// to 0 instead of going negative.
func (s *StepService) RecordReading(userID uint, deviceID string, raw int64, sensorPresent bool) (int, error) {
	if !sensorPresent {
		return 0, ErrStepSensorUnavailable
	}
	if deviceID == "" {
		return 0, errors.New("device_id is required")
	}
	if raw < 0 {
		return 0, errors.New("raw count must be non-negative")
	}

	var baseline models.StepBaseline
	err := config.DB.
		Where("user_id = ? AND device_id = ?", userID, deviceID).
		First(&baseline).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		baseline = models.StepBaseline{UserID: userID, DeviceID: deviceID, Baseline: raw}
		if err := config.DB.Create(&baseline).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	} else if raw < baseline.Baseline {
		baseline.Baseline = raw
		if err := config.DB.Save(&baseline).Error; err != nil {
			return 0, err
		}
	}

	delta := int(raw - baseline.Baseline)

	prev, err := s.upsertToday(userID, delta)
	if err != nil {
		return 0, err
	}

	if s.hub != nil {
		s.hub.Broadcast(userID, map[string]any{
			"kind":  "steps.updated",
			"count": delta,
		})
	}

	s.checkStepGoal(userID, prev, delta)
	return delta, nil
}

// upsertToday replaces the full record for (user, today): fetch by the
// composite key, write a replacement if present, else create. Returns the
// previous count (0 when the record is new).
func (s *StepService) upsertToday(userID uint, count int) (int, error) {
	start := dayStartLocal(time.Now())

	var rec models.StepsRecord
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = models.StepsRecord{UserID: userID, Date: start, Count: count}
		return 0, config.DB.Create(&rec).Error
	}
	if err != nil {
		return 0, err
	}

	prev := rec.Count
	rec.Count = count
	return prev, config.DB.Save(&rec).Error
}

// ResetBaseline drops the stored baseline so the next reading starts a
// fresh session at delta 0.
func (s *StepService) ResetBaseline(userID uint, deviceID string) error {
	return config.DB.
		Where("user_id = ? AND device_id = ?", userID, deviceID).
		Delete(&models.StepBaseline{}).Error
}

func (s *StepService) History(userID uint) ([]models.StepsRecord, error) {
	var recs []models.StepsRecord
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&recs).Error
	return recs, err
}

func (s *StepService) TodayCount(userID uint) (int, error) {
	start := dayStartLocal(time.Now())

	var rec models.StepsRecord
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rec.Count, nil
}

// checkStepGoal alerts once when the daily count crosses the goal.
func (s *StepService) checkStepGoal(userID uint, prev, current int) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil || user.StepGoal <= 0 {
		return
	}
	if prev < user.StepGoal && current >= user.StepGoal {
		EmitAlert(userID, "info", fmt.Sprintf("Step goal reached: %d steps today!", current))
	}
}
