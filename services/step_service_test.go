package services

import (
	"testing"
	"time"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/require"
)

func TestRecordReadingCapturesBaselineOnce(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.User{})
	svc := NewStepService(nil)

	// first observation pins the baseline, delta starts at 0
	count, err := svc.RecordReading(user.ID, "dev-1", 10230, true)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	count, err = svc.RecordReading(user.ID, "dev-1", 10530, true)
	require.NoError(t, err)
	require.Equal(t, 300, count)

	var baselines []models.StepBaseline
	require.NoError(t, config.DB.Find(&baselines).Error)
	require.Len(t, baselines, 1)
	require.EqualValues(t, 10230, baselines[0].Baseline)
}

func TestRecordReadingUpsertIsIdempotent(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.User{})
	svc := NewStepService(nil)

	_, err := svc.RecordReading(user.ID, "dev-1", 1000, true)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		count, err := svc.RecordReading(user.ID, "dev-1", 1500, true)
		require.NoError(t, err)
		require.Equal(t, 500, count)
	}

	// one row per (user, date), holding the latest delta
	var recs []models.StepsRecord
	require.NoError(t, config.DB.Where("user_id = ?", user.ID).Find(&recs).Error)
	require.Len(t, recs, 1)
	require.Equal(t, 500, recs[0].Count)
}

func TestRecordReadingCounterResetClampsToZero(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.User{})
	svc := NewStepService(nil)

	_, err := svc.RecordReading(user.ID, "dev-1", 50000, true)
	require.NoError(t, err)

	// device rebooted, hardware counter restarted below the baseline
	count, err := svc.RecordReading(user.ID, "dev-1", 12, true)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	count, err = svc.RecordReading(user.ID, "dev-1", 112, true)
	require.NoError(t, err)
	require.Equal(t, 100, count)
}

func TestRecordReadingSensorAbsentIsTerminal(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.User{})
	svc := NewStepService(nil)

	_, err := svc.RecordReading(user.ID, "dev-1", 100, false)
	require.ErrorIs(t, err, ErrStepSensorUnavailable)

	var recs []models.StepsRecord
	require.NoError(t, config.DB.Find(&recs).Error)
	require.Empty(t, recs)
}

func TestResetBaselineStartsFreshSession(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.User{})
	svc := NewStepService(nil)

	_, err := svc.RecordReading(user.ID, "dev-1", 4000, true)
	require.NoError(t, err)
	count, err := svc.RecordReading(user.ID, "dev-1", 4200, true)
	require.NoError(t, err)
	require.Equal(t, 200, count)

	require.NoError(t, svc.ResetBaseline(user.ID, "dev-1"))

	count, err = svc.RecordReading(user.ID, "dev-1", 4300, true)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestTodayCountMissingRecordIsZero(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.User{})
	svc := NewStepService(nil)

	count, err := svc.TodayCount(user.ID)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestHistoryOrdersByDateDescending(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.User{})
	svc := NewStepService(nil)

	today := dayStartLocal(time.Now())
	for i := 3; i >= 1; i-- {
		require.NoError(t, config.DB.Create(&models.StepsRecord{
			UserID: user.ID,
			Date:   today.AddDate(0, 0, -i),
			Count:  i * 1000,
		}).Error)
	}

	recs, err := svc.History(user.ID)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.True(t, recs[0].Date.After(recs[1].Date))
	require.True(t, recs[1].Date.After(recs[2].Date))
}
