package services

import (
	"testing"
	"time"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/require"
)

func TestPickLabel(t *testing.T) {
	cases := []struct {
		name   string
		labels []string
		want   string
		manual bool
	}{
		{"first label wins", []string{"Fried Rice", "Food", "Plate"}, "Fried Rice", false},
		{"no labels", nil, "", true},
		{"empty label", []string{"   "}, "", true},
		{"error marker", []string{"Error: could not process image"}, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pickLabel(tc.labels)
			if tc.manual {
				require.ErrorIs(t, err, ErrManualEntryRequired)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestLogEntryValidation(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.User{})
	svc := NewFoodService(nil, nil)

	_, err := svc.LogEntry(user.ID, "", 100, "", time.Now())
	require.Error(t, err)

	_, err = svc.LogEntry(user.ID, "Toast", -5, "", time.Now())
	require.Error(t, err)

	var entries []models.FoodEntry
	require.NoError(t, config.DB.Find(&entries).Error)
	require.Empty(t, entries)
}

func TestLogEntryAndListByDate(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.User{})
	svc := NewFoodService(nil, nil)

	now := time.Now()
	_, err := svc.LogEntry(user.ID, "Chicken rice", 607, "", now.Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = svc.LogEntry(user.ID, "Kopi", 120, "", now)
	require.NoError(t, err)

	// yesterday's entry stays out of today's view
	yesterday := now.AddDate(0, 0, -1)
	_, err = svc.LogEntry(user.ID, "Laksa", 590, "", yesterday)
	require.NoError(t, err)

	entries, err := svc.ListEntriesByDate(user.ID, now)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// timestamp descending
	require.Equal(t, "Kopi", entries[0].Name)
	require.Equal(t, "Chicken rice", entries[1].Name)

	total, err := svc.DayCalories(user.ID, now)
	require.NoError(t, err)
	require.Equal(t, 727, total)
}

func TestLogEntryOverCalorieGoalEmitsAlert(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, models.User{CalorieGoal: 500})
	InitAlertDeps(db, nil, nil)
	t.Cleanup(func() { _alert = alertDeps{} })

	svc := NewFoodService(nil, nil)
	_, err := svc.LogEntry(user.ID, "Burger meal", 820, "", time.Now())
	require.NoError(t, err)

	var alerts []models.Alert
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&alerts).Error)
	require.Len(t, alerts, 1)
	require.Equal(t, "warning", alerts[0].Type)
}
