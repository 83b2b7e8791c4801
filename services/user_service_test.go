package services

import (
	"testing"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/require"
)

func TestRecommendCalorieGoal(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.User{
		Gender:   "Male",
		Age:      30,
		WeightKg: 70,
		HeightCm: 175,
	})

	goal, err := RecommendCalorieGoal(user.Email, false)
	require.NoError(t, err)
	require.Equal(t, 1696, goal) // rounded Harris-Benedict

	// not persisted without save
	var fresh models.User
	require.NoError(t, config.DB.First(&fresh, user.ID).Error)
	require.Equal(t, 0, fresh.CalorieGoal)

	goal, err = RecommendCalorieGoal(user.Email, true)
	require.NoError(t, err)
	require.NoError(t, config.DB.First(&fresh, user.ID).Error)
	require.Equal(t, goal, fresh.CalorieGoal)
}

func TestRecommendCalorieGoalIncompleteProfile(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.User{Gender: "Female"})

	_, err := RecommendCalorieGoal(user.Email, false)
	require.Error(t, err)
}

func TestUpdateUserProfileValidatesActivityLevel(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.User{})

	err := UpdateUserProfile(user.Email, ProfileInput{ActivityLevel: "Couch"})
	require.Error(t, err)

	require.NoError(t, UpdateUserProfile(user.Email, ProfileInput{ActivityLevel: "Active"}))
	var fresh models.User
	require.NoError(t, config.DB.First(&fresh, user.ID).Error)
	require.Equal(t, "Active", fresh.ActivityLevel)
}

func TestUpdateUserProfileManualGoalOverride(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, models.User{CalorieGoal: 1800})

	goal := 2200
	require.NoError(t, UpdateUserProfile(user.Email, ProfileInput{CalorieGoal: &goal}))

	var fresh models.User
	require.NoError(t, config.DB.First(&fresh, user.ID).Error)
	require.Equal(t, 2200, fresh.CalorieGoal)
}
