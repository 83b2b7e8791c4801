package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ProfileInput struct {
	FullName          string   `json:"full_name"`
	Gender            string   `json:"gender"`
	Age               int      `json:"age"`
	WeightKg          float64  `json:"weight_kg"`
	HeightCm          float64  `json:"height_cm"`
	ActivityLevel     string   `json:"activity_level"`
	DietaryPreference string   `json:"dietary_preference"`
	CalorieGoal       *int     `json:"calorie_goal"`
	StepGoal          *int     `json:"step_goal"`
	HydrationGoal     *float64 `json:"hydration_goal"`
	ProfilePicture    string   `json:"profile_picture"`
}

var activityLevels = map[string]bool{
	"Sedentary": true,
	"Moderate":  true,
	"Active":    true,
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":                 user.ID,
		"email":              user.Email,
		"full_name":          user.FullName,
		"gender":             user.Gender,
		"age":                user.Age,
		"weight_kg":          user.WeightKg,
		"height_cm":          user.HeightCm,
		"activity_level":     user.ActivityLevel,
		"dietary_preference": user.DietaryPreference,
		"calorie_goal":       user.CalorieGoal,
		"step_goal":          user.StepGoal,
		"hydration_goal":     user.HydrationGoal,
		"profile_picture":    user.ProfilePicture,
	}, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.ActivityLevel != "" {
		if !activityLevels[input.ActivityLevel] {
			return fmt.Errorf("invalid activity level %q", input.ActivityLevel)
		}
		user.ActivityLevel = input.ActivityLevel
	}
	if input.DietaryPreference != "" {
		user.DietaryPreference = input.DietaryPreference
	}
	if input.CalorieGoal != nil && *input.CalorieGoal >= 0 {
		user.CalorieGoal = *input.CalorieGoal
	}
	if input.StepGoal != nil && *input.StepGoal >= 0 {
		user.StepGoal = *input.StepGoal
	}
	if input.HydrationGoal != nil && *input.HydrationGoal >= 0 {
		user.HydrationGoal = *input.HydrationGoal
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, "profile-pictures/"+user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}

// RecommendCalorieGoal computes a daily calorie recommendation from the
// stored profile and optionally persists it as the user's goal.
func RecommendCalorieGoal(email string, save bool) (int, error) {
	var user models.User
	if err := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return 0, errors.New("user not found or disabled")
	}
	if user.WeightKg <= 0 || user.HeightCm <= 0 || user.Age <= 0 {
		return 0, errors.New("complete weight, height and age in your profile first")
	}
	if strings.TrimSpace(user.Gender) == "" {
		return 0, errors.New("set your gender in your profile first")
	}

	goal := int(math.Round(utils.RecommendedCalories(user.WeightKg, user.HeightCm, user.Age, user.Gender)))
	if save {
		user.CalorieGoal = goal
		if err := config.DB.Save(&user).Error; err != nil {
			return 0, err
		}
	}
	return goal, nil
}

func DeleteUser(email string) error {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
