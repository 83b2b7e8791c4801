package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

// ErrManualEntryRequired signals that recognition produced nothing usable
// and the client should fall back to a manual form, not an error screen.
var ErrManualEntryRequired = errors.New("could not identify food, manual entry required")

type FoodService struct {
	vision *VisionService
	gen    *GenAIService
}

func NewFoodService(vision *VisionService, gen *GenAIService) *FoodService {
	return &FoodService{vision: vision, gen: gen}
}

// RecognizedFood is the preview returned to the client before it confirms
// the entry. Nothing is persisted at this stage.
type RecognizedFood struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

// pickLabel takes the first identification result and rejects labels that
// are empty or begin with an error marker.
func pickLabel(labels []string) (string, error) {
	if len(labels) == 0 {
		return "", ErrManualEntryRequired
	}
	label := strings.TrimSpace(labels[0])
	if label == "" || strings.HasPrefix(strings.ToLower(label), "error") {
		return "", ErrManualEntryRequired
	}
	return label, nil
}

// Recognize runs the two-step flow: identify the food from the image, then
// estimate its calories from the identified label. Both steps must succeed
// before the preview is usable.
func (s *FoodService) Recognize(base64Img string) (*RecognizedFood, error) {
	labels, err := s.vision.DetectFoodLabels(base64Img)
	if err != nil {
		return nil, fmt.Errorf("image recognition failed: %w", err)
	}
	label, err := pickLabel(labels)
	if err != nil {
		return nil, err
	}

	calories, err := s.gen.EstimateCalories(label)
	if err != nil {
		return nil, fmt.Errorf("calorie estimate failed: %w", err)
	}
	return &RecognizedFood{Name: label, Calories: calories}, nil
}

// LogEntry saves one confirmed food record. photoBase64 is optional; when
// present the image is uploaded to S3 first.
func (s *FoodService) LogEntry(userID uint, name string, calories int, photoBase64 string, ateAt time.Time) (*models.FoodEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("food name is required")
	}
	if calories < 0 {
		return nil, errors.New("calories must be non-negative")
	}
	if ateAt.IsZero() {
		ateAt = time.Now()
	}

	entry := &models.FoodEntry{
		UserID:   userID,
		Name:     name,
		Calories: calories,
		AteAt:    ateAt,
	}
	if photoBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(photoBase64, fmt.Sprintf("food-photos/%d", userID))
		if err != nil {
			return nil, fmt.Errorf("failed to upload food photo: %w", err)
		}
		entry.PhotoURL = url
	}

	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}

	s.checkCalorieGoal(userID, ateAt)
	return entry, nil
}

// ListEntriesByDate returns a user's entries for one calendar day,
// newest first.
func (s *FoodService) ListEntriesByDate(userID uint, date time.Time) ([]models.FoodEntry, error) {
	start := dayStartLocal(date)
	end := start.Add(24 * time.Hour)

	var entries []models.FoodEntry
	err := config.DB.
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, start, end).
		Order("ate_at DESC").
		Find(&entries).Error
	return entries, err
}

// DayCalories sums a user's caloric intake for one calendar day.
func (s *FoodService) DayCalories(userID uint, date time.Time) (int, error) {
	entries, err := s.ListEntriesByDate(userID, date)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, e := range entries {
		total += e.Calories
	}
	return total, nil
}

func (s *FoodService) checkCalorieGoal(userID uint, date time.Time) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil || user.CalorieGoal <= 0 {
		return
	}
	total, err := s.DayCalories(userID, date)
	if err != nil {
		return
	}
	if total > user.CalorieGoal {
		EmitAlert(userID, "warning", fmt.Sprintf(
			"You are over your daily calorie goal (%d of %d kcal).", total, user.CalorieGoal))
	}
}
