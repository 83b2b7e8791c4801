// services/mealplan_service.go
package services

import (
	"errors"
	"log"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type MealPlanService struct {
	gen  *GenAIService
	yelp *YelpService
}

func NewMealPlanService(gen *GenAIService, yelp *YelpService) *MealPlanService {
	return &MealPlanService{gen: gen, yelp: yelp}
}

// GeneratePlan asks the model for a day of meals, finds a restaurant match
// per meal line and persists everything as one history record. A restaurant
// search failure degrades to a plan without matches rather than failing the
// whole generation.
func (s *MealPlanService) GeneratePlan(userID uint) (*models.MealHistory, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	lines, err := s.gen.GenerateMealPlan(&user)
	if err != nil {
		return nil, err
	}

	hist := &models.MealHistory{UserID: userID, GeneratedAt: time.Now()}
	if err := config.DB.Create(hist).Error; err != nil {
		return nil, err
	}

	for i, line := range lines {
		ml := &models.MealLine{
			MealHistoryID: hist.ID,
			Position:      i,
			Text:          line,
		}
		if err := config.DB.Create(ml).Error; err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool)
	for _, line := range lines {
		term := YelpSearchTerm(line)
		found, err := s.yelp.SearchRestaurants(term)
		if err != nil {
			log.Printf("yelp search failed for %q: %v", term, err)
			continue
		}
		for _, r := range found {
			if seen[r.Name] {
				continue
			}
			seen[r.Name] = true
			r.MealHistoryID = hist.ID
			if err := config.DB.Create(&r).Error; err != nil {
				return nil, err
			}
		}
	}

	// reload with children
	var populated models.MealHistory
	if err := config.DB.
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Restaurants").
		First(&populated, hist.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func (s *MealPlanService) ListHistories(userID uint) ([]models.MealHistory, error) {
	var hists []models.MealHistory
	err := config.DB.
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Restaurants").
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&hists).Error
	return hists, err
}

func (s *MealPlanService) GetHistory(userID, historyID uint) (*models.MealHistory, error) {
	var hist models.MealHistory
	err := config.DB.
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Restaurants").
		Where("id = ? AND user_id = ?", historyID, userID).
		First(&hist).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &hist, nil
}

// UpdateMealLine edits a single meal line in place. Lines are addressed by
// position within the plan, so two identical lines never collide.
func (s *MealPlanService) UpdateMealLine(userID, historyID uint, position int, text string) (*models.MealLine, error) {
	var hist models.MealHistory
	if err := config.DB.
		Where("id = ? AND user_id = ?", historyID, userID).
		First(&hist).Error; err != nil {
		return nil, err
	}

	var line models.MealLine
	if err := config.DB.
		Where("meal_history_id = ? AND position = ?", hist.ID, position).
		First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("meal line not found")
		}
		return nil, err
	}

	line.Text = text
	if err := config.DB.Save(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}
