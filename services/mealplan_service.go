package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/MohammadCZeidan/Server-Homelife/models"
	"github.com/MohammadCZeidan/Server-Homelife/utils"

	"gorm.io/gorm"
)

var dayNames = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

// NormalizeDay turns "monday" or "3" into a 0-6 day index (0=Sunday).
// Returns -1 for anything invalid.
func NormalizeDay(day string) int {
	if n, err := strconv.Atoi(strings.TrimSpace(day)); err == nil {
		if n >= 0 && n <= 6 {
			return n
		}
		return -1
	}
	if n, ok := dayNames[strings.ToLower(strings.TrimSpace(day))]; ok {
		return n
	}
	return -1
}

var mealSlots = []string{"breakfast", "lunch", "dinner", "snack"}

func ValidSlot(slot string) bool {
	for _, s := range mealSlots {
		if slot == s {
			return true
		}
	}
	return false
}

type MealPlanService struct {
	db       *gorm.DB
	webhooks *WebhookService
}

func NewMealPlanService(db *gorm.DB, webhooks *WebhookService) *MealPlanService {
	return &MealPlanService{db: db, webhooks: webhooks}
}

// GetWeeklyPlan returns the household's week starting the given date
// (current week when zero), or nil when no plan exists yet.
func (s *MealPlanService) GetWeeklyPlan(householdID uint, weekStart time.Time) (*models.Week, error) {
	if weekStart.IsZero() {
		weekStart = time.Now()
	}
	start := utils.StartOfWeek(weekStart)

	var week models.Week
	err := s.db.
		Preload("Meals.Recipe").
		Where("household_id = ? AND start_date = ?", householdID, start).
		First(&week).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &week, nil
}

// CreateWeeklyPlan finds or creates the week covering startDate.
// Repeated calls with any date in the same calendar week return the
// same row.
func (s *MealPlanService) CreateWeeklyPlan(householdID uint, startDate time.Time) (*models.Week, error) {
	start := utils.StartOfWeek(startDate)
	end := start.AddDate(0, 0, 6)

	var week models.Week
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("household_id = ? AND start_date = ?", householdID, start).
			First(&week).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			week = models.Week{HouseholdID: householdID, StartDate: start, EndDate: end}
			return tx.Create(&week).Error
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Meals.Recipe").First(&week, week.ID).Error; err != nil {
		return nil, err
	}
	return &week, nil
}

// AddMeal upserts the (day, slot) cell of the week: an occupied cell
// gets its recipe overwritten in place. The change is announced to the
// automation webhook, fire-and-forget.
func (s *MealPlanService) AddMeal(weekID, householdID uint, day int, slot string, recipeID uint) (*models.Meal, error) {
	if day < 0 || day > 6 {
		return nil, invalid("day", "must be 0-6 or a valid day name")
	}
	if !ValidSlot(slot) {
		return nil, invalid("slot", "must be breakfast, lunch, dinner or snack")
	}

	var count int64
	if err := s.db.Model(&models.Recipe{}).
		Where("id = ? AND household_id = ?", recipeID, householdID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, invalid("recipe_id", "recipe does not exist")
	}

	var meal models.Meal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var week models.Week
		err := tx.
			Where("id = ? AND household_id = ?", weekID, householdID).
			First(&week).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		err = tx.
			Where("week_id = ? AND day = ? AND slot = ?", weekID, day, slot).
			First(&meal).Error
		if err == nil {
			meal.RecipeID = recipeID
			return tx.Save(&meal).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		meal = models.Meal{WeekID: weekID, Day: day, Slot: slot, RecipeID: recipeID}
		return tx.Create(&meal).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Recipe").First(&meal, meal.ID).Error; err != nil {
		return nil, err
	}

	if s.webhooks != nil {
		go s.webhooks.TriggerMealPlanUpdated(weekID, householdID)
	}
	return &meal, nil
}

// RemoveMeal deletes a meal after checking both the week's ownership
// and that the meal belongs to that week.
func (s *MealPlanService) RemoveMeal(weekID, householdID, mealID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var week models.Week
		err := tx.
			Where("id = ? AND household_id = ?", weekID, householdID).
			First(&week).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		res := tx.
			Where("id = ? AND week_id = ?", mealID, weekID).
			Delete(&models.Meal{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.webhooks != nil {
		go s.webhooks.TriggerMealPlanUpdated(weekID, householdID)
	}
	return nil
}
