package services

import (
	"time"

	"github.com/MohammadCZeidan/Server-Homelife/logger"
	"github.com/MohammadCZeidan/Server-Homelife/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TaskService runs the jobs a cron fires outside the request cycle:
// the daily expiring-items digest and the weekly AI meal plan draft.
// See cmd/main.go for the command-line entry points.
type TaskService struct {
	db       *gorm.DB
	pantry   *PantryService
	plans    *MealPlanService
	ai       *AIService
	webhooks *WebhookService
}

func NewTaskService(db *gorm.DB, ai *AIService, webhooks *WebhookService) *TaskService {
	return &TaskService{
		db:       db,
		pantry:   NewPantryService(db),
		plans:    NewMealPlanService(db, webhooks),
		ai:       ai,
		webhooks: webhooks,
	}
}

// DigestItem is one expiring pantry row, flattened for delivery.
type DigestItem struct {
	Ingredient      string  `json:"ingredient"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	ExpiryDate      string  `json:"expiry_date"`
	DaysUntilExpiry int     `json:"days_until_expiry"`
	Location        string  `json:"location"`
}

// ExpiryDigest is one household's expiring-items alert.
type ExpiryDigest struct {
	HouseholdID   uint         `json:"household_id"`
	HouseholdName string       `json:"household_name"`
	Users         []string     `json:"users"`
	ExpiringItems []DigestItem `json:"expiring_items"`
	Count         int          `json:"count"`
	AlertDate     string       `json:"alert_date"`
}

// BuildExpiryDigest shapes a household's expiring items into the
// payload the notification workflow consumes.
func BuildExpiryDigest(h models.Household, items []ExpiringItem, now time.Time) ExpiryDigest {
	emails := make([]string, 0, len(h.Users))
	for _, u := range h.Users {
		emails = append(emails, u.Email)
	}

	lines := make([]DigestItem, 0, len(items))
	for _, it := range items {
		unitName := it.Unit.Name
		if unitName == "" {
			unitName = "unit"
		}
		location := ""
		if it.Location != nil {
			location = *it.Location
		}
		lines = append(lines, DigestItem{
			Ingredient:      it.Ingredient.Name,
			Quantity:        it.Quantity,
			Unit:            unitName,
			ExpiryDate:      it.ExpiryDate.Format("2006-01-02"),
			DaysUntilExpiry: it.DaysUntilExpiry,
			Location:        location,
		})
	}

	return ExpiryDigest{
		HouseholdID:   h.ID,
		HouseholdName: h.Name,
		Users:         emails,
		ExpiringItems: lines,
		Count:         len(lines),
		AlertDate:     now.Format("2006-01-02"),
	}
}

// SendExpiryAlerts builds a digest of items expiring within days for
// every household that has members and something about to expire, and
// hands each digest to the notification webhook. Returns the number of
// households alerted and the total items covered. Per-household
// failures are logged and skipped.
func (s *TaskService) SendExpiryAlerts(days int) (int, int, error) {
	if days <= 0 {
		days = 3
	}

	var households []models.Household
	if err := s.db.Preload("Users").Find(&households).Error; err != nil {
		return 0, 0, err
	}

	now := time.Now()
	alerted, total := 0, 0
	for _, h := range households {
		if len(h.Users) == 0 {
			continue
		}
		expiring, err := s.pantry.GetExpiringSoon(h.ID, days)
		if err != nil {
			logger.Error("expiry alert fetch failed",
				zap.Uint("household_id", h.ID), zap.Error(err))
			continue
		}
		if len(expiring) == 0 {
			continue
		}

		digest := BuildExpiryDigest(h, expiring, now)
		logger.Info("expiry alert digest",
			zap.Uint("household_id", digest.HouseholdID),
			zap.String("household", digest.HouseholdName),
			zap.Int("count", digest.Count),
			zap.Strings("recipients", digest.Users))

		if s.webhooks != nil {
			s.webhooks.SendExpiringItemsEmail(map[string]interface{}{
				"household_id":     digest.HouseholdID,
				"household_name":   digest.HouseholdName,
				"recipient_emails": digest.Users,
				"expiring_items":   digest.ExpiringItems,
				"count":            digest.Count,
				"alert_date":       digest.AlertDate,
				"subject":          "Items Expiring Soon - HomeLife",
			})
		}

		alerted++
		total += digest.Count
	}
	return alerted, total, nil
}

// MealPlanDraft records one generated weekly draft.
type MealPlanDraft struct {
	HouseholdID          uint     `json:"household_id"`
	HouseholdName        string   `json:"household_name"`
	WeekID               uint     `json:"week_id"`
	WeekStart            string   `json:"week_start"`
	AvailableIngredients []string `json:"available_ingredients"`
	SuggestedMeals       []string `json:"suggested_meals"`
}

// GenerateMealPlanDrafts finds or creates the week covering weekStart
// for every household with a stocked pantry and asks the model for a
// week's worth of meal ideas to seed it. Households with an empty
// pantry, or for which the model returns nothing, are skipped.
func (s *TaskService) GenerateMealPlanDrafts(weekStart time.Time) ([]MealPlanDraft, error) {
	var households []models.Household
	if err := s.db.Find(&households).Error; err != nil {
		return nil, err
	}

	var drafts []MealPlanDraft
	for _, h := range households {
		var stocked []models.Inventory
		if err := s.db.
			Preload("Ingredient").
			Where("household_id = ? AND quantity > 0", h.ID).
			Find(&stocked).Error; err != nil {
			logger.Error("meal plan draft pantry fetch failed",
				zap.Uint("household_id", h.ID), zap.Error(err))
			continue
		}
		if len(stocked) == 0 {
			continue
		}

		// 21 ideas covers three meals a day for the week.
		suggestions := s.ai.GetRecipeSuggestionsFromPantry(h.ID, 21)
		if len(suggestions) == 0 {
			logger.Warn("meal plan draft skipped, no suggestions",
				zap.Uint("household_id", h.ID))
			continue
		}

		week, err := s.plans.CreateWeeklyPlan(h.ID, weekStart)
		if err != nil {
			logger.Error("meal plan draft week create failed",
				zap.Uint("household_id", h.ID), zap.Error(err))
			continue
		}

		draft := MealPlanDraft{
			HouseholdID:          h.ID,
			HouseholdName:        h.Name,
			WeekID:               week.ID,
			WeekStart:            week.StartDate.Format("2006-01-02"),
			AvailableIngredients: uniqueIngredientNames(stocked),
			SuggestedMeals:       suggestions,
		}
		logger.Info("meal plan draft generated",
			zap.Uint("household_id", draft.HouseholdID),
			zap.Uint("week_id", draft.WeekID),
			zap.String("week_start", draft.WeekStart),
			zap.Int("suggestions", len(draft.SuggestedMeals)))
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

// uniqueIngredientNames keeps first-seen order.
func uniqueIngredientNames(items []models.Inventory) []string {
	seen := make(map[string]bool, len(items))
	var names []string
	for _, it := range items {
		name := it.Ingredient.Name
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
