package services

import (
	"errors"
	"math"
	"time"

	"github.com/MohammadCZeidan/Server-Homelife/logger"
	"github.com/MohammadCZeidan/Server-Homelife/models"
	"github.com/MohammadCZeidan/Server-Homelife/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// plannableSlots is the coverage denominator: 7 days x 3 main meals.
// Snacks count toward meals_planned but the denominator stays 21.
const plannableSlots = 21

type InsightsService struct {
	db *gorm.DB
	ai *AIService
}

func NewInsightsService(db *gorm.DB, ai *AIService) *InsightsService {
	return &InsightsService{db: db, ai: ai}
}

type WasteItem struct {
	Ingredient string     `json:"ingredient"`
	Quantity   float64    `json:"quantity"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

type WasteData struct {
	Count int         `json:"count"`
	Items []WasteItem `json:"items"`
}

type PlanningData struct {
	MealsPlanned int            `json:"meals_planned"`
	BySlot       map[string]int `json:"by_slot"`
	Coverage     float64        `json:"coverage"`
}

type ExpiringSoonItem struct {
	Ingredient      string     `json:"ingredient"`
	Quantity        float64    `json:"quantity"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	DaysUntilExpiry int        `json:"days_until_expiry"`
}

type WeeklyInsights struct {
	Week struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	} `json:"week"`
	Spending     SpendingBreakdown  `json:"spending"`
	Waste        WasteData          `json:"waste"`
	Planning     PlanningData       `json:"planning"`
	ExpiringSoon []ExpiringSoonItem `json:"expiring_soon"`
	AISummary    *string            `json:"ai_summary"`
}

// GetWeeklyInsights composes the read-only weekly snapshot: spending
// and planning over the reference week, waste over the week preceding
// it, and expiring-soon over the next 7 days from now. The AI summary
// is optional and never fails the call.
func (s *InsightsService) GetWeeklyInsights(householdID uint, weekStart time.Time) (*WeeklyInsights, error) {
	if weekStart.IsZero() {
		weekStart = time.Now()
	}
	start := utils.StartOfWeek(weekStart)
	end := start.AddDate(0, 0, 6)

	out := &WeeklyInsights{}
	out.Week.StartDate = start.Format("2006-01-02")
	out.Week.EndDate = end.Format("2006-01-02")

	var expenses []models.Expense
	if err := s.db.
		Where("household_id = ? AND date BETWEEN ? AND ?", householdID, start, end).
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	out.Spending = SummarizeSpending(expenses)

	waste, err := s.wasteData(householdID, start)
	if err != nil {
		return nil, err
	}
	out.Waste = waste

	planning, err := s.planningData(householdID, start)
	if err != nil {
		return nil, err
	}
	out.Planning = planning

	expiring, err := s.expiringSoonData(householdID)
	if err != nil {
		return nil, err
	}
	out.ExpiringSoon = expiring

	out.AISummary = s.aiSummary(householdID, out)
	return out, nil
}

// wasteData counts items that expired in the week preceding the
// reference window: expiry in [start-7d, start).
func (s *InsightsService) wasteData(householdID uint, start time.Time) (WasteData, error) {
	var items []models.Inventory
	err := s.db.
		Preload("Ingredient").
		Where("household_id = ?", householdID).
		Where("expiry_date IS NOT NULL").
		Where("expiry_date < ? AND expiry_date >= ?", start, start.AddDate(0, 0, -7)).
		Find(&items).Error
	if err != nil {
		return WasteData{}, err
	}

	waste := WasteData{Count: len(items), Items: make([]WasteItem, 0, len(items))}
	for _, it := range items {
		waste.Items = append(waste.Items, WasteItem{
			Ingredient: it.Ingredient.Name,
			Quantity:   it.Quantity,
			ExpiryDate: it.ExpiryDate,
		})
	}
	return waste, nil
}

// CoveragePercent is meals/21 as a percentage rounded to one decimal.
func CoveragePercent(mealsPlanned int) float64 {
	return math.Round(float64(mealsPlanned)/plannableSlots*1000) / 10
}

func (s *InsightsService) planningData(householdID uint, start time.Time) (PlanningData, error) {
	planning := PlanningData{
		BySlot: map[string]int{"breakfast": 0, "lunch": 0, "dinner": 0, "snack": 0},
	}

	var week models.Week
	err := s.db.
		Preload("Meals").
		Where("household_id = ? AND start_date = ?", householdID, start).
		First(&week).Error
	if err == nil {
		planning.MealsPlanned = len(week.Meals)
		for _, meal := range week.Meals {
			planning.BySlot[meal.Slot]++
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return planning, err
	}

	planning.Coverage = CoveragePercent(planning.MealsPlanned)
	return planning, nil
}

// expiringSoonData is forward-looking risk from the wall clock, not the
// reference week: the two windows deliberately use different origins.
func (s *InsightsService) expiringSoonData(householdID uint) ([]ExpiringSoonItem, error) {
	now := time.Now()
	var items []models.Inventory
	err := s.db.
		Preload("Ingredient").
		Where("household_id = ?", householdID).
		Where("expiry_date IS NOT NULL").
		Where("expiry_date >= ? AND expiry_date <= ?", utils.DateOnly(now), utils.DateOnly(now).AddDate(0, 0, 7)).
		Order("expiry_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	out := make([]ExpiringSoonItem, 0, len(items))
	for _, it := range items {
		out = append(out, ExpiringSoonItem{
			Ingredient:      it.Ingredient.Name,
			Quantity:        it.Quantity,
			ExpiryDate:      it.ExpiryDate,
			DaysUntilExpiry: utils.DaysUntil(now, *it.ExpiryDate),
		})
	}
	return out, nil
}

func (s *InsightsService) aiSummary(householdID uint, insights *WeeklyInsights) *string {
	if s.ai == nil {
		return nil
	}

	names := make([]string, 0, 5)
	for _, it := range insights.ExpiringSoon {
		names = append(names, it.Ingredient)
		if len(names) == 5 {
			break
		}
	}

	summary, err := s.ai.WeeklySummary(insights.Spending.Total, insights.Waste.Count,
		insights.Planning.MealsPlanned, len(insights.ExpiringSoon), names)
	if err != nil {
		logger.Error("AI insights summary failed",
			zap.Uint("household_id", householdID), zap.Error(err))
		return nil
	}
	return &summary
}
