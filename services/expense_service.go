package services

import (
	"errors"
	"math"
	"time"

	"github.com/MohammadCZeidan/Server-Homelife/models"
	"github.com/MohammadCZeidan/Server-Homelife/utils"

	"gorm.io/gorm"
)

type ExpenseService struct {
	db *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

func (s *ExpenseService) GetAll(householdID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.
		Where("household_id = ?", householdID).
		Order("date DESC").
		Find(&expenses).Error
	return expenses, err
}

func (s *ExpenseService) Get(id, householdID uint) (*models.Expense, error) {
	var expense models.Expense
	err := s.db.
		Where("id = ? AND household_id = ?", id, householdID).
		First(&expense).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

type ExpenseInput struct {
	Store       string    `json:"store"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Note        string    `json:"note"`
	ReceiptLink string    `json:"receipt_link"`
}

func (s *ExpenseService) Create(householdID uint, in ExpenseInput) (*models.Expense, error) {
	if in.Amount < 0 {
		return nil, invalid("amount", "must be >= 0")
	}
	if in.Date.IsZero() {
		return nil, invalid("date", "date is required")
	}

	expense := &models.Expense{
		HouseholdID: householdID,
		Store:       in.Store,
		Amount:      in.Amount,
		Date:        utils.DateOnly(in.Date),
		Category:    in.Category,
		Note:        in.Note,
		ReceiptLink: in.ReceiptLink,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, err
	}
	return expense, nil
}

type ExpenseUpdate struct {
	Store       *string    `json:"store"`
	Amount      *float64   `json:"amount"`
	Date        *time.Time `json:"date"`
	Category    *string    `json:"category"`
	Note        *string    `json:"note"`
	ReceiptLink *string    `json:"receipt_link"`
}

func (s *ExpenseService) Update(id, householdID uint, in ExpenseUpdate) (*models.Expense, error) {
	expense, err := s.Get(id, householdID)
	if err != nil {
		return nil, err
	}

	if in.Amount != nil {
		if *in.Amount < 0 {
			return nil, invalid("amount", "must be >= 0")
		}
		expense.Amount = *in.Amount
	}
	if in.Store != nil {
		expense.Store = *in.Store
	}
	if in.Date != nil {
		expense.Date = utils.DateOnly(*in.Date)
	}
	if in.Category != nil {
		expense.Category = *in.Category
	}
	if in.Note != nil {
		expense.Note = *in.Note
	}
	if in.ReceiptLink != nil {
		expense.ReceiptLink = *in.ReceiptLink
	}

	if err := s.db.Save(expense).Error; err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) Delete(id, householdID uint) error {
	res := s.db.
		Where("id = ? AND household_id = ?", id, householdID).
		Delete(&models.Expense{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SpendingBreakdown summarizes expenses over a window.
type SpendingBreakdown struct {
	Total                 float64            `json:"total"`
	Count                 int                `json:"count"`
	AveragePerTransaction float64            `json:"average_per_transaction"`
	ByCategory            map[string]float64 `json:"by_category"`
}

// SummarizeSpending totals a set of expenses: overall, per category,
// and the per-transaction average (0 when there are none).
func SummarizeSpending(expenses []models.Expense) SpendingBreakdown {
	breakdown := SpendingBreakdown{ByCategory: map[string]float64{}}
	for _, e := range expenses {
		breakdown.Total += e.Amount
		breakdown.Count++
		breakdown.ByCategory[e.Category] += e.Amount
	}
	breakdown.Total = round2(breakdown.Total)
	if breakdown.Count > 0 {
		breakdown.AveragePerTransaction = round2(breakdown.Total / float64(breakdown.Count))
	}
	for c, v := range breakdown.ByCategory {
		breakdown.ByCategory[c] = round2(v)
	}
	return breakdown
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type ExpenseSummary struct {
	Period string `json:"period"`
	From   string `json:"from"`
	To     string `json:"to"`
	SpendingBreakdown
}

// GetSummary aggregates the current week or month.
func (s *ExpenseService) GetSummary(householdID uint, period string) (*ExpenseSummary, error) {
	now := time.Now()
	var from, to time.Time
	switch period {
	case "month":
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = from.AddDate(0, 1, -1)
	case "", "week":
		period = "week"
		from = utils.StartOfWeek(now)
		to = from.AddDate(0, 0, 6)
	default:
		return nil, invalid("period", "must be week or month")
	}

	var expenses []models.Expense
	err := s.db.
		Where("household_id = ? AND date BETWEEN ? AND ?", householdID, from, to).
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return &ExpenseSummary{
		Period:            period,
		From:              from.Format("2006-01-02"),
		To:                to.Format("2006-01-02"),
		SpendingBreakdown: SummarizeSpending(expenses),
	}, nil
}
