package services

import (
	"errors"
	"time"

	"github.com/MohammadCZeidan/Server-Homelife/models"
	"github.com/MohammadCZeidan/Server-Homelife/utils"

	"gorm.io/gorm"
)

type PantryService struct {
	db *gorm.DB
}

func NewPantryService(db *gorm.DB) *PantryService {
	return &PantryService{db: db}
}

func (s *PantryService) GetAll(householdID uint) ([]models.Inventory, error) {
	var items []models.Inventory
	err := s.db.
		Preload("Ingredient").Preload("Unit").
		Where("household_id = ?", householdID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

type PantryInput struct {
	IngredientID uint       `json:"ingredient_id"`
	Quantity     float64    `json:"quantity"`
	UnitID       uint       `json:"unit_id"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	Location     *string    `json:"location"`
}

func (s *PantryService) Create(householdID uint, in PantryInput) (*models.Inventory, error) {
	if in.Quantity < 0 {
		return nil, invalid("quantity", "must be >= 0")
	}

	var count int64
	if err := s.db.Model(&models.Ingredient{}).
		Where("id = ? AND household_id = ?", in.IngredientID, householdID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, invalid("ingredient_id", "ingredient does not exist")
	}
	if err := s.db.Model(&models.Unit{}).
		Where("id = ?", in.UnitID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, invalid("unit_id", "unit does not exist")
	}

	item := &models.Inventory{
		HouseholdID:  householdID,
		IngredientID: in.IngredientID,
		Quantity:     in.Quantity,
		UnitID:       in.UnitID,
		ExpiryDate:   in.ExpiryDate,
		Location:     in.Location,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	return s.Get(item.ID, householdID)
}

func (s *PantryService) Get(id, householdID uint) (*models.Inventory, error) {
	var item models.Inventory
	err := s.db.
		Preload("Ingredient").Preload("Unit").
		Where("id = ? AND household_id = ?", id, householdID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

type PantryUpdate struct {
	Quantity   *float64   `json:"quantity"`
	UnitID     *uint      `json:"unit_id"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Location   *string    `json:"location"`
}

func (s *PantryService) Update(id, householdID uint, in PantryUpdate) (*models.Inventory, error) {
	item, err := s.Get(id, householdID)
	if err != nil {
		return nil, err
	}

	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, invalid("quantity", "must be >= 0")
		}
		item.Quantity = *in.Quantity
	}
	if in.UnitID != nil {
		item.UnitID = *in.UnitID
	}
	if in.ExpiryDate != nil {
		item.ExpiryDate = in.ExpiryDate
	}
	if in.Location != nil {
		item.Location = in.Location
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return s.Get(id, householdID)
}

func (s *PantryService) Delete(id, householdID uint) error {
	res := s.db.
		Where("id = ? AND household_id = ?", id, householdID).
		Delete(&models.Inventory{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ConsumeOutcome decides what consuming amount from a row's current
// quantity does. A result at or below zero means the row is removed;
// no negative quantity is ever kept.
func ConsumeOutcome(current, amount float64) (remaining float64, deleted bool) {
	remaining = current - amount
	if remaining <= 0 {
		return 0, true
	}
	return remaining, false
}

type ConsumeResult struct {
	Item    *models.Inventory `json:"item"`
	Deleted bool              `json:"deleted"`
}

// Consume decrements the row inside one transaction, deleting it when
// the remaining quantity reaches zero.
func (s *PantryService) Consume(id, householdID uint, amount float64) (*ConsumeResult, error) {
	if amount < 0 {
		return nil, invalid("quantity", "must be >= 0")
	}

	var result ConsumeResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.Inventory
		err := tx.
			Where("id = ? AND household_id = ?", id, householdID).
			First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		remaining, deleted := ConsumeOutcome(item.Quantity, amount)
		if deleted {
			if err := tx.Delete(&item).Error; err != nil {
				return err
			}
			result = ConsumeResult{Deleted: true}
			return nil
		}

		item.Quantity = remaining
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		if err := tx.Preload("Ingredient").Preload("Unit").First(&item, item.ID).Error; err != nil {
			return err
		}
		result = ConsumeResult{Item: &item}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// mergeGroup is the planned collapse of duplicate rows sharing
// (ingredient, unit). Location is deliberately not part of the key.
type mergeGroup struct {
	Survivor models.Inventory
	Absorbed []uint // row IDs to delete
}

// PlanMerges groups rows by (ingredient, unit) and, for each group with
// more than one row, elects the first row as survivor with the summed
// quantity and the earliest non-nil expiry date. Input order decides
// survivors, so the plan is deterministic and idempotent.
func PlanMerges(items []models.Inventory) []mergeGroup {
	type key struct {
		ingredientID uint
		unitID       uint
	}

	order := make([]key, 0, len(items))
	groups := make(map[key][]models.Inventory)
	for _, it := range items {
		k := key{it.IngredientID, it.UnitID}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], it)
	}

	var plans []mergeGroup
	for _, k := range order {
		rows := groups[k]
		if len(rows) < 2 {
			continue
		}

		survivor := rows[0]
		total := 0.0
		expiry := survivor.ExpiryDate
		absorbed := make([]uint, 0, len(rows)-1)
		for i, r := range rows {
			total += r.Quantity
			if r.ExpiryDate != nil && (expiry == nil || r.ExpiryDate.Before(*expiry)) {
				expiry = r.ExpiryDate
			}
			if i > 0 {
				absorbed = append(absorbed, r.ID)
			}
		}
		survivor.Quantity = total
		survivor.ExpiryDate = expiry
		plans = append(plans, mergeGroup{Survivor: survivor, Absorbed: absorbed})
	}
	return plans
}

type MergeResult struct {
	MergedCount int                `json:"merged_count"`
	Items       []models.Inventory `json:"items"`
}

// MergeDuplicates collapses duplicate pantry rows in one transaction.
// Running it twice in a row performs zero further merges.
func (s *PantryService) MergeDuplicates(householdID uint) (*MergeResult, error) {
	var result MergeResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var items []models.Inventory
		if err := tx.
			Where("household_id = ?", householdID).
			Order("id ASC").
			Find(&items).Error; err != nil {
			return err
		}

		for _, plan := range PlanMerges(items) {
			if err := tx.Model(&models.Inventory{}).
				Where("id = ?", plan.Survivor.ID).
				Updates(map[string]interface{}{
					"quantity":    plan.Survivor.Quantity,
					"expiry_date": plan.Survivor.ExpiryDate,
				}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Inventory{}, plan.Absorbed).Error; err != nil {
				return err
			}
			result.MergedCount += len(plan.Absorbed)
		}

		return tx.
			Preload("Ingredient").Preload("Unit").
			Where("household_id = ?", householdID).
			Order("id ASC").
			Find(&result.Items).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ExpiringItem is a pantry row annotated for the expiry views.
type ExpiringItem struct {
	models.Inventory
	DaysUntilExpiry int  `json:"days_until_expiry"`
	UseFirst        bool `json:"use_first"`
}

// AnnotateExpiring computes the calendar-day distance to expiry and
// flags items to use first (expiring within two days).
func AnnotateExpiring(item models.Inventory, now time.Time) ExpiringItem {
	days := utils.DaysUntil(now, *item.ExpiryDate)
	return ExpiringItem{
		Inventory:       item,
		DaysUntilExpiry: days,
		UseFirst:        days >= 0 && days <= 2,
	}
}

// GetExpiringSoon lists items with now <= expiry <= now+days, ascending
// by expiry date.
func (s *PantryService) GetExpiringSoon(householdID uint, days int) ([]ExpiringItem, error) {
	now := time.Now()
	var items []models.Inventory
	err := s.db.
		Preload("Ingredient").Preload("Unit").
		Where("household_id = ?", householdID).
		Where("expiry_date IS NOT NULL").
		Where("expiry_date >= ? AND expiry_date <= ?", utils.DateOnly(now), utils.DateOnly(now).AddDate(0, 0, days)).
		Order("expiry_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	annotated := make([]ExpiringItem, 0, len(items))
	for _, it := range items {
		annotated = append(annotated, AnnotateExpiring(it, now))
	}
	return annotated, nil
}
