package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/MohammadCZeidan/Server-Homelife/models"

	"gorm.io/gorm"
)

type ShoppingListService struct {
	db *gorm.DB
}

func NewShoppingListService(db *gorm.DB) *ShoppingListService {
	return &ShoppingListService{db: db}
}

func (s *ShoppingListService) GetAll(householdID uint) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	err := s.db.
		Preload("Items.Ingredient").Preload("Items.Unit").
		Where("household_id = ?", householdID).
		Order("id DESC").
		Find(&lists).Error
	return lists, err
}

func (s *ShoppingListService) Get(id, householdID uint) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := s.db.
		Preload("Items.Ingredient").Preload("Items.Unit").
		Where("id = ? AND household_id = ?", id, householdID).
		First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *ShoppingListService) Create(householdID uint, title string, weekID *uint) (*models.ShoppingList, error) {
	if title == "" {
		return nil, invalid("title", "title is required")
	}
	list := &models.ShoppingList{HouseholdID: householdID, Title: title, WeekID: weekID}
	if err := s.db.Create(list).Error; err != nil {
		return nil, err
	}
	return s.Get(list.ID, householdID)
}

type ShoppingListUpdate struct {
	Title       *string `json:"title"`
	IsCompleted *bool   `json:"is_completed"`
}

func (s *ShoppingListService) Update(id, householdID uint, in ShoppingListUpdate) (*models.ShoppingList, error) {
	list, err := s.Get(id, householdID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		list.Title = *in.Title
	}
	if in.IsCompleted != nil {
		list.IsCompleted = *in.IsCompleted
	}
	if err := s.db.Omit("Items").Save(list).Error; err != nil {
		return nil, err
	}
	return s.Get(id, householdID)
}

func (s *ShoppingListService) Delete(id, householdID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var list models.ShoppingList
		err := tx.
			Where("id = ? AND household_id = ?", id, householdID).
			First(&list).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := tx.Where("shopping_list_id = ?", list.ID).Delete(&models.ShoppingListItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&list).Error
	})
}

func (s *ShoppingListService) AddItem(listID, householdID, ingredientID uint, quantity float64, unitID uint) (*models.ShoppingListItem, error) {
	if quantity < 0 {
		return nil, invalid("quantity", "must be >= 0")
	}
	if _, err := s.Get(listID, householdID); err != nil {
		return nil, err
	}

	item := &models.ShoppingListItem{
		ShoppingListID: listID,
		IngredientID:   ingredientID,
		Quantity:       quantity,
		UnitID:         unitID,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Ingredient").Preload("Unit").First(item, item.ID).Error; err != nil {
		return nil, err
	}
	return item, nil
}

type ShoppingListItemUpdate struct {
	Quantity *float64 `json:"quantity"`
	Bought   *bool    `json:"bought"`
}

func (s *ShoppingListService) UpdateItem(listID, householdID, itemID uint, in ShoppingListItemUpdate) (*models.ShoppingListItem, error) {
	if _, err := s.Get(listID, householdID); err != nil {
		return nil, err
	}

	var item models.ShoppingListItem
	err := s.db.
		Where("id = ? AND shopping_list_id = ?", itemID, listID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, invalid("quantity", "must be >= 0")
		}
		item.Quantity = *in.Quantity
	}
	if in.Bought != nil {
		item.Bought = *in.Bought
	}
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Ingredient").Preload("Unit").First(&item, item.ID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ShoppingListService) DeleteItem(listID, householdID, itemID uint) error {
	if _, err := s.Get(listID, householdID); err != nil {
		return err
	}
	res := s.db.
		Where("id = ? AND shopping_list_id = ?", itemID, listID).
		Delete(&models.ShoppingListItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Requirement is a planned need for one ingredient in one unit.
type Requirement struct {
	IngredientID uint
	UnitID       uint
	Quantity     float64
}

// NetRequirements sums the required quantity per (ingredient, unit)
// and subtracts on-hand stock per ingredient. Stock is matched by
// ingredient only: a same-ingredient row in a different unit still
// counts, deliberately left unconverted. Only positive remainders are
// returned, in first-seen order.
func NetRequirements(required []Requirement, stockByIngredient map[uint]float64) []Requirement {
	type key struct {
		ingredientID uint
		unitID       uint
	}

	order := make([]key, 0, len(required))
	totals := make(map[key]float64)
	for _, r := range required {
		k := key{r.IngredientID, r.UnitID}
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += r.Quantity
	}

	var net []Requirement
	for _, k := range order {
		needed := totals[k] - stockByIngredient[k.ingredientID]
		if needed > 0 {
			net = append(net, Requirement{
				IngredientID: k.ingredientID,
				UnitID:       k.unitID,
				Quantity:     needed,
			})
		}
	}
	return net
}

// GenerateFromMealPlan builds a shopping list from the week's planned
// recipes minus current pantry stock.
func (s *ShoppingListService) GenerateFromMealPlan(householdID, weekID uint, title string) (*models.ShoppingList, error) {
	var week models.Week
	err := s.db.
		Preload("Meals.Recipe.Ingredients").
		Where("id = ? AND household_id = ?", weekID, householdID).
		First(&week).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var required []Requirement
	for _, meal := range week.Meals {
		for _, line := range meal.Recipe.Ingredients {
			required = append(required, Requirement{
				IngredientID: line.IngredientID,
				UnitID:       line.UnitID,
				Quantity:     line.Quantity,
			})
		}
	}

	var stockRows []models.Inventory
	if err := s.db.
		Where("household_id = ?", householdID).
		Find(&stockRows).Error; err != nil {
		return nil, err
	}
	stock := make(map[uint]float64)
	for _, row := range stockRows {
		stock[row.IngredientID] += row.Quantity
	}

	net := NetRequirements(required, stock)
	sort.SliceStable(net, func(i, j int) bool { return net[i].IngredientID < net[j].IngredientID })

	if title == "" {
		title = fmt.Sprintf("Shopping List - Week of %s", week.StartDate.Format("Jan 2, 2006"))
	}

	list := &models.ShoppingList{HouseholdID: householdID, Title: title, WeekID: &weekID}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(list).Error; err != nil {
			return err
		}
		for _, r := range net {
			item := models.ShoppingListItem{
				ShoppingListID: list.ID,
				IngredientID:   r.IngredientID,
				Quantity:       r.Quantity,
				UnitID:         r.UnitID,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(list.ID, householdID)
}
