package services

import (
	"errors"
	"strings"

	"github.com/MohammadCZeidan/Server-Homelife/models"

	"gorm.io/gorm"
)

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// GetAll lists a household's ingredients. A zero householdID lists the
// whole catalog, which backs the public browse endpoint.
func (s *IngredientService) GetAll(householdID uint, search string) ([]models.Ingredient, error) {
	q := s.db.Preload("Unit")
	if householdID != 0 {
		q = q.Where("household_id = ?", householdID)
	}
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	var ingredients []models.Ingredient
	err := q.Order("id ASC").Find(&ingredients).Error
	return ingredients, err
}

func (s *IngredientService) Get(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.Preload("Unit").First(&ingredient, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

type IngredientInput struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	UnitID   *uint   `json:"unit_id"`
}

// Create upserts by (household, name): an existing ingredient is
// returned as-is, except that a differing unit_id updates its default
// unit in place.
func (s *IngredientService) Create(householdID uint, in IngredientInput) (*models.Ingredient, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("name", "name is required")
	}

	var existing models.Ingredient
	err := s.db.
		Where("household_id = ? AND name = ?", householdID, in.Name).
		First(&existing).Error
	if err == nil {
		if in.UnitID != nil && (existing.UnitID == nil || *existing.UnitID != *in.UnitID) {
			existing.UnitID = in.UnitID
			if err := s.db.Save(&existing).Error; err != nil {
				return nil, err
			}
		}
		if err := s.db.Preload("Unit").First(&existing, existing.ID).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ingredient := &models.Ingredient{
		HouseholdID: householdID,
		Name:        in.Name,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
		UnitID:      in.UnitID,
	}
	if err := s.db.Create(ingredient).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Unit").First(ingredient, ingredient.ID).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

// Resolve finds an ingredient by exact name within the household,
// creating it with the fallback unit and zeroed nutrition otherwise.
func (s *IngredientService) Resolve(householdID uint, name string, fallbackUnitID *uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.
		Where("household_id = ? AND name = ?", householdID, name).
		Order("id ASC").
		First(&ingredient).Error
	if err == nil {
		return &ingredient, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.Create(householdID, IngredientInput{Name: name, UnitID: fallbackUnitID})
}
