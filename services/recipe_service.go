package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/MohammadCZeidan/Server-Homelife/models"

	"gorm.io/gorm"
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

func (s *RecipeService) GetAll(householdID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.
		Preload("Ingredients.Ingredient").Preload("Ingredients.Unit").
		Where("household_id = ?", householdID).
		Order("id ASC").
		Find(&recipes).Error
	return recipes, err
}

func (s *RecipeService) Get(id, householdID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Ingredients.Ingredient").Preload("Ingredients.Unit").
		Where("id = ? AND household_id = ?", id, householdID).
		First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

type RecipeLine struct {
	IngredientID uint    `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	UnitID       uint    `json:"unit_id"`
}

type RecipeInput struct {
	Title        string       `json:"title"`
	Instructions string       `json:"instructions"`
	Tags         []string     `json:"tags"`
	Servings     int          `json:"servings"`
	PrepTime     int          `json:"prep_time"`
	CookTime     int          `json:"cook_time"`
	Ingredients  []RecipeLine `json:"ingredients"`
}

func (s *RecipeService) Create(householdID uint, in RecipeInput) (*models.Recipe, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalid("title", "title is required")
	}
	if strings.TrimSpace(in.Instructions) == "" {
		return nil, invalid("instructions", "instructions are required")
	}
	for _, line := range in.Ingredients {
		if line.Quantity < 0 {
			return nil, invalid("ingredients.quantity", "must be >= 0")
		}
	}
	if in.Servings <= 0 {
		in.Servings = 4
	}

	recipe := &models.Recipe{
		HouseholdID:  householdID,
		Title:        in.Title,
		Instructions: in.Instructions,
		Tags:         in.Tags,
		Servings:     in.Servings,
		PrepTime:     in.PrepTime,
		CookTime:     in.CookTime,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for i, line := range in.Ingredients {
			ri := models.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: line.IngredientID,
				Quantity:     line.Quantity,
				UnitID:       line.UnitID,
				Position:     i,
			}
			if err := tx.Create(&ri).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(recipe.ID, householdID)
}

type RecipeUpdate struct {
	Title        *string      `json:"title"`
	Instructions *string      `json:"instructions"`
	Tags         []string     `json:"tags"`
	Servings     *int         `json:"servings"`
	PrepTime     *int         `json:"prep_time"`
	CookTime     *int         `json:"cook_time"`
	Ingredients  []RecipeLine `json:"ingredients"`
}

// Update patches recipe fields; a non-empty Ingredients slice replaces
// all lines.
func (s *RecipeService) Update(id, householdID uint, in RecipeUpdate) (*models.Recipe, error) {
	recipe, err := s.Get(id, householdID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		recipe.Title = *in.Title
	}
	if in.Instructions != nil {
		recipe.Instructions = *in.Instructions
	}
	if in.Tags != nil {
		recipe.Tags = in.Tags
	}
	if in.Servings != nil {
		recipe.Servings = *in.Servings
	}
	if in.PrepTime != nil {
		recipe.PrepTime = *in.PrepTime
	}
	if in.CookTime != nil {
		recipe.CookTime = *in.CookTime
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients").Save(recipe).Error; err != nil {
			return err
		}
		if len(in.Ingredients) == 0 {
			return nil
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i, line := range in.Ingredients {
			ri := models.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: line.IngredientID,
				Quantity:     line.Quantity,
				UnitID:       line.UnitID,
				Position:     i,
			}
			if err := tx.Create(&ri).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id, householdID)
}

func (s *RecipeService) Delete(id, householdID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		err := tx.
			Where("id = ? AND household_id = ?", id, householdID).
			First(&recipe).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

// RecipeMatch scores how much of a recipe the pantry currently covers.
type RecipeMatch struct {
	Recipe             models.Recipe `json:"recipe"`
	MatchedIngredients int           `json:"matched_ingredients"`
	TotalIngredients   int           `json:"total_ingredients"`
	MatchScore         float64       `json:"match_score"`
}

// RankByStock orders recipes by the fraction of their ingredient lines
// present in the stocked set, best matches first. Recipes without
// lines score zero. Ties keep input order.
func RankByStock(recipes []models.Recipe, stocked map[uint]bool) []RecipeMatch {
	matches := make([]RecipeMatch, 0, len(recipes))
	for _, r := range recipes {
		matched := 0
		for _, line := range r.Ingredients {
			if stocked[line.IngredientID] {
				matched++
			}
		}
		score := 0.0
		if len(r.Ingredients) > 0 {
			score = float64(matched) / float64(len(r.Ingredients))
		}
		matches = append(matches, RecipeMatch{
			Recipe:             r,
			MatchedIngredients: matched,
			TotalIngredients:   len(r.Ingredients),
			MatchScore:         score,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches
}

// GetSuggestionsFromPantry ranks the household's recipes by how much of
// them the pantry can currently cook.
func (s *RecipeService) GetSuggestionsFromPantry(householdID uint, limit int) ([]RecipeMatch, error) {
	if limit <= 0 {
		limit = 5
	}

	recipes, err := s.GetAll(householdID)
	if err != nil {
		return nil, err
	}

	var ids []uint
	if err := s.db.Model(&models.Inventory{}).
		Where("household_id = ? AND quantity > 0", householdID).
		Distinct().
		Pluck("ingredient_id", &ids).Error; err != nil {
		return nil, err
	}
	stocked := make(map[uint]bool, len(ids))
	for _, id := range ids {
		stocked[id] = true
	}

	matches := RankByStock(recipes, stocked)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// MissingIngredients lists recipe ingredients absent from the pantry.
func (s *RecipeService) MissingIngredients(recipe *models.Recipe, householdID uint) ([]models.Ingredient, error) {
	var ids []uint
	if err := s.db.Model(&models.Inventory{}).
		Where("household_id = ? AND quantity > 0", householdID).
		Distinct().
		Pluck("ingredient_id", &ids).Error; err != nil {
		return nil, err
	}
	stocked := make(map[uint]bool, len(ids))
	for _, id := range ids {
		stocked[id] = true
	}

	var missing []models.Ingredient
	for _, line := range recipe.Ingredients {
		if !stocked[line.IngredientID] {
			missing = append(missing, line.Ingredient)
		}
	}
	return missing, nil
}
