package services

import (
	"errors"

	"github.com/MohammadCZeidan/Server-Homelife/models"

	"gorm.io/gorm"
)

type NutritionService struct {
	db      *gorm.DB
	recipes *RecipeService
}

func NewNutritionService(db *gorm.DB, recipes *RecipeService) *NutritionService {
	return &NutritionService{db: db, recipes: recipes}
}

type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (m *MacroTotals) add(other MacroTotals) {
	m.Calories += other.Calories
	m.Protein += other.Protein
	m.Carbs += other.Carbs
	m.Fat += other.Fat
}

// LineMacros scales an ingredient's per-100 nutrition to the line's
// quantity. Unit conversion is out of scope: the quantity is taken in
// the ingredient's own base unit.
func LineMacros(ingredient models.Ingredient, quantity float64) MacroTotals {
	factor := quantity / 100
	return MacroTotals{
		Calories: ingredient.Calories * factor,
		Protein:  ingredient.Protein * factor,
		Carbs:    ingredient.Carbs * factor,
		Fat:      ingredient.Fat * factor,
	}
}

// RecipeMacros totals a recipe's lines.
func RecipeMacros(recipe *models.Recipe) MacroTotals {
	var total MacroTotals
	for _, line := range recipe.Ingredients {
		m := LineMacros(line.Ingredient, line.Quantity)
		total.add(m)
	}
	return total
}

type RecipeNutrition struct {
	RecipeID   uint        `json:"recipe_id"`
	Title      string      `json:"title"`
	Servings   int         `json:"servings"`
	Total      MacroTotals `json:"total"`
	PerServing MacroTotals `json:"per_serving"`
}

func (s *NutritionService) GetRecipeNutrition(recipeID, householdID uint) (*RecipeNutrition, error) {
	recipe, err := s.recipes.Get(recipeID, householdID)
	if err != nil {
		return nil, err
	}

	total := RecipeMacros(recipe)
	per := total
	if recipe.Servings > 0 {
		per = MacroTotals{
			Calories: total.Calories / float64(recipe.Servings),
			Protein:  total.Protein / float64(recipe.Servings),
			Carbs:    total.Carbs / float64(recipe.Servings),
			Fat:      total.Fat / float64(recipe.Servings),
		}
	}

	return &RecipeNutrition{
		RecipeID:   recipe.ID,
		Title:      recipe.Title,
		Servings:   recipe.Servings,
		Total:      total,
		PerServing: per,
	}, nil
}

type WeeklyNutrition struct {
	WeekID uint                   `json:"week_id"`
	Total  MacroTotals            `json:"total"`
	ByDay  map[int]MacroTotals    `json:"by_day"`
	BySlot map[string]MacroTotals `json:"by_slot"`
}

func (s *NutritionService) GetWeeklyNutrition(weekID, householdID uint) (*WeeklyNutrition, error) {
	var week models.Week
	err := s.db.
		Preload("Meals.Recipe.Ingredients.Ingredient").
		Where("id = ? AND household_id = ?", weekID, householdID).
		First(&week).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	out := &WeeklyNutrition{
		WeekID: week.ID,
		ByDay:  map[int]MacroTotals{},
		BySlot: map[string]MacroTotals{},
	}
	for _, meal := range week.Meals {
		m := RecipeMacros(&meal.Recipe)
		out.Total.add(m)

		day := out.ByDay[meal.Day]
		day.add(m)
		out.ByDay[meal.Day] = day

		slot := out.BySlot[meal.Slot]
		slot.add(m)
		out.BySlot[meal.Slot] = slot
	}
	return out, nil
}
