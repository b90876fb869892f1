package services

import (
	"testing"

	"github.com/MohammadCZeidan/Server-Homelife/models"

	"github.com/stretchr/testify/assert"
)

func TestLineMacros(t *testing.T) {
	chicken := models.Ingredient{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6}

	m := LineMacros(chicken, 200)
	assert.InDelta(t, 330, m.Calories, 0.001)
	assert.InDelta(t, 62, m.Protein, 0.001)
	assert.InDelta(t, 0, m.Carbs, 0.001)
	assert.InDelta(t, 7.2, m.Fat, 0.001)
}

func TestLineMacrosZeroQuantity(t *testing.T) {
	m := LineMacros(models.Ingredient{Calories: 100}, 0)
	assert.Equal(t, 0.0, m.Calories)
}

func TestRecipeMacros(t *testing.T) {
	recipe := &models.Recipe{
		Ingredients: []models.RecipeIngredient{
			{Quantity: 100, Ingredient: models.Ingredient{Calories: 165, Protein: 31, Fat: 3.6}},
			{Quantity: 50, Ingredient: models.Ingredient{Calories: 364, Carbs: 76, Protein: 10}},
		},
	}

	m := RecipeMacros(recipe)
	assert.InDelta(t, 165+182, m.Calories, 0.001)
	assert.InDelta(t, 31+5, m.Protein, 0.001)
	assert.InDelta(t, 38, m.Carbs, 0.001)
	assert.InDelta(t, 3.6, m.Fat, 0.001)
}

func TestRecipeMacrosEmpty(t *testing.T) {
	m := RecipeMacros(&models.Recipe{})
	assert.Equal(t, MacroTotals{}, m)
}
