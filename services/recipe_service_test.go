package services

import (
	"testing"

	"github.com/MohammadCZeidan/Server-Homelife/models"

	"gorm.io/gorm"
)

func recipeWithLines(id uint, ingredientIDs ...uint) models.Recipe {
	r := models.Recipe{Model: gorm.Model{ID: id}}
	for _, ingID := range ingredientIDs {
		r.Ingredients = append(r.Ingredients, models.RecipeIngredient{IngredientID: ingID})
	}
	return r
}

func TestRankByStockOrdersByScore(t *testing.T) {
	recipes := []models.Recipe{
		recipeWithLines(1, 10, 11, 12), // 1 of 3 stocked
		recipeWithLines(2, 10, 11),     // 2 of 2 stocked
		recipeWithLines(3, 12, 13),     // 0 of 2 stocked
	}
	stocked := map[uint]bool{10: true, 11: true}

	matches := RankByStock(recipes, stocked)
	if len(matches) != 3 {
		t.Fatalf("matches = %d, want 3", len(matches))
	}

	wantOrder := []uint{2, 1, 3}
	for i, id := range wantOrder {
		if matches[i].Recipe.ID != id {
			t.Errorf("matches[%d].Recipe.ID = %d, want %d", i, matches[i].Recipe.ID, id)
		}
	}

	if matches[0].MatchScore != 1.0 {
		t.Errorf("top score = %v, want 1.0", matches[0].MatchScore)
	}
	if matches[0].MatchedIngredients != 2 || matches[0].TotalIngredients != 2 {
		t.Errorf("top match counts = %d/%d, want 2/2",
			matches[0].MatchedIngredients, matches[0].TotalIngredients)
	}
	if matches[2].MatchScore != 0 {
		t.Errorf("bottom score = %v, want 0", matches[2].MatchScore)
	}
}

func TestRankByStockEmptyRecipeScoresZero(t *testing.T) {
	matches := RankByStock([]models.Recipe{recipeWithLines(1)}, map[uint]bool{10: true})
	if len(matches) != 1 || matches[0].MatchScore != 0 {
		t.Errorf("recipe without lines should score 0, got %v", matches)
	}
}

func TestRankByStockTiesKeepInputOrder(t *testing.T) {
	recipes := []models.Recipe{
		recipeWithLines(5, 10),
		recipeWithLines(6, 11),
	}
	stocked := map[uint]bool{10: true, 11: true}

	matches := RankByStock(recipes, stocked)
	if matches[0].Recipe.ID != 5 || matches[1].Recipe.ID != 6 {
		t.Errorf("tied recipes reordered: %d, %d", matches[0].Recipe.ID, matches[1].Recipe.ID)
	}
}
