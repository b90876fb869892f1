package controllers

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/logger"
	"github.com/MohammadCZeidan/Server-Homelife/models"
	"github.com/MohammadCZeidan/Server-Homelife/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateSeedData asks the AI for starter ingredients and recipes,
// persists whatever parsed, and stocks the pantry with a sample of the
// household's ingredients. Individual row failures are logged and
// skipped so a partial seed still succeeds.
func GenerateSeedData(c *gin.Context) {
	householdID := c.GetUint("householdID")

	aiSvc := services.NewAIService(config.DB)
	unitSvc := services.NewUnitService(config.DB)
	ingredientSvc := services.NewIngredientService(config.DB)
	recipeSvc := services.NewRecipeService(config.DB)
	pantrySvc := services.NewPantryService(config.DB)

	seed := aiSvc.GenerateSeedData(householdID)

	ingredientCount, recipeCount, pantryCount := 0, 0, 0

	for _, ing := range seed.Ingredients {
		abbr := ing.Unit
		if abbr == "" {
			abbr = "g"
		}
		unit, err := unitSvc.Resolve(abbr)
		if err != nil {
			logger.Error("seed unit resolve failed", zap.String("unit", abbr), zap.Error(err))
			continue
		}

		var existing models.Ingredient
		err = config.DB.Where("household_id = ? AND name = ?", householdID, ing.Name).
			First(&existing).Error
		if err == nil {
			continue
		}

		unitID := unit.ID
		if _, err := ingredientSvc.Create(householdID, services.IngredientInput{
			Name:     ing.Name,
			Calories: ing.Calories,
			Protein:  ing.Protein,
			Carbs:    ing.Carbs,
			Fat:      ing.Fat,
			UnitID:   &unitID,
		}); err != nil {
			logger.Error("seed ingredient create failed", zap.String("name", ing.Name), zap.Error(err))
			continue
		}
		ingredientCount++
	}

	for _, rec := range seed.Recipes {
		var lines []services.RecipeLine
		for _, line := range rec.Ingredients {
			var ingredient models.Ingredient
			err := config.DB.Where("household_id = ? AND name = ?", householdID, line.Name).
				First(&ingredient).Error
			if err != nil {
				continue
			}

			abbr := line.Unit
			if abbr == "" {
				abbr = "g"
			}
			unit, err := unitSvc.Resolve(abbr)
			if err != nil {
				continue
			}

			lines = append(lines, services.RecipeLine{
				IngredientID: ingredient.ID,
				Quantity:     line.Amount,
				UnitID:       unit.ID,
			})
		}
		if len(lines) == 0 {
			continue
		}

		var existing models.Recipe
		err := config.DB.Where("household_id = ? AND title = ?", householdID, rec.Title).
			First(&existing).Error
		if err == nil {
			continue
		}

		servings := rec.Servings
		if servings == 0 {
			servings = 4
		}
		if _, err := recipeSvc.Create(householdID, services.RecipeInput{
			Title:        rec.Title,
			Instructions: rec.Instructions,
			Tags:         rec.Tags,
			Servings:     servings,
			PrepTime:     rec.PrepTime,
			CookTime:     rec.CookTime,
			Ingredients:  lines,
		}); err != nil {
			logger.Error("seed recipe create failed", zap.String("title", rec.Title), zap.Error(err))
			continue
		}
		recipeCount++
	}

	var ingredients []models.Ingredient
	config.DB.Where("household_id = ?", householdID).Limit(10).Find(&ingredients)
	location := "pantry"
	for _, ingredient := range ingredients {
		if ingredient.UnitID == nil {
			continue
		}
		expiry := time.Now().AddDate(0, 0, 3+rand.Intn(12))
		if _, err := pantrySvc.Create(householdID, services.PantryInput{
			IngredientID: ingredient.ID,
			Quantity:     float64(100 + rand.Intn(401)),
			UnitID:       *ingredient.UnitID,
			ExpiryDate:   &expiry,
			Location:     &location,
		}); err != nil {
			logger.Error("seed pantry create failed", zap.Uint("ingredient_id", ingredient.ID), zap.Error(err))
			continue
		}
		pantryCount++
	}

	respondSuccess(c, gin.H{
		"message": "Seed data generated successfully",
		"created": gin.H{
			"ingredients":  ingredientCount,
			"recipes":      recipeCount,
			"pantry_items": pantryCount,
		},
	})
}

func GetAIRecipeSuggestions(c *gin.Context) {
	householdID := c.GetUint("householdID")

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	useAI := c.DefaultQuery("use_ai", "true") != "false"
	if useAI {
		suggestions := services.NewAIService(config.DB).GetRecipeSuggestionsFromPantry(householdID, limit)
		respondSuccess(c, gin.H{"suggestions": suggestions, "source": "ai"})
		return
	}

	matches, err := services.NewRecipeService(config.DB).GetSuggestionsFromPantry(householdID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, matches)
}

func GetSmartSubstitutions(c *gin.Context) {
	id, ok := pathID(c, "ingredientId")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	substitution := services.NewAIService(config.DB).GetSmartSubstitutions(id, c.GetUint("householdID"))
	respondSuccess(c, substitution)
}
