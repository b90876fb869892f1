package controllers

import (
	"net/http"
	"strconv"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/services"

	"github.com/gin-gonic/gin"
)

// recipeLineRequest accepts either an ingredient_id or a free-form
// ingredient name (auto-created), and either a unit_id or a unit
// abbreviation (auto-resolved).
type recipeLineRequest struct {
	IngredientID *uint    `json:"ingredient_id"`
	Ingredient   string   `json:"ingredient"`
	Name         string   `json:"name"`
	Quantity     *float64 `json:"quantity" binding:"required"`
	UnitID       *uint    `json:"unit_id"`
	Unit         string   `json:"unit"`
}

// resolveRecipeLines turns request lines into concrete id triples,
// creating missing ingredients and units along the way.
func resolveRecipeLines(householdID uint, lines []recipeLineRequest) ([]services.RecipeLine, error) {
	unitSvc := services.NewUnitService(config.DB)
	ingredientSvc := services.NewIngredientService(config.DB)

	resolved := make([]services.RecipeLine, 0, len(lines))
	for _, line := range lines {
		var ingredientID uint
		var defaultUnitID *uint

		switch {
		case line.IngredientID != nil:
			ingredientID = *line.IngredientID
			ing, err := ingredientSvc.Get(ingredientID)
			if err != nil {
				return nil, err
			}
			defaultUnitID = ing.UnitID
		default:
			name := line.Ingredient
			if name == "" {
				name = line.Name
			}
			if name == "" {
				return nil, &services.ValidationError{Field: "ingredients", Message: "ingredient_id or name required"}
			}

			var fallbackUnit *uint
			if line.UnitID != nil {
				fallbackUnit = line.UnitID
			} else {
				abbr := line.Unit
				if abbr == "" {
					abbr = "g"
				}
				unit, err := unitSvc.Resolve(abbr)
				if err != nil {
					return nil, err
				}
				fallbackUnit = &unit.ID
			}

			ing, err := ingredientSvc.Resolve(householdID, name, fallbackUnit)
			if err != nil {
				return nil, err
			}
			ingredientID = ing.ID
			defaultUnitID = ing.UnitID
		}

		var unitID uint
		switch {
		case line.UnitID != nil:
			unitID = *line.UnitID
		case line.Unit != "":
			unit, err := unitSvc.Resolve(line.Unit)
			if err != nil {
				return nil, err
			}
			unitID = unit.ID
		case defaultUnitID != nil:
			unitID = *defaultUnitID
		default:
			unit, err := unitSvc.Resolve("g")
			if err != nil {
				return nil, err
			}
			unitID = unit.ID
		}

		resolved = append(resolved, services.RecipeLine{
			IngredientID: ingredientID,
			Quantity:     *line.Quantity,
			UnitID:       unitID,
		})
	}
	return resolved, nil
}

func GetRecipes(c *gin.Context) {
	svc := services.NewRecipeService(config.DB)
	recipes, err := svc.GetAll(c.GetUint("householdID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, recipes)
}

func GetRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	svc := services.NewRecipeService(config.DB)
	recipe, err := svc.Get(id, c.GetUint("householdID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, recipe)
}

func CreateRecipe(c *gin.Context) {
	var body struct {
		Title        string              `json:"title" binding:"required"`
		Instructions string              `json:"instructions" binding:"required"`
		Tags         []string            `json:"tags"`
		Servings     int                 `json:"servings"`
		PrepTime     int                 `json:"prep_time"`
		CookTime     int                 `json:"cook_time"`
		Ingredients  []recipeLineRequest `json:"ingredients"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	householdID := c.GetUint("householdID")
	lines, err := resolveRecipeLines(householdID, body.Ingredients)
	if err != nil {
		respondError(c, err)
		return
	}

	svc := services.NewRecipeService(config.DB)
	recipe, err := svc.Create(householdID, services.RecipeInput{
		Title:        body.Title,
		Instructions: body.Instructions,
		Tags:         body.Tags,
		Servings:     body.Servings,
		PrepTime:     body.PrepTime,
		CookTime:     body.CookTime,
		Ingredients:  lines,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, recipe)
}

func UpdateRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	var body struct {
		Title        *string             `json:"title"`
		Instructions *string             `json:"instructions"`
		Tags         []string            `json:"tags"`
		Servings     *int                `json:"servings"`
		PrepTime     *int                `json:"prep_time"`
		CookTime     *int                `json:"cook_time"`
		Ingredients  []recipeLineRequest `json:"ingredients"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	householdID := c.GetUint("householdID")
	lines, err := resolveRecipeLines(householdID, body.Ingredients)
	if err != nil {
		respondError(c, err)
		return
	}

	svc := services.NewRecipeService(config.DB)
	recipe, err := svc.Update(id, householdID, services.RecipeUpdate{
		Title:        body.Title,
		Instructions: body.Instructions,
		Tags:         body.Tags,
		Servings:     body.Servings,
		PrepTime:     body.PrepTime,
		CookTime:     body.CookTime,
		Ingredients:  lines,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, recipe)
}

func DeleteRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	svc := services.NewRecipeService(config.DB)
	if err := svc.Delete(id, c.GetUint("householdID")); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, nil)
}

func GetRecipeSuggestions(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil {
		limit = 5
	}

	svc := services.NewRecipeService(config.DB)
	matches, err := svc.GetSuggestionsFromPantry(c.GetUint("householdID"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, matches)
}

func GetRecipeSubstitutions(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}
	householdID := c.GetUint("householdID")

	svc := services.NewRecipeService(config.DB)
	recipe, err := svc.Get(id, householdID)
	if err != nil {
		respondError(c, err)
		return
	}

	missing, err := svc.MissingIngredients(recipe, householdID)
	if err != nil {
		respondError(c, err)
		return
	}

	aiSvc := services.NewAIService(config.DB)
	substitutions := make([]services.Substitution, 0, len(missing))
	for _, ing := range missing {
		substitutions = append(substitutions, aiSvc.GetSmartSubstitutions(ing.ID, householdID))
	}
	respondSuccess(c, substitutions)
}
