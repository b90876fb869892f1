package routes

import (
	"github.com/MohammadCZeidan/Server-Homelife/controllers"
	"github.com/MohammadCZeidan/Server-Homelife/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	v01 := r.Group("/v0.1")

	// Public auth routes
	auth := v01.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Token-protected auth routes
	authed := v01.Group("/auth")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.POST("/logout", controllers.Logout)
		authed.POST("/refresh", controllers.Refresh)
		authed.GET("/me", controllers.Me)
		authed.POST("/profile/update", controllers.UpdateProfile)
	}

	users := v01.Group("/users")
	users.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		users.GET("/", controllers.GetAllUsers)
	}

	household := v01.Group("/household")
	household.Use(middlewares.AuthMiddleware())
	{
		household.GET("/", controllers.GetHousehold)
		household.POST("/", controllers.CreateHousehold)
		household.POST("/join", controllers.JoinHousehold)
		household.POST("/invite", controllers.GenerateInvite)
	}

	pantry := v01.Group("/pantry")
	pantry.Use(middlewares.AuthMiddleware(), middlewares.HouseholdRequired())
	{
		pantry.GET("/", controllers.GetPantry)
		pantry.POST("/", controllers.CreatePantryItem)
		pantry.GET("/expiring", controllers.GetExpiringSoon)
		pantry.POST("/merge-duplicates", controllers.MergePantryDuplicates)
		pantry.POST("/send-expiring-email", controllers.SendExpiringItemsEmail)
		pantry.POST("/:id/update", controllers.UpdatePantryItem)
		pantry.POST("/:id/expiry", controllers.UpdatePantryExpiry)
		pantry.DELETE("/:id", controllers.DeletePantryItem)
		// POST alias kept for older clients
		pantry.POST("/:id/delete", controllers.DeletePantryItem)
		pantry.POST("/:id/consume", controllers.ConsumePantryItem)
	}

	recipes := v01.Group("/recipes")
	recipes.Use(middlewares.AuthMiddleware(), middlewares.HouseholdRequired())
	{
		recipes.GET("/", controllers.GetRecipes)
		recipes.GET("/suggestions", controllers.GetRecipeSuggestions)
		recipes.GET("/:id", controllers.GetRecipe)
		recipes.POST("/", controllers.CreateRecipe)
		recipes.POST("/:id/update", controllers.UpdateRecipe)
		recipes.POST("/:id/delete", controllers.DeleteRecipe)
		recipes.GET("/:id/substitutions", controllers.GetRecipeSubstitutions)
	}

	mealPlans := v01.Group("/meal-plans")
	mealPlans.Use(middlewares.AuthMiddleware(), middlewares.HouseholdRequired())
	{
		mealPlans.GET("/", controllers.GetWeeklyPlan)
		mealPlans.POST("/", controllers.CreateWeeklyPlan)
		mealPlans.POST("/:weekId/meals", controllers.AddMeal)
		mealPlans.POST("/:weekId/meals/:mealId/delete", controllers.RemoveMeal)
	}

	shoppingLists := v01.Group("/shopping-lists")
	shoppingLists.Use(middlewares.AuthMiddleware(), middlewares.HouseholdRequired())
	{
		shoppingLists.GET("/", controllers.GetShoppingLists)
		shoppingLists.POST("/", controllers.CreateShoppingList)
		shoppingLists.POST("/generate", controllers.GenerateShoppingList)
		shoppingLists.GET("/:id", controllers.GetShoppingList)
		shoppingLists.POST("/:id/update", controllers.UpdateShoppingList)
		shoppingLists.POST("/:id/delete", controllers.DeleteShoppingList)
		shoppingLists.POST("/:id/items", controllers.AddShoppingListItem)
		shoppingLists.POST("/:id/items/:itemId/update", controllers.UpdateShoppingListItem)
		shoppingLists.POST("/:id/items/:itemId/delete", controllers.DeleteShoppingListItem)
	}

	expenses := v01.Group("/expenses")
	expenses.Use(middlewares.AuthMiddleware(), middlewares.HouseholdRequired())
	{
		expenses.GET("/", controllers.GetExpenses)
		expenses.GET("/summary", controllers.GetExpenseSummary)
		expenses.GET("/:id", controllers.GetExpense)
		expenses.POST("/", controllers.CreateExpense)
		expenses.POST("/:id/update", controllers.UpdateExpense)
		expenses.POST("/:id/delete", controllers.DeleteExpense)
	}

	// Ingredient catalog is public so clients can browse before login
	ingredients := v01.Group("/ingredients")
	{
		ingredients.GET("/", controllers.GetIngredients)
		ingredients.GET("/:id", controllers.GetIngredient)
		ingredients.POST("/", controllers.CreateIngredient)
	}

	units := v01.Group("/units")
	units.Use(middlewares.AuthMiddleware())
	{
		units.GET("/", controllers.GetUnits)
		units.POST("/", controllers.CreateUnit)
	}

	nutrition := v01.Group("/nutrition")
	nutrition.Use(middlewares.AuthMiddleware(), middlewares.HouseholdRequired())
	{
		nutrition.GET("/recipes/:id", controllers.GetRecipeNutrition)
		nutrition.GET("/weeks/:weekId", controllers.GetWeeklyNutrition)
	}

	insights := v01.Group("/insights")
	insights.Use(middlewares.AuthMiddleware(), middlewares.HouseholdRequired())
	{
		insights.GET("/weekly", controllers.GetWeeklyInsights)
	}

	ai := v01.Group("/ai")
	ai.Use(middlewares.AuthMiddleware(), middlewares.HouseholdRequired())
	{
		ai.POST("/generate-seed-data", controllers.GenerateSeedData)
		ai.GET("/recipe-suggestions", controllers.GetAIRecipeSuggestions)
		ai.GET("/substitutions/:ingredientId", controllers.GetSmartSubstitutions)
	}

	notifications := v01.Group("/notifications")
	notifications.Use(middlewares.AuthMiddleware(), middlewares.HouseholdRequired())
	{
		notifications.POST("/send", controllers.SendNotification)
	}

	return r
}
