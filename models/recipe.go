package models

import "gorm.io/gorm"

type Recipe struct {
	gorm.Model
	HouseholdID  uint     `gorm:"index;not null"`
	Title        string   `gorm:"not null"`
	Instructions string   `gorm:"type:text;not null"`
	Tags         []string `gorm:"serializer:json"`
	Servings     int      `gorm:"default:4"`
	PrepTime     int      // minutes
	CookTime     int      // minutes
	Ingredients  []RecipeIngredient
}

// RecipeIngredient is one ordered line of a recipe.
type RecipeIngredient struct {
	gorm.Model
	RecipeID     uint `gorm:"index;not null"`
	IngredientID uint `gorm:"not null"`
	Ingredient   Ingredient
	Quantity     float64 `gorm:"not null"`
	UnitID       uint    `gorm:"not null"`
	Unit         Unit
	Position     int
}
