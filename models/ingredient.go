package models

import "gorm.io/gorm"

// Ingredient is household-scoped; Name is unique within a household.
// Nutrition values are per 100 of the default unit.
type Ingredient struct {
	gorm.Model
	HouseholdID uint   `gorm:"index;not null;uniqueIndex:idx_ingredients_household_name"`
	Name        string `gorm:"not null;uniqueIndex:idx_ingredients_household_name"`
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	UnitID      *uint
	Unit        *Unit
}
