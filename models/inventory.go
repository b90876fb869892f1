package models

import (
	"time"

	"gorm.io/gorm"
)

// Inventory is one pantry row. Rows never hold a negative quantity;
// consuming a row down to zero deletes it.
type Inventory struct {
	gorm.Model
	HouseholdID  uint `gorm:"index;not null"`
	IngredientID uint `gorm:"not null"`
	Ingredient   Ingredient
	Quantity     float64 `gorm:"not null"`
	UnitID       uint    `gorm:"not null"`
	Unit         Unit
	ExpiryDate   *time.Time
	Location     *string `gorm:"type:varchar(255)"` // "fridge", "pantry", ...
}
