package models

import "gorm.io/gorm"

type ShoppingList struct {
	gorm.Model
	HouseholdID uint   `gorm:"index;not null"`
	Title       string `gorm:"not null"`
	WeekID      *uint  // set when generated from a meal plan
	IsCompleted bool
	Items       []ShoppingListItem
}

type ShoppingListItem struct {
	gorm.Model
	ShoppingListID uint `gorm:"index;not null"`
	IngredientID   uint `gorm:"not null"`
	Ingredient     Ingredient
	Quantity       float64 `gorm:"not null"`
	UnitID         uint    `gorm:"not null"`
	Unit           Unit
	Bought         bool
}
