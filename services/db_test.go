package services

import (
	"testing"

	"github.com/MohammadCZeidan/Server-Homelife/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a fresh in-memory database with the full schema.
// One connection only, so every query sees the same memory store.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Household{},
		&models.Unit{},
		&models.Ingredient{},
		&models.Inventory{},
		&models.Week{},
		&models.Meal{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.ShoppingList{},
		&models.ShoppingListItem{},
		&models.Expense{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
