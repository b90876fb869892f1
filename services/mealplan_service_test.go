package services

import (
	"errors"
	"testing"
	"time"

	"github.com/MohammadCZeidan/Server-Homelife/models"
)

func TestNormalizeDay(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"sunday", 0},
		{"Monday", 1},
		{"SATURDAY", 6},
		{" wednesday ", 3},
		{"0", 0},
		{"6", 6},
		{"3", 3},
		{"7", -1},
		{"-1", -1},
		{"someday", -1},
		{"", -1},
	}

	for _, tt := range tests {
		if got := NormalizeDay(tt.in); got != tt.want {
			t.Errorf("NormalizeDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidSlot(t *testing.T) {
	for _, slot := range []string{"breakfast", "lunch", "dinner", "snack"} {
		if !ValidSlot(slot) {
			t.Errorf("ValidSlot(%q) = false, want true", slot)
		}
	}
	for _, slot := range []string{"brunch", "Breakfast", "", "supper"} {
		if ValidSlot(slot) {
			t.Errorf("ValidSlot(%q) = true, want false", slot)
		}
	}
}

func TestAddMealOverwritesOccupiedCell(t *testing.T) {
	db := openTestDB(t)
	svc := NewMealPlanService(db, nil)

	household := models.Household{Name: "Zeidan"}
	if err := db.Create(&household).Error; err != nil {
		t.Fatalf("create household: %v", err)
	}
	soup := models.Recipe{HouseholdID: household.ID, Title: "Lentil Soup", Instructions: "simmer"}
	if err := db.Create(&soup).Error; err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	shakshuka := models.Recipe{HouseholdID: household.ID, Title: "Shakshuka", Instructions: "poach"}
	if err := db.Create(&shakshuka).Error; err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	week, err := svc.CreateWeeklyPlan(household.ID, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("create week: %v", err)
	}

	if _, err := svc.AddMeal(week.ID, household.ID, 3, "dinner", soup.ID); err != nil {
		t.Fatalf("first AddMeal: %v", err)
	}
	meal, err := svc.AddMeal(week.ID, household.ID, 3, "dinner", shakshuka.ID)
	if err != nil {
		t.Fatalf("second AddMeal: %v", err)
	}
	if meal.RecipeID != shakshuka.ID {
		t.Errorf("cell recipe = %d, want %d", meal.RecipeID, shakshuka.ID)
	}

	var rows []models.Meal
	if err := db.Where("week_id = ? AND day = ? AND slot = ?", week.ID, 3, "dinner").Find(&rows).Error; err != nil {
		t.Fatalf("load cell: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("cell has %d rows, want 1", len(rows))
	}
	if rows[0].RecipeID != shakshuka.ID {
		t.Errorf("stored recipe = %d, want %d", rows[0].RecipeID, shakshuka.ID)
	}
}

func TestAddMealRejectsForeignWeek(t *testing.T) {
	db := openTestDB(t)
	svc := NewMealPlanService(db, nil)

	owner := models.Household{Name: "Zeidan", InviteCode: "invite-owner"}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("create household: %v", err)
	}
	other := models.Household{Name: "Haddad", InviteCode: "invite-other"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("create household: %v", err)
	}
	recipe := models.Recipe{HouseholdID: other.ID, Title: "Fattoush", Instructions: "toss"}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	week, err := svc.CreateWeeklyPlan(owner.ID, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("create week: %v", err)
	}

	if _, err := svc.AddMeal(week.ID, other.ID, 1, "lunch", recipe.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddMeal against another household's week = %v, want ErrNotFound", err)
	}
}
