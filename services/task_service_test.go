package services

import (
	"testing"
	"time"

	"github.com/MohammadCZeidan/Server-Homelife/models"

	"gorm.io/gorm"
)

func TestBuildExpiryDigest(t *testing.T) {
	household := models.Household{
		Name: "Zeidan",
		Users: []models.User{
			{Email: "mo@example.com"},
			{Email: "lina@example.com"},
		},
	}
	household.ID = 4

	expiry := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	fridge := "fridge"
	items := []ExpiringItem{
		{
			Inventory: models.Inventory{
				Ingredient: models.Ingredient{Name: "milk"},
				Quantity:   1,
				Unit:       models.Unit{Name: "Liter"},
				ExpiryDate: &expiry,
				Location:   &fridge,
			},
			DaysUntilExpiry: 2,
		},
		{
			Inventory: models.Inventory{
				Ingredient: models.Ingredient{Name: "eggs"},
				Quantity:   6,
				ExpiryDate: &expiry,
			},
			DaysUntilExpiry: 2,
		},
	}

	digest := BuildExpiryDigest(household, items, time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC))

	if digest.HouseholdID != 4 || digest.HouseholdName != "Zeidan" {
		t.Errorf("household = %d %q", digest.HouseholdID, digest.HouseholdName)
	}
	if len(digest.Users) != 2 || digest.Users[0] != "mo@example.com" {
		t.Errorf("users = %v", digest.Users)
	}
	if digest.Count != 2 || len(digest.ExpiringItems) != 2 {
		t.Fatalf("count = %d, items = %d", digest.Count, len(digest.ExpiringItems))
	}
	if digest.AlertDate != "2026-03-07" {
		t.Errorf("alert date = %q", digest.AlertDate)
	}

	milk := digest.ExpiringItems[0]
	if milk.Ingredient != "milk" || milk.Unit != "Liter" || milk.Location != "fridge" || milk.ExpiryDate != "2026-03-09" {
		t.Errorf("milk line = %+v", milk)
	}
	eggs := digest.ExpiringItems[1]
	if eggs.Unit != "unit" || eggs.Location != "" {
		t.Errorf("missing unit and location should fall back, got %+v", eggs)
	}
}

func TestSendExpiryAlerts(t *testing.T) {
	db := openTestDB(t)

	withUsers := models.Household{Name: "Zeidan", InviteCode: "invite-with-users", Users: []models.User{{Name: "Mo", Email: "mo@example.com", Password: "x"}}}
	if err := db.Create(&withUsers).Error; err != nil {
		t.Fatalf("create household: %v", err)
	}
	empty := models.Household{Name: "Vacant", InviteCode: "invite-empty"}
	if err := db.Create(&empty).Error; err != nil {
		t.Fatalf("create household: %v", err)
	}

	unit := models.Unit{Name: "Gram", Abbreviation: "g"}
	if err := db.Create(&unit).Error; err != nil {
		t.Fatalf("create unit: %v", err)
	}
	soon := time.Now().AddDate(0, 0, 1)
	far := time.Now().AddDate(0, 0, 30)
	for _, row := range []models.Inventory{
		{HouseholdID: withUsers.ID, IngredientID: seedIngredient(t, db, withUsers.ID, "milk"), Quantity: 1, UnitID: unit.ID, ExpiryDate: &soon},
		{HouseholdID: withUsers.ID, IngredientID: seedIngredient(t, db, withUsers.ID, "rice"), Quantity: 500, UnitID: unit.ID, ExpiryDate: &far},
		{HouseholdID: empty.ID, IngredientID: seedIngredient(t, db, empty.ID, "milk"), Quantity: 1, UnitID: unit.ID, ExpiryDate: &soon},
	} {
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("create inventory: %v", err)
		}
	}

	svc := NewTaskService(db, NewAIService(db), nil)
	households, items, err := svc.SendExpiryAlerts(3)
	if err != nil {
		t.Fatalf("SendExpiryAlerts: %v", err)
	}
	if households != 1 {
		t.Errorf("households alerted = %d, want 1 (memberless households are skipped)", households)
	}
	if items != 1 {
		t.Errorf("items covered = %d, want 1 (far expiry is outside the window)", items)
	}
}

func TestGenerateMealPlanDrafts(t *testing.T) {
	db := openTestDB(t)
	srv := chatStub(t, "1. Lentil Soup\n2. Shakshuka\n3. Fattoush")
	defer srv.Close()

	stocked := models.Household{Name: "Zeidan", InviteCode: "invite-stocked"}
	if err := db.Create(&stocked).Error; err != nil {
		t.Fatalf("create household: %v", err)
	}
	bare := models.Household{Name: "Vacant", InviteCode: "invite-bare"}
	if err := db.Create(&bare).Error; err != nil {
		t.Fatalf("create household: %v", err)
	}

	unit := models.Unit{Name: "Gram", Abbreviation: "g"}
	if err := db.Create(&unit).Error; err != nil {
		t.Fatalf("create unit: %v", err)
	}
	lentils := seedIngredient(t, db, stocked.ID, "lentils")
	for _, row := range []models.Inventory{
		{HouseholdID: stocked.ID, IngredientID: lentils, Quantity: 400, UnitID: unit.ID},
		{HouseholdID: stocked.ID, IngredientID: lentils, Quantity: 200, UnitID: unit.ID},
		{HouseholdID: stocked.ID, IngredientID: seedIngredient(t, db, stocked.ID, "tomatoes"), Quantity: 0, UnitID: unit.ID},
	} {
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("create inventory: %v", err)
		}
	}

	ai := testAIService(srv.URL)
	ai.db = db
	svc := NewTaskService(db, ai, nil)

	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
	drafts, err := svc.GenerateMealPlanDrafts(weekStart)
	if err != nil {
		t.Fatalf("GenerateMealPlanDrafts: %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("drafts = %d, want 1 (empty pantries are skipped)", len(drafts))
	}

	draft := drafts[0]
	if draft.HouseholdID != stocked.ID {
		t.Errorf("draft household = %d, want %d", draft.HouseholdID, stocked.ID)
	}
	if draft.WeekStart != "2026-03-02" {
		t.Errorf("draft week start = %q, want 2026-03-02", draft.WeekStart)
	}
	if len(draft.AvailableIngredients) != 1 || draft.AvailableIngredients[0] != "lentils" {
		t.Errorf("available ingredients = %v, want [lentils]", draft.AvailableIngredients)
	}
	if len(draft.SuggestedMeals) != 3 || draft.SuggestedMeals[0] != "Lentil Soup" {
		t.Errorf("suggested meals = %v", draft.SuggestedMeals)
	}

	var weeks []models.Week
	if err := db.Find(&weeks).Error; err != nil {
		t.Fatalf("load weeks: %v", err)
	}
	if len(weeks) != 1 || weeks[0].HouseholdID != stocked.ID {
		t.Errorf("weeks created = %+v, want one for the stocked household", weeks)
	}
}

func TestUniqueIngredientNames(t *testing.T) {
	items := []models.Inventory{
		{Ingredient: models.Ingredient{Name: "rice"}},
		{Ingredient: models.Ingredient{Name: "milk"}},
		{Ingredient: models.Ingredient{Name: "rice"}},
		{Ingredient: models.Ingredient{}},
	}
	got := uniqueIngredientNames(items)
	if len(got) != 2 || got[0] != "rice" || got[1] != "milk" {
		t.Errorf("uniqueIngredientNames = %v, want [rice milk]", got)
	}
}

func seedIngredient(t *testing.T, db *gorm.DB, householdID uint, name string) uint {
	t.Helper()
	var existing models.Ingredient
	if err := db.Where("household_id = ? AND name = ?", householdID, name).First(&existing).Error; err == nil {
		return existing.ID
	}
	ing := models.Ingredient{HouseholdID: householdID, Name: name}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("create ingredient %q: %v", name, err)
	}
	return ing.ID
}
