package services

import "testing"

func TestNetRequirementsSubtractsStock(t *testing.T) {
	required := []Requirement{
		{IngredientID: 1, UnitID: 1, Quantity: 200}, // flour
	}
	stock := map[uint]float64{1: 500}

	if net := NetRequirements(required, stock); len(net) != 0 {
		t.Errorf("fully stocked ingredient should not appear, got %v", net)
	}
}

func TestNetRequirementsSumsRepeats(t *testing.T) {
	required := []Requirement{
		{IngredientID: 2, UnitID: 3, Quantity: 2}, // eggs, twice on the plan
		{IngredientID: 2, UnitID: 3, Quantity: 2},
	}

	net := NetRequirements(required, nil)
	if len(net) != 1 {
		t.Fatalf("net = %v, want one line", net)
	}
	if net[0].Quantity != 4 {
		t.Errorf("quantity = %v, want 4", net[0].Quantity)
	}
}

func TestNetRequirementsPartialStock(t *testing.T) {
	required := []Requirement{
		{IngredientID: 1, UnitID: 1, Quantity: 800},
	}
	stock := map[uint]float64{1: 500}

	net := NetRequirements(required, stock)
	if len(net) != 1 || net[0].Quantity != 300 {
		t.Errorf("net = %v, want one line of 300", net)
	}
}

func TestNetRequirementsMatchesStockByIngredientOnly(t *testing.T) {
	// same ingredient planned in two units; stock counts against both
	required := []Requirement{
		{IngredientID: 1, UnitID: 1, Quantity: 100},
		{IngredientID: 1, UnitID: 2, Quantity: 100},
	}
	stock := map[uint]float64{1: 150}

	net := NetRequirements(required, stock)
	if len(net) != 0 {
		t.Errorf("stock of 150 covers each 100 line when matched by ingredient, got %v", net)
	}
}

func TestNetRequirementsKeepsFirstSeenOrder(t *testing.T) {
	required := []Requirement{
		{IngredientID: 3, UnitID: 1, Quantity: 5},
		{IngredientID: 1, UnitID: 1, Quantity: 5},
		{IngredientID: 2, UnitID: 1, Quantity: 5},
	}

	net := NetRequirements(required, nil)
	want := []uint{3, 1, 2}
	if len(net) != 3 {
		t.Fatalf("net = %v, want 3 lines", net)
	}
	for i, id := range want {
		if net[i].IngredientID != id {
			t.Errorf("net[%d].IngredientID = %d, want %d", i, net[i].IngredientID, id)
		}
	}
}
