package services

import "testing"

func TestUnitNameFor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"g", "Gram"},
		{"KG", "Kilogram"},
		{"ml", "Milliliter"},
		{"l", "Liter"},
		{"cup", "Cup"},
		{"pieces", "Piece"},
		{"pc", "Piece"},
		{"pack", "Piece"},
		{"tbsp", "Tbsp"}, // unknown falls back to a capitalized form
	}

	for _, tt := range tests {
		if got := UnitNameFor(tt.in); got != tt.want {
			t.Errorf("UnitNameFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"g", "G"},
		{"gram", "Gram"},
		{"Gram", "Gram"},
	}

	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
