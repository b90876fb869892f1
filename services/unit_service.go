package services

import (
	"errors"
	"strings"

	"github.com/MohammadCZeidan/Server-Homelife/models"

	"gorm.io/gorm"
)

// unitNames maps common abbreviations to full unit names. Anything not
// listed falls back to a capitalized form of the abbreviation itself.
var unitNames = map[string]string{
	"g":      "Gram",
	"kg":     "Kilogram",
	"l":      "Liter",
	"ml":     "Milliliter",
	"cup":    "Cup",
	"piece":  "Piece",
	"pieces": "Piece",
	"pc":     "Piece",
	"pack":   "Piece",
}

// UnitNameFor resolves an abbreviation to its display name.
func UnitNameFor(abbreviation string) string {
	if name, ok := unitNames[strings.ToLower(abbreviation)]; ok {
		return name
	}
	return Capitalize(strings.ToLower(abbreviation))
}

// Capitalize upper-cases the first byte only.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type UnitService struct {
	db *gorm.DB
}

func NewUnitService(db *gorm.DB) *UnitService {
	return &UnitService{db: db}
}

func (s *UnitService) GetAll() ([]models.Unit, error) {
	var units []models.Unit
	err := s.db.Order("id ASC").Find(&units).Error
	return units, err
}

func (s *UnitService) Create(name, abbreviation string) (*models.Unit, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalid("name", "name is required")
	}
	unit := &models.Unit{Name: name, Abbreviation: abbreviation}
	if err := s.db.Create(unit).Error; err != nil {
		return nil, err
	}
	return unit, nil
}

// Resolve finds a unit by abbreviation first, then by name
// (case-insensitive), creating one from the abbreviation map when
// neither matches. First match wins by row order.
func (s *UnitService) Resolve(nameOrAbbreviation string) (*models.Unit, error) {
	var unit models.Unit
	err := s.db.
		Where("abbreviation = ?", nameOrAbbreviation).
		Or("LOWER(name) = LOWER(?)", nameOrAbbreviation).
		Order("id ASC").
		First(&unit).Error
	if err == nil {
		return &unit, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.Create(UnitNameFor(nameOrAbbreviation), nameOrAbbreviation)
}
