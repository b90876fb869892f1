package services

import (
	"errors"
	"strings"

	"github.com/MohammadCZeidan/Server-Homelife/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HouseholdService struct {
	db *gorm.DB
}

func NewHouseholdService(db *gorm.DB) *HouseholdService {
	return &HouseholdService{db: db}
}

func (s *HouseholdService) Get(householdID uint) (*models.Household, error) {
	var household models.Household
	err := s.db.Preload("Users").First(&household, householdID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	for i := range household.Users {
		household.Users[i].Password = ""
	}
	return &household, nil
}

// Create makes a household and moves the creating user into it.
func (s *HouseholdService) Create(userID uint, name string) (*models.Household, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalid("name", "name is required")
	}

	household := &models.Household{Name: name, InviteCode: uuid.NewString()}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(household).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("household_id", household.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(household.ID)
}

// GenerateInvite rotates the household's invite code.
func (s *HouseholdService) GenerateInvite(householdID uint) (string, error) {
	code := uuid.NewString()
	res := s.db.Model(&models.Household{}).
		Where("id = ?", householdID).
		Update("invite_code", code)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", ErrNotFound
	}
	return code, nil
}

// Join moves the user into the household matching the invite code.
func (s *HouseholdService) Join(userID uint, inviteCode string) (*models.Household, error) {
	var household models.Household
	err := s.db.Where("invite_code = ?", inviteCode).First(&household).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("household_id", household.ID).Error; err != nil {
		return nil, err
	}
	return s.Get(household.ID)
}
