package services

import (
	"errors"
	"strings"

	"github.com/MohammadCZeidan/Server-Homelife/models"
	"github.com/MohammadCZeidan/Server-Homelife/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// AuthUser is a user plus a fresh token, the login/register payload.
type AuthUser struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (s *AuthService) Register(name, email, password string) (*AuthUser, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalid("name", "name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, invalid("email", "email is required")
	}
	if len(password) < 6 {
		return nil, invalid("password", "must be at least 6 characters")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Name: name, Email: email, Password: hashed}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &AuthUser{User: user, Token: token}, nil
}

func (s *AuthService) Login(email, password string) (*AuthUser, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrNotFound
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &AuthUser{User: user, Token: token}, nil
}

func (s *AuthService) Me(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Household").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// Refresh issues a new token for the authenticated user.
func (s *AuthService) Refresh(userID uint) (*AuthUser, error) {
	user, err := s.Me(userID)
	if err != nil {
		return nil, err
	}
	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthUser{User: *user, Token: token}, nil
}

type ProfileUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (s *AuthService) UpdateProfile(userID uint, in ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

func (s *AuthService) GetAllUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Preload("Household").
		Select("id", "name", "email", "role", "household_id", "created_at").
		Find(&users).Error
	return users, err
}
