package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name        string
	Email       string `gorm:"uniqueIndex;not null"`
	Password    string `gorm:"not null"`
	Role        string `gorm:"default:member"` // "member" | "admin"
	HouseholdID *uint  // nil until the user creates or joins a household
	Household   *Household
}
