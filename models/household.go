package models

import "gorm.io/gorm"

// Household is the tenant boundary: every pantry row, recipe, plan and
// expense belongs to exactly one household.
type Household struct {
	gorm.Model
	Name       string `gorm:"not null"`
	InviteCode string `gorm:"type:varchar(64);uniqueIndex"`
	Users      []User
}
