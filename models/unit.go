package models

import "gorm.io/gorm"

// Units are global, not household-scoped.
type Unit struct {
	gorm.Model
	Name         string `gorm:"uniqueIndex;not null"`
	Abbreviation string `gorm:"type:varchar(10)"`
}
