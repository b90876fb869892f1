package models

import (
	"time"

	"gorm.io/gorm"
)

type Expense struct {
	gorm.Model
	HouseholdID uint      `gorm:"index;not null"`
	Store       string    `gorm:"type:varchar(255)"`
	Amount      float64   `gorm:"not null"`
	Date        time.Time `gorm:"type:date;not null"`
	Category    string    `gorm:"type:varchar(255)"`
	Note        string    `gorm:"type:text"`
	ReceiptLink string    `gorm:"type:varchar(255)"`
}
