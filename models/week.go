package models

import (
	"time"

	"gorm.io/gorm"
)

// Week is one planning window per household. StartDate is always the
// Monday of its calendar week, EndDate the Sunday six days later.
type Week struct {
	gorm.Model
	HouseholdID uint      `gorm:"not null;uniqueIndex:idx_weeks_household_start"`
	StartDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_weeks_household_start"`
	EndDate     time.Time `gorm:"type:date;not null"`
	Meals       []Meal
}

// Meal is one cell of the week's day x slot grid. At most one meal
// exists per (week, day, slot); re-assigning a cell overwrites RecipeID.
type Meal struct {
	gorm.Model
	WeekID   uint   `gorm:"not null;uniqueIndex:idx_meals_week_day_slot"`
	Day      int    `gorm:"not null;uniqueIndex:idx_meals_week_day_slot"` // 0-6, 0=Sunday
	Slot     string `gorm:"type:varchar(20);not null;uniqueIndex:idx_meals_week_day_slot"`
	RecipeID uint   `gorm:"not null"`
	Recipe   Recipe
}
