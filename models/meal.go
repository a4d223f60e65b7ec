package models

import (
	"time"
)

// One logged meal. DateTime keeps the full instant, not just the calendar day.
type Meal struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;index;not null" json:"user_id"` // FK → users.id
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	DateTime    time.Time `gorm:"column:date_time;type:timestamptz;not null" json:"date_time"`
	IsInTheDiet bool      `gorm:"column:is_in_the_diet;not null" json:"is_in_the_diet"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MealFields are the mutable columns of a meal.
type MealFields struct {
	Name        string
	Description string
	DateTime    time.Time
	IsInTheDiet bool
}
