package models

import "time"

// BudgetPeriod represents the period type for a budget
type BudgetPeriod string

const (
	BudgetPeriodWeekly    BudgetPeriod = "weekly"
	BudgetPeriodMonthly   BudgetPeriod = "monthly"
	BudgetPeriodQuarterly BudgetPeriod = "quarterly"
	BudgetPeriodYearly    BudgetPeriod = "yearly"
	BudgetPeriodCustom    BudgetPeriod = "custom"
)

// Budget represents a spending limit for a category over an inclusive
// date window [StartDate, EndDate].
type Budget struct {
	Base
	UserID      string       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  string       `gorm:"type:uuid;not null" json:"category_id"`
	Name        string       `gorm:"not null" json:"name"`
	LimitAmount float64      `gorm:"not null" json:"limit_amount"`
	Period      BudgetPeriod `gorm:"not null" json:"period"`
	StartDate   time.Time    `gorm:"not null" json:"start_date"`
	EndDate     time.Time    `gorm:"not null" json:"end_date"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
