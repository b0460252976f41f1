package models

import "time"

// GoalPriority represents how important a goal is to the user
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// GoalStatus represents the lifecycle state of a goal
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
)

// Goal represents a savings target. CurrentAmount only moves through
// explicit add-savings operations; derived progress is never stored.
type Goal struct {
	Base
	UserID        string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string       `gorm:"not null" json:"name"`
	Description   string       `json:"description,omitempty"`
	TargetAmount  float64      `gorm:"not null" json:"target_amount"`
	CurrentAmount float64      `gorm:"not null;default:0" json:"current_amount"`
	TargetDate    time.Time    `gorm:"not null" json:"target_date"`
	Category      string       `json:"category"`
	Priority      GoalPriority `gorm:"not null;default:'medium'" json:"priority"`
	Status        GoalStatus   `gorm:"not null;default:'active'" json:"status"`
}
