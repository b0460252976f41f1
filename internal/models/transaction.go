package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial transaction in the system.
// Amount is signed by convention (negative for expenses) but the sign is
// not enforced; aggregation code normalizes with the absolute value.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	WalletID    string          `gorm:"type:uuid;not null" json:"wallet_id"`
	CategoryID  *string         `gorm:"type:uuid" json:"category_id,omitempty"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Notes       string          `json:"notes,omitempty"`

	// Relationships
	Wallet   Wallet    `gorm:"foreignKey:WalletID" json:"wallet"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
