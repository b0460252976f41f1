package models

// WalletType represents the type of wallet
type WalletType string

const (
	WalletTypeCash    WalletType = "cash"
	WalletTypeBank    WalletType = "bank"
	WalletTypeDigital WalletType = "digital"
	WalletTypeSavings WalletType = "savings"
)

// Wallet represents a money container (cash on hand, bank account,
// e-wallet, or savings pot). Balance is a running total maintained by
// transaction and transfer operations, not recomputed from history.
type Wallet struct {
	Base
	UserID  string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Name    string     `gorm:"not null" json:"name"`
	Type    WalletType `gorm:"not null" json:"type"`
	Balance float64    `gorm:"not null;default:0" json:"balance"`
	Color   string     `json:"color"`
	Icon    string     `json:"icon"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:WalletID" json:"transactions,omitempty"`
}
