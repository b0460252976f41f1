package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"kwarta/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestWallet creates a cash wallet with zero balance.
func CreateTestWallet(t *testing.T, db *gorm.DB, userID string) *models.Wallet {
	t.Helper()
	return CreateTestWalletWithBalance(t, db, userID, 0)
}

// CreateTestWalletWithBalance creates a cash wallet with the given balance.
func CreateTestWalletWithBalance(t *testing.T, db *gorm.DB, userID string, balance float64) *models.Wallet {
	t.Helper()

	wallet := &models.Wallet{
		UserID:  userID,
		Name:    fmt.Sprintf("Test Wallet %d", nextID()),
		Type:    models.WalletTypeCash,
		Balance: balance,
	}
	if err := db.Create(wallet).Error; err != nil {
		t.Fatalf("failed to create test wallet: %v", err)
	}
	return wallet
}

// CreateTestSavingsWallet creates a savings wallet with the given balance.
func CreateTestSavingsWallet(t *testing.T, db *gorm.DB, userID string, balance float64) *models.Wallet {
	t.Helper()

	wallet := &models.Wallet{
		UserID:  userID,
		Name:    fmt.Sprintf("Test Savings %d", nextID()),
		Type:    models.WalletTypeSavings,
		Balance: balance,
	}
	if err := db.Create(wallet).Error; err != nil {
		t.Fatalf("failed to create test savings wallet: %v", err)
	}
	return wallet
}

// CreateTestCategory creates a category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Type:   categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction of the given type and amount.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, walletID string, txType models.TransactionType, amount float64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		WalletID: walletID,
		Type:     txType,
		Amount:   amount,
		Date:     time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates a monthly budget for the given category,
// starting on the first of the current month.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, categoryID string) *models.Budget {
	t.Helper()

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	budget := &models.Budget{
		UserID:      userID,
		CategoryID:  categoryID,
		Name:        fmt.Sprintf("Test Budget %d", nextID()),
		LimitAmount: 10000,
		Period:      models.BudgetPeriodMonthly,
		StartDate:   start,
		// End of the month's last day so transactions dated "now" stay inside
		// the inclusive window even on the last calendar day.
		EndDate: start.AddDate(0, 1, 0).Add(-time.Second),
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGoal creates an active goal due one year from now.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:       userID,
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: 50000,
		TargetDate:   time.Now().AddDate(1, 0, 0),
		Priority:     models.GoalPriorityMedium,
		Status:       models.GoalStatusActive,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
