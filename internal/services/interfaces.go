package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kwarta/internal/insight"
	"kwarta/internal/models"
	"kwarta/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// WalletServicer defines the contract for wallet-related business logic.
type WalletServicer interface {
	CreateWallet(userID, name string, walletType models.WalletType, initialBalance float64, color, icon string) (*models.Wallet, error)
	GetUserWallets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Wallet], error)
	GetWalletByID(userID, walletID string) (*models.Wallet, error)
	UpdateWallet(userID, walletID, name, color, icon string) (*models.Wallet, error)
	DeleteWallet(userID, walletID string) error
	Transfer(userID, fromWalletID, toWalletID string, amount float64, description string) error
	TotalBalance(userID string) (float64, error)
	AdjustBalance(tx *gorm.DB, wallet *models.Wallet, transactionType models.TransactionType, amount float64) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, categoryType models.CategoryType, icon, color string) (*models.Category, error)
	GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetUserCategoriesByType(userID string, categoryType models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID, name, icon, color string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
	WalletID   *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, walletID string, categoryID *string, transactionType models.TransactionType, amount float64, description string, date time.Time, notes string) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID, description, notes string, categoryID *string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, categoryID, name string, limitAmount float64, period models.BudgetPeriod, startDate time.Time, endDate *time.Time) (*models.Budget, error)
	GetUserBudgets(userID string, page pagination.PageRequest, period *models.BudgetPeriod) (*pagination.PageResponse[models.Budget], error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudget(userID, budgetID, name string, limitAmount *float64, period *models.BudgetPeriod, endDate *time.Time) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
	GetBudgetStatuses(userID string) ([]insight.BudgetStatus, error)
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	CreateGoal(userID, name, description string, targetAmount float64, targetDate time.Time, category string, priority models.GoalPriority) (*models.Goal, error)
	GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error)
	GetGoalByID(userID, goalID string) (*models.Goal, error)
	UpdateGoal(userID, goalID, name, description string, targetAmount *float64, targetDate *time.Time, priority *models.GoalPriority) (*models.Goal, error)
	DeleteGoal(userID, goalID string) error
	AddSavings(userID, goalID string, amount float64) (*models.Goal, error)
	GetGoalProgress(userID, goalID string) (*insight.GoalProgress, error)
}

// Report is the full derived view returned by the insights endpoint.
type Report struct {
	Monthly        insight.PeriodAggregate `json:"monthly"`
	Totals         insight.PeriodAggregate `json:"totals"`
	CategoryTotals []insight.CategoryTotal `json:"category_totals"`
	Salary         insight.SalaryProfile   `json:"salary"`
	Trend          insight.MonthlyTrend    `json:"trend"`
	BudgetStatuses []insight.BudgetStatus  `json:"budget_statuses"`
	Goals          []insight.GoalProgress  `json:"goals"`
	HealthScore    int                     `json:"health_score"`
	TotalBalance   float64                 `json:"total_balance"`
	Insights       []insight.Insight       `json:"insights"`
	Suggestions    []insight.Suggestion    `json:"suggestions"`
	AsOf           time.Time               `json:"as_of"`
}

// InsightServicer assembles derived reports from a user's stored data.
type InsightServicer interface {
	GetSnapshot(userID string, asOf time.Time) (*insight.Snapshot, error)
	GetReport(userID string, asOf time.Time) (*Report, error)
	GetSuggestions(userID string, asOf time.Time) ([]insight.Suggestion, error)
	GetHealthScore(userID string, asOf time.Time) (int, error)
}

// AdvisorServicer answers free-form financial questions grounded in the
// user's derived snapshot.
type AdvisorServicer interface {
	Chat(ctx context.Context, userID, question string) (string, bool, error)
}
