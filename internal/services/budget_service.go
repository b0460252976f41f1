package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "kwarta/internal/errors"
	"kwarta/internal/insight"
	"kwarta/internal/models"
	"kwarta/internal/pagination"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a new budget for a category. When no end date is
// given, the window end is derived from the period via insight.PeriodEnd.
func (s *budgetService) CreateBudget(
	userID, categoryID, name string,
	limitAmount float64,
	period models.BudgetPeriod,
	startDate time.Time,
	endDate *time.Time,
) (*models.Budget, error) {
	if limitAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit amount cannot be negative")
	}
	if startDate.IsZero() {
		now := time.Now()
		startDate = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}

	// Verify category exists and belongs to user
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var end time.Time
	if endDate != nil {
		end = *endDate
	} else {
		end = insight.PeriodEnd(startDate, period)
	}
	if !end.After(startDate) {
		return nil, apperrors.ErrInvalidBudgetWindow
	}

	budget := &models.Budget{
		UserID:      userID,
		CategoryID:  categoryID,
		Name:        name,
		LimitAmount: limitAmount,
		Period:      period,
		StartDate:   startDate,
		EndDate:     end,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns a paginated list of budgets for the user with an optional period filter.
func (s *budgetService) GetUserBudgets(userID string, page pagination.PageRequest, period *models.BudgetPeriod) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()

	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)
	if period != nil {
		base = base.Where("period = ?", *period)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Preload("Category").Scopes(pagination.Paginate(page)).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Preload("Category").Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget updates an existing budget's fields. Changing the period
// without an explicit end date re-derives the window end from the start.
func (s *budgetService) UpdateBudget(
	userID, budgetID, name string,
	limitAmount *float64,
	period *models.BudgetPeriod,
	endDate *time.Time,
) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if limitAmount != nil {
		if *limitAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit amount cannot be negative")
		}
		updates["limit_amount"] = *limitAmount
	}
	if period != nil {
		updates["period"] = *period
		if endDate == nil {
			derived := insight.PeriodEnd(budget.StartDate, *period)
			endDate = &derived
		}
	}
	if endDate != nil {
		if !endDate.After(budget.StartDate) {
			return nil, apperrors.ErrInvalidBudgetWindow
		}
		updates["end_date"] = *endDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return budget, nil
}

// DeleteBudget soft-deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetBudgetStatuses reconciles every budget of the user against the expense
// ledger. Statuses are derived fresh on each call and never stored.
func (s *budgetService) GetBudgetStatuses(userID string) ([]insight.BudgetStatus, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ? AND type = ?", userID, models.TransactionTypeExpense).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return insight.Reconcile(budgets, transactions), nil
}
