package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "kwarta/internal/errors"
	"kwarta/internal/insight"
	"kwarta/internal/models"
)

// insightService assembles derived reports from a user's stored data. All
// derivation happens in internal/insight over in-memory slices; this service
// only fetches rows and hands them over.
type insightService struct {
	db  *gorm.DB
	cfg insight.Config
}

// NewInsightService creates a new InsightServicer with the given derivation config.
func NewInsightService(db *gorm.DB, cfg insight.Config) InsightServicer {
	return &insightService{db: db, cfg: cfg}
}

// GetSnapshot loads the user's ledger and derives a full snapshot as of the
// given time. Nothing derived is ever persisted; every call recomputes.
func (s *insightService) GetSnapshot(userID string, asOf time.Time) (*insight.Snapshot, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}

	var transactions []models.Transaction
	if err := s.db.Preload("Category").Where("user_id = ?", userID).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var wallets []models.Wallet
	if err := s.db.Where("user_id = ?", userID).Find(&wallets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// All goals, regardless of status: completed and paused goals still
	// count toward the health score and the goal-related suggestions.
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	snapshot := insight.NewSnapshot(transactions, wallets, categories, goals, budgets, asOf, s.cfg)
	return &snapshot, nil
}

// GetReport derives the full insight report for a user.
func (s *insightService) GetReport(userID string, asOf time.Time) (*Report, error) {
	snapshot, err := s.GetSnapshot(userID, asOf)
	if err != nil {
		return nil, err
	}

	goalProgress := make([]insight.GoalProgress, 0, len(snapshot.Goals))
	for _, g := range snapshot.Goals {
		goalProgress = append(goalProgress, insight.EvaluateGoal(g, snapshot.AsOf))
	}

	return &Report{
		Monthly:        snapshot.Monthly,
		Totals:         snapshot.Totals,
		CategoryTotals: snapshot.CategoryTotals,
		Salary:         snapshot.Salary,
		Trend:          snapshot.Trend,
		BudgetStatuses: snapshot.BudgetStatuses,
		Goals:          goalProgress,
		HealthScore:    snapshot.HealthScore(),
		TotalBalance:   snapshot.TotalBalance,
		Insights:       insight.Insights(*snapshot, s.cfg),
		Suggestions:    insight.Suggestions(*snapshot, s.cfg),
		AsOf:           snapshot.AsOf,
	}, nil
}

// GetSuggestions derives only the suggestion list.
func (s *insightService) GetSuggestions(userID string, asOf time.Time) ([]insight.Suggestion, error) {
	snapshot, err := s.GetSnapshot(userID, asOf)
	if err != nil {
		return nil, err
	}
	return insight.Suggestions(*snapshot, s.cfg), nil
}

// GetHealthScore derives only the composite health score.
func (s *insightService) GetHealthScore(userID string, asOf time.Time) (int, error) {
	snapshot, err := s.GetSnapshot(userID, asOf)
	if err != nil {
		return 0, err
	}
	return snapshot.HealthScore(), nil
}
