package insight

import (
	"math"
	"time"

	"kwarta/internal/models"
)

// BudgetState classifies how much of a budget's limit has been consumed.
type BudgetState string

const (
	BudgetOnTrack  BudgetState = "on-track"
	BudgetAtRisk   BudgetState = "at-risk"
	BudgetExceeded BudgetState = "exceeded"
)

// BudgetStatus is the reconciled spending position of one budget.
// Remaining goes negative on overspend; it is never clamped.
type BudgetStatus struct {
	BudgetID   string      `json:"budget_id"`
	Spent      float64     `json:"spent"`
	Remaining  float64     `json:"remaining"`
	Percentage float64     `json:"percentage"`
	Status     BudgetState `json:"status"`
}

// Reconcile computes a BudgetStatus for each budget, in input order. A
// transaction counts toward a budget when its category matches, its type
// is expense, and its date falls inside the inclusive window
// [StartDate, EndDate]. A zero-limit budget reports 0% on-track rather
// than dividing by zero.
func Reconcile(budgets []models.Budget, txs []models.Transaction) []BudgetStatus {
	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		var spent float64
		for _, t := range txs {
			if t.Type != models.TransactionTypeExpense {
				continue
			}
			if t.CategoryID == nil || *t.CategoryID != b.CategoryID {
				continue
			}
			if t.Date.IsZero() || t.Date.Before(b.StartDate) || t.Date.After(b.EndDate) {
				continue
			}
			spent += math.Abs(t.Amount)
		}

		var percentage float64
		if b.LimitAmount > 0 {
			percentage = spent / b.LimitAmount * 100
		}

		status := BudgetOnTrack
		switch {
		case percentage >= 100:
			status = BudgetExceeded
		case percentage >= 80:
			status = BudgetAtRisk
		}

		statuses = append(statuses, BudgetStatus{
			BudgetID:   b.ID,
			Spent:      spent,
			Remaining:  b.LimitAmount - spent,
			Percentage: percentage,
			Status:     status,
		})
	}
	return statuses
}

// PeriodEnd computes the end date of a budget window that starts at start.
//
//   - weekly: six days after start (a seven-day inclusive window)
//   - monthly: the last day of start's month
//   - quarterly: day zero of month+3, i.e. the last day of month+2
//   - yearly: one year later minus one day
//
// A custom period has a caller-supplied end date; for it (and any
// unrecognized period) the monthly default is returned.
func PeriodEnd(start time.Time, period models.BudgetPeriod) time.Time {
	switch period {
	case models.BudgetPeriodWeekly:
		return start.AddDate(0, 0, 6)
	case models.BudgetPeriodMonthly:
		return time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, start.Location())
	case models.BudgetPeriodQuarterly:
		return time.Date(start.Year(), start.Month()+3, 0, 0, 0, 0, 0, start.Location())
	case models.BudgetPeriodYearly:
		return start.AddDate(1, 0, -1)
	default:
		return time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, start.Location())
	}
}
