package insight

import (
	"time"

	"kwarta/internal/models"
)

// Snapshot is the fully-derived view of a user's finances that the
// suggestion and insight generators consume. Build one with NewSnapshot;
// the zero value is usable but represents an empty ledger.
type Snapshot struct {
	Transactions   []models.Transaction
	Wallets        []models.Wallet
	Goals          []models.Goal
	BudgetStatuses []BudgetStatus

	Monthly        PeriodAggregate // asOf's calendar month
	Totals         PeriodAggregate // all-time
	CategoryTotals []CategoryTotal
	Salary         SalaryProfile
	Trend          MonthlyTrend
	TotalBalance   float64
	AsOf           time.Time
}

// NewSnapshot derives all aggregate views from the raw collections. It is
// the single entry point the service layer uses; every derived value is
// recomputed from scratch on each call.
func NewSnapshot(
	txs []models.Transaction,
	wallets []models.Wallet,
	categories []models.Category,
	goals []models.Goal,
	budgets []models.Budget,
	asOf time.Time,
	cfg Config,
) Snapshot {
	var balance float64
	for _, w := range wallets {
		balance += w.Balance
	}

	return Snapshot{
		Transactions:   txs,
		Wallets:        wallets,
		Goals:          goals,
		BudgetStatuses: Reconcile(budgets, txs),
		Monthly:        Aggregate(txs, asOf.Month(), asOf.Year()),
		Totals:         Totals(txs),
		CategoryTotals: CategoryTotals(txs, categories),
		Salary:         DetectSalary(txs, asOf, cfg),
		Trend:          Trend(txs, asOf),
		TotalBalance:   balance,
		AsOf:           asOf,
	}
}

// HealthScore computes the composite score for this snapshot.
func (s Snapshot) HealthScore() int {
	return HealthScore(s.Totals.SavingsRate, s.Goals, len(s.Wallets), s.BudgetStatuses, s.Salary)
}
