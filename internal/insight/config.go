// Package insight implements the derived-metrics engine: time-windowed
// aggregation of transactions, salary detection, budget reconciliation,
// goal progress, financial health scoring, and rule-based suggestion and
// insight generation.
//
// Everything in this package is a pure function of its inputs. No state is
// held between calls and no I/O is performed; callers fetch the underlying
// collections and recompute derived values whenever the inputs change.
package insight

// Config holds the tunable thresholds used by salary detection and the
// suggestion rules. The defaults reflect peso-denominated amounts; callers
// in other currency contexts should override them.
type Config struct {
	// SalaryFloor is the minimum income amount that classifies a
	// transaction as salary even without a keyword match.
	SalaryFloor float64

	// SavingsTargetPercent is the share of income the user aims to save.
	SavingsTargetPercent float64

	// CategoryShareWarn and CategoryShareAlert are the expense-share
	// percentages at which a single category is flagged, and escalated.
	CategoryShareWarn  float64
	CategoryShareAlert float64

	// CategoryAmountFloor is the minimum absolute category total required
	// before a category-concentration suggestion is emitted.
	CategoryAmountFloor float64

	// InvestRateMin and InvestBalanceFloor gate the investment-opportunity
	// suggestion on savings rate and total wallet balance.
	InvestRateMin      float64
	InvestBalanceFloor float64

	// SalaryKeywords is the vocabulary matched (case-insensitive substring)
	// against transaction descriptions and category names.
	SalaryKeywords []string

	// CurrencySymbol prefixes monetary amounts in generated text.
	CurrencySymbol string
}

// DefaultSalaryKeywords is the stock vocabulary for salary classification.
var DefaultSalaryKeywords = []string{
	"salary", "wage", "payroll", "income", "pay", "compensation",
	"earnings", "monthly pay", "bi-weekly pay", "weekly pay",
	"job", "work", "employment",
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		SalaryFloor:          10000,
		SavingsTargetPercent: 20,
		CategoryShareWarn:    30,
		CategoryShareAlert:   40,
		CategoryAmountFloor:  1000,
		InvestRateMin:        25,
		InvestBalanceFloor:   50000,
		SalaryKeywords:       DefaultSalaryKeywords,
		CurrencySymbol:       "₱",
	}
}
