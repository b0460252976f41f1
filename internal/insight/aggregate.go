package insight

import (
	"math"
	"sort"
	"time"

	"kwarta/internal/models"
)

// PeriodAggregate is the income/expense rollup for a time window.
type PeriodAggregate struct {
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Savings     float64 `json:"savings"`
	SavingsRate float64 `json:"savings_rate"`
}

// CategoryTotal is the expense total for one category.
type CategoryTotal struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// MonthlyTrend compares the current calendar month's expenses with the
// previous month's.
type MonthlyTrend struct {
	CurrentMonth  float64 `json:"current_month"`
	PreviousMonth float64 `json:"previous_month"`
	ChangePercent float64 `json:"change_percent"`
}

// UnknownCategory is the grouping label for transactions whose category
// reference is missing or dangling.
const UnknownCategory = "Others"

// Aggregate computes the income/expense rollup for one calendar month.
// Expense amounts are normalized with the absolute value, so mixed sign
// conventions in the input do not skew the result. Transactions with a
// zero date are excluded.
func Aggregate(txs []models.Transaction, month time.Month, year int) PeriodAggregate {
	var income, expenses float64
	for _, t := range txs {
		if t.Date.IsZero() || t.Date.Month() != month || t.Date.Year() != year {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			income += t.Amount
		case models.TransactionTypeExpense:
			expenses += t.Amount
		}
	}
	return newAggregate(income, math.Abs(expenses))
}

// Totals computes the all-time rollup over the full transaction set.
// Like Aggregate, the expense sum is normalized once at the end, so a
// positive refund entry among negative expenses nets out instead of
// inflating the total.
func Totals(txs []models.Transaction) PeriodAggregate {
	var income, expenses float64
	for _, t := range txs {
		switch t.Type {
		case models.TransactionTypeIncome:
			income += t.Amount
		case models.TransactionTypeExpense:
			expenses += t.Amount
		}
	}
	return newAggregate(income, math.Abs(expenses))
}

func newAggregate(income, expenses float64) PeriodAggregate {
	agg := PeriodAggregate{
		Income:   income,
		Expenses: expenses,
		Savings:  income - expenses,
	}
	if income > 0 {
		agg.SavingsRate = (income - expenses) / income * 100
	}
	return agg
}

// CategoryTotals groups expense transactions by category name, sorted by
// amount descending. Dangling category references fall under
// UnknownCategory.
func CategoryTotals(txs []models.Transaction, categories []models.Category) []CategoryTotal {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	byName := make(map[string]*CategoryTotal)
	for _, t := range txs {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		name := UnknownCategory
		if t.CategoryID != nil {
			if n, ok := names[*t.CategoryID]; ok {
				name = n
			}
		}
		ct, ok := byName[name]
		if !ok {
			ct = &CategoryTotal{Name: name}
			byName[name] = ct
		}
		ct.Amount += math.Abs(t.Amount)
		ct.Count++
	}

	totals := make([]CategoryTotal, 0, len(byName))
	for _, ct := range byName {
		totals = append(totals, *ct)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}
		return totals[i].Name < totals[j].Name
	})
	return totals
}

// Trend compares expenses in asOf's calendar month against the month
// before it. ChangePercent is 0 when the previous month had no expenses.
func Trend(txs []models.Transaction, asOf time.Time) MonthlyTrend {
	current := Aggregate(txs, asOf.Month(), asOf.Year()).Expenses
	// Anchor on the first of the month so date normalization cannot skip
	// short months (e.g. Mar 31 minus one month).
	prev := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location()).AddDate(0, -1, 0)
	previous := Aggregate(txs, prev.Month(), prev.Year()).Expenses

	trend := MonthlyTrend{CurrentMonth: current, PreviousMonth: previous}
	if previous > 0 {
		trend.ChangePercent = (current - previous) / previous * 100
	}
	return trend
}
