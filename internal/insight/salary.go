package insight

import (
	"strings"
	"time"

	"kwarta/internal/models"
)

// MonthAmount is one month of matched salary income.
type MonthAmount struct {
	Month  string  `json:"month"` // formatted as "Jan 2006"
	Amount float64 `json:"amount"`
}

// SalaryProfile summarizes the subset of income believed to be recurring
// wages.
type SalaryProfile struct {
	MonthlyAverage     float64       `json:"monthly_average"`
	MonthsObserved     int           `json:"months_observed"`
	GrowthRatePercent  float64       `json:"growth_rate_percent"`
	CurrentMonthAmount float64       `json:"current_month_amount"`
	Total              float64       `json:"total"`
	Last6Months        []MonthAmount `json:"last_6_months"`
}

const monthKeyLayout = "2006-01"

// IsSalary reports whether an income transaction looks like salary: its
// description or category name contains a salary keyword, or its amount
// clears the configured floor. Non-income transactions never match.
func IsSalary(t models.Transaction, cfg Config) bool {
	if t.Type != models.TransactionTypeIncome {
		return false
	}
	desc := strings.ToLower(t.Description)
	var catName string
	if t.Category != nil {
		catName = strings.ToLower(t.Category.Name)
	}
	for _, kw := range cfg.SalaryKeywords {
		if strings.Contains(desc, kw) || (catName != "" && strings.Contains(catName, kw)) {
			return true
		}
	}
	return t.Amount >= cfg.SalaryFloor
}

// DetectSalary builds a salary profile from the income transactions that
// match IsSalary, grouped by calendar month. The growth rate compares the
// first and last non-zero months in the trailing six-month window ending
// at asOf; it is 0 when fewer than two non-zero months exist.
func DetectSalary(txs []models.Transaction, asOf time.Time, cfg Config) SalaryProfile {
	byMonth := make(map[string]float64)
	var total float64
	for _, t := range txs {
		if t.Date.IsZero() || !IsSalary(t, cfg) {
			continue
		}
		key := t.Date.Format(monthKeyLayout)
		byMonth[key] += t.Amount
		total += t.Amount
	}

	profile := SalaryProfile{
		MonthsObserved:     len(byMonth),
		Total:              total,
		CurrentMonthAmount: byMonth[asOf.Format(monthKeyLayout)],
	}
	if len(byMonth) > 0 {
		profile.MonthlyAverage = total / float64(len(byMonth))
	}

	anchor := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	for i := 5; i >= 0; i-- {
		m := anchor.AddDate(0, -i, 0)
		profile.Last6Months = append(profile.Last6Months, MonthAmount{
			Month:  m.Format("Jan 2006"),
			Amount: byMonth[m.Format(monthKeyLayout)],
		})
	}

	var nonZero []float64
	for _, ma := range profile.Last6Months {
		if ma.Amount > 0 {
			nonZero = append(nonZero, ma.Amount)
		}
	}
	if len(nonZero) >= 2 && nonZero[0] > 0 {
		first, last := nonZero[0], nonZero[len(nonZero)-1]
		profile.GrowthRatePercent = (last - first) / first * 100
	}

	return profile
}
