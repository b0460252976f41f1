package insight

import (
	"testing"
	"time"

	"kwarta/internal/models"
)

func TestIsSalary(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("keyword_in_description", func(t *testing.T) {
		row := tx(models.TransactionTypeIncome, 500, "2024-06-01")
		row.Description = "Monthly Salary - June"
		if !IsSalary(row, cfg) {
			t.Error("expected keyword match on description")
		}
	})

	t.Run("keyword_in_category_name", func(t *testing.T) {
		row := tx(models.TransactionTypeIncome, 500, "2024-06-01")
		row.Description = "june deposit"
		row.Category = &models.Category{Name: "Payroll"}
		if !IsSalary(row, cfg) {
			t.Error("expected keyword match on category name")
		}
	})

	t.Run("magnitude_floor", func(t *testing.T) {
		row := tx(models.TransactionTypeIncome, 12000, "2024-06-01")
		row.Description = "freelance project"
		if !IsSalary(row, cfg) {
			t.Error("expected amount >= floor to classify as salary")
		}

		row.Amount = 9999
		if IsSalary(row, cfg) {
			t.Error("expected small non-keyword income to be excluded")
		}
	})

	t.Run("expenses_never_match", func(t *testing.T) {
		row := tx(models.TransactionTypeExpense, -50000, "2024-06-01")
		row.Description = "salary advance repayment"
		if IsSalary(row, cfg) {
			t.Error("expected expense to never classify as salary")
		}
	})
}

func TestDetectSalary(t *testing.T) {
	cfg := DefaultConfig()
	asOf, _ := time.Parse("2006-01-02", "2024-06-15")

	salaryTx := func(amount float64, date string) models.Transaction {
		row := tx(models.TransactionTypeIncome, amount, date)
		row.Description = "salary"
		return row
	}

	t.Run("average_over_distinct_months", func(t *testing.T) {
		txs := []models.Transaction{
			salaryTx(30000, "2024-04-15"),
			salaryTx(15000, "2024-05-15"),
			salaryTx(15000, "2024-05-30"), // same month, two payouts
		}

		profile := DetectSalary(txs, asOf, cfg)
		if profile.MonthsObserved != 2 {
			t.Fatalf("expected 2 months observed, got %d", profile.MonthsObserved)
		}
		if profile.MonthlyAverage != 30000 {
			t.Errorf("expected monthly average 30000, got %v", profile.MonthlyAverage)
		}
		if profile.Total != 60000 {
			t.Errorf("expected total 60000, got %v", profile.Total)
		}
	})

	t.Run("growth_rate_first_to_last_nonzero", func(t *testing.T) {
		txs := []models.Transaction{
			salaryTx(20000, "2024-02-15"),
			salaryTx(25000, "2024-06-15"),
		}

		profile := DetectSalary(txs, asOf, cfg)
		if profile.GrowthRatePercent != 25 {
			t.Errorf("expected growth rate 25, got %v", profile.GrowthRatePercent)
		}
	})

	t.Run("single_month_has_zero_growth", func(t *testing.T) {
		txs := []models.Transaction{salaryTx(20000, "2024-06-01")}
		profile := DetectSalary(txs, asOf, cfg)
		if profile.GrowthRatePercent != 0 {
			t.Errorf("expected growth 0 with one observed month, got %v", profile.GrowthRatePercent)
		}
	})

	t.Run("current_month_amount", func(t *testing.T) {
		txs := []models.Transaction{
			salaryTx(20000, "2024-05-15"),
			salaryTx(22000, "2024-06-14"),
		}
		profile := DetectSalary(txs, asOf, cfg)
		if profile.CurrentMonthAmount != 22000 {
			t.Errorf("expected current month 22000, got %v", profile.CurrentMonthAmount)
		}
	})

	t.Run("six_month_window_shape", func(t *testing.T) {
		profile := DetectSalary(nil, asOf, cfg)
		if len(profile.Last6Months) != 6 {
			t.Fatalf("expected 6 window entries, got %d", len(profile.Last6Months))
		}
		if profile.Last6Months[0].Month != "Jan 2024" {
			t.Errorf("expected window to start at Jan 2024, got %s", profile.Last6Months[0].Month)
		}
		if profile.Last6Months[5].Month != "Jun 2024" {
			t.Errorf("expected window to end at Jun 2024, got %s", profile.Last6Months[5].Month)
		}
	})

	t.Run("empty_input_is_zero_profile", func(t *testing.T) {
		profile := DetectSalary(nil, asOf, cfg)
		if profile.MonthlyAverage != 0 || profile.MonthsObserved != 0 || profile.GrowthRatePercent != 0 {
			t.Errorf("expected zero profile, got %+v", profile)
		}
	})

	t.Run("growth_ignores_months_outside_window", func(t *testing.T) {
		txs := []models.Transaction{
			salaryTx(5000, "2023-06-15"), // a year back, outside the window
			salaryTx(20000, "2024-05-15"),
			salaryTx(30000, "2024-06-15"),
		}
		profile := DetectSalary(txs, asOf, cfg)
		if profile.GrowthRatePercent != 50 {
			t.Errorf("expected growth 50 within window, got %v", profile.GrowthRatePercent)
		}
	})
}
