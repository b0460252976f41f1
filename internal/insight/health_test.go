package insight

import (
	"testing"

	"kwarta/internal/models"
)

func TestHealthScore(t *testing.T) {
	goalAt := func(current, target float64) models.Goal {
		return models.Goal{CurrentAmount: current, TargetAmount: target}
	}

	t.Run("neutral_inputs_keep_base_band", func(t *testing.T) {
		// Rate in the 10-20 band, goal average in the 20-50 band, one
		// wallet, full budget adherence: 70 + 10 = 80.
		goals := []models.Goal{goalAt(30, 100)}
		statuses := []BudgetStatus{{Percentage: 40}}
		got := HealthScore(15, goals, 1, statuses, SalaryProfile{})
		if got != 80 {
			t.Errorf("expected 80, got %d", got)
		}
	})

	t.Run("all_signals_positive", func(t *testing.T) {
		goals := []models.Goal{goalAt(80, 100)}
		statuses := []BudgetStatus{{Percentage: 50}, {Percentage: 70}}
		salary := SalaryProfile{MonthsObserved: 4, GrowthRatePercent: 5}
		// 70 +10 (rate) +5 (goals) +5 (wallets) +10 (adherence) +5 +3 = 100 after clamp
		got := HealthScore(25, goals, 3, statuses, salary)
		if got != 100 {
			t.Errorf("expected clamped 100, got %d", got)
		}
	})

	t.Run("all_signals_negative", func(t *testing.T) {
		goals := []models.Goal{goalAt(5, 100)}
		statuses := []BudgetStatus{{Percentage: 150}, {Percentage: 120}}
		// 70 -10 (rate) -5 (goals) -10 (adherence) = 45
		got := HealthScore(5, goals, 1, statuses, SalaryProfile{})
		if got != 45 {
			t.Errorf("expected 45, got %d", got)
		}
	})

	t.Run("empty_collections_do_not_divide_by_zero", func(t *testing.T) {
		got := HealthScore(0, nil, 0, nil, SalaryProfile{})
		// 70 -10 (rate) -5 (goal avg 0) -10 (adherence 0) = 45
		if got != 45 {
			t.Errorf("expected 45, got %d", got)
		}
	})

	t.Run("bounded_for_any_input", func(t *testing.T) {
		rates := []float64{-500, 0, 5, 15, 25, 1000}
		walletCounts := []int{0, 1, 3, 10}
		salaries := []SalaryProfile{{}, {MonthsObserved: 12, GrowthRatePercent: 50}}
		goalSets := [][]models.Goal{nil, {goalAt(0, 0)}, {goalAt(200, 100)}}
		statusSets := [][]BudgetStatus{nil, {{Percentage: 0}}, {{Percentage: 500}}}

		for _, rate := range rates {
			for _, wc := range walletCounts {
				for _, sal := range salaries {
					for _, gs := range goalSets {
						for _, ss := range statusSets {
							got := HealthScore(rate, gs, wc, ss, sal)
							if got < 0 || got > 100 {
								t.Fatalf("score %d out of bounds for rate=%v wallets=%d", got, rate, wc)
							}
						}
					}
				}
			}
		}
	})

	t.Run("salary_stability_bonus", func(t *testing.T) {
		without := HealthScore(15, nil, 1, []BudgetStatus{{Percentage: 10}}, SalaryProfile{})
		with := HealthScore(15, nil, 1, []BudgetStatus{{Percentage: 10}}, SalaryProfile{MonthsObserved: 3, GrowthRatePercent: 1})
		if with-without != 8 {
			t.Errorf("expected +8 from stability and growth, got %d", with-without)
		}
	})
}
