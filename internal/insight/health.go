package insight

import "kwarta/internal/models"

// HealthScore combines savings rate, goal progress, wallet diversity,
// budget adherence, and salary stability into a single score in [0, 100].
// The base score is 70; each signal nudges it up or down and the result is
// clamped. Empty goal or budget sets read as zero progress and zero
// adherence, so they take the low-band penalties (their ratios use a
// divisor of one to stay finite).
func HealthScore(
	savingsRate float64,
	goals []models.Goal,
	walletCount int,
	statuses []BudgetStatus,
	salary SalaryProfile,
) int {
	score := 70

	if savingsRate > 20 {
		score += 10
	} else if savingsRate < 10 {
		score -= 10
	}

	var goalProgress float64
	for _, g := range goals {
		if g.TargetAmount > 0 {
			goalProgress += g.CurrentAmount / g.TargetAmount * 100
		}
	}
	goalProgress /= float64(max(len(goals), 1))
	if goalProgress > 50 {
		score += 5
	} else if goalProgress < 20 {
		score -= 5
	}

	if walletCount >= 3 {
		score += 5
	}

	within := 0
	for _, s := range statuses {
		if s.Percentage <= 100 {
			within++
		}
	}
	adherence := float64(within) / float64(max(len(statuses), 1))
	if adherence > 0.8 {
		score += 10
	} else if adherence < 0.5 {
		score -= 10
	}

	if salary.MonthsObserved >= 3 {
		score += 5
	}
	if salary.GrowthRatePercent > 0 {
		score += 3
	}

	return min(100, max(0, score))
}
