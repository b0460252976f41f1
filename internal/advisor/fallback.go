package advisor

import (
	"fmt"
	"strings"

	"kwarta/internal/insight"
)

// Fallback composes deterministic advice from the derived snapshot. It is
// returned whenever the completion API is not configured or fails, so the
// advice endpoint always answers.
func Fallback(s insight.Snapshot, cfg insight.Config) string {
	var b strings.Builder

	b.WriteString("Here's a summary of your finances:\n\n")
	fmt.Fprintf(&b, "This month you earned %s%.2f and spent %s%.2f",
		cfg.CurrencySymbol, s.Monthly.Income, cfg.CurrencySymbol, s.Monthly.Expenses)
	if s.Monthly.Income > 0 {
		fmt.Fprintf(&b, ", a savings rate of %.1f%%", s.Monthly.SavingsRate)
	}
	b.WriteString(".\n")

	if len(s.CategoryTotals) > 0 {
		top := s.CategoryTotals[0]
		fmt.Fprintf(&b, "Your biggest expense category is %s at %s%.2f.\n",
			top.Name, cfg.CurrencySymbol, top.Amount)
	}

	switch {
	case s.Totals.SavingsRate >= cfg.SavingsTargetPercent:
		fmt.Fprintf(&b, "You're saving above the %.0f%% target. Consider putting the surplus toward your goals or an investment.\n",
			cfg.SavingsTargetPercent)
	case s.Totals.Income > 0:
		fmt.Fprintf(&b, "Your overall savings rate is %.1f%%, below the %.0f%% target. Reviewing your top spending categories is the quickest way to close the gap.\n",
			s.Totals.SavingsRate, cfg.SavingsTargetPercent)
	default:
		b.WriteString("Start by recording your income and expenses so I can give you tailored advice.\n")
	}

	if len(s.Goals) > 0 {
		fmt.Fprintf(&b, "You have %d active goal%s. Regular contributions, even small ones, keep them on track.\n",
			len(s.Goals), plural(len(s.Goals)))
	} else {
		b.WriteString("You have no savings goals yet. Setting one gives your savings a clear purpose.\n")
	}

	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
