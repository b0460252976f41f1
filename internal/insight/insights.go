package insight

import (
	"fmt"
	"math"

	"kwarta/internal/models"
)

// Impact tags an insight's weight for filtering and presentation.
type Impact string

const (
	ImpactInfo     Impact = "info"
	ImpactPositive Impact = "positive"
	ImpactMedium   Impact = "medium"
	ImpactHigh     Impact = "high"
)

// Insight is an observation about the user's finances, distinct from a
// Suggestion in that it describes what is happening rather than what to
// do. Icon and Color are symbolic tags for the presentation layer.
type Insight struct {
	ID             int      `json:"id"`
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Impact         Impact   `json:"impact"`
	Category       string   `json:"category"`
	Icon           string   `json:"icon"`
	Color          string   `json:"color"`
	Actions        []string `json:"actions,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// trendNoiseFloor is the month-over-month change (percent) below which
// spending movement is not worth reporting.
const trendNoiseFloor = 15

// minExpensesForTrend avoids trend insights on ledgers too small for a
// month-over-month comparison to mean anything.
const minExpensesForTrend = 10

// Insights evaluates the observation rules against a snapshot. An empty
// ledger short-circuits to a single welcome insight.
func Insights(s Snapshot, cfg Config) []Insight {
	var out []Insight
	nextID := 1
	add := func(in Insight) {
		in.ID = nextID
		nextID++
		out = append(out, in)
	}

	if len(s.Transactions) == 0 {
		add(Insight{
			Type:  "getting_started",
			Title: "Welcome to Insights",
			Description: "Start by adding transactions to unlock personalized " +
				"financial insights and smart recommendations.",
			Impact:   ImpactInfo,
			Category: "Getting Started",
			Icon:     "lightbulb",
			Color:    "blue",
			Actions:  []string{"Add Transaction", "Import Data"},
		})
		return out
	}

	if s.Salary.MonthlyAverage > 0 {
		trend := "Your salary has remained stable."
		if s.Salary.GrowthRatePercent > 0 {
			trend = fmt.Sprintf("Your salary has grown by %s over time.", percent(s.Salary.GrowthRatePercent))
		} else if s.Salary.GrowthRatePercent < 0 {
			trend = fmt.Sprintf("Your salary has decreased by %s recently.", percent(math.Abs(s.Salary.GrowthRatePercent)))
		}
		add(Insight{
			Type:  "salary_insight",
			Title: "Salary Analysis",
			Description: fmt.Sprintf(
				"Your average monthly salary is %s based on %d months of data. %s",
				money(s.Salary.MonthlyAverage, cfg), s.Salary.MonthsObserved, trend),
			Impact:   ImpactInfo,
			Category: "Salary",
			Icon:     "calculator",
			Color:    "green",
			Actions:  []string{"View Salary Trends", "Optimize Savings"},
			Recommendation: fmt.Sprintf(
				"Based on your salary, aim to save %s monthly (%.0f%% rule).",
				money(s.Salary.MonthlyAverage*cfg.SavingsTargetPercent/100, cfg), cfg.SavingsTargetPercent),
		})
	}

	savingsRate := s.Totals.SavingsRate
	if savingsRate < cfg.SavingsTargetPercent && s.Totals.Income > 0 {
		shortfall := s.Totals.Income*cfg.SavingsTargetPercent/100 - (s.Totals.Income - s.Totals.Expenses)
		add(Insight{
			Type:  "spending_alert",
			Title: "Savings Rate Below Target",
			Description: fmt.Sprintf(
				"Your current savings rate is %s. Financial experts recommend saving at least %.0f%% of your income for long-term financial health.",
				percent(savingsRate), cfg.SavingsTargetPercent),
			Impact:   ImpactHigh,
			Category: "Savings",
			Icon:     "alert-triangle",
			Color:    "red",
			Actions:  []string{"Create Savings Plan", "View Tips"},
			Recommendation: fmt.Sprintf(
				"Try to save an additional %s monthly to reach the %.0f%% target.",
				money(shortfall, cfg), cfg.SavingsTargetPercent),
		})
	}

	if len(s.CategoryTotals) > 0 && s.Totals.Expenses > 0 {
		top := s.CategoryTotals[0]
		share := top.Amount / s.Totals.Expenses * 100
		if share > cfg.CategoryShareAlert {
			add(Insight{
				Type:  "spending_alert",
				Title: fmt.Sprintf("High %s Spending", top.Name),
				Description: fmt.Sprintf(
					"%s makes up %s of your total expenses (%s). This might be an area for optimization.",
					top.Name, percent(share), money(top.Amount, cfg)),
				Impact:   ImpactMedium,
				Category: top.Name,
				Icon:     "alert-triangle",
				Color:    "yellow",
				Actions:  []string{"Set Budget", "View Details"},
				Recommendation: fmt.Sprintf(
					"Consider reducing %s spending by 10-15%% to free up %s monthly.",
					top.Name, money(top.Amount*0.125, cfg)),
			})
		}
	}

	if len(s.Goals) > 0 {
		onTrack := 0
		for _, g := range s.Goals {
			if g.TargetAmount > 0 && g.CurrentAmount/g.TargetAmount*100 >= 50 {
				onTrack++
			}
		}
		if onTrack > 0 {
			add(Insight{
				Type:  "goal_progress",
				Title: "Goals On Track",
				Description: fmt.Sprintf(
					"You're making excellent progress on %d of your financial goals. Keep up the momentum!",
					onTrack),
				Impact:         ImpactPositive,
				Category:       "Goals",
				Icon:           "check-circle",
				Color:          "green",
				Actions:        []string{"View Progress", "Adjust Timeline"},
				Recommendation: "Consider increasing contributions to accelerate your timeline or set new stretch goals.",
			})
		}
	}

	if len(s.BudgetStatuses) > 0 {
		exceeded := 0
		for _, b := range s.BudgetStatuses {
			if b.Percentage > 100 {
				exceeded++
			}
		}
		if exceeded > 0 {
			plural := ""
			if exceeded > 1 {
				plural = "s"
			}
			add(Insight{
				Type:  "budget_alert",
				Title: "Budget Alert",
				Description: fmt.Sprintf(
					"You've exceeded %d budget%s. Time to review and adjust your spending in these categories.",
					exceeded, plural),
				Impact:         ImpactHigh,
				Category:       "Budgeting",
				Icon:           "alert-triangle",
				Color:          "red",
				Actions:        []string{"View Budgets", "Adjust Limits"},
				Recommendation: "Review your spending patterns and consider increasing budget limits or reducing expenses in these categories.",
			})
		}
	}

	if savingsRate > cfg.InvestRateMin && s.TotalBalance > cfg.InvestBalanceFloor {
		add(Insight{
			Type:  "investment_opportunity",
			Title: "Investment Opportunity",
			Description: fmt.Sprintf(
				"With a %s savings rate and %s balance, you're in a great position to start investing for long-term growth.",
				percent(savingsRate), money(s.TotalBalance, cfg)),
			Impact:         ImpactPositive,
			Category:       "Investments",
			Icon:           "trending-up",
			Color:          "green",
			Actions:        []string{"Explore Options", "Risk Assessment"},
			Recommendation: "Consider investing 10-20% of your balance in diversified funds or index funds for long-term wealth building.",
		})
	}

	if expenseCount(s) > minExpensesForTrend && s.Trend.PreviousMonth > 0 {
		change := s.Trend.ChangePercent
		if math.Abs(change) > trendNoiseFloor {
			direction, comparative := "Increased", "higher"
			impact, color, icon := ImpactMedium, "yellow", "trending-up"
			recommendation := "Review recent transactions to identify any unusual expenses or spending patterns."
			if change < 0 {
				direction, comparative = "Decreased", "lower"
				impact, color, icon = ImpactPositive, "green", "trending-down"
				recommendation = "Great job on reducing expenses! Consider allocating the savings to your goals."
			}
			add(Insight{
				Type:  "spending_trend",
				Title: fmt.Sprintf("Spending %s", direction),
				Description: fmt.Sprintf(
					"Your spending this month is %s %s than last month (%s difference).",
					percent(math.Abs(change)), comparative,
					money(math.Abs(s.Trend.CurrentMonth-s.Trend.PreviousMonth), cfg)),
				Impact:         impact,
				Category:       "Trends",
				Icon:           icon,
				Color:          color,
				Actions:        []string{"Compare Details", "Set Alert"},
				Recommendation: recommendation,
			})
		}
	}

	return out
}

func expenseCount(s Snapshot) int {
	n := 0
	for _, t := range s.Transactions {
		if t.Type == models.TransactionTypeExpense {
			n++
		}
	}
	return n
}
