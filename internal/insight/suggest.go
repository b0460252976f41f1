package insight

import (
	"fmt"
	"math"
	"strings"
)

// Priority ranks how strongly a suggestion should be surfaced.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Effort estimates how much work acting on a suggestion takes.
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// Suggestion is a ranked, human-readable recommendation. Icon is a
// symbolic tag; clients resolve it to a renderable asset.
type Suggestion struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Priority         Priority `json:"priority"`
	Effort           Effort   `json:"effort"`
	Category         string   `json:"category"`
	PotentialSavings float64  `json:"potential_savings,omitempty"`
	Icon             string   `json:"icon"`
	Timeframe        string   `json:"timeframe,omitempty"`
	Impact           int      `json:"impact,omitempty"`
	Actions          []string `json:"actions,omitempty"`
}

const maxSuggestions = 6

// Suggestions evaluates the rule set against a snapshot and returns at
// most six suggestions in rule order. An empty ledger short-circuits to a
// single getting-started item. The function is deterministic: identical
// snapshots yield identical output.
func Suggestions(s Snapshot, cfg Config) []Suggestion {
	var out []Suggestion
	nextID := 1
	add := func(sg Suggestion) {
		sg.ID = nextID
		nextID++
		out = append(out, sg)
	}

	if len(s.Transactions) == 0 {
		add(Suggestion{
			Title: "Start Your Financial Journey",
			Description: "Begin by adding your first transaction to unlock " +
				"personalized insights and recommendations.",
			Priority:  PriorityHigh,
			Effort:    EffortLow,
			Category:  "Getting Started",
			Icon:      "plus",
			Timeframe: "Now",
			Impact:    90,
			Actions:   []string{"Add Transaction", "Import Data"},
		})
		return out
	}

	savingsRate := s.Totals.SavingsRate
	actualSavings := s.Totals.Income - s.Totals.Expenses

	// Salary-based savings gap.
	if s.Salary.MonthlyAverage > 0 {
		target := s.Salary.MonthlyAverage * cfg.SavingsTargetPercent / 100
		if actualSavings < target {
			gap := math.Round(target - actualSavings)
			priority := PriorityMedium
			if savingsRate < 10 {
				priority = PriorityHigh
			}
			add(Suggestion{
				Title: "Optimize Salary-Based Savings",
				Description: fmt.Sprintf(
					"Based on your average monthly salary of %s, you should save %s monthly. You need %s more to reach your %.0f%% target.",
					money(s.Salary.MonthlyAverage, cfg), money(target, cfg), money(gap, cfg), cfg.SavingsTargetPercent),
				Priority:         priority,
				Effort:           EffortMedium,
				Category:         "Salary Optimization",
				PotentialSavings: gap,
				Icon:             "calculator",
				Timeframe:        "Monthly",
				Impact:           90,
				Actions:          []string{"Create Salary-Based Plan", "Learn More"},
			})
		}
	}

	// General savings-rate gap, driven by total income. Evaluated
	// independently of the salary rule.
	if s.Totals.Income > 0 {
		target := s.Totals.Income * cfg.SavingsTargetPercent / 100
		if actualSavings < target {
			gap := math.Round(target - actualSavings)
			priority := PriorityMedium
			if savingsRate < 10 {
				priority = PriorityHigh
			}
			add(Suggestion{
				Title: "Boost Your Savings Rate",
				Description: fmt.Sprintf(
					"Your current savings rate is %s. Save an additional %s monthly to reach your %.0f%% target.",
					percent(savingsRate), money(gap, cfg), cfg.SavingsTargetPercent),
				Priority:         priority,
				Effort:           EffortMedium,
				Category:         "Savings",
				PotentialSavings: gap,
				Icon:             "piggy-bank",
				Timeframe:        "Monthly",
				Impact:           85,
				Actions:          []string{"Create Savings Plan", "Learn More"},
			})
		}
	}

	// Concentration in the top expense category.
	if len(s.CategoryTotals) > 0 && s.Totals.Expenses > 0 {
		top := s.CategoryTotals[0]
		share := top.Amount / s.Totals.Expenses * 100
		if share > cfg.CategoryShareWarn && top.Amount > cfg.CategoryAmountFloor {
			saveable := math.Round(top.Amount * 0.15)
			priority := PriorityMedium
			impact := 65
			if share > cfg.CategoryShareAlert {
				priority = PriorityHigh
				impact = 80
			}
			effort := EffortMedium
			icon := "credit-card"
			if strings.Contains(strings.ToLower(top.Name), "food") {
				effort = EffortLow
				icon = "dollar-sign"
			}
			add(Suggestion{
				Title: fmt.Sprintf("Optimize %s Spending", top.Name),
				Description: fmt.Sprintf(
					"%s accounts for %s of your expenses (%s). Reduce by 15%% to save %s monthly.",
					top.Name, percent(share), money(top.Amount, cfg), money(saveable, cfg)),
				Priority:         priority,
				Effort:           effort,
				Category:         top.Name,
				PotentialSavings: saveable,
				Icon:             icon,
				Timeframe:        "Monthly",
				Impact:           impact,
				Actions:          []string{"Set Category Budget", "View Details"},
			})
		}
	}

	if len(s.Goals) == 0 {
		add(Suggestion{
			Title: "Set Your First Financial Goal",
			Description: "Goals provide direction and motivation. Start with an " +
				"emergency fund or a specific savings target to track your progress.",
			Priority:  PriorityMedium,
			Effort:    EffortLow,
			Category:  "Planning",
			Icon:      "target",
			Timeframe: "Today",
			Impact:    75,
			Actions:   []string{"Create Goal", "See Templates"},
		})
	}

	if !hasEmergencyFund(s) && s.Totals.Expenses > 0 {
		fund := math.Round(s.Totals.Expenses * 3)
		monthly := math.Round(fund / 12)
		add(Suggestion{
			Title: "Build Emergency Fund",
			Description: fmt.Sprintf(
				"Create a safety net of %s (3 months expenses). Start with %s monthly.",
				money(fund, cfg), money(monthly, cfg)),
			Priority:         PriorityHigh,
			Effort:           EffortMedium,
			Category:         "Emergency Planning",
			PotentialSavings: monthly,
			Icon:             "shield",
			Timeframe:        "12 months",
			Impact:           90,
			Actions:          []string{"Start Emergency Fund", "Learn More"},
		})
	}

	if savingsRate > cfg.InvestRateMin && s.TotalBalance > cfg.InvestBalanceFloor {
		add(Suggestion{
			Title: "Investment Opportunity",
			Description: fmt.Sprintf(
				"With %s savings rate and %s balance, consider investing for long-term growth.",
				percent(savingsRate), money(s.TotalBalance, cfg)),
			Priority:  PriorityMedium,
			Effort:    EffortMedium,
			Category:  "Investments",
			Icon:      "trending-up",
			Timeframe: "Next month",
			Impact:    80,
			Actions:   []string{"Explore Investments", "Risk Assessment"},
		})
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

func hasEmergencyFund(s Snapshot) bool {
	for _, g := range s.Goals {
		if strings.Contains(strings.ToLower(g.Name), "emergency") {
			return true
		}
	}
	return false
}
