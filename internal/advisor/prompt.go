package advisor

import (
	"fmt"
	"strings"

	"kwarta/internal/insight"
)

// systemPrompt frames the assistant for the completion API. The currency
// symbol is substituted so advice matches the user's locale.
const systemPromptTemplate = `You are a helpful financial advisor AI assistant for an expense tracking app.
The user tracks their money in %s.
Provide practical, actionable financial advice based on their spending patterns and goals.
Keep responses concise and helpful. Always format currency amounts with the %s symbol.`

// SystemPrompt returns the system message for a chat completion.
func SystemPrompt(currencySymbol string) string {
	return fmt.Sprintf(systemPromptTemplate, currencySymbol, currencySymbol)
}

// UserPrompt renders the user's question together with a compact summary of
// their derived financial picture.
func UserPrompt(question string, s insight.Snapshot, currencySymbol string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "User question: %s\n\nFinancial context:\n", question)
	fmt.Fprintf(&b, "- Monthly income: %s%.2f\n", currencySymbol, s.Monthly.Income)
	fmt.Fprintf(&b, "- Monthly expenses: %s%.2f\n", currencySymbol, s.Monthly.Expenses)
	fmt.Fprintf(&b, "- Savings rate: %.1f%%\n", s.Totals.SavingsRate)
	fmt.Fprintf(&b, "- Current balance: %s%.2f across %d wallets\n", currencySymbol, s.TotalBalance, len(s.Wallets))

	if len(s.CategoryTotals) > 0 {
		parts := make([]string, 0, 3)
		for i, ct := range s.CategoryTotals {
			if i == 3 {
				break
			}
			parts = append(parts, fmt.Sprintf("%s (%s%.2f)", ct.Name, currencySymbol, ct.Amount))
		}
		fmt.Fprintf(&b, "- Top spending categories: %s\n", strings.Join(parts, ", "))
	}

	if len(s.Goals) > 0 {
		parts := make([]string, 0, len(s.Goals))
		for _, g := range s.Goals {
			parts = append(parts, fmt.Sprintf("%s (%s%.2f/%s%.2f)",
				g.Name, currencySymbol, g.CurrentAmount, currencySymbol, g.TargetAmount))
		}
		fmt.Fprintf(&b, "- Financial goals: %s\n", strings.Join(parts, ", "))
	}

	if s.Salary.MonthsObserved > 0 {
		fmt.Fprintf(&b, "- Average monthly salary: %s%.2f over %d months\n",
			currencySymbol, s.Salary.MonthlyAverage, s.Salary.MonthsObserved)
	}

	b.WriteString("\nPlease provide helpful financial advice based on this context.")
	return b.String()
}
