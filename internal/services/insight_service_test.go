package services

import (
	"testing"
	"time"

	"kwarta/internal/insight"
	"kwarta/internal/models"
	"kwarta/internal/testutil"
)

func TestGetReport(t *testing.T) {
	t.Run("assembles_full_report", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInsightService(db, insight.DefaultConfig())
		user := testutil.CreateTestUser(t, db)
		wallet := testutil.CreateTestWalletWithBalance(t, db, user.ID, 20000)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestBudget(t, db, user.ID, cat.ID)
		testutil.CreateTestGoal(t, db, user.ID)

		income := testutil.CreateTestTransaction(t, db, user.ID, wallet.ID, models.TransactionTypeIncome, 50000)
		if err := db.Model(income).Update("description", "Monthly salary").Error; err != nil {
			t.Fatalf("failed to label income: %v", err)
		}
		expense := testutil.CreateTestTransaction(t, db, user.ID, wallet.ID, models.TransactionTypeExpense, -30000)
		if err := db.Model(expense).Update("category_id", cat.ID).Error; err != nil {
			t.Fatalf("failed to set category: %v", err)
		}

		report, err := svc.GetReport(user.ID, time.Now())
		testutil.AssertNoError(t, err)

		if report.Monthly.Income != 50000 {
			t.Errorf("expected monthly income 50000, got %v", report.Monthly.Income)
		}
		if report.Monthly.Expenses != 30000 {
			t.Errorf("expected monthly expenses 30000, got %v", report.Monthly.Expenses)
		}
		if report.Monthly.SavingsRate != 40 {
			t.Errorf("expected savings rate 40, got %v", report.Monthly.SavingsRate)
		}
		if report.TotalBalance != 20000 {
			t.Errorf("expected total balance 20000, got %v", report.TotalBalance)
		}
		if len(report.BudgetStatuses) != 1 {
			t.Errorf("expected 1 budget status, got %d", len(report.BudgetStatuses))
		}
		if len(report.Goals) != 1 {
			t.Errorf("expected 1 goal progress, got %d", len(report.Goals))
		}
		if report.HealthScore < 0 || report.HealthScore > 100 {
			t.Errorf("health score out of range: %d", report.HealthScore)
		}
		if len(report.Suggestions) == 0 {
			t.Error("expected at least one suggestion")
		}
		if len(report.Insights) == 0 {
			t.Error("expected at least one insight")
		}
		// Salary keyword match on the income description.
		if report.Salary.MonthsObserved != 1 {
			t.Errorf("expected 1 salary month observed, got %d", report.Salary.MonthsObserved)
		}
	})

	t.Run("empty_ledger", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInsightService(db, insight.DefaultConfig())
		user := testutil.CreateTestUser(t, db)

		report, err := svc.GetReport(user.ID, time.Now())
		testutil.AssertNoError(t, err)

		if report.Monthly.Income != 0 || report.Monthly.Expenses != 0 {
			t.Errorf("expected zero aggregates, got %+v", report.Monthly)
		}
		if len(report.Suggestions) != 1 {
			t.Fatalf("expected single get-started suggestion, got %d", len(report.Suggestions))
		}
	})

	t.Run("matches_salary_by_category_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInsightService(db, insight.DefaultConfig())
		user := testutil.CreateTestUser(t, db)
		wallet := testutil.CreateTestWallet(t, db, user.ID)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeIncome)
		if err := db.Model(cat).Update("name", "Salary").Error; err != nil {
			t.Fatalf("failed to rename category: %v", err)
		}

		// Below the salary floor and with a neutral description, so only
		// the category name can classify this as salary.
		income := testutil.CreateTestTransaction(t, db, user.ID, wallet.ID, models.TransactionTypeIncome, 5000)
		if err := db.Model(income).Updates(map[string]any{
			"description": "August funds",
			"category_id": cat.ID,
		}).Error; err != nil {
			t.Fatalf("failed to update income: %v", err)
		}

		report, err := svc.GetReport(user.ID, time.Now())
		testutil.AssertNoError(t, err)

		if report.Salary.MonthsObserved != 1 {
			t.Errorf("expected 1 salary month via category name, got %d", report.Salary.MonthsObserved)
		}
		if report.Salary.MonthlyAverage != 5000 {
			t.Errorf("expected monthly average 5000, got %v", report.Salary.MonthlyAverage)
		}
	})

	t.Run("excludes_other_users_data", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInsightService(db, insight.DefaultConfig())
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		wallet2 := testutil.CreateTestWalletWithBalance(t, db, user2.ID, 99999)
		testutil.CreateTestTransaction(t, db, user2.ID, wallet2.ID, models.TransactionTypeIncome, 12345)

		report, err := svc.GetReport(user1.ID, time.Now())
		testutil.AssertNoError(t, err)

		if report.TotalBalance != 0 {
			t.Errorf("expected zero balance for other user, got %v", report.TotalBalance)
		}
		if report.Totals.Income != 0 {
			t.Errorf("expected zero income for other user, got %v", report.Totals.Income)
		}
	})
}

func TestGetSuggestions(t *testing.T) {
	t.Run("counts_completed_goals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInsightService(db, insight.DefaultConfig())
		user := testutil.CreateTestUser(t, db)
		wallet := testutil.CreateTestWallet(t, db, user.ID)
		testutil.CreateTestTransaction(t, db, user.ID, wallet.ID, models.TransactionTypeExpense, -2000)

		// A finished emergency fund must still suppress both the
		// first-goal nudge and the emergency-fund suggestion.
		goal := testutil.CreateTestGoal(t, db, user.ID)
		if err := db.Model(goal).Updates(map[string]any{
			"name":           "Emergency Fund",
			"status":         models.GoalStatusCompleted,
			"current_amount": goal.TargetAmount,
		}).Error; err != nil {
			t.Fatalf("failed to complete goal: %v", err)
		}

		suggestions, err := svc.GetSuggestions(user.ID, time.Now())
		testutil.AssertNoError(t, err)

		for _, sg := range suggestions {
			if sg.Title == "Set Your First Financial Goal" {
				t.Error("first-goal nudge emitted despite an existing goal")
			}
			if sg.Title == "Build Emergency Fund" {
				t.Error("emergency fund suggested despite a completed emergency fund goal")
			}
		}
	})
}

func TestGetHealthScore(t *testing.T) {
	t.Run("recomputed_per_call", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInsightService(db, insight.DefaultConfig())
		user := testutil.CreateTestUser(t, db)
		wallet := testutil.CreateTestWallet(t, db, user.ID)

		before, err := svc.GetHealthScore(user.ID, time.Now())
		testutil.AssertNoError(t, err)

		// High savings rate should move the score up on the next call.
		testutil.CreateTestTransaction(t, db, user.ID, wallet.ID, models.TransactionTypeIncome, 50000)
		testutil.CreateTestTransaction(t, db, user.ID, wallet.ID, models.TransactionTypeExpense, -10000)

		after, err := svc.GetHealthScore(user.ID, time.Now())
		testutil.AssertNoError(t, err)

		if after <= before {
			t.Errorf("expected score to increase, got %d -> %d", before, after)
		}
	})
}
