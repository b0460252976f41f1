package services

import (
	"testing"
	"time"

	"kwarta/internal/insight"
	"kwarta/internal/models"
	"kwarta/internal/testutil"
)

func TestCreateGoal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		goal, err := svc.CreateGoal(user.ID, "Emergency Fund", "3 months of expenses", 100000, time.Now().AddDate(1, 0, 0), "savings", models.GoalPriorityHigh)
		testutil.AssertNoError(t, err)

		if goal.ID == "" {
			t.Fatal("expected non-empty goal ID")
		}
		if goal.Status != models.GoalStatusActive {
			t.Errorf("expected active status, got %s", goal.Status)
		}
		if goal.CurrentAmount != 0 {
			t.Errorf("expected zero current amount, got %v", goal.CurrentAmount)
		}
	})

	t.Run("defaults_priority_to_medium", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		goal, err := svc.CreateGoal(user.ID, "Laptop", "", 50000, time.Now().AddDate(0, 6, 0), "", "")
		testutil.AssertNoError(t, err)
		if goal.Priority != models.GoalPriorityMedium {
			t.Errorf("expected medium priority, got %s", goal.Priority)
		}
	})

	t.Run("invalid_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateGoal(user.ID, "Zero", "", 0, time.Now().AddDate(1, 0, 0), "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestAddSavings(t *testing.T) {
	t.Run("increments_current_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID) // target 50000

		updated, err := svc.AddSavings(user.ID, goal.ID, 10000)
		testutil.AssertNoError(t, err)

		if updated.CurrentAmount != 10000 {
			t.Errorf("expected current amount 10000, got %v", updated.CurrentAmount)
		}
		if updated.Status != models.GoalStatusActive {
			t.Errorf("expected goal to stay active, got %s", updated.Status)
		}
	})

	t.Run("completes_goal_at_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID)

		updated, err := svc.AddSavings(user.ID, goal.ID, 50000)
		testutil.AssertNoError(t, err)

		if updated.Status != models.GoalStatusCompleted {
			t.Errorf("expected completed status, got %s", updated.Status)
		}

		// Further contributions are rejected once completed.
		_, err = svc.AddSavings(user.ID, goal.ID, 100)
		testutil.AssertAppError(t, err, "GOAL_NOT_ACTIVE")
	})

	t.Run("paused_goal_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID)
		if err := db.Model(goal).Update("status", models.GoalStatusPaused).Error; err != nil {
			t.Fatalf("failed to pause goal: %v", err)
		}

		_, err := svc.AddSavings(user.ID, goal.ID, 100)
		testutil.AssertAppError(t, err, "GOAL_NOT_ACTIVE")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID)

		_, err := svc.AddSavings(user.ID, goal.ID, -50)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetGoalProgress(t *testing.T) {
	t.Run("derives_progress", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID) // target 50000, due in a year

		_, err := svc.AddSavings(user.ID, goal.ID, 25000)
		testutil.AssertNoError(t, err)

		progress, err := svc.GetGoalProgress(user.ID, goal.ID)
		testutil.AssertNoError(t, err)

		if progress.ProgressPercent != 50 {
			t.Errorf("expected 50%% progress, got %v", progress.ProgressPercent)
		}
		if progress.Status != insight.GoalOnTrack {
			t.Errorf("expected on_track, got %s", progress.Status)
		}
	})

	t.Run("other_users_goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user1.ID)

		_, err := svc.GetGoalProgress(user2.ID, goal.ID)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})
}
