package insight

import (
	"math"
	"time"

	"kwarta/internal/models"
)

// GoalState classifies a goal's derived standing.
type GoalState string

const (
	GoalCompleted      GoalState = "completed"
	GoalNearlyComplete GoalState = "nearly_complete"
	GoalUrgent         GoalState = "urgent"
	GoalOnTrack        GoalState = "on_track"
)

// GoalProgress is the derived position of one goal. ProgressPercent is not
// clamped; an overfunded goal shows more than 100%.
type GoalProgress struct {
	GoalID          string    `json:"goal_id"`
	ProgressPercent float64   `json:"progress_percent"`
	DaysLeft        int       `json:"days_left"`
	Status          GoalState `json:"status"`
}

// EvaluateGoal derives progress, days remaining, and a status tag for a
// goal as of the given date. A completed goal reports completed even when
// overdue: the checks run in strict priority order (completed, nearly
// complete, urgent, on track).
func EvaluateGoal(g models.Goal, asOf time.Time) GoalProgress {
	var progress float64
	if g.TargetAmount > 0 {
		progress = g.CurrentAmount / g.TargetAmount * 100
	}

	daysLeft := int(math.Ceil(g.TargetDate.Sub(asOf).Hours() / 24))

	status := GoalOnTrack
	switch {
	case progress >= 100:
		status = GoalCompleted
	case progress >= 90:
		status = GoalNearlyComplete
	case daysLeft < 30:
		status = GoalUrgent
	}

	return GoalProgress{
		GoalID:          g.ID,
		ProgressPercent: progress,
		DaysLeft:        daysLeft,
		Status:          status,
	}
}
