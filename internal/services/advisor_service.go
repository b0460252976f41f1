package services

import (
	"context"
	"time"

	"kwarta/internal/advisor"
	apperrors "kwarta/internal/errors"
	"kwarta/internal/insight"
	"kwarta/internal/logger"
)

// advisorService answers free-form questions with the completion API,
// grounding every prompt in the user's derived snapshot. A single attempt
// is made; any failure degrades to the deterministic template fallback.
type advisorService struct {
	client   *advisor.Client
	insights InsightServicer
	cfg      insight.Config
}

// NewAdvisorService creates a new AdvisorServicer.
func NewAdvisorService(client *advisor.Client, insights InsightServicer, cfg insight.Config) AdvisorServicer {
	return &advisorService{
		client:   client,
		insights: insights,
		cfg:      cfg,
	}
}

// Chat answers a question about the user's finances. The second return
// value reports whether the reply came from the completion API (true) or
// the local fallback (false).
func (s *advisorService) Chat(ctx context.Context, userID, question string) (string, bool, error) {
	if question == "" {
		return "", false, apperrors.WithMessage(apperrors.ErrInvalidInput, "question is required")
	}

	snapshot, err := s.insights.GetSnapshot(userID, time.Now())
	if err != nil {
		return "", false, err
	}

	if s.client != nil && s.client.Configured() {
		reply, err := s.client.Complete(ctx,
			advisor.SystemPrompt(s.cfg.CurrencySymbol),
			advisor.UserPrompt(question, *snapshot, s.cfg.CurrencySymbol),
		)
		if err == nil {
			return reply, true, nil
		}
		logger.Get().Warnw("advisor completion failed, using fallback", "error", err)
	}

	return advisor.Fallback(*snapshot, s.cfg), false, nil
}
