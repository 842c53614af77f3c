package services

import (
	"context"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

// AnalyticsService computes derived-metrics snapshots for projects.
type AnalyticsService interface {
	// GetProjectAnalytics verifies that userID may see the project's
	// analytics, then computes and merges one immutable snapshot.
	// Returns ErrAccessDenied when the caller is neither owner nor
	// collaborator; any sub-computation failure fails the whole call.
	GetProjectAnalytics(ctx context.Context, projectID, userID string) (*models.AnalyticsSnapshot, error)
}

// ReadinessScorer is an externally supplied pure function scoring publishing
// readiness from normalized project facts.
type ReadinessScorer func(input models.ReadinessInput) *models.ReadinessResult

// AttributionScorer is an externally supplied pure function attributing
// revenue records to channels/campaigns.
type AttributionScorer func(records []models.RevenueRecord) *models.AttributionResult
