package repositories

import (
	"context"
	"time"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

// AnalyticsReader is the read-only store surface the analytics engine
// computes from. Every query is scoped to a single project; aggregation
// never crosses project boundaries.
//
// The engine performs no writes and takes no cross-query transaction, so a
// snapshot is not a single consistent point-in-time view. Accepted: the
// output is advisory analytics, not a ledger.
type AnalyticsReader interface {
	// HasProjectAccess reports whether userID owns the project or appears
	// in its collaborator list.
	HasProjectAccess(ctx context.Context, projectID, userID string) (bool, error)

	// GetProject retrieves a project by ID regardless of caller.
	GetProject(ctx context.Context, projectID string) (*models.Project, error)

	// OverviewCounts returns flat per-entity counts and sums. Aggregates
	// over zero rows come back as 0, never as an error.
	OverviewCounts(ctx context.Context, projectID string) (*models.ProjectOverview, error)

	// ActivityDates returns the distinct UTC calendar dates on which any
	// document was updated or any document version was created, unordered.
	ActivityDates(ctx context.Context, projectID string) ([]time.Time, error)

	// ListSessions returns all writing sessions for the project, newest
	// first.
	ListSessions(ctx context.Context, projectID string) ([]models.WritingSession, error)

	// CountGenerations returns the total number of AI generations.
	CountGenerations(ctx context.Context, projectID string) (int, error)

	// GenerationCountsByPersona groups generation counts by persona tag.
	GenerationCountsByPersona(ctx context.Context, projectID string) (map[string]int, error)

	// ListRecentGenerations returns the most recently created generations,
	// newest first, up to limit.
	ListRecentGenerations(ctx context.Context, projectID string, limit int) ([]models.AIGeneration, error)

	// ListGenerationsSince returns generations created at or after since.
	ListGenerationsSince(ctx context.Context, projectID string, since time.Time) ([]models.AIGeneration, error)

	// CountCollaborators returns the number of collaborator rows.
	CountCollaborators(ctx context.Context, projectID string) (int, error)

	// CountActiveAuthors returns the number of distinct users who authored
	// at least one activity-log entry at or after since.
	CountActiveAuthors(ctx context.Context, projectID string, since time.Time) (int, error)

	// ListRecentActivity returns the most recent activity-log entries,
	// newest first, up to limit.
	ListRecentActivity(ctx context.Context, projectID string, limit int) ([]models.ActivityLogEntry, error)

	// GetUsersByIDs resolves user directory records for display names.
	// Missing users are simply absent from the result map.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]models.User, error)

	// GetPublishingFacts returns the normalized readiness-scorer input for
	// the project (word-count progress, cover/blurb presence, KDP keyword
	// and category counts, price/date presence).
	GetPublishingFacts(ctx context.Context, projectID string) (*models.ReadinessInput, error)

	// ListRevenueRecords returns all ingested revenue rows for the project.
	ListRevenueRecords(ctx context.Context, projectID string) ([]models.RevenueRecord, error)
}
