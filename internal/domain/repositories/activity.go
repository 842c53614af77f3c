package repositories

import (
	"context"
	"time"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

// ActivityLogRepository is the write side of the activity log.
type ActivityLogRepository interface {
	// Insert appends an activity-log entry.
	Insert(ctx context.Context, entry *models.ActivityLogEntry) error
}

// WritingSessionRepository covers the session write path. Sessions are
// created open and closed exactly once; a closed session is immutable.
type WritingSessionRepository interface {
	// Create inserts a new open session.
	Create(ctx context.Context, session *models.WritingSession) error

	// GetByID retrieves a session by ID.
	GetByID(ctx context.Context, id string) (*models.WritingSession, error)

	// End closes an open session, recording its word count and duration.
	// Returns ErrNotFound when no open session with the ID exists.
	End(ctx context.Context, id string, wordsWritten, duration int, endTime time.Time) error
}
