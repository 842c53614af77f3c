package services

import (
	"context"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

// LogActivityRequest carries one activity-log append.
type LogActivityRequest struct {
	ProjectID  string         `json:"-"`
	UserID     string         `json:"-"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   *string        `json:"entity_id,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// StartSessionRequest opens a writing session.
type StartSessionRequest struct {
	ProjectID  string  `json:"-"`
	UserID     string  `json:"-"`
	DocumentID *string `json:"document_id,omitempty"`
}

// EndSessionRequest closes a writing session with its final numbers.
type EndSessionRequest struct {
	WordsWritten int `json:"words_written"`
	Duration     int `json:"duration"` // minutes
}

// ActivityService is the write path feeding the records the analytics
// engine later reads.
type ActivityService interface {
	// LogActivity appends an audit entry for a user action.
	LogActivity(ctx context.Context, req *LogActivityRequest) (*models.ActivityLogEntry, error)

	// StartWritingSession opens a session and returns it with its ID.
	StartWritingSession(ctx context.Context, req *StartSessionRequest) (*models.WritingSession, error)

	// EndWritingSession closes an open session. Ended sessions are
	// immutable; ending twice returns ErrConflict.
	EndWritingSession(ctx context.Context, sessionID string, req *EndSessionRequest) (*models.WritingSession, error)
}
