package models

import (
	"time"
)

// WritingSession records one sitting of writing work on a project.
// Sessions are opened by the write path and become immutable once ended.
type WritingSession struct {
	ID           string     `json:"id" db:"id"`
	ProjectID    string     `json:"project_id" db:"project_id"`
	UserID       string     `json:"user_id" db:"user_id"`
	DocumentID   *string    `json:"document_id,omitempty" db:"document_id"`
	WordsWritten int        `json:"words_written" db:"words_written"` // >= 0
	Duration     int        `json:"duration" db:"duration"`           // minutes
	StartTime    time.Time  `json:"start_time" db:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty" db:"end_time"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// Ended reports whether the session has been closed.
func (s *WritingSession) Ended() bool {
	return s.EndTime != nil
}
