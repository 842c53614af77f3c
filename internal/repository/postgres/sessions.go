package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ReeseAstor/88Away-sub000/internal/domain"
	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
	"github.com/ReeseAstor/88Away-sub000/internal/domain/repositories"
)

// PostgresWritingSessionRepository implements the WritingSessionRepository interface
type PostgresWritingSessionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewWritingSessionRepository creates a new writing-session repository
func NewWritingSessionRepository(config *RepositoryConfig) repositories.WritingSessionRepository {
	return &PostgresWritingSessionRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new open session
func (r *PostgresWritingSessionRepository) Create(ctx context.Context, session *models.WritingSession) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, user_id, document_id, words_written, duration, start_time, created_at)
		VALUES ($1, $2, $3, $4, 0, 0, $5, $6)
	`, r.tables.WritingSessions)

	exec := GetExecutor(ctx, r.pool)
	_, err := exec.Exec(ctx, query,
		session.ID,
		session.ProjectID,
		session.UserID,
		session.DocumentID,
		session.StartTime,
		session.CreatedAt,
	)

	if err != nil {
		if isPgDuplicateError(err) {
			return fmt.Errorf("session %s: %w", session.ID, domain.ErrConflict)
		}
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

// GetByID retrieves a session by ID
func (r *PostgresWritingSessionRepository) GetByID(ctx context.Context, id string) (*models.WritingSession, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, user_id, document_id, words_written, duration, start_time, end_time, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.WritingSessions)

	exec := GetExecutor(ctx, r.pool)

	var s models.WritingSession
	err := exec.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.ProjectID,
		&s.UserID,
		&s.DocumentID,
		&s.WordsWritten,
		&s.Duration,
		&s.StartTime,
		&s.EndTime,
		&s.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	return &s, nil
}

// End closes an open session. The end_time IS NULL guard makes ended
// sessions immutable; a second end reports not found.
func (r *PostgresWritingSessionRepository) End(ctx context.Context, id string, wordsWritten, duration int, endTime time.Time) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET words_written = $1, duration = $2, end_time = $3
		WHERE id = $4 AND end_time IS NULL
	`, r.tables.WritingSessions)

	exec := GetExecutor(ctx, r.pool)
	result, err := exec.Exec(ctx, query, wordsWritten, duration, endTime, id)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("open session %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
