package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
	"github.com/ReeseAstor/88Away-sub000/internal/domain/repositories"
)

// PostgresActivityLogRepository implements the ActivityLogRepository interface
type PostgresActivityLogRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewActivityLogRepository creates a new activity-log repository
func NewActivityLogRepository(config *RepositoryConfig) repositories.ActivityLogRepository {
	return &PostgresActivityLogRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Insert appends an activity-log entry
func (r *PostgresActivityLogRepository) Insert(ctx context.Context, entry *models.ActivityLogEntry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, user_id, action, entity_type, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.tables.ActivityLog)

	exec := GetExecutor(ctx, r.pool)
	_, err := exec.Exec(ctx, query,
		entry.ID,
		entry.ProjectID,
		entry.UserID,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.Details,
		entry.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("insert activity entry: %w", err)
	}

	return nil
}
