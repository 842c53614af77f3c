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

// PostgresAnalyticsReader implements the AnalyticsReader interface
type PostgresAnalyticsReader struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewAnalyticsReader creates a new analytics read store
func NewAnalyticsReader(config *RepositoryConfig) repositories.AnalyticsReader {
	return &PostgresAnalyticsReader{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// HasProjectAccess reports whether userID owns the project or is a collaborator
func (r *PostgresAnalyticsReader) HasProjectAccess(ctx context.Context, projectID, userID string) (bool, error) {
	query := fmt.Sprintf(`
		SELECT
			EXISTS (SELECT 1 FROM %s WHERE id = $1 AND owner_id = $2)
			OR EXISTS (SELECT 1 FROM %s WHERE project_id = $1 AND user_id = $2)
	`, r.tables.Projects, r.tables.ProjectCollaborators)

	var ok bool
	if err := r.pool.QueryRow(ctx, query, projectID, userID).Scan(&ok); err != nil {
		return false, fmt.Errorf("check project access: %w", err)
	}

	return ok, nil
}

// GetProject retrieves a project by ID
func (r *PostgresAnalyticsReader) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, title, status, target_word_count, current_word_count, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Projects)

	var project models.Project
	err := r.pool.QueryRow(ctx, query, projectID).Scan(
		&project.ID,
		&project.OwnerID,
		&project.Title,
		&project.Status,
		&project.TargetWordCount,
		&project.CurrentWordCount,
		&project.CreatedAt,
		&project.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &project, nil
}

// OverviewCounts returns flat per-entity counts and sums for the project.
// COALESCE keeps sums over zero rows at 0 instead of NULL.
func (r *PostgresAnalyticsReader) OverviewCounts(ctx context.Context, projectID string) (*models.ProjectOverview, error) {
	query := fmt.Sprintf(`
		SELECT
			(SELECT COUNT(*) FROM %[1]s WHERE project_id = $1),
			(SELECT COALESCE(SUM(word_count), 0) FROM %[1]s WHERE project_id = $1),
			(SELECT COALESCE(SUM(character_count), 0) FROM %[1]s WHERE project_id = $1),
			(SELECT COUNT(*) FROM %[2]s WHERE project_id = $1),
			(SELECT COUNT(*) FROM %[3]s WHERE project_id = $1),
			(SELECT COUNT(*) FROM %[4]s WHERE project_id = $1)
	`, r.tables.Documents, r.tables.WorldbuildingEntries, r.tables.TimelineEvents, r.tables.AIGenerations)

	var overview models.ProjectOverview
	err := r.pool.QueryRow(ctx, query, projectID).Scan(
		&overview.TotalDocuments,
		&overview.TotalWords,
		&overview.TotalCharacters,
		&overview.WorldbuildingCount,
		&overview.TimelineEventCount,
		&overview.TotalAIGenerations,
	)

	if err != nil {
		return nil, fmt.Errorf("overview counts: %w", err)
	}

	return &overview, nil
}

// ActivityDates returns the distinct UTC calendar dates with document activity.
// Day boundaries are UTC; the UNION deduplicates across both sources.
func (r *PostgresAnalyticsReader) ActivityDates(ctx context.Context, projectID string) ([]time.Time, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT activity_date FROM (
			SELECT (updated_at AT TIME ZONE 'UTC')::date AS activity_date
			FROM %[1]s
			WHERE project_id = $1
			UNION
			SELECT (v.created_at AT TIME ZONE 'UTC')::date
			FROM %[2]s v
			JOIN %[1]s d ON v.document_id = d.id
			WHERE d.project_id = $1
		) dates
	`, r.tables.Documents, r.tables.DocumentVersions)

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("activity dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan activity date: %w", err)
		}
		dates = append(dates, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity dates: %w", err)
	}

	return dates, nil
}

// ListSessions returns all writing sessions for the project, newest first
func (r *PostgresAnalyticsReader) ListSessions(ctx context.Context, projectID string) ([]models.WritingSession, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, user_id, document_id, words_written, duration, start_time, end_time, created_at
		FROM %s
		WHERE project_id = $1
		ORDER BY created_at DESC
	`, r.tables.WritingSessions)

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.WritingSession
	for rows.Next() {
		var s models.WritingSession
		err := rows.Scan(
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
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

// CountGenerations returns the total number of AI generations for the project
func (r *PostgresAnalyticsReader) CountGenerations(ctx context.Context, projectID string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE project_id = $1`, r.tables.AIGenerations)

	var count int
	if err := r.pool.QueryRow(ctx, query, projectID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count generations: %w", err)
	}

	return count, nil
}

// GenerationCountsByPersona groups generation counts by persona tag
func (r *PostgresAnalyticsReader) GenerationCountsByPersona(ctx context.Context, projectID string) (map[string]int, error) {
	query := fmt.Sprintf(`
		SELECT persona, COUNT(*)
		FROM %s
		WHERE project_id = $1
		GROUP BY persona
	`, r.tables.AIGenerations)

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("generation counts by persona: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var persona string
		var count int
		if err := rows.Scan(&persona, &count); err != nil {
			return nil, fmt.Errorf("scan persona count: %w", err)
		}
		counts[persona] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persona counts: %w", err)
	}

	return counts, nil
}

// ListRecentGenerations returns the most recently created generations
func (r *PostgresAnalyticsReader) ListRecentGenerations(ctx context.Context, projectID string, limit int) ([]models.AIGeneration, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, user_id, persona, prompt, metadata, created_at
		FROM %s
		WHERE project_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, r.tables.AIGenerations)

	return r.queryGenerations(ctx, query, projectID, limit)
}

// ListGenerationsSince returns generations created at or after since
func (r *PostgresAnalyticsReader) ListGenerationsSince(ctx context.Context, projectID string, since time.Time) ([]models.AIGeneration, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, user_id, persona, prompt, metadata, created_at
		FROM %s
		WHERE project_id = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`, r.tables.AIGenerations)

	return r.queryGenerations(ctx, query, projectID, since)
}

func (r *PostgresAnalyticsReader) queryGenerations(ctx context.Context, query string, args ...interface{}) ([]models.AIGeneration, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	defer rows.Close()

	var generations []models.AIGeneration
	for rows.Next() {
		var g models.AIGeneration
		err := rows.Scan(
			&g.ID,
			&g.ProjectID,
			&g.UserID,
			&g.Persona,
			&g.Prompt,
			&g.Metadata,
			&g.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		generations = append(generations, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generations: %w", err)
	}

	return generations, nil
}

// CountCollaborators returns the number of collaborator rows for the project
func (r *PostgresAnalyticsReader) CountCollaborators(ctx context.Context, projectID string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE project_id = $1`, r.tables.ProjectCollaborators)

	var count int
	if err := r.pool.QueryRow(ctx, query, projectID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count collaborators: %w", err)
	}

	return count, nil
}

// CountActiveAuthors returns distinct users with activity at or after since
func (r *PostgresAnalyticsReader) CountActiveAuthors(ctx context.Context, projectID string, since time.Time) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(DISTINCT user_id)
		FROM %s
		WHERE project_id = $1 AND created_at >= $2
	`, r.tables.ActivityLog)

	var count int
	if err := r.pool.QueryRow(ctx, query, projectID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active authors: %w", err)
	}

	return count, nil
}

// ListRecentActivity returns the most recent activity-log entries
func (r *PostgresAnalyticsReader) ListRecentActivity(ctx context.Context, projectID string, limit int) ([]models.ActivityLogEntry, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, user_id, action, entity_type, entity_id, details, created_at
		FROM %s
		WHERE project_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, r.tables.ActivityLog)

	rows, err := r.pool.Query(ctx, query, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent activity: %w", err)
	}
	defer rows.Close()

	var entries []models.ActivityLogEntry
	for rows.Next() {
		var e models.ActivityLogEntry
		err := rows.Scan(
			&e.ID,
			&e.ProjectID,
			&e.UserID,
			&e.Action,
			&e.EntityType,
			&e.EntityID,
			&e.Details,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity entries: %w", err)
	}

	return entries, nil
}

// GetUsersByIDs resolves user directory records; missing users are absent
// from the result map rather than an error.
func (r *PostgresAnalyticsReader) GetUsersByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	users := make(map[string]models.User)
	if len(ids) == 0 {
		return users, nil
	}

	query := fmt.Sprintf(`
		SELECT id, first_name, last_name, email, created_at
		FROM %s
		WHERE id = ANY($1)
	`, r.tables.Users)

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users[u.ID] = u
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// GetPublishingFacts returns the normalized readiness-scorer input
func (r *PostgresAnalyticsReader) GetPublishingFacts(ctx context.Context, projectID string) (*models.ReadinessInput, error) {
	query := fmt.Sprintf(`
		SELECT
			p.current_word_count,
			p.target_word_count,
			p.status = 'published',
			EXISTS (SELECT 1 FROM %[2]s WHERE project_id = p.id AND is_selected),
			EXISTS (SELECT 1 FROM %[3]s WHERE project_id = p.id AND is_active),
			(SELECT COUNT(*) FROM %[4]s WHERE project_id = p.id),
			(SELECT COUNT(*) FROM %[5]s WHERE project_id = p.id),
			EXISTS (SELECT 1 FROM %[6]s WHERE project_id = p.id AND price_cents IS NOT NULL),
			EXISTS (SELECT 1 FROM %[6]s WHERE project_id = p.id AND release_date IS NOT NULL)
		FROM %[1]s p
		WHERE p.id = $1
	`, r.tables.Projects, r.tables.BookCovers, r.tables.Blurbs,
		r.tables.KDPKeywords, r.tables.KDPCategories, r.tables.PublishingProfiles)

	var input models.ReadinessInput
	err := r.pool.QueryRow(ctx, query, projectID).Scan(
		&input.CurrentWordCount,
		&input.TargetWordCount,
		&input.Published,
		&input.HasCover,
		&input.HasBlurb,
		&input.KeywordCount,
		&input.CategoryCount,
		&input.HasPrice,
		&input.HasReleaseDate,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("publishing facts: %w", err)
	}

	return &input, nil
}

// ListRevenueRecords returns all ingested revenue rows for the project
func (r *PostgresAnalyticsReader) ListRevenueRecords(ctx context.Context, projectID string) ([]models.RevenueRecord, error) {
	query := fmt.Sprintf(`
		SELECT amount_cents, source, transaction_date, metadata
		FROM %s
		WHERE project_id = $1
		ORDER BY transaction_date ASC
	`, r.tables.RevenueRecords)

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list revenue records: %w", err)
	}
	defer rows.Close()

	var records []models.RevenueRecord
	for rows.Next() {
		var rec models.RevenueRecord
		if err := rows.Scan(&rec.AmountCents, &rec.Source, &rec.TransactionDate, &rec.Metadata); err != nil {
			return nil, fmt.Errorf("scan revenue record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revenue records: %w", err)
	}

	return records, nil
}
