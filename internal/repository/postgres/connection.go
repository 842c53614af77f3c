package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/repositories"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Projects             string
	ProjectCollaborators string
	Documents            string
	DocumentVersions     string
	WritingSessions      string
	AIGenerations        string
	ActivityLog          string
	Users                string
	WorldbuildingEntries string
	TimelineEvents       string
	BookCovers           string
	Blurbs               string
	KDPKeywords          string
	KDPCategories        string
	PublishingProfiles   string
	RevenueRecords       string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Projects:             prefix + "projects",
		ProjectCollaborators: prefix + "project_collaborators",
		Documents:            prefix + "documents",
		DocumentVersions:     prefix + "document_versions",
		WritingSessions:      prefix + "writing_sessions",
		AIGenerations:        prefix + "ai_generations",
		ActivityLog:          prefix + "activity_log",
		Users:                prefix + "users",
		WorldbuildingEntries: prefix + "worldbuilding_entries",
		TimelineEvents:       prefix + "timeline_events",
		BookCovers:           prefix + "book_covers",
		Blurbs:               prefix + "blurbs",
		KDPKeywords:          prefix + "kdp_keywords",
		KDPCategories:        prefix + "kdp_categories",
		PublishingProfiles:   prefix + "publishing_profiles",
		RevenueRecords:       prefix + "revenue_records",
	}
}

// CreateConnectionPool creates a new pgx connection pool.
//
// PgBouncer in transaction pooling mode (port 6543 on Supabase) does not
// support prepared statements. When that port is detected and the user has
// not overridden the mode in the connection string, we switch to
// QueryExecModeCacheDescribe: it keeps the extended protocol (needed for
// proper JSONB encoding) while caching statement descriptions instead of
// prepared statements.
//
// Dynamic table prefixes (dev_, test_, prod_) interpolated via fmt.Sprintf
// are safe with prepared statements because the SQL string is fixed before
// being sent; each environment gets its own statements.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for PgBouncer compatibility", "port", 6543)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// GetExecutor returns the appropriate query executor for the context.
// If a transaction is present in the context, it returns the transaction;
// otherwise the pool. This lets repositories automatically participate in
// transactions opened by the TransactionManager.
func GetExecutor(ctx context.Context, pool *pgxpool.Pool) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return pool
}
