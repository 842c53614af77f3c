package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/ReeseAstor/88Away-sub000/internal/config"
	"github.com/ReeseAstor/88Away-sub000/internal/repository/postgres"
)

// Demo identities are stable so repeated seeding converges on the same data.
const (
	demoProjectID = "11111111-1111-1111-1111-111111111111"
	demoOwnerID   = "22222222-2222-2222-2222-222222222222"
	demoEditorID  = "33333333-3333-3333-3333-333333333333"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo data")
	clearData := flag.Bool("clear-data", false, "Clear demo project data (keep schema)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("🚫 BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	log.Println("📋 Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	if *clearData {
		log.Println("🧹 Clearing demo project data...")
		if err := clearProjectData(ctx, pool, tables, demoProjectID); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("✅ Data cleared successfully")
		return
	}

	log.Printf("🌱 Seeding demo analytics data (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	if err := clearProjectData(ctx, pool, tables, demoProjectID); err != nil {
		log.Printf("Warning: Could not clear data: %v", err)
	}

	if err := seedDemoProject(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to seed demo project: %v", err)
	}

	log.Println("🎉 Seeding complete!")
}

// runSchema creates tables if they don't exist
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Users + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Projects + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			owner_id UUID NOT NULL,
			title TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'draft',
			target_word_count INTEGER NOT NULL DEFAULT 0,
			current_word_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.ProjectCollaborators + ` (
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			user_id UUID NOT NULL,
			role TEXT NOT NULL DEFAULT 'viewer',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (project_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Documents + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			word_count INTEGER NOT NULL DEFAULT 0,
			character_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.DocumentVersions + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			document_id UUID NOT NULL REFERENCES ` + tables.Documents + `(id) ON DELETE CASCADE,
			word_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.WritingSessions + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			user_id UUID NOT NULL,
			document_id UUID,
			words_written INTEGER NOT NULL DEFAULT 0,
			duration INTEGER NOT NULL DEFAULT 0,
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.AIGenerations + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			user_id UUID NOT NULL,
			persona TEXT NOT NULL,
			prompt TEXT NOT NULL,
			metadata JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.ActivityLog + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			user_id UUID NOT NULL,
			action TEXT NOT NULL,
			entity_type TEXT NOT NULL,
			entity_id UUID,
			details JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.WorldbuildingEntries + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.TimelineEvents + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.BookCovers + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			is_selected BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Blurbs + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			is_active BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.KDPKeywords + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			keyword TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.KDPCategories + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			category TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.PublishingProfiles + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			price_cents INTEGER,
			release_date DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.RevenueRecords + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			project_id UUID NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			amount_cents BIGINT NOT NULL,
			source TEXT NOT NULL,
			transaction_date TIMESTAMPTZ NOT NULL,
			metadata JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tables.WritingSessions + `_project ON ` + tables.WritingSessions + ` (project_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tables.AIGenerations + `_project ON ` + tables.AIGenerations + ` (project_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tables.ActivityLog + `_project ON ` + tables.ActivityLog + ` (project_id, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}

	return nil
}

// dropAllTables drops every analytics table with the environment prefix
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	ordered := []string{
		tables.RevenueRecords,
		tables.PublishingProfiles,
		tables.KDPCategories,
		tables.KDPKeywords,
		tables.Blurbs,
		tables.BookCovers,
		tables.TimelineEvents,
		tables.WorldbuildingEntries,
		tables.ActivityLog,
		tables.AIGenerations,
		tables.WritingSessions,
		tables.DocumentVersions,
		tables.Documents,
		tables.ProjectCollaborators,
		tables.Projects,
		tables.Users,
	}

	for _, table := range ordered {
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}

	return nil
}

// clearProjectData removes the demo project; foreign keys cascade the rest
func clearProjectData(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, projectID string) error {
	_, err := pool.Exec(ctx, "DELETE FROM "+tables.Projects+" WHERE id = $1", projectID)
	return err
}

// seedDemoProject populates one project with a month of realistic writing
// activity so every dashboard panel has data to show.
func seedDemoProject(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	now := time.Now().UTC()
	rng := rand.New(rand.NewSource(88))

	users := []struct {
		id, first, last, email string
	}{
		{demoOwnerID, "Maya", "Reyes", "maya@example.com"},
		{demoEditorID, "Jordan", "Okafor", "jordan@example.com"},
	}
	for _, u := range users {
		query := fmt.Sprintf(`
			INSERT INTO %s (id, first_name, last_name, email, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING
		`, tables.Users)
		if _, err := pool.Exec(ctx, query, u.id, u.first, u.last, u.email, now.AddDate(0, -6, 0)); err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}

	projectQuery := fmt.Sprintf(`
		INSERT INTO %s (id, owner_id, title, status, target_word_count, current_word_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`, tables.Projects)
	if _, err := pool.Exec(ctx, projectQuery,
		demoProjectID, demoOwnerID, "The Glass Orchard", "in_progress",
		80000, 52340, now.AddDate(0, -3, 0), now); err != nil {
		return fmt.Errorf("seed project: %w", err)
	}

	collabQuery := fmt.Sprintf(`
		INSERT INTO %s (project_id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`, tables.ProjectCollaborators)
	if _, err := pool.Exec(ctx, collabQuery, demoProjectID, demoEditorID, "editor", now.AddDate(0, -2, 0)); err != nil {
		return fmt.Errorf("seed collaborator: %w", err)
	}

	// Documents and versions drive the streak calendar
	docIDs := make([]string, 0, 5)
	docTitles := []string{"Chapter 1", "Chapter 2", "Chapter 3", "Chapter 4", "Outline"}
	for i, title := range docTitles {
		id := uuid.NewString()
		docIDs = append(docIDs, id)
		words := 8000 + rng.Intn(4000)
		query := fmt.Sprintf(`
			INSERT INTO %s (id, project_id, title, word_count, character_count, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, tables.Documents)
		updated := now.AddDate(0, 0, -i*2)
		if _, err := pool.Exec(ctx, query, id, demoProjectID, title, words, words*6, now.AddDate(0, -3, 0), updated); err != nil {
			return fmt.Errorf("seed document %s: %w", title, err)
		}

		versionQuery := fmt.Sprintf(`
			INSERT INTO %s (id, document_id, word_count, created_at)
			VALUES ($1, $2, $3, $4)
		`, tables.DocumentVersions)
		if _, err := pool.Exec(ctx, versionQuery, uuid.NewString(), id, words, updated.AddDate(0, 0, -1)); err != nil {
			return fmt.Errorf("seed version for %s: %w", title, err)
		}
	}

	// A month of sessions: most days active, a few gaps, varying hours
	sessionQuery := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, user_id, document_id, words_written, duration, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, tables.WritingSessions)
	sessionCount := 0
	for day := 0; day < 30; day++ {
		if day%7 == 5 {
			continue // rest day
		}
		userID := demoOwnerID
		if day%4 == 3 {
			userID = demoEditorID
		}
		start := time.Date(now.Year(), now.Month(), now.Day(), 7+rng.Intn(14), rng.Intn(60), 0, 0, time.UTC).AddDate(0, 0, -day)
		duration := 20 + rng.Intn(90)
		end := start.Add(time.Duration(duration) * time.Minute)
		words := 300 + rng.Intn(1500)
		doc := docIDs[rng.Intn(len(docIDs))]
		if _, err := pool.Exec(ctx, sessionQuery,
			uuid.NewString(), demoProjectID, userID, doc, words, duration, start, end, start); err != nil {
			return fmt.Errorf("seed session day -%d: %w", day, err)
		}
		sessionCount++
	}
	log.Printf("✅ Seeded %d writing sessions", sessionCount)

	// AI generations across personas, tokens in metadata
	generationQuery := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, user_id, persona, prompt, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, tables.AIGenerations)
	personas := []string{"muse", "editor", "coach"}
	prompts := []string{
		"Draft a tense confrontation between Ada and her brother in the orchard.",
		"Tighten this paragraph without losing the sensory detail.",
		"Suggest three ways to raise the stakes in act two.",
	}
	generationCount := 0
	for day := 0; day < 24; day++ {
		if day%3 == 2 {
			continue
		}
		persona := personas[day%len(personas)]
		metadata := fmt.Sprintf(`{"model":"claude-sonnet","tokens_in":%d,"tokens_out":%d}`,
			200+rng.Intn(800), 400+rng.Intn(1600))
		created := now.AddDate(0, 0, -day).Add(-time.Duration(rng.Intn(10)) * time.Hour)
		if _, err := pool.Exec(ctx, generationQuery,
			uuid.NewString(), demoProjectID, demoOwnerID, persona,
			prompts[day%len(prompts)], metadata, created); err != nil {
			return fmt.Errorf("seed generation day -%d: %w", day, err)
		}
		generationCount++
	}
	log.Printf("✅ Seeded %d AI generations", generationCount)

	// Activity log covering both members
	activityQuery := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, user_id, action, entity_type, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, tables.ActivityLog)
	actions := []struct {
		userID, action, entityType string
	}{
		{demoOwnerID, "document_updated", "document"},
		{demoEditorID, "comment_added", "document"},
		{demoOwnerID, "session_ended", "writing_session"},
		{demoEditorID, "document_updated", "document"},
		{demoOwnerID, "version_created", "document_version"},
	}
	for i := 0; i < 25; i++ {
		a := actions[i%len(actions)]
		created := now.AddDate(0, 0, -(i / 2)).Add(-time.Duration(rng.Intn(8)) * time.Hour)
		if _, err := pool.Exec(ctx, activityQuery,
			uuid.NewString(), demoProjectID, a.userID, a.action, a.entityType,
			docIDs[i%len(docIDs)], `{"source":"seed"}`, created); err != nil {
			return fmt.Errorf("seed activity %d: %w", i, err)
		}
	}

	// Worldbuilding and timeline rows for the overview counts
	for i := 0; i < 6; i++ {
		query := fmt.Sprintf(`INSERT INTO %s (id, project_id, name, created_at) VALUES ($1, $2, $3, $4)`, tables.WorldbuildingEntries)
		if _, err := pool.Exec(ctx, query, uuid.NewString(), demoProjectID, fmt.Sprintf("Entry %d", i+1), now.AddDate(0, 0, -i*3)); err != nil {
			return fmt.Errorf("seed worldbuilding: %w", err)
		}
	}
	for i := 0; i < 4; i++ {
		query := fmt.Sprintf(`INSERT INTO %s (id, project_id, title, created_at) VALUES ($1, $2, $3, $4)`, tables.TimelineEvents)
		if _, err := pool.Exec(ctx, query, uuid.NewString(), demoProjectID, fmt.Sprintf("Event %d", i+1), now.AddDate(0, 0, -i*5)); err != nil {
			return fmt.Errorf("seed timeline: %w", err)
		}
	}

	// Publishing assets: partial readiness so the score is interesting
	coverQuery := fmt.Sprintf(`INSERT INTO %s (id, project_id, is_selected, created_at) VALUES ($1, $2, TRUE, $3)`, tables.BookCovers)
	if _, err := pool.Exec(ctx, coverQuery, uuid.NewString(), demoProjectID, now.AddDate(0, 0, -10)); err != nil {
		return fmt.Errorf("seed cover: %w", err)
	}
	blurbQuery := fmt.Sprintf(`INSERT INTO %s (id, project_id, is_active, created_at) VALUES ($1, $2, TRUE, $3)`, tables.Blurbs)
	if _, err := pool.Exec(ctx, blurbQuery, uuid.NewString(), demoProjectID, now.AddDate(0, 0, -8)); err != nil {
		return fmt.Errorf("seed blurb: %w", err)
	}
	keywords := []string{"literary fiction", "family saga", "orchard", "sisters", "small town"}
	for _, kw := range keywords {
		query := fmt.Sprintf(`INSERT INTO %s (id, project_id, keyword, created_at) VALUES ($1, $2, $3, $4)`, tables.KDPKeywords)
		if _, err := pool.Exec(ctx, query, uuid.NewString(), demoProjectID, kw, now.AddDate(0, 0, -7)); err != nil {
			return fmt.Errorf("seed keyword: %w", err)
		}
	}
	categories := []string{"Fiction > Literary", "Fiction > Family Life"}
	for _, cat := range categories {
		query := fmt.Sprintf(`INSERT INTO %s (id, project_id, category, created_at) VALUES ($1, $2, $3, $4)`, tables.KDPCategories)
		if _, err := pool.Exec(ctx, query, uuid.NewString(), demoProjectID, cat, now.AddDate(0, 0, -7)); err != nil {
			return fmt.Errorf("seed category: %w", err)
		}
	}
	profileQuery := fmt.Sprintf(`INSERT INTO %s (id, project_id, price_cents, release_date, created_at) VALUES ($1, $2, $3, NULL, $4)`, tables.PublishingProfiles)
	if _, err := pool.Exec(ctx, profileQuery, uuid.NewString(), demoProjectID, 499, now.AddDate(0, 0, -6)); err != nil {
		return fmt.Errorf("seed publishing profile: %w", err)
	}

	// Revenue with campaign metadata for attribution grouping
	revenueQuery := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, amount_cents, source, transaction_date, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, tables.RevenueRecords)
	revenues := []struct {
		amount   int64
		source   string
		metadata string
		daysAgo  int
	}{
		{12500, "amazon_ads", `{"campaign":"launch-week","spend_cents":4000}`, 45},
		{8300, "amazon_ads", `{"campaign":"launch-week","spend_cents":4000}`, 40},
		{6100, "facebook_ads", `{"campaign":"spring-promo","spend_cents":2500}`, 20},
		{4400, "organic", `{}`, 15},
		{9900, "amazon_ads", `{"campaign":"spring-promo","spend_cents":3000}`, 5},
	}
	for i, rev := range revenues {
		txDate := now.AddDate(0, 0, -rev.daysAgo)
		if _, err := pool.Exec(ctx, revenueQuery,
			uuid.NewString(), demoProjectID, rev.amount, rev.source, txDate, rev.metadata, txDate); err != nil {
			return fmt.Errorf("seed revenue %d: %w", i, err)
		}
	}

	log.Printf("✅ Demo project ready: %s (owner %s)", demoProjectID, demoOwnerID)
	return nil
}
