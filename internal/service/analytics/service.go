package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ReeseAstor/88Away-sub000/internal/domain"
	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
	"github.com/ReeseAstor/88Away-sub000/internal/domain/repositories"
	"github.com/ReeseAstor/88Away-sub000/internal/domain/services"
)

// fanOutLimit bounds concurrent sub-aggregators so one snapshot cannot
// saturate the store's connection pool.
const fanOutLimit = 4

// Options tunes the analytics service.
type Options struct {
	// TokenCostRate is the estimated cost per 1000 AI tokens.
	TokenCostRate float64
	// PersonaLabels maps stored persona tags to display labels.
	PersonaLabels map[string]string
	// Timeout bounds one whole snapshot computation. Zero disables the
	// per-request deadline.
	Timeout time.Duration
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// analyticsService implements the AnalyticsService interface
type analyticsService struct {
	store       repositories.AnalyticsReader
	readiness   services.ReadinessScorer
	attribution services.AttributionScorer
	costRate    float64
	labels      map[string]string
	timeout     time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// NewService creates the analytics service. The readiness and attribution
// scorers are consumed as opaque functions; either may be nil, which omits
// its section from the snapshot.
func NewService(
	store repositories.AnalyticsReader,
	readiness services.ReadinessScorer,
	attribution services.AttributionScorer,
	opts Options,
	logger *slog.Logger,
) services.AnalyticsService {
	if opts.TokenCostRate <= 0 {
		opts.TokenCostRate = DefaultTokenCostRate
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &analyticsService{
		store:       store,
		readiness:   readiness,
		attribution: attribution,
		costRate:    opts.TokenCostRate,
		labels:      opts.PersonaLabels,
		timeout:     opts.Timeout,
		now:         opts.Now,
		logger:      logger,
	}
}

// GetProjectAnalytics verifies access, fans the independent sub-aggregators
// out over the read store, joins them and merges one immutable snapshot.
// All-or-nothing: the first failing branch cancels the rest and fails the
// whole request; no partial snapshot is returned.
func (s *analyticsService) GetProjectAnalytics(ctx context.Context, projectID, userID string) (*models.AnalyticsSnapshot, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	ok, err := s.store.HasProjectAccess(ctx, projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("access check: %w", err)
	}
	if !ok {
		return nil, &domain.AccessDeniedError{
			Message: fmt.Sprintf("user %s has no access to project %s", userID, projectID),
		}
	}

	now := s.now()
	started := time.Now()

	var (
		meta          models.ProjectMeta
		overview      *models.ProjectOverview
		progress      models.WritingProgress
		aiUsage       models.AIUsage
		collaboration models.Collaboration
		productivity  models.Productivity
		publishing    *models.PublishingPromotion
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)

	g.Go(func() error {
		project, err := s.store.GetProject(gctx, projectID)
		if err != nil {
			return err
		}
		meta = projectMeta(project)
		return nil
	})

	g.Go(func() error {
		var err error
		overview, err = s.store.OverviewCounts(gctx, projectID)
		return err
	})

	g.Go(func() error {
		var err error
		progress, err = s.writingProgress(gctx, projectID, now)
		return err
	})

	g.Go(func() error {
		var err error
		aiUsage, err = s.aiUsage(gctx, projectID, now)
		return err
	})

	g.Go(func() error {
		var err error
		collaboration, err = s.collaboration(gctx, projectID, now)
		return err
	})

	g.Go(func() error {
		sessions, err := s.store.ListSessions(gctx, projectID)
		if err != nil {
			return err
		}
		productivity = computeProductivity(sessions, now)
		return nil
	})

	g.Go(func() error {
		var err error
		publishing, err = s.publishingPromotion(gctx, projectID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compute analytics for project %s: %w", projectID, err)
	}

	s.logger.Debug("analytics snapshot assembled",
		"project_id", projectID,
		"elapsed", time.Since(started),
	)

	return &models.AnalyticsSnapshot{
		ProjectID:           projectID,
		GeneratedAt:         now.UTC().Format(time.RFC3339),
		Project:             meta,
		Overview:            *overview,
		Progress:            progress,
		AIUsage:             aiUsage,
		Collaboration:       collaboration,
		Productivity:        productivity,
		PublishingPromotion: publishing,
	}, nil
}

// projectMeta derives the snapshot header from the project record. Goal
// progress is capped at 100 percent.
func projectMeta(p *models.Project) models.ProjectMeta {
	meta := models.ProjectMeta{
		Title:            p.Title,
		Status:           p.Status,
		TargetWordCount:  p.TargetWordCount,
		CurrentWordCount: p.CurrentWordCount,
	}
	if p.TargetWordCount > 0 {
		meta.GoalProgress = 100 * float64(p.CurrentWordCount) / float64(p.TargetWordCount)
		if meta.GoalProgress > 100 {
			meta.GoalProgress = 100
		}
	}
	return meta
}

// writingProgress loads session and document-activity records and composes
// the streak into the bucketed progress section.
func (s *analyticsService) writingProgress(ctx context.Context, projectID string, now time.Time) (models.WritingProgress, error) {
	dates, err := s.store.ActivityDates(ctx, projectID)
	if err != nil {
		return models.WritingProgress{}, err
	}

	sessions, err := s.store.ListSessions(ctx, projectID)
	if err != nil {
		return models.WritingProgress{}, err
	}

	return computeWritingProgress(sessions, calculateStreaks(dates, now), now), nil
}

func (s *analyticsService) aiUsage(ctx context.Context, projectID string, now time.Time) (models.AIUsage, error) {
	total, err := s.store.CountGenerations(ctx, projectID)
	if err != nil {
		return models.AIUsage{}, err
	}

	byPersona, err := s.store.GenerationCountsByPersona(ctx, projectID)
	if err != nil {
		return models.AIUsage{}, err
	}

	recent, err := s.store.ListRecentGenerations(ctx, projectID, recentGenerationLimit)
	if err != nil {
		return models.AIUsage{}, err
	}

	windowed, err := s.store.ListGenerationsSince(ctx, projectID, dateOnly(now).AddDate(0, 0, -(tokenWindowDays-1)))
	if err != nil {
		return models.AIUsage{}, err
	}

	return buildAIUsage(total, byPersona, recent, windowed, s.costRate, s.labels), nil
}

func (s *analyticsService) collaboration(ctx context.Context, projectID string, now time.Time) (models.Collaboration, error) {
	total, err := s.store.CountCollaborators(ctx, projectID)
	if err != nil {
		return models.Collaboration{}, err
	}

	active, err := s.store.CountActiveAuthors(ctx, projectID, now.AddDate(0, 0, -activeCollaboratorDays))
	if err != nil {
		return models.Collaboration{}, err
	}

	entries, err := s.store.ListRecentActivity(ctx, projectID, recentActivityLimit)
	if err != nil {
		return models.Collaboration{}, err
	}

	ids := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.UserID]; ok {
			continue
		}
		seen[e.UserID] = struct{}{}
		ids = append(ids, e.UserID)
	}

	users, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return models.Collaboration{}, err
	}

	return buildCollaboration(total, active, entries, users), nil
}

// publishingPromotion runs the two external scorers over normalized inputs
// and merges their outputs verbatim. Nil scorers skip their section.
func (s *analyticsService) publishingPromotion(ctx context.Context, projectID string) (*models.PublishingPromotion, error) {
	if s.readiness == nil && s.attribution == nil {
		return nil, nil
	}

	result := &models.PublishingPromotion{}

	if s.readiness != nil {
		facts, err := s.store.GetPublishingFacts(ctx, projectID)
		if err != nil {
			return nil, err
		}
		result.Readiness = s.readiness(*facts)
	}

	if s.attribution != nil {
		records, err := s.store.ListRevenueRecords(ctx, projectID)
		if err != nil {
			return nil, err
		}
		result.Attribution = s.attribution(records)
	}

	return result, nil
}
