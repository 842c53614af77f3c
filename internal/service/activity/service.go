package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/ReeseAstor/88Away-sub000/internal/config"
	"github.com/ReeseAstor/88Away-sub000/internal/domain"
	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
	"github.com/ReeseAstor/88Away-sub000/internal/domain/repositories"
	"github.com/ReeseAstor/88Away-sub000/internal/domain/services"
)

// activityService implements the ActivityService interface
type activityService struct {
	activityRepo repositories.ActivityLogRepository
	sessionRepo  repositories.WritingSessionRepository
	txManager    repositories.TransactionManager
	logger       *slog.Logger
}

// NewService creates the write-path activity service
func NewService(
	activityRepo repositories.ActivityLogRepository,
	sessionRepo repositories.WritingSessionRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.ActivityService {
	return &activityService{
		activityRepo: activityRepo,
		sessionRepo:  sessionRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// LogActivity appends an audit entry for a user action
func (s *activityService) LogActivity(ctx context.Context, req *services.LogActivityRequest) (*models.ActivityLogEntry, error) {
	if err := validateLogRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	var details []byte
	if len(req.Details) > 0 {
		var err error
		details, err = json.Marshal(req.Details)
		if err != nil {
			return nil, fmt.Errorf("%w: details not serializable", domain.ErrValidation)
		}
	}

	entry := &models.ActivityLogEntry{
		ID:         uuid.NewString(),
		ProjectID:  req.ProjectID,
		UserID:     req.UserID,
		Action:     req.Action,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.activityRepo.Insert(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Debug("activity logged",
		"project_id", entry.ProjectID,
		"user_id", entry.UserID,
		"action", entry.Action,
	)

	return entry, nil
}

// StartWritingSession opens a session and returns it with its ID
func (s *activityService) StartWritingSession(ctx context.Context, req *services.StartSessionRequest) (*models.WritingSession, error) {
	if err := validateStartRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now().UTC()
	session := &models.WritingSession{
		ID:         uuid.NewString(),
		ProjectID:  req.ProjectID,
		UserID:     req.UserID,
		DocumentID: req.DocumentID,
		StartTime:  now,
		CreatedAt:  now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("writing session started",
		"session_id", session.ID,
		"project_id", session.ProjectID,
		"user_id", session.UserID,
	)

	return session, nil
}

// EndWritingSession closes an open session and logs the matching activity
// entry in the same transaction, so the analytics read path never sees one
// without the other.
func (s *activityService) EndWritingSession(ctx context.Context, sessionID string, req *services.EndSessionRequest) (*models.WritingSession, error) {
	if err := validateEndRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Ended() {
		return nil, fmt.Errorf("session %s already ended: %w", sessionID, domain.ErrConflict)
	}

	endTime := time.Now().UTC()

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.sessionRepo.End(txCtx, sessionID, req.WordsWritten, req.Duration, endTime); err != nil {
			return err
		}

		entry := &models.ActivityLogEntry{
			ID:         uuid.NewString(),
			ProjectID:  session.ProjectID,
			UserID:     session.UserID,
			Action:     "session_ended",
			EntityType: "writing_session",
			EntityID:   &session.ID,
			CreatedAt:  endTime,
		}
		return s.activityRepo.Insert(txCtx, entry)
	})
	if err != nil {
		return nil, err
	}

	session.WordsWritten = req.WordsWritten
	session.Duration = req.Duration
	session.EndTime = &endTime

	s.logger.Info("writing session ended",
		"session_id", session.ID,
		"project_id", session.ProjectID,
		"words_written", session.WordsWritten,
		"duration", session.Duration,
	)

	return session, nil
}

func validateLogRequest(req *services.LogActivityRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ProjectID, validation.Required),
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Action, validation.Required, validation.Length(1, config.MaxActionLength)),
		validation.Field(&req.EntityType, validation.Required, validation.Length(1, config.MaxEntityTypeLength)),
	)
}

func validateStartRequest(req *services.StartSessionRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ProjectID, validation.Required),
		validation.Field(&req.UserID, validation.Required),
	)
}

func validateEndRequest(req *services.EndSessionRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.WordsWritten, validation.Min(0)),
		validation.Field(&req.Duration, validation.Min(0)),
	)
}
