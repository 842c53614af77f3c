package activity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReeseAstor/88Away-sub000/internal/domain"
	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
	"github.com/ReeseAstor/88Away-sub000/internal/domain/repositories"
	"github.com/ReeseAstor/88Away-sub000/internal/domain/services"
)

type fakeActivityRepo struct {
	entries   []*models.ActivityLogEntry
	insertErr error
}

func (f *fakeActivityRepo) Insert(_ context.Context, entry *models.ActivityLogEntry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.entries = append(f.entries, entry)
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*models.WritingSession
	endErr   error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*models.WritingSession)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *models.WritingSession) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id string) (*models.WritingSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionRepo) End(_ context.Context, id string, wordsWritten, duration int, endTime time.Time) error {
	if f.endErr != nil {
		return f.endErr
	}
	s, ok := f.sessions[id]
	if !ok || s.EndTime != nil {
		return domain.ErrNotFound
	}
	s.WordsWritten = wordsWritten
	s.Duration = duration
	s.EndTime = &endTime
	return nil
}

// fakeTxManager runs the function directly; rollback is simulated by the
// caller inspecting the returned error.
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	f.calls++
	return fn(ctx)
}

func newTestService() (services.ActivityService, *fakeActivityRepo, *fakeSessionRepo, *fakeTxManager) {
	activityRepo := &fakeActivityRepo{}
	sessionRepo := newFakeSessionRepo()
	tx := &fakeTxManager{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(activityRepo, sessionRepo, tx, logger), activityRepo, sessionRepo, tx
}

func TestLogActivity(t *testing.T) {
	svc, repo, _, _ := newTestService()

	entry, err := svc.LogActivity(context.Background(), &services.LogActivityRequest{
		ProjectID:  "p1",
		UserID:     "u1",
		Action:     "document_updated",
		EntityType: "document",
		Details:    map[string]any{"field": "title"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "document_updated", entry.Action)
	assert.JSONEq(t, `{"field":"title"}`, string(entry.Details))
	require.Len(t, repo.entries, 1)
}

func TestLogActivityValidation(t *testing.T) {
	svc, repo, _, _ := newTestService()

	tests := []struct {
		name string
		req  services.LogActivityRequest
	}{
		{"missing action", services.LogActivityRequest{ProjectID: "p1", UserID: "u1", EntityType: "document"}},
		{"missing entity type", services.LogActivityRequest{ProjectID: "p1", UserID: "u1", Action: "x"}},
		{"missing project", services.LogActivityRequest{UserID: "u1", Action: "x", EntityType: "document"}},
		{"overlong action", services.LogActivityRequest{
			ProjectID: "p1", UserID: "u1", EntityType: "document",
			Action: string(make([]byte, 101)),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := svc.LogActivity(context.Background(), &req)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation), "want ErrValidation, got %v", err)
		})
	}
	assert.Empty(t, repo.entries, "invalid requests must not be persisted")
}

func TestStartWritingSession(t *testing.T) {
	svc, _, sessions, _ := newTestService()

	session, err := svc.StartWritingSession(context.Background(), &services.StartSessionRequest{
		ProjectID: "p1",
		UserID:    "u1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.False(t, session.Ended())
	assert.Contains(t, sessions.sessions, session.ID)
}

func TestStartWritingSessionValidation(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.StartWritingSession(context.Background(), &services.StartSessionRequest{UserID: "u1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestEndWritingSession(t *testing.T) {
	svc, activityRepo, _, tx := newTestService()

	session, err := svc.StartWritingSession(context.Background(), &services.StartSessionRequest{
		ProjectID: "p1",
		UserID:    "u1",
	})
	require.NoError(t, err)

	ended, err := svc.EndWritingSession(context.Background(), session.ID, &services.EndSessionRequest{
		WordsWritten: 850,
		Duration:     45,
	})

	require.NoError(t, err)
	assert.True(t, ended.Ended())
	assert.Equal(t, 850, ended.WordsWritten)
	assert.Equal(t, 45, ended.Duration)
	assert.Equal(t, 1, tx.calls, "end must run inside a transaction")

	require.Len(t, activityRepo.entries, 1)
	entry := activityRepo.entries[0]
	assert.Equal(t, "session_ended", entry.Action)
	assert.Equal(t, "writing_session", entry.EntityType)
	require.NotNil(t, entry.EntityID)
	assert.Equal(t, session.ID, *entry.EntityID)
}

func TestEndWritingSessionTwice(t *testing.T) {
	svc, _, _, _ := newTestService()

	session, err := svc.StartWritingSession(context.Background(), &services.StartSessionRequest{
		ProjectID: "p1",
		UserID:    "u1",
	})
	require.NoError(t, err)

	_, err = svc.EndWritingSession(context.Background(), session.ID, &services.EndSessionRequest{WordsWritten: 100, Duration: 10})
	require.NoError(t, err)

	_, err = svc.EndWritingSession(context.Background(), session.ID, &services.EndSessionRequest{WordsWritten: 200, Duration: 20})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict), "want ErrConflict, got %v", err)
}

func TestEndWritingSessionUnknownID(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.EndWritingSession(context.Background(), "missing", &services.EndSessionRequest{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestEndWritingSessionNegativeNumbers(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.EndWritingSession(context.Background(), "s1", &services.EndSessionRequest{
		WordsWritten: -5,
		Duration:     10,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestEndWritingSessionActivityFailureAborts(t *testing.T) {
	activityRepo := &fakeActivityRepo{insertErr: errors.New("insert failed")}
	sessionRepo := newFakeSessionRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(activityRepo, sessionRepo, &fakeTxManager{}, logger)

	session, err := svc.StartWritingSession(context.Background(), &services.StartSessionRequest{
		ProjectID: "p1",
		UserID:    "u1",
	})
	require.NoError(t, err)

	_, err = svc.EndWritingSession(context.Background(), session.ID, &services.EndSessionRequest{WordsWritten: 100, Duration: 10})
	require.Error(t, err)
}
