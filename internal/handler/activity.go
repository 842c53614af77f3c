package handler

import (
	"log/slog"
	"net/http"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/services"
	"github.com/ReeseAstor/88Away-sub000/internal/httputil"
)

// ActivityHandler handles activity-log and writing-session HTTP requests
type ActivityHandler struct {
	activityService services.ActivityService
	logger          *slog.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService services.ActivityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		logger:          logger,
	}
}

// LogActivity appends an activity-log entry for the project
// POST /api/projects/{id}/activity
func (h *ActivityHandler) LogActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	projectID := r.PathValue("id")
	if projectID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	var req services.LogActivityRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.ProjectID = projectID
	req.UserID = userID

	entry, err := h.activityService.LogActivity(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, entry)
}

// StartSession opens a writing session on the project
// POST /api/projects/{id}/sessions
func (h *ActivityHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	projectID := r.PathValue("id")
	if projectID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	var req services.StartSessionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.ProjectID = projectID
	req.UserID = userID

	session, err := h.activityService.StartWritingSession(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, session)
}

// EndSession closes an open writing session
// POST /api/sessions/{id}/end
func (h *ActivityHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	sessionID := r.PathValue("id")
	if sessionID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "session ID is required")
		return
	}

	var req services.EndSessionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.activityService.EndWritingSession(r.Context(), sessionID, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, session)
}
