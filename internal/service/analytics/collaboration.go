package analytics

import (
	"time"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

const (
	recentActivityLimit    = 20
	activeCollaboratorDays = 7
)

// buildCollaboration resolves the recent-activity feed against the user
// directory. Entries whose author is missing from the directory, or whose
// record carries no usable name, fall back to the Unknown User placeholder.
func buildCollaboration(total, active int, entries []models.ActivityLogEntry, users map[string]models.User) models.Collaboration {
	collab := models.Collaboration{
		TotalCollaborators:  total,
		ActiveCollaborators: active,
		RecentActivity:      make([]models.RecentActivityEntry, 0, len(entries)),
	}

	for _, e := range entries {
		name := models.UnknownUserName
		if u, ok := users[e.UserID]; ok {
			name = u.DisplayName()
		}
		collab.RecentActivity = append(collab.RecentActivity, models.RecentActivityEntry{
			ID:         e.ID,
			UserName:   name,
			Action:     e.Action,
			EntityType: e.EntityType,
			CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return collab
}
