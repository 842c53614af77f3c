package analytics

import (
	"testing"
	"time"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

func TestBuildCollaboration(t *testing.T) {
	created := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	entries := []models.ActivityLogEntry{
		{ID: "a1", UserID: "u1", Action: "document_updated", EntityType: "document", CreatedAt: created},
		{ID: "a2", UserID: "u2", Action: "comment_added", EntityType: "document", CreatedAt: created},
		{ID: "a3", UserID: "u3", Action: "session_ended", EntityType: "writing_session", CreatedAt: created},
		{ID: "a4", UserID: "u4", Action: "document_updated", EntityType: "document", CreatedAt: created},
	}
	users := map[string]models.User{
		"u1": {ID: "u1", FirstName: "Maya", LastName: "Reyes", Email: "maya@example.com"},
		"u2": {ID: "u2", Email: "jordan@example.com"},
		"u3": {ID: "u3"},
		// u4 missing from the directory entirely
	}

	collab := buildCollaboration(3, 2, entries, users)

	if collab.TotalCollaborators != 3 || collab.ActiveCollaborators != 2 {
		t.Errorf("counts = %d/%d, want 3/2", collab.TotalCollaborators, collab.ActiveCollaborators)
	}
	if len(collab.RecentActivity) != 4 {
		t.Fatalf("RecentActivity len = %d, want 4", len(collab.RecentActivity))
	}

	wantNames := []string{"Maya Reyes", "jordan@example.com", models.UnknownUserName, models.UnknownUserName}
	for i, want := range wantNames {
		if collab.RecentActivity[i].UserName != want {
			t.Errorf("entry %d UserName = %q, want %q", i, collab.RecentActivity[i].UserName, want)
		}
	}

	if collab.RecentActivity[0].CreatedAt != "2026-03-15T10:00:00Z" {
		t.Errorf("CreatedAt = %q, want RFC3339 UTC", collab.RecentActivity[0].CreatedAt)
	}
}

func TestBuildCollaborationEmpty(t *testing.T) {
	collab := buildCollaboration(0, 0, nil, nil)

	if collab.RecentActivity == nil {
		t.Error("RecentActivity should serialize as [], not null")
	}
	if len(collab.RecentActivity) != 0 {
		t.Errorf("RecentActivity len = %d, want 0", len(collab.RecentActivity))
	}
}
