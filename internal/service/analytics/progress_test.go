package analytics

import (
	"testing"
	"time"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

func session(createdAt time.Time, words int) models.WritingSession {
	return models.WritingSession{
		WordsWritten: words,
		Duration:     30,
		StartTime:    createdAt,
		CreatedAt:    createdAt,
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"monday maps to itself", "2026-03-09", "2026-03-09"},
		{"wednesday maps to monday", "2026-03-11", "2026-03-09"},
		{"sunday maps to previous monday", "2026-03-15", "2026-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weekStart(day(tt.in)).Format(dayFormat)
			if got != tt.want {
				t.Errorf("weekStart(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestBucketSessions(t *testing.T) {
	windowStart := day("2026-03-01")
	sessions := []models.WritingSession{
		session(day("2026-03-10").Add(9*time.Hour), 500),
		session(day("2026-03-10").Add(20*time.Hour), 300),
		session(day("2026-03-05"), 200),
		session(day("2026-02-20"), 9999), // before window, skipped
	}

	buckets := bucketSessions(sessions, windowStart, dateOnly)

	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if buckets[0].BucketKey != "2026-03-05" || buckets[1].BucketKey != "2026-03-10" {
		t.Errorf("bucket keys not ascending: %s, %s", buckets[0].BucketKey, buckets[1].BucketKey)
	}
	if buckets[1].WordsWritten != 800 || buckets[1].SessionCount != 2 {
		t.Errorf("merged bucket = %d words / %d sessions, want 800/2",
			buckets[1].WordsWritten, buckets[1].SessionCount)
	}
}

func TestPeriodStats(t *testing.T) {
	today := day("2026-03-15") // a Sunday

	t.Run("average divides by full window", func(t *testing.T) {
		sessions := []models.WritingSession{
			session(day("2026-03-14"), 700),
		}
		stats := periodStats(sessions, today, 7)

		if stats.TotalWords != 700 {
			t.Errorf("TotalWords = %d, want 700", stats.TotalWords)
		}
		if stats.AverageDaily != 100 {
			t.Errorf("AverageDaily = %v, want 100", stats.AverageDaily)
		}
	})

	t.Run("most productive day is weekday name", func(t *testing.T) {
		sessions := []models.WritingSession{
			session(day("2026-03-13"), 400), // Friday
			session(day("2026-03-14"), 900), // Saturday
		}
		stats := periodStats(sessions, today, 7)

		if stats.MostProductiveDay != "Saturday" {
			t.Errorf("MostProductiveDay = %q, want Saturday", stats.MostProductiveDay)
		}
	})

	t.Run("tie goes to earliest date", func(t *testing.T) {
		sessions := []models.WritingSession{
			session(day("2026-03-12"), 500), // Thursday
			session(day("2026-03-14"), 500), // Saturday
		}
		stats := periodStats(sessions, today, 7)

		if stats.MostProductiveDay != "Thursday" {
			t.Errorf("MostProductiveDay = %q, want Thursday", stats.MostProductiveDay)
		}
	})

	t.Run("sessions outside window excluded", func(t *testing.T) {
		sessions := []models.WritingSession{
			session(day("2026-03-01"), 1000),
		}
		stats := periodStats(sessions, today, 7)

		if stats.TotalWords != 0 {
			t.Errorf("TotalWords = %d, want 0", stats.TotalWords)
		}
		if stats.MostProductiveDay != "" {
			t.Errorf("MostProductiveDay = %q, want empty", stats.MostProductiveDay)
		}
	})
}

func TestComputeWritingProgress(t *testing.T) {
	now := day("2026-03-15").Add(13 * time.Hour)
	sessions := []models.WritingSession{
		session(day("2026-03-15").Add(9*time.Hour), 600),
		session(day("2026-03-14").Add(9*time.Hour), 400),
		session(day("2026-01-02"), 5000), // beyond the daily window, inside monthly
	}
	streak := models.StreakInfo{CurrentStreak: 2, LongestStreak: 4, LastActiveDate: "2026-03-15"}

	progress := computeWritingProgress(sessions, streak, now)

	if len(progress.Daily) != 2 {
		t.Fatalf("Daily buckets = %d, want 2", len(progress.Daily))
	}
	if progress.Daily[0].BucketKey != "2026-03-14" {
		t.Errorf("Daily[0] = %s, want 2026-03-14", progress.Daily[0].BucketKey)
	}
	if len(progress.Monthly) != 2 {
		t.Errorf("Monthly buckets = %d, want 2", len(progress.Monthly))
	}
	if progress.WeeklyStats.TotalWords != 1000 {
		t.Errorf("WeeklyStats.TotalWords = %d, want 1000", progress.WeeklyStats.TotalWords)
	}
	if progress.Streak != streak {
		t.Errorf("Streak = %+v, want %+v", progress.Streak, streak)
	}
}
