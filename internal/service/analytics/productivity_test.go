package analytics

import (
	"testing"
	"time"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

func TestComputeProductivityEmpty(t *testing.T) {
	prod := computeProductivity(nil, day("2026-03-15"))

	if prod.AverageSessionDuration != 0 || prod.TotalWritingTime != 0 ||
		prod.MostProductiveHour != 0 || prod.ConsistencyScore != 0 {
		t.Errorf("empty productivity not zeroed: %+v", prod)
	}
}

func TestComputeProductivityDurations(t *testing.T) {
	now := day("2026-03-15").Add(18 * time.Hour)
	sessions := []models.WritingSession{
		{Duration: 30, StartTime: now.Add(-2 * time.Hour), CreatedAt: now},
		{Duration: 60, StartTime: now.Add(-26 * time.Hour), CreatedAt: now.AddDate(0, 0, -1)},
		{Duration: 45, StartTime: now.Add(-50 * time.Hour), CreatedAt: now.AddDate(0, 0, -2)},
	}

	prod := computeProductivity(sessions, now)

	if prod.TotalWritingTime != 135 {
		t.Errorf("TotalWritingTime = %d, want 135", prod.TotalWritingTime)
	}
	if prod.AverageSessionDuration != 45 {
		t.Errorf("AverageSessionDuration = %v, want 45", prod.AverageSessionDuration)
	}
}

func TestMostProductiveHour(t *testing.T) {
	at := func(hour int) models.WritingSession {
		return models.WritingSession{
			StartTime: time.Date(2026, 3, 10, hour, 0, 0, 0, time.UTC),
			CreatedAt: day("2026-03-10"),
			Duration:  30,
		}
	}
	now := day("2026-03-15")

	t.Run("highest count wins", func(t *testing.T) {
		prod := computeProductivity([]models.WritingSession{at(9), at(21), at(21)}, now)
		if prod.MostProductiveHour != 21 {
			t.Errorf("MostProductiveHour = %d, want 21", prod.MostProductiveHour)
		}
	})

	t.Run("tie goes to smallest hour", func(t *testing.T) {
		prod := computeProductivity([]models.WritingSession{at(21), at(9), at(9), at(21)}, now)
		if prod.MostProductiveHour != 9 {
			t.Errorf("MostProductiveHour = %d, want 9", prod.MostProductiveHour)
		}
	})
}

func TestConsistencyScore(t *testing.T) {
	now := day("2026-03-30")

	tests := []struct {
		name       string
		activeDays int
		want       int
	}{
		{"15 of 30 days", 15, 50},
		{"all 30 days", 30, 100},
		{"one day", 1, 3}, // round(100/30)
		{"ten days", 10, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := make([]models.WritingSession, 0, tt.activeDays)
			for i := 0; i < tt.activeDays; i++ {
				created := now.AddDate(0, 0, -i)
				sessions = append(sessions, models.WritingSession{
					StartTime: created.Add(9 * time.Hour),
					CreatedAt: created,
					Duration:  25,
				})
			}

			prod := computeProductivity(sessions, now)
			if prod.ConsistencyScore != tt.want {
				t.Errorf("ConsistencyScore = %d, want %d", prod.ConsistencyScore, tt.want)
			}
		})
	}
}

func TestConsistencyIgnoresOldSessions(t *testing.T) {
	now := day("2026-03-30")
	sessions := []models.WritingSession{
		{StartTime: now, CreatedAt: now, Duration: 30},
		{StartTime: now.AddDate(0, 0, -60), CreatedAt: now.AddDate(0, 0, -60), Duration: 30},
	}

	prod := computeProductivity(sessions, now)
	if prod.ConsistencyScore != 3 {
		t.Errorf("ConsistencyScore = %d, want 3", prod.ConsistencyScore)
	}
	// Old sessions still count toward totals and peak hour
	if prod.TotalWritingTime != 60 {
		t.Errorf("TotalWritingTime = %d, want 60", prod.TotalWritingTime)
	}
}
