package analytics

import (
	"math"
	"time"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

const consistencyWindowDays = 30

// computeProductivity derives session-duration stats, the peak writing hour
// and the consistency score from the project's full session history.
//
// The most productive hour is the start-time hour (UTC) with the highest
// session count; ties go to the smallest hour. The consistency score is the
// share of the trailing 30 days with at least one session, rounded to a
// percentage.
func computeProductivity(sessions []models.WritingSession, now time.Time) models.Productivity {
	var prod models.Productivity
	if len(sessions) == 0 {
		return prod
	}

	totalDuration := 0
	var hourCounts [24]int
	activeDays := make(map[time.Time]struct{})
	windowStart := dateOnly(now).AddDate(0, 0, -(consistencyWindowDays - 1))

	for _, s := range sessions {
		totalDuration += s.Duration
		hourCounts[s.StartTime.UTC().Hour()]++

		day := dateOnly(s.CreatedAt)
		if !day.Before(windowStart) && !day.After(dateOnly(now)) {
			activeDays[day] = struct{}{}
		}
	}

	prod.TotalWritingTime = totalDuration
	prod.AverageSessionDuration = float64(totalDuration) / float64(len(sessions))

	best := 0
	for hour, count := range hourCounts {
		if count > hourCounts[best] {
			best = hour
		}
	}
	prod.MostProductiveHour = best

	prod.ConsistencyScore = int(math.Round(100 * float64(len(activeDays)) / float64(consistencyWindowDays)))

	return prod
}
