package analytics

import (
	"sort"
	"time"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

// Trailing window lengths for the bucketed series.
const (
	dailyWindowDays   = 30
	weeklyWindowWeeks = 12
	monthlyWindowMons = 12
)

// weekStart returns the ISO week start (Monday) of the day containing t.
func weekStart(t time.Time) time.Time {
	day := dateOnly(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}

// monthStart returns the first day of the month containing t.
func monthStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// bucketSessions groups sessions into ascending (key, words, count) buckets.
// Sessions older than windowStart are skipped; only buckets that saw
// activity appear.
func bucketSessions(sessions []models.WritingSession, windowStart time.Time, keyFn func(time.Time) time.Time) []models.ProgressBucket {
	type acc struct {
		words    int
		sessions int
	}
	byKey := make(map[time.Time]*acc)
	for _, s := range sessions {
		if dateOnly(s.CreatedAt).Before(windowStart) {
			continue
		}
		key := keyFn(s.CreatedAt)
		a := byKey[key]
		if a == nil {
			a = &acc{}
			byKey[key] = a
		}
		a.words += s.WordsWritten
		a.sessions++
	}

	keys := make([]time.Time, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	buckets := make([]models.ProgressBucket, 0, len(keys))
	for _, k := range keys {
		buckets = append(buckets, models.ProgressBucket{
			BucketKey:    k.Format(dayFormat),
			WordsWritten: byKey[k].words,
			SessionCount: byKey[k].sessions,
		})
	}
	return buckets
}

// periodStats sums words over the trailing windowDays ending today. The
// average divides by the fixed window length, so days without any activity
// still count toward the denominator. The most productive day is the
// weekday name of the day with the highest word total; ties go to the
// earliest date in the window.
func periodStats(sessions []models.WritingSession, today time.Time, windowDays int) models.PeriodStats {
	windowStart := today.AddDate(0, 0, -(windowDays - 1))

	wordsByDay := make(map[time.Time]int)
	total := 0
	for _, s := range sessions {
		day := dateOnly(s.CreatedAt)
		if day.Before(windowStart) || day.After(today) {
			continue
		}
		wordsByDay[day] += s.WordsWritten
		total += s.WordsWritten
	}

	stats := models.PeriodStats{
		TotalWords:   total,
		AverageDaily: float64(total) / float64(windowDays),
	}

	var bestDay time.Time
	bestWords := -1
	for day, words := range wordsByDay {
		if words > bestWords || (words == bestWords && day.Before(bestDay)) {
			bestDay = day
			bestWords = words
		}
	}
	if bestWords >= 0 {
		stats.MostProductiveDay = bestDay.Weekday().String()
	}

	return stats
}

// computeWritingProgress builds the three bucketed series plus the trailing
// weekly/monthly stats. The streak comes from document activity dates, not
// sessions, and is composed in by the caller.
func computeWritingProgress(sessions []models.WritingSession, streak models.StreakInfo, now time.Time) models.WritingProgress {
	today := dateOnly(now)

	return models.WritingProgress{
		Daily:        bucketSessions(sessions, today.AddDate(0, 0, -(dailyWindowDays-1)), dateOnly),
		Weekly:       bucketSessions(sessions, weekStart(today).AddDate(0, 0, -7*(weeklyWindowWeeks-1)), weekStart),
		Monthly:      bucketSessions(sessions, monthStart(today).AddDate(0, -(monthlyWindowMons-1), 0), monthStart),
		WeeklyStats:  periodStats(sessions, today, 7),
		MonthlyStats: periodStats(sessions, today, 31),
		Streak:       streak,
	}
}
