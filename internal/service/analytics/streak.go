package analytics

import (
	"sort"
	"time"

	"github.com/ReeseAstor/88Away-sub000/internal/domain/models"
)

// dayFormat is the calendar-date form used across the snapshot.
const dayFormat = "2006-01-02"

// dateOnly strips time-of-day, normalizing to a UTC calendar day.
// Day boundaries are UTC throughout the engine.
func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns b-a in whole days. Both arguments must be UTC
// midnights, which makes the division exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// calculateStreaks derives consecutive-day streaks from the set of calendar
// dates with writing activity. Input dates need not be deduplicated or
// sorted; today anchors the current-streak check.
//
// The current streak is broken when the gap between today and the last
// active date exceeds one day: a streak ending yesterday still counts, a
// streak ending two days ago does not.
func calculateStreaks(dates []time.Time, today time.Time) models.StreakInfo {
	if len(dates) == 0 {
		return models.StreakInfo{}
	}

	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := dateOnly(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	last := days[len(days)-1]
	info := models.StreakInfo{
		LongestStreak:  longest,
		LastActiveDate: last.Format(dayFormat),
	}

	if daysBetween(last, dateOnly(today)) > 1 {
		return info
	}

	current := 1
	for i := len(days) - 2; i >= 0; i-- {
		if daysBetween(days[i], days[i+1]) != 1 {
			break
		}
		current++
	}
	info.CurrentStreak = current

	return info
}
