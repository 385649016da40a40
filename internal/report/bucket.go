package report

import (
	"math"
	"time"

	"github.com/Kan-O435/studytimer-back/internal/domain"
)

// BuildWeeklyData partitions sessions into exactly seven per-day buckets
// spanning the window, in ascending date order.
//
// A session lands in the bucket matching its start timestamp's calendar
// date in loc. Sessions outside the window are discarded; the reader
// contract already excludes them, so this only guards against clock or
// timezone drift between query and bucketing. Within a bucket, sessions
// keep the order the reader returned them in (ascending start time).
func BuildWeeklyData(win Window, loc *time.Location, sessions []*domain.TimerSession) []DailyBucket {
	buckets := make([]DailyBucket, DaysPerWeek)
	scores := make([][]int, DaysPerWeek)
	for i := range buckets {
		day := win.Start.AddDate(0, 0, i)
		buckets[i] = DailyBucket{
			Date:     day.Format(displayDateLayout),
			Sessions: []SessionSummary{},
			Day:      day,
		}
	}

	for _, s := range sessions {
		idx := dayIndex(win.Start, s.StartedAt.In(loc))
		if idx < 0 || idx >= DaysPerWeek {
			continue
		}
		buckets[idx].TotalDurationMinutes += s.DurationMinutes
		if s.Review != nil {
			scores[idx] = append(scores[idx], s.Review.Score)
		}
		buckets[idx].Sessions = append(buckets[idx].Sessions, summarize(s))
	}

	for i := range buckets {
		if len(scores[i]) > 0 {
			avg := roundToOneDecimal(mean(scores[i]))
			buckets[i].AverageRating = &avg
		}
	}

	return buckets
}

// summarize converts a session to its public shape. Rating and comment
// stay nil without a review; a missing task renders as the placeholder
// title, never as null or empty string.
func summarize(s *domain.TimerSession) SessionSummary {
	summary := SessionSummary{
		ID:              s.ID,
		TaskTitle:       NoTaskPlaceholder,
		DurationMinutes: s.DurationMinutes,
	}
	if s.Task != nil {
		summary.TaskTitle = s.Task.Title
	}
	if s.Review != nil {
		score := s.Review.Score
		summary.Rating = &score
		summary.Comment = s.Review.Comment
	}
	return summary
}

// dayIndex returns how many calendar days t falls after the window start.
// Computed on civil dates so a DST transition inside the window cannot
// shift a session into a neighboring bucket.
func dayIndex(windowStart, t time.Time) int {
	startDay := time.Date(windowStart.Year(), windowStart.Month(), windowStart.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(startDay).Hours() / 24)
}

func mean(scores []int) float64 {
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
