package report

import "time"

// NoTaskPlaceholder is rendered as the task title of a session that was
// logged without a task.
const NoTaskPlaceholder = "（タスクなし）"

// displayDateLayout renders a bucket date as "2025年06月22日 (Sun)".
const displayDateLayout = "2006年01月02日 (Mon)"

// SessionSummary is the public per-session record inside a daily bucket.
// Rating and comment stay null when the session has no review.
type SessionSummary struct {
	ID              int64   `json:"id"`
	TaskTitle       string  `json:"task_title"`
	DurationMinutes int     `json:"duration_minutes"`
	Rating          *int    `json:"rating"`
	Comment         *string `json:"comment"`
}

// DailyBucket aggregates one calendar day of the report window.
// AverageRating is null for days without any scored session.
type DailyBucket struct {
	Date                 string           `json:"date"`
	TotalDurationMinutes int              `json:"total_duration_minutes"`
	AverageRating        *float64         `json:"average_rating"`
	Sessions             []SessionSummary `json:"sessions"`

	// Day is the bucket's calendar date at midnight in the report
	// timezone. Kept off the wire; the serialized date is Date.
	Day time.Time `json:"-"`
}

// WeeklyReport is the full report payload: exactly seven buckets in
// ascending date order plus the summarization result.
type WeeklyReport struct {
	Data    []DailyBucket `json:"data"`
	Summary *string       `json:"summary"`
}
