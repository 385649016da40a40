package formatter

import (
	"strings"
	"testing"

	"github.com/Kan-O435/studytimer-back/internal/report"
	"github.com/stretchr/testify/assert"
)

func TestFormatWeeklyReport(t *testing.T) {
	avg := 4.5
	rating := 5
	comment := "集中できた"
	summaryText := "よく頑張りました。"

	weekly := &report.WeeklyReport{
		Data: []report.DailyBucket{
			{
				Date:                 "2025年06月16日 (Mon)",
				TotalDurationMinutes: 90,
				AverageRating:        &avg,
				Sessions: []report.SessionSummary{
					{ID: 1, TaskTitle: "英単語", DurationMinutes: 60, Rating: &rating, Comment: &comment},
					{ID: 2, TaskTitle: report.NoTaskPlaceholder, DurationMinutes: 30},
				},
			},
			{Date: "2025年06月17日 (Tue)", Sessions: []report.SessionSummary{}},
		},
		Summary: &summaryText,
	}

	out := FormatWeeklyReport(weekly)

	assert.Contains(t, out, "2025年06月16日 (Mon)")
	assert.Contains(t, out, "1h30m")
	assert.Contains(t, out, "4.5")
	assert.Contains(t, out, "英単語")
	assert.Contains(t, out, report.NoTaskPlaceholder)
	assert.Contains(t, out, "集中できた")
	assert.Contains(t, out, "no sessions")
	assert.Contains(t, out, summaryText)
}

func TestStars(t *testing.T) {
	assert.Equal(t, 3, strings.Count(Stars(3), "★"))
	assert.Equal(t, 2, strings.Count(Stars(3), "☆"))
	assert.Contains(t, Stars(0), "-")
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45m", formatMinutes(45))
	assert.Equal(t, "2h", formatMinutes(120))
	assert.Equal(t, "1h05m", formatMinutes(65))
}
