package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/Kan-O435/studytimer-back/internal/domain"
	"github.com/Kan-O435/studytimer-back/internal/report"
)

// FormatWeeklyReport renders a weekly report for terminal display:
// one block per day in ascending date order, then the recap text.
func FormatWeeklyReport(r *report.WeeklyReport) string {
	var b strings.Builder

	b.WriteString(Header("Weekly Report"))
	b.WriteString("\n\n")

	for _, bucket := range r.Data {
		b.WriteString(formatBucket(bucket))
	}

	if r.Summary != nil && *r.Summary != "" {
		b.WriteString(Header("Recap"))
		b.WriteString("\n")
		b.WriteString(StyleFg.Render(*r.Summary))
		b.WriteString("\n")
	}

	return b.String()
}

func formatBucket(bucket report.DailyBucket) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(bucket.Date))
	b.WriteString("  ")
	if bucket.TotalDurationMinutes > 0 {
		b.WriteString(StyleGreen.Render(formatMinutes(bucket.TotalDurationMinutes)))
	} else {
		b.WriteString(StyleDim.Render("no sessions"))
	}
	if bucket.AverageRating != nil {
		b.WriteString(StyleDim.Render("  avg "))
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%.1f", *bucket.AverageRating)))
	}
	b.WriteString("\n")

	for _, s := range bucket.Sessions {
		line := fmt.Sprintf("  #%d %s %s", s.ID, s.TaskTitle, formatMinutes(s.DurationMinutes))
		b.WriteString(StyleFg.Render(line))
		if s.Rating != nil {
			b.WriteString("  " + Stars(*s.Rating))
		}
		if s.Comment != nil && *s.Comment != "" {
			b.WriteString("  " + StyleDim.Render(*s.Comment))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	return b.String()
}

// FormatSessionList renders sessions as one line each.
func FormatSessionList(sessions []*domain.TimerSession) string {
	if len(sessions) == 0 {
		return StyleDim.Render("No sessions logged yet.") + "\n"
	}

	var b strings.Builder
	for _, s := range sessions {
		b.WriteString(sessionLine(s))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSession renders one session with its review detail.
func FormatSession(s *domain.TimerSession) string {
	var b strings.Builder
	b.WriteString(sessionLine(s))
	b.WriteString("\n")
	if s.Review != nil {
		b.WriteString("  " + Stars(s.Review.Score))
		if s.Review.Comment != nil && *s.Review.Comment != "" {
			b.WriteString("  " + StyleFg.Render(*s.Review.Comment))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(StyleDim.Render("  not reviewed"))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatTaskList renders tasks as one line each.
func FormatTaskList(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return StyleDim.Render("No tasks yet.") + "\n"
	}

	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("%s %s", StyleBold.Render(fmt.Sprintf("#%d", t.ID)), StyleFg.Render(t.Title)))
		if t.Description != "" {
			b.WriteString("  " + StyleDim.Render(t.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func sessionLine(s *domain.TimerSession) string {
	title := report.NoTaskPlaceholder
	if s.Task != nil {
		title = s.Task.Title
	}
	line := fmt.Sprintf("#%d %s %s %s",
		s.ID,
		s.StartedAt.Local().Format("2006-01-02 15:04"),
		StyleFg.Render(title),
		StyleGreen.Render(formatMinutes(s.DurationMinutes)),
	)
	if s.Review != nil {
		line += "  " + Stars(s.Review.Score)
	}
	return line
}

func formatMinutes(min int) string {
	if min >= 60 {
		d := time.Duration(min) * time.Minute
		h := int(d.Hours())
		m := min - h*60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	return fmt.Sprintf("%dm", min)
}
