package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Kan-O435/studytimer-back/internal/report"
	"github.com/Kan-O435/studytimer-back/internal/repository"
	"github.com/Kan-O435/studytimer-back/internal/summary"
)

type weeklyReportService struct {
	sessions   repository.SessionReader
	summarizer summary.Client
	loc        *time.Location
	now        func() time.Time
}

// NewWeeklyReportService creates a WeeklyReportService. now may be nil, in
// which case time.Now is used; tests pin it to a fixed instant.
func NewWeeklyReportService(sessions repository.SessionReader, summarizer summary.Client, loc *time.Location, now func() time.Time) WeeklyReportService {
	if now == nil {
		now = time.Now
	}
	return &weeklyReportService{
		sessions:   sessions,
		summarizer: summarizer,
		loc:        loc,
		now:        now,
	}
}

func (s *weeklyReportService) Build(ctx context.Context, userID int64, weekOffset int) (*report.WeeklyReport, error) {
	win := report.ResolveWindow(s.now(), s.loc, weekOffset)

	sessions, err := s.sessions.ListByUserInRange(ctx, userID, win.Start, win.QueryEnd)
	if err != nil {
		return nil, fmt.Errorf("fetching sessions for report: %w", err)
	}

	buckets := report.BuildWeeklyData(win, s.loc, sessions)

	// The summarizer degrades to a fallback text on every failure mode;
	// nothing past the session fetch can fail the report.
	res := s.summarizer.Summarize(ctx, buckets)
	text := res.Text

	return &report.WeeklyReport{Data: buckets, Summary: &text}, nil
}
