package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerSession_Validate(t *testing.T) {
	started := time.Date(2025, 6, 19, 10, 0, 0, 0, time.UTC)
	endedBefore := started.Add(-time.Minute)

	tests := []struct {
		name    string
		session TimerSession
		wantErr error
	}{
		{"valid", TimerSession{StartedAt: started, DurationMinutes: 30}, nil},
		{"zero duration allowed", TimerSession{StartedAt: started}, nil},
		{"missing start", TimerSession{DurationMinutes: 30}, ErrMissingStartedAt},
		{"negative duration", TimerSession{StartedAt: started, DurationMinutes: -1}, ErrNegativeDuration},
		{"ended before start", TimerSession{StartedAt: started, EndedAt: &endedBefore}, ErrEndedBeforeStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.session.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestReview_Validate(t *testing.T) {
	longComment := strings.Repeat("あ", MaxCommentLen+1)
	maxComment := strings.Repeat("あ", MaxCommentLen)

	assert.NoError(t, (&Review{Score: 1}).Validate())
	assert.NoError(t, (&Review{Score: 5, Comment: &maxComment}).Validate())
	assert.ErrorIs(t, (&Review{Score: 0}).Validate(), ErrScoreOutOfRange)
	assert.ErrorIs(t, (&Review{Score: 6}).Validate(), ErrScoreOutOfRange)
	assert.ErrorIs(t, (&Review{Score: 3, Comment: &longComment}).Validate(), ErrCommentTooLong)
}

func TestTask_Validate(t *testing.T) {
	assert.NoError(t, (&Task{Title: "数学"}).Validate())
	assert.ErrorIs(t, (&Task{}).Validate(), ErrMissingTaskTitle)
}
