package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Kan-O435/studytimer-back/internal/domain"
	"github.com/Kan-O435/studytimer-back/internal/repository"
	"github.com/Kan-O435/studytimer-back/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceSetup(t *testing.T) (SessionService, TaskService, ReviewService) {
	t.Helper()
	db := testutil.NewTestDB(t)
	sessions := repository.NewSQLiteSessionRepo(db)
	tasks := repository.NewSQLiteTaskRepo(db)
	reviews := repository.NewSQLiteReviewRepo(db)
	return NewSessionService(sessions, tasks), NewTaskService(tasks), NewReviewService(sessions, reviews)
}

func TestSessionService_Log_DerivesDurationFromEnd(t *testing.T) {
	sessions, _, _ := serviceSetup(t)
	ctx := context.Background()

	started := time.Date(2025, 6, 19, 10, 0, 0, 0, time.UTC)
	sess := testutil.NewTestSession(1, 0,
		testutil.WithStartedAt(started),
		testutil.WithEndedAt(started.Add(90*time.Minute)))

	require.NoError(t, sessions.Log(ctx, sess))
	assert.Equal(t, 90, sess.DurationMinutes)
}

func TestSessionService_Log_RejectsEndBeforeStart(t *testing.T) {
	sessions, _, _ := serviceSetup(t)
	ctx := context.Background()

	started := time.Date(2025, 6, 19, 10, 0, 0, 0, time.UTC)
	sess := testutil.NewTestSession(1, 30,
		testutil.WithStartedAt(started),
		testutil.WithEndedAt(started.Add(-time.Hour)))

	err := sessions.Log(ctx, sess)
	assert.ErrorIs(t, err, domain.ErrEndedBeforeStart)
}

func TestSessionService_Log_RejectsNegativeDuration(t *testing.T) {
	sessions, _, _ := serviceSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(1, -10)
	err := sessions.Log(ctx, sess)
	assert.ErrorIs(t, err, domain.ErrNegativeDuration)
}

func TestSessionService_Log_RejectsForeignTask(t *testing.T) {
	sessions, tasks, _ := serviceSetup(t)
	ctx := context.Background()

	task := testutil.NewTestTask(2, "他人のタスク")
	require.NoError(t, tasks.Create(ctx, task))

	sess := testutil.NewTestSession(1, 30, testutil.WithTaskID(task.ID))
	err := sessions.Log(ctx, sess)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskService_Create_RequiresTitle(t *testing.T) {
	_, tasks, _ := serviceSetup(t)
	ctx := context.Background()

	err := tasks.Create(ctx, testutil.NewTestTask(1, ""))
	assert.ErrorIs(t, err, domain.ErrMissingTaskTitle)
}

func TestReviewService_Attach(t *testing.T) {
	sessions, _, reviews := serviceSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(1, 30)
	require.NoError(t, sessions.Log(ctx, sess))

	comment := "良い集中だった"
	review, err := reviews.Attach(ctx, 1, sess.ID, 5, &comment)
	require.NoError(t, err)
	assert.Equal(t, 5, review.Score)

	fetched, err := sessions.Get(ctx, 1, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Review)
	assert.Equal(t, 5, fetched.Review.Score)
}

func TestReviewService_Attach_ReplacesExisting(t *testing.T) {
	sessions, _, reviews := serviceSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(1, 30)
	require.NoError(t, sessions.Log(ctx, sess))

	_, err := reviews.Attach(ctx, 1, sess.ID, 2, nil)
	require.NoError(t, err)
	_, err = reviews.Attach(ctx, 1, sess.ID, 4, nil)
	require.NoError(t, err)

	fetched, err := sessions.Get(ctx, 1, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Review)
	assert.Equal(t, 4, fetched.Review.Score)
}

func TestReviewService_Attach_ScoreOutOfRange(t *testing.T) {
	sessions, _, reviews := serviceSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(1, 30)
	require.NoError(t, sessions.Log(ctx, sess))

	_, err := reviews.Attach(ctx, 1, sess.ID, 6, nil)
	assert.ErrorIs(t, err, domain.ErrScoreOutOfRange)
	_, err = reviews.Attach(ctx, 1, sess.ID, 0, nil)
	assert.ErrorIs(t, err, domain.ErrScoreOutOfRange)
}

func TestReviewService_Attach_CommentTooLong(t *testing.T) {
	sessions, _, reviews := serviceSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(1, 30)
	require.NoError(t, sessions.Log(ctx, sess))

	long := strings.Repeat("あ", domain.MaxCommentLen+1)
	_, err := reviews.Attach(ctx, 1, sess.ID, 3, &long)
	assert.ErrorIs(t, err, domain.ErrCommentTooLong)
}

func TestReviewService_Attach_ForeignSession(t *testing.T) {
	sessions, _, reviews := serviceSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(2, 30)
	require.NoError(t, sessions.Log(ctx, sess))

	_, err := reviews.Attach(ctx, 1, sess.ID, 3, nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
