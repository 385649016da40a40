package repository

import (
	"context"
	"testing"

	"github.com/Kan-O435/studytimer-back/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepo_UpsertAndGet(t *testing.T) {
	sessions, _, reviews := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(testUserID, 30)
	require.NoError(t, sessions.Create(ctx, sess))

	review := testutil.NewTestReview(sess.ID, 3, "やや散漫")
	require.NoError(t, reviews.Upsert(ctx, review))
	assert.NotZero(t, review.ID)

	fetched, err := reviews.GetBySession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, fetched.Score)
	require.NotNil(t, fetched.Comment)
	assert.Equal(t, "やや散漫", *fetched.Comment)
}

func TestReviewRepo_Upsert_ReplacesExisting(t *testing.T) {
	sessions, _, reviews := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(testUserID, 30)
	require.NoError(t, sessions.Create(ctx, sess))

	first := testutil.NewTestReview(sess.ID, 2, "")
	require.NoError(t, reviews.Upsert(ctx, first))

	second := testutil.NewTestReview(sess.ID, 5, "改善した")
	require.NoError(t, reviews.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID, "the single row per session survives")

	fetched, err := reviews.GetBySession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, fetched.Score)
}

func TestReviewRepo_NilCommentStoredAsNull(t *testing.T) {
	sessions, _, reviews := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(testUserID, 30)
	require.NoError(t, sessions.Create(ctx, sess))
	require.NoError(t, reviews.Upsert(ctx, testutil.NewTestReview(sess.ID, 4, "")))

	fetched, err := reviews.GetBySession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Comment)
}

func TestReviewRepo_GetBySession_NotFound(t *testing.T) {
	_, _, reviews := sessionTestSetup(t)
	ctx := context.Background()

	_, err := reviews.GetBySession(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
