package repository

import (
	"context"
	"testing"

	"github.com/Kan-O435/studytimer-back/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAndList(t *testing.T) {
	_, tasks, _ := sessionTestSetup(t)
	ctx := context.Background()

	first := testutil.NewTestTask(testUserID, "英単語")
	second := testutil.NewTestTask(testUserID, "数学")
	other := testutil.NewTestTask(testUserID+1, "他人のタスク")
	require.NoError(t, tasks.Create(ctx, first))
	require.NoError(t, tasks.Create(ctx, second))
	require.NoError(t, tasks.Create(ctx, other))

	list, err := tasks.ListByUser(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "英単語", list[0].Title)
	assert.Equal(t, "数学", list[1].Title)
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	_, tasks, _ := sessionTestSetup(t)
	ctx := context.Background()

	_, err := tasks.GetByID(ctx, testUserID, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}
