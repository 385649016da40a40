package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The wire shape matters to API consumers: absent averages and ratings must
// serialize as null, day buckets without sessions as [], and the internal
// calendar date must stay off the wire.
func TestWeeklyReport_JSONShape(t *testing.T) {
	win := ResolveWindow(time.Date(2025, 6, 22, 18, 0, 0, 0, jst), jst, 0)
	buckets := BuildWeeklyData(win, jst, nil)
	summaryText := "お疲れさまでした。"

	out, err := json.Marshal(&WeeklyReport{Data: buckets, Summary: &summaryText})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))

	data, ok := decoded["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, DaysPerWeek)

	first, ok := data[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2025年06月16日 (Mon)", first["date"])
	assert.Equal(t, float64(0), first["total_duration_minutes"])
	assert.Nil(t, first["average_rating"], "absent average serializes as null")
	assert.Equal(t, []interface{}{}, first["sessions"], "empty day serializes as []")
	assert.NotContains(t, first, "Day")

	assert.Equal(t, summaryText, decoded["summary"])
}

func TestSessionSummary_JSONNulls(t *testing.T) {
	out, err := json.Marshal(SessionSummary{
		ID:              7,
		TaskTitle:       NoTaskPlaceholder,
		DurationMinutes: 25,
	})
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"id":7,"task_title":"（タスクなし）","duration_minutes":25,"rating":null,"comment":null}`,
		string(out))
}
