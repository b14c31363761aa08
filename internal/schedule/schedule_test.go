package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		choice Choice
		want   string
	}{
		{Choice{Kind: Manual}, "Manual"},
		{Choice{Kind: Hourly}, "Every hour"},
		{Choice{Kind: Every6Hours}, "Every 6 hours"},
		{Choice{Kind: DailyAt9AM}, "Daily at 9:00 AM"},
		{Choice{Kind: Custom, Text: "Mondays"}, "Mondays"},
		{Choice{Kind: Custom}, ""},
		{Choice{}, "Manual"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.choice.Display(), tt.choice)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, c := range []Choice{
		{Kind: Manual},
		{Kind: Hourly},
		{Kind: Every6Hours},
		{Kind: DailyAt9AM},
		{Kind: Custom, Text: "Weekdays at noon"},
		{Kind: Custom, Text: "*/15 * * * *"},
		{Kind: Custom},
	} {
		assert.Equal(t, c, Parse(c.Display()))
	}
}

func TestParse_IsCaseSensitive(t *testing.T) {
	assert.Equal(t, Choice{Kind: Custom, Text: "manual"}, Parse("manual"))
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind(" Daily ")
	require.True(t, ok)
	assert.Equal(t, DailyAt9AM, k)

	_, ok = ParseKind("weekly")
	assert.False(t, ok)
}

func TestCronSpec(t *testing.T) {
	spec, ok := Choice{Kind: Every6Hours}.CronSpec()
	require.True(t, ok)
	assert.Equal(t, "0 */6 * * *", spec)

	_, ok = Choice{Kind: Manual}.CronSpec()
	assert.False(t, ok)

	_, ok = Choice{Kind: Custom, Text: "whenever"}.CronSpec()
	assert.False(t, ok)

	spec, ok = Choice{Kind: Custom, Text: " @weekly "}.CronSpec()
	require.True(t, ok)
	assert.Equal(t, "@weekly", spec)
}

func TestNextRun(t *testing.T) {
	from := time.Date(2025, 11, 20, 7, 30, 0, 0, time.UTC)

	next, ok := NextRun("Daily at 9:00 AM", from)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC), next)

	next, ok = NextRun("Every 6 hours", from)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC), next)

	next, ok = NextRun("Every hour", from)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC), next)

	_, ok = NextRun("Manual", from)
	assert.False(t, ok)
}

func TestNextRunLabel(t *testing.T) {
	from := time.Date(2025, 11, 20, 7, 30, 0, 0, time.UTC)

	assert.Equal(t, "in 1.5h", NextRunLabel("Daily at 9:00 AM", from))
	assert.Equal(t, "in 30m", NextRunLabel("Every hour", from))
	assert.Equal(t, "", NextRunLabel("Manual", from))
	assert.Equal(t, "", NextRunLabel("Whenever I feel like it", from))
}
