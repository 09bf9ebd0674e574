package dateonly

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsCalendarDay(t *testing.T) {
	d, err := Parse("2024-06-08")
	require.NoError(t, err)
	y, m, day := d.Date()
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.June, m)
	assert.Equal(t, 8, day)
	assert.Equal(t, "2024-06-08", d.String())
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2024-6-8", "08/06/2024", "2024-06-08T00:00:00Z"} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrInvalidDate, s)
	}
}

func TestFromTimeUsesWallClockDay(t *testing.T) {
	// 23:30 in a +02:00 zone is already the next day in UTC; the calendar day
	// the user sees must win.
	loc := time.FixedZone("east", 2*60*60)
	d := FromTime(time.Date(2024, time.June, 8, 23, 30, 0, 0, loc))
	assert.True(t, d.Equal(New(2024, time.June, 8)))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{"same day", New(2024, time.June, 8), New(2024, time.June, 8), 0},
		{"one night", New(2024, time.June, 8), New(2024, time.June, 9), 1},
		{"across month end", New(2024, time.May, 30), New(2024, time.June, 2), 3},
		{"across DST switch", New(2024, time.March, 29), New(2024, time.April, 2), 4},
		{"reversed is negative", New(2024, time.June, 9), New(2024, time.June, 8), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.a, tt.b))
		})
	}
}

func TestAddDaysAcrossMonth(t *testing.T) {
	d := New(2024, time.June, 28).AddDays(4)
	assert.True(t, d.Equal(New(2024, time.July, 2)))
}

func TestJSONBoundaryFormat(t *testing.T) {
	type wrapper struct {
		Day Date `json:"day"`
	}
	raw, err := json.Marshal(wrapper{Day: New(2024, time.June, 8)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2024-06-08"}`, string(raw))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2024-06-10"}`), &w))
	assert.True(t, w.Day.Equal(New(2024, time.June, 10)))
}
