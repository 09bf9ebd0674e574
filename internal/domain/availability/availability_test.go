package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vanbook/internal/domain/shared/dateonly"
)

func day(d int) dateonly.Date {
	return dateonly.New(2024, time.June, d)
}

func TestIsBusyHalfOpen(t *testing.T) {
	set := NewSet([]Interval{{Start: day(10), End: day(15)}})

	tests := []struct {
		name string
		d    dateonly.Date
		busy bool
	}{
		{"day before", day(9), false},
		{"first occupied night", day(10), true},
		{"middle", day(12), true},
		{"last occupied night", day(14), true},
		{"checkout day is free", day(15), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.busy, set.IsBusy(tt.d))
		})
	}
}

func TestHasBusyWithin(t *testing.T) {
	set := NewSet([]Interval{{Start: day(10), End: day(15)}})

	tests := []struct {
		name string
		a, b dateonly.Date
		want bool
	}{
		{"fully before", day(5), day(10), false},
		{"starts at checkout", day(15), day(20), false},
		{"spans the block", day(8), day(20), true},
		{"touches first night only", day(8), day(11), true},
		{"ends on first night exclusive", day(8), day(10), false},
		{"empty range", day(12), day(12), false},
		{"reversed range", day(14), day(8), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.HasBusyWithin(tt.a, tt.b))
		})
	}
}

func TestNewSetDropsMalformedIntervals(t *testing.T) {
	set := NewSet([]Interval{
		{Start: day(15), End: day(10)}, // end before start
		{Start: day(12), End: day(12)}, // zero-length
		{Start: day(20), End: day(22)},
	})
	assert.Len(t, set.Intervals(), 1)
	assert.True(t, set.IsBusy(day(20)))
	assert.False(t, set.IsBusy(day(12)))
}

func TestMultipleIntervals(t *testing.T) {
	set := NewSet([]Interval{
		{Start: day(20), End: day(25)},
		{Start: day(5), End: day(8)},
	})
	assert.True(t, set.IsBusy(day(6)))
	assert.True(t, set.IsBusy(day(21)))
	assert.False(t, set.IsBusy(day(10)))
	assert.True(t, set.HasBusyWithin(day(8), day(21)))
	assert.False(t, set.HasBusyWithin(day(8), day(20)))
}
