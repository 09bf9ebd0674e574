package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vanbook/internal/domain/shared/dateonly"
)

func day(d int) dateonly.Date {
	return dateonly.New(2024, time.June, d)
}

func TestQuote(t *testing.T) {
	calc := NewCalculator(0) // falls back to the default minimum

	tests := []struct {
		name       string
		in, out    dateonly.Date
		rateCents  int64
		nights     int
		totalCents int64
		meetsMin   bool
	}{
		{"three nights at 45", day(8), day(11), 4500, 3, 13500, true},
		{"four nights at 60", day(8), day(12), 6000, 4, 24000, true},
		{"two nights below minimum", day(8), day(10), 6000, 2, 12000, false},
		{"zero nights same day", day(8), day(8), 6000, 0, 0, false},
		{"reversed clamps to zero", day(12), day(8), 6000, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := calc.Quote(tt.in, tt.out, tt.rateCents)
			assert.Equal(t, tt.nights, q.Nights)
			assert.Equal(t, tt.totalCents, q.TotalCents)
			assert.Equal(t, tt.meetsMin, q.MeetsMinimumStay)
			assert.GreaterOrEqual(t, q.Nights, 0)
		})
	}
}

func TestTotalIsExact(t *testing.T) {
	q := NewCalculator(3).Quote(day(8), day(11), 4500)
	assert.Equal(t, 135.0, q.Total())
	assert.Equal(t, 45.0, q.NightlyRate())
}

func TestConfigurableMinimum(t *testing.T) {
	q := NewCalculator(5).Quote(day(8), day(12), 6000)
	assert.Equal(t, 4, q.Nights)
	assert.False(t, q.MeetsMinimumStay)
}
