package pricing

import (
	"vanbook/internal/domain/shared/dateonly"
)

// DefaultMinNights is the fewest nights a booking must span to be
// submittable.
const DefaultMinNights = 3

// Quote is derived from the selected range and recomputed on every range
// change; it is never stored on its own. Amounts are integer euro-cents so
// Total == Nights * NightlyRate holds exactly.
type Quote struct {
	Nights           int
	NightlyRateCents int64
	TotalCents       int64
	MeetsMinimumStay bool
}

func (q Quote) NightlyRate() float64 { return float64(q.NightlyRateCents) / 100 }
func (q Quote) Total() float64       { return float64(q.TotalCents) / 100 }

type Calculator struct {
	MinNights int
}

func NewCalculator(minNights int) Calculator {
	if minNights <= 0 {
		minNights = DefaultMinNights
	}
	return Calculator{MinNights: minNights}
}

// Quote prices a completed range. checkOut is exclusive; nights is the
// calendar-day difference, clamped at zero. A quote below the minimum stay is
// still produced for display, submission gating happens elsewhere.
func (c Calculator) Quote(checkIn, checkOut dateonly.Date, nightlyRateCents int64) Quote {
	nights := dateonly.DaysBetween(checkIn, checkOut)
	if nights < 0 {
		nights = 0
	}
	return Quote{
		Nights:           nights,
		NightlyRateCents: nightlyRateCents,
		TotalCents:       int64(nights) * nightlyRateCents,
		MeetsMinimumStay: nights >= c.MinNights,
	}
}
