package dateonly

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDate = errors.New("dateonly: expected YYYY-MM-DD")

// Date is a calendar day with no time-of-day component. Two dates are equal
// iff they name the same (year, month, day); the backing instant is pinned to
// UTC midnight so day arithmetic never drifts across DST boundaries.
type Date struct {
	t time.Time
}

func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse decodes a YYYY-MM-DD string. The layout-based parse yields the same
// calendar day regardless of the runtime's timezone; never go through a
// timestamp here, epoch math can shift the day across midnight.
func Parse(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t.UTC()}, nil
}

// FromTime keeps the wall-clock day of t in its own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return New(y, m, d)
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysBetween returns b - a in whole days. Both dates sit at UTC midnight, so
// the division is exact.
func DaysBetween(a, b Date) int {
	return int(b.t.Sub(a.t) / (24 * time.Hour))
}

func (d Date) Date() (int, time.Month, int) { return d.t.Date() }

func (d Date) String() string {
	return d.t.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return ErrInvalidDate
	}
	parsed, err := Parse(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
