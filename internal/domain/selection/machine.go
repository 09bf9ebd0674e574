package selection

import (
	"vanbook/internal/domain/shared/dateonly"
)

type State string

const (
	StateEmpty    State = "EMPTY"
	StateAnchored State = "ANCHORED"
	StateComplete State = "COMPLETE"
)

// Availability is the read-only busy-day view the machine consults before
// accepting a tap.
type Availability interface {
	IsBusy(d dateonly.Date) bool
	HasBusyWithin(a, bExclusive dateonly.Date) bool
}

// Range is the machine's output: Start/End are nil until chosen; End is
// checkout-exclusive, the first free day after the stay.
type Range struct {
	Start *dateonly.Date
	End   *dateonly.Date
}

func (r Range) Complete() bool { return r.Start != nil && r.End != nil }

// Machine turns calendar date taps into a check-in/check-out range while
// keeping the forming range contiguous against the busy set. Taps never fail:
// a tap that cannot be honored is either ignored or re-anchors the selection.
type Machine struct {
	avail Availability
	state State
	start dateonly.Date
	end   dateonly.Date
}

func NewMachine(avail Availability) *Machine {
	return &Machine{avail: avail, state: StateEmpty}
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Reset() {
	m.state = StateEmpty
	m.start = dateonly.Date{}
	m.end = dateonly.Date{}
}

// Tap feeds one tapped calendar day through the transition table.
func (m *Machine) Tap(d dateonly.Date) {
	switch m.state {
	case StateComplete:
		// Any tap on a finished range starts over.
		m.Reset()
		m.tapEmpty(d)
	case StateAnchored:
		m.tapAnchored(d)
	default:
		m.tapEmpty(d)
	}
}

func (m *Machine) tapEmpty(d dateonly.Date) {
	if m.avail.IsBusy(d) {
		return
	}
	m.start = d
	m.state = StateAnchored
}

func (m *Machine) tapAnchored(d dateonly.Date) {
	if m.avail.IsBusy(d) {
		return
	}
	if !d.After(m.start) {
		// Re-tapping the anchor or an earlier day restarts the selection
		// from that day. Same-day taps land here too, leaving the anchor
		// unchanged rather than cancelling it.
		m.start = d
		return
	}
	if m.avail.HasBusyWithin(m.start, d) {
		// The candidate range would cross a blocked stretch. The tapped day
		// becomes the new check-in instead of the tap silently failing.
		m.start = d
		return
	}
	// The tapped day is the last occupied night; checkout is the morning
	// after.
	m.end = d.AddDays(1)
	m.state = StateComplete
}

func (m *Machine) Range() Range {
	switch m.state {
	case StateAnchored:
		start := m.start
		return Range{Start: &start}
	case StateComplete:
		start, end := m.start, m.end
		return Range{Start: &start, End: &end}
	default:
		return Range{}
	}
}
