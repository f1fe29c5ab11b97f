package booking

import "time"

// Phase is never stored; it is recomputed from the dates on every call.
type Phase string

const (
	PhaseUpcoming Phase = "upcoming"
	PhaseActive   Phase = "active"
	PhasePast     Phase = "past"
)

func (p Phase) String() string {
	return string(p)
}

func PhaseAt(dates DateRange, now time.Time) Phase {
	switch {
	case dates.End().Before(now):
		return PhasePast
	case dates.Start().Before(now):
		return PhaseActive
	default:
		return PhaseUpcoming
	}
}
