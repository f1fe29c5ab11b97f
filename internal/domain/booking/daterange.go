package booking

import (
	"time"
)

const DateLayout = "2006-01-02"

// DateRange is an immutable, well-formed reservation interval between two
// calendar days (UTC midnight). Overlaps is the only overlap rule in the
// codebase.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start, end = DateOf(start), DateOf(end)
	if !start.Before(end) {
		return DateRange{}, newInvalidRangeError()
	}
	return DateRange{start: start, end: end}, nil
}

// Amend replaces the given boundaries; a nil boundary keeps the current one.
// The result is validated like a new range.
func (r DateRange) Amend(start, end *time.Time) (DateRange, error) {
	s, e := r.start, r.end
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}
	return NewDateRange(s, e)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// DateOf truncates t to its calendar day in UTC, keeping t's own wall date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Overlaps uses inclusive boundaries: a range ending on day N conflicts with
// one starting on day N.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

func (r DateRange) Equal(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

func (r DateRange) String() string {
	return r.start.Format(DateLayout) + "/" + r.end.Format(DateLayout)
}
