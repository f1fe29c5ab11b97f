package booking

import (
	"time"

	"github.com/google/uuid"
)

func EnsureNotOwner(ownerID, actor uuid.UUID) error {
	if ownerID == actor {
		return NewForbiddenError("Owners cannot book their own spot")
	}
	return nil
}

func EnsureRenter(b *Booking, actor uuid.UUID) error {
	if !b.IsRentedBy(actor) {
		return NewForbiddenError("Forbidden")
	}
	return nil
}

// EnsureNotPast rejects ranges with either boundary before now, naming each
// offending field.
func EnsureNotPast(dates DateRange, now time.Time) error {
	fields := map[string]string{}
	if dates.Start().Before(now) {
		fields[FieldStartDate] = "startDate cannot be in the past"
	}
	if dates.End().Before(now) {
		fields[FieldEndDate] = "endDate cannot be in the past"
	}
	if len(fields) > 0 {
		return newPastDateError(fields)
	}
	return nil
}

// EnsureEditable allows edits until the stay has ended.
func EnsureEditable(b *Booking, now time.Time) error {
	if b.PhaseAt(now) == PhasePast {
		return NewAlreadyStartedError("Past bookings can't be modified")
	}
	return nil
}

// EnsureCancellable allows cancellation only before the stay starts.
func EnsureCancellable(b *Booking, now time.Time) error {
	if b.PhaseAt(now) != PhaseUpcoming {
		return NewAlreadyStartedError("Bookings that have been started can't be deleted")
	}
	return nil
}
