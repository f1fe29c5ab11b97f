package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id        uuid.UUID
	spotID    uuid.UUID
	userID    uuid.UUID
	dates     DateRange
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking builds an uncommitted booking; the ledger assigns its id on insert.
func NewBooking(spotID, renterID uuid.UUID, dates DateRange, now time.Time) *Booking {
	return &Booking{
		spotID:    spotID,
		userID:    renterID,
		dates:     dates,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructBooking(
	id, spotID, userID uuid.UUID,
	dates DateRange,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		spotID:    spotID,
		userID:    userID,
		dates:     dates,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Reschedule replaces the dates; spot and renter are fixed for the booking's lifetime.
func (b *Booking) Reschedule(dates DateRange, now time.Time) {
	b.dates = dates
	b.updatedAt = now
}

func (b *Booking) PhaseAt(now time.Time) Phase {
	return PhaseAt(b.dates, now)
}

func (b *Booking) IsRentedBy(actor uuid.UUID) bool {
	return b.userID == actor
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) SpotID() uuid.UUID    { return b.spotID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Dates() DateRange     { return b.dates }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
