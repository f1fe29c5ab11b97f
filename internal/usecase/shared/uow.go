package shared

import (
	"context"
	"time"

	"spot-booking/internal/domain/booking"
	"spot-booking/internal/domain/spot"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one write transaction; serialization failures are retried.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Spots() SpotLocker
	Bookings() BookingLedger
	Notifications() NotificationRepository
}

// SpotLocker takes the per-spot write lock. Every create or edit for a spot
// holds it from the conflict scan until commit.
type SpotLocker interface {
	LockForBooking(ctx context.Context, spotID uuid.UUID) (*spot.Spot, error)
}

// BookingLedger is the authoritative store of bookings. Missing rows surface
// as infra.KindNotFound; a committed overlap as infra.KindExclusionViolated.
type BookingLedger interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindActiveForSpot(ctx context.Context, spotID uuid.UUID) ([]*booking.Booking, error)
	Insert(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	Update(ctx context.Context, id uuid.UUID, dates booking.DateRange, updatedAt time.Time) (*booking.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

// SpotDirectory resolves a spot's owner outside any transaction.
type SpotDirectory interface {
	OwnerOf(ctx context.Context, spotID uuid.UUID) (uuid.UUID, error)
}
