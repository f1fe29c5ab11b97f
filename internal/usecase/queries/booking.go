package queries

import (
	"context"
	"time"

	"spot-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID        uuid.UUID
	SpotID    uuid.UUID
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SpotSummary struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Address      string
	City         string
	State        string
	Country      string
	Lat          float64
	Lng          float64
	Name         string
	Price        float64
	PreviewImage *string
}

type UserBookingView struct {
	BookingView
	Spot SpotSummary
}

// SpotBookingView is either an OwnerBookingView or a PublicBookingView,
// picked per request by whether the actor owns the spot.
type SpotBookingView interface {
	spotBookingView()
}

// OwnerBookingView is the full record, shown to the spot's owner.
type OwnerBookingView struct {
	BookingView
}

// PublicBookingView reveals only that the dates are taken.
type PublicBookingView struct {
	SpotID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

func (OwnerBookingView) spotBookingView()  {}
func (PublicBookingView) spotBookingView() {}

type BookingReadStore interface {
	ListBySpot(ctx context.Context, spotID uuid.UUID) ([]*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*UserBookingView, error)
}

type BookingQueries interface {
	ListForSpot(ctx context.Context, actor, spotID uuid.UUID) ([]SpotBookingView, error)
	ListForUser(ctx context.Context, actor uuid.UUID) ([]*UserBookingView, error)
}

type bookingQueries struct {
	store BookingReadStore
	spots shared.SpotDirectory
}

func NewBookingQueries(store BookingReadStore, spots shared.SpotDirectory) BookingQueries {
	return &bookingQueries{store: store, spots: spots}
}

func (q *bookingQueries) ListForSpot(ctx context.Context, actor, spotID uuid.UUID) ([]SpotBookingView, error) {
	ownerID, err := q.spots.OwnerOf(ctx, spotID)
	if err != nil {
		return nil, shared.LedgerError(err, "Spot couldn't be found")
	}

	rows, err := q.store.ListBySpot(ctx, spotID)
	if err != nil {
		return nil, shared.LedgerError(err, "Spot couldn't be found")
	}

	shape := publicView
	if ownerID == actor {
		shape = ownerView
	}
	views := make([]SpotBookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, shape(row))
	}
	return views, nil
}

func (q *bookingQueries) ListForUser(ctx context.Context, actor uuid.UUID) ([]*UserBookingView, error) {
	rows, err := q.store.ListByUser(ctx, actor)
	if err != nil {
		return nil, shared.LedgerError(err, "Bookings couldn't be found")
	}
	return rows, nil
}

func ownerView(b *BookingView) SpotBookingView {
	return OwnerBookingView{BookingView: *b}
}

func publicView(b *BookingView) SpotBookingView {
	return PublicBookingView{
		SpotID:    b.SpotID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}
