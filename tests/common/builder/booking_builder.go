//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"spot-booking/internal/domain/booking"
	reqdto "spot-booking/internal/handler/dto/request"
	"spot-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type BookingBuilder struct {
	ID        uuid.UUID
	SpotID    uuid.UUID
	UserID    uuid.UUID
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		SpotID:    uuid.New(),
		UserID:    uuid.New(),
		Start:     mustDate("2030-11-19"),
		End:       mustDate("2030-11-20"),
		CreatedAt: time.Date(2030, 11, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain(t *testing.T) *booking.Booking {
	t.Helper()
	dates, err := booking.NewDateRange(b.Start, b.End)
	require.NoError(t, err)
	return booking.ReconstructBooking(b.ID, b.SpotID, b.UserID, dates, b.CreatedAt, b.CreatedAt)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		SpotID:    b.SpotID,
		UserID:    b.UserID,
		StartDate: b.Start,
		EndDate:   b.End,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		StartDate: b.Start.Format(booking.DateLayout),
		EndDate:   b.End.Format(booking.DateLayout),
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookingRequest {
	start := b.Start.Format(booking.DateLayout)
	end := b.End.Format(booking.DateLayout)
	return reqdto.UpdateBookingRequest{
		StartDate: &start,
		EndDate:   &end,
	}
}

func mustDate(s string) time.Time {
	d, err := booking.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDateRange builds a range from YYYY-MM-DD strings.
func ParseDateRange(start, end string) (booking.DateRange, error) {
	s, err := booking.ParseDate(start)
	if err != nil {
		return booking.DateRange{}, err
	}
	e, err := booking.ParseDate(end)
	if err != nil {
		return booking.DateRange{}, err
	}
	return booking.NewDateRange(s, e)
}
