package response

import (
	"time"

	"spot-booking/internal/domain/booking"
	"spot-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Date renders a calendar day as YYYY-MM-DD.
type Date string

func toDate(t time.Time) Date {
	return Date(t.Format(booking.DateLayout))
}

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	SpotID    uuid.UUID `json:"spotId"`
	UserID    uuid.UUID `json:"userId"`
	StartDate Date      `json:"startDate"`
	EndDate   Date      `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicBookingResponse is what non-owners see of a spot's calendar.
type PublicBookingResponse struct {
	SpotID    uuid.UUID `json:"spotId"`
	StartDate Date      `json:"startDate"`
	EndDate   Date      `json:"endDate"`
}

type SpotSummaryResponse struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	PreviewImage *string   `json:"previewImage,omitempty"`
}

type UserBookingResponse struct {
	BookingResponse
	Spot SpotSummaryResponse `json:"Spot"`
}

type BookingListResponse[T any] struct {
	Bookings []T `json:"Bookings"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID(),
		SpotID:    b.SpotID(),
		UserID:    b.UserID(),
		StartDate: toDate(b.Dates().Start()),
		EndDate:   toDate(b.Dates().End()),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func fromBookingView(v queries.BookingView) BookingResponse {
	return BookingResponse{
		ID:        v.ID,
		SpotID:    v.SpotID,
		UserID:    v.UserID,
		StartDate: toDate(v.StartDate),
		EndDate:   toDate(v.EndDate),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// FromSpotBookings shapes each view by its variant. Owner and public entries
// never mix in one result, so the slice element type is any.
func FromSpotBookings(views []queries.SpotBookingView) BookingListResponse[any] {
	out := make([]any, 0, len(views))
	for _, v := range views {
		switch view := v.(type) {
		case queries.OwnerBookingView:
			out = append(out, fromBookingView(view.BookingView))
		case queries.PublicBookingView:
			out = append(out, PublicBookingResponse{
				SpotID:    view.SpotID,
				StartDate: toDate(view.StartDate),
				EndDate:   toDate(view.EndDate),
			})
		}
	}
	return BookingListResponse[any]{Bookings: out}
}

func FromUserBookings(views []*queries.UserBookingView) (BookingListResponse[UserBookingResponse], error) {
	out := make([]UserBookingResponse, len(views))
	for i, v := range views {
		out[i].BookingResponse = fromBookingView(v.BookingView)
		if err := copier.Copy(&out[i].Spot, &v.Spot); err != nil {
			return BookingListResponse[UserBookingResponse]{}, err
		}
	}
	return BookingListResponse[UserBookingResponse]{Bookings: out}, nil
}
