package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobBookingCreated   = "booking_created"
	JobBookingUpdated   = "booking_updated"
	JobBookingCancelled = "booking_cancelled"

	BookingEventsTopic = "bookings"
)

// BookingEvent is the outbox payload written next to every committed change.
type BookingEvent struct {
	BookingID uuid.UUID `json:"bookingId"`
	SpotID    uuid.UUID `json:"spotId"`
	UserID    uuid.UUID `json:"userId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	At        time.Time `json:"at"`
}
