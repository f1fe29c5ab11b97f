package request

import (
	"time"

	"spot-booking/internal/domain/booking"
	"spot-booking/internal/usecase/commands"
)

type CreateBookingRequest struct {
	StartDate string `json:"startDate" binding:"required,isodate" example:"2030-11-19"`
	EndDate   string `json:"endDate" binding:"required,isodate" example:"2030-11-20"`
}

// UpdateBookingRequest keeps the stored value for an omitted date.
type UpdateBookingRequest struct {
	StartDate *string `json:"startDate" binding:"omitempty,isodate" example:"2030-11-21"`
	EndDate   *string `json:"endDate" binding:"omitempty,isodate" example:"2030-11-22"`
}

func (r *CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	start, err := booking.ParseDate(r.StartDate)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	end, err := booking.ParseDate(r.EndDate)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	return commands.CreateBookingRequest{StartDate: start, EndDate: end}, nil
}

func (r *UpdateBookingRequest) ToCommand() (commands.EditBookingRequest, error) {
	start, err := parseOptional(r.StartDate)
	if err != nil {
		return commands.EditBookingRequest{}, err
	}
	end, err := parseOptional(r.EndDate)
	if err != nil {
		return commands.EditBookingRequest{}, err
	}
	return commands.EditBookingRequest{StartDate: start, EndDate: end}, nil
}

func parseOptional(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := booking.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
