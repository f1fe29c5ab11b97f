package converter

import (
	"spot-booking/internal/domain/booking"
	sqlc "spot-booking/internal/infra/sqlc/generated"
	"spot-booking/internal/pkg/errs"
	"spot-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		SpotID:    b.SpotID(),
		UserID:    b.UserID(),
		StartDate: pgconv.DateToPgtype(b.Dates().Start()),
		EndDate:   pgconv.DateToPgtype(b.Dates().End()),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Booking) (*booking.Booking, error) {
	dates, err := booking.NewDateRange(
		pgconv.DateFromPgtype(row.StartDate),
		pgconv.DateFromPgtype(row.EndDate),
	)
	if err != nil {
		// a corrupt row is a storage failure; keep the range error's mark out of it
		return nil, errs.New("stored booking " + row.ID.String() + " has an invalid range: " + err.Error())
	}
	return booking.ReconstructBooking(
		row.ID,
		row.SpotID,
		row.UserID,
		dates,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingsFromRows(rows []sqlc.Booking) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
