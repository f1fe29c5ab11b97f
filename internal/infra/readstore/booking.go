package readstore

import (
	"context"

	"spot-booking/internal/infra"
	sqlc "spot-booking/internal/infra/sqlc/generated"
	"spot-booking/internal/pkg/pgconv"
	"spot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	ListBookingsBySpotID(ctx context.Context, db sqlc.DBTX, spotID uuid.UUID) ([]sqlc.Booking, error)
	ListBookingsWithSpotByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListBookingsWithSpotByUserIDRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) ListBySpot(ctx context.Context, spotID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsBySpotID(ctx, r.db, spotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for spot", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = rowToBookingView(row)
	}
	return result, nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.UserBookingView, error) {
	rows, err := r.queries.ListBookingsWithSpotByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for user", err)
	}

	result := make([]*queries.UserBookingView, len(rows))
	for i, row := range rows {
		view, err := rowToUserBookingView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode spot price", err, infra.KindDBFailure)
		}
		result[i] = view
	}
	return result, nil
}

func rowToBookingView(row sqlc.Booking) *queries.BookingView {
	return &queries.BookingView{
		ID:        row.ID,
		SpotID:    row.SpotID,
		UserID:    row.UserID,
		StartDate: pgconv.DateFromPgtype(row.StartDate),
		EndDate:   pgconv.DateFromPgtype(row.EndDate),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func rowToUserBookingView(row sqlc.ListBookingsWithSpotByUserIDRow) (*queries.UserBookingView, error) {
	price, err := pgconv.Float64FromNumeric(row.SpotPrice)
	if err != nil {
		return nil, err
	}
	return &queries.UserBookingView{
		BookingView: queries.BookingView{
			ID:        row.ID,
			SpotID:    row.SpotID,
			UserID:    row.UserID,
			StartDate: pgconv.DateFromPgtype(row.StartDate),
			EndDate:   pgconv.DateFromPgtype(row.EndDate),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		},
		Spot: queries.SpotSummary{
			ID:           row.SpotID,
			OwnerID:      row.SpotOwnerID,
			Address:      row.SpotAddress,
			City:         row.SpotCity,
			State:        row.SpotState,
			Country:      row.SpotCountry,
			Lat:          row.SpotLat,
			Lng:          row.SpotLng,
			Name:         row.SpotName,
			Price:        price,
			PreviewImage: pgconv.StringPtrFromPgtype(row.PreviewImage),
		},
	}, nil
}
