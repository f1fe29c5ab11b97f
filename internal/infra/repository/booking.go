package repository

import (
	"context"
	"time"

	"spot-booking/internal/domain/booking"
	"spot-booking/internal/infra"
	"spot-booking/internal/infra/repository/converter"
	sqlc "spot-booking/internal/infra/sqlc/generated"
	"spot-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error)
	ListBookingsBySpotID(ctx context.Context, db sqlc.DBTX, spotID uuid.UUID) ([]sqlc.Booking, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Booking, error)
	UpdateBookingDates(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingDatesParams) (sqlc.Booking, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

// BookingRepository is the Postgres booking ledger bound to one transaction.
type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) FindActiveForSpot(ctx context.Context, spotID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsBySpotID(ctx, r.db, spotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for spot", err)
	}
	bookings, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode bookings", err, infra.KindDBFailure)
	}
	return bookings, nil
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	row, err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert booking", err)
	}
	created, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return created, nil
}

func (r *BookingRepository) Update(ctx context.Context, id uuid.UUID, dates booking.DateRange, updatedAt time.Time) (*booking.Booking, error) {
	params := sqlc.UpdateBookingDatesParams{
		ID:        id,
		StartDate: pgconv.DateToPgtype(dates.Start()),
		EndDate:   pgconv.DateToPgtype(dates.End()),
		UpdatedAt: pgconv.TimeToPgtype(updatedAt),
	}
	row, err := r.queries.UpdateBookingDates(ctx, r.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update booking", err)
	}
	updated, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return updated, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteBooking(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
