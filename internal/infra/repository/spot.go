package repository

import (
	"context"

	"spot-booking/internal/domain/spot"
	"spot-booking/internal/infra"
	sqlc "spot-booking/internal/infra/sqlc/generated"
	"spot-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SpotLockQueries interface {
	LockSpotForBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LockSpotForBookingRow, error)
}

type SpotRepository struct {
	queries SpotLockQueries
	db      sqlc.DBTX
}

func NewSpotRepository(queries SpotLockQueries, db sqlc.DBTX) *SpotRepository {
	return &SpotRepository{
		queries: queries,
		db:      db,
	}
}

// LockForBooking row-locks the spot until the surrounding transaction ends,
// serializing booking writers of the same spot.
func (r *SpotRepository) LockForBooking(ctx context.Context, spotID uuid.UUID) (*spot.Spot, error) {
	row, err := r.queries.LockSpotForBooking(ctx, r.db, spotID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock spot", err)
	}
	return spot.NewSpot(row.ID, row.OwnerID), nil
}
