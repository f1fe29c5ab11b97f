package readstore

import (
	"context"

	"spot-booking/internal/infra"
	sqlc "spot-booking/internal/infra/sqlc/generated"
	"spot-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SpotReadQueries interface {
	GetSpotOwner(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetSpotOwnerRow, error)
}

// SpotReadStore is the Postgres-backed spot directory.
type SpotReadStore struct {
	queries SpotReadQueries
	db      sqlc.DBTX
}

func NewSpotReadStore(queries SpotReadQueries, db sqlc.DBTX) *SpotReadStore {
	return &SpotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SpotReadStore) OwnerOf(ctx context.Context, spotID uuid.UUID) (uuid.UUID, error) {
	row, err := r.queries.GetSpotOwner(ctx, r.db, spotID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find spot owner", err)
	}
	return row.OwnerID, nil
}
