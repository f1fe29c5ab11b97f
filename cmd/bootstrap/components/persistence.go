package components

import (
	"spot-booking/internal/infra/cache"
	"spot-booking/internal/infra/readstore"
	sqlc "spot-booking/internal/infra/sqlc/generated"
	"spot-booking/internal/infra/uow"
	"spot-booking/internal/pkg/clock"
	"spot-booking/internal/pkg/config"
	"spot-booking/internal/usecase/queries"
	"spot-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Spot directory: Postgres behind the Redis owner cache
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SpotReadQueries)),
		),
		readstore.NewSpotReadStore,
		fx.Annotate(
			NewSpotDirectory,
			fx.As(new(shared.SpotDirectory)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Repositories are bound per transaction inside the unit of work.
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewSpotDirectory(store *readstore.SpotReadStore, client *redis.Client, cfg config.Config, clk clock.Clock) *cache.SpotOwnerCache {
	return cache.NewSpotOwnerCache(store, client, cache.SpotOwnerCacheConfigFrom(cfg.Redis), clk)
}
