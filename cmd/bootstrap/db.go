package bootstrap

import (
	"context"
	"log/slog"

	"spot-booking/internal/infra/db"
	"spot-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the ledger pool; it is closed after the HTTP server drains.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	slog.Info("database connected",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			closePool()
			slog.Info("database pool closed")
			return nil
		},
	})
	return pool, nil
}
