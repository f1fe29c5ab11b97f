//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"spot-booking/cmd/bootstrap"
	"spot-booking/cmd/bootstrap/components"
	"spot-booking/internal/infra/db"
	"spot-booking/internal/pkg/config"
	"spot-booking/tests/common/dbtest"

	"github.com/alicebob/miniredis/v2"
	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")

	migrationFile = "migrations/001_initial_schema.sql"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgErr       error
)

// postgresAddr starts one Postgres container per test process.
func postgresAddr(t *testing.T) (string, string) {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				// throwaway data: trade durability for speed
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return adminDSN(host, port.Port())
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "spot-booking-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, pgErr, "failed to start postgres container")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err)
	return host, port.Port()
}

func adminDSN(host, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port)
}

// createDatabase gives the calling suite its own database and drops it when
// the suite ends.
func createDatabase(t *testing.T, host, port string) config.DBConfig {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	name := "booking_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	// CREATE DATABASE serializes on template1 across parallel suites
	for attempt := range 5 {
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+name); err == nil {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempt+1, "error", err.Error())
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			slog.Warn("cleanup connection failed", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

func applySchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	// go test runs in the package directory
	var (
		schema []byte
		err    error
	)
	for _, dir := range []string{".", "..", "../..", "../../.."} {
		if schema, err = os.ReadFile(filepath.Join(dir, migrationFile)); err == nil {
			break
		}
	}
	require.NoError(t, err, "schema file not found")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err, "failed to apply schema")
}

// startApp builds the production graph with the test pool and config in place
// of the environment-driven ones.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.CacheModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	return router
}

// SharedSuite wires a booking API against its own database and an in-process
// Redis. Every subtest starts from empty tables and an empty cache.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *miniredis.Miniredis
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	host, port := postgresAddr(t)
	s.Config = config.NewTestConfig()
	s.Config.DB = createDatabase(t, host, port)

	pool, closePool, err := db.Connect(s.Config.DB)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)
	applySchema(t, pool)
	s.DB = pool

	s.Redis = miniredis.RunT(t)
	s.Config.Redis.Addr = s.Redis.Addr()
	s.Config.Redis.OwnerTTL = time.Minute

	s.Router = startApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
	s.Redis.FlushAll()
}
