//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt of "password"; login is not served here, the column is just NOT NULL.
const passwordHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoO5Bj5r9RzqH5jhOsY6m9rC/8k5yQdKOu"

func CreateTestUser(t *testing.T, db DBLike, username string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO users (id, email, username, first_name, last_name, hashed_password)
		VALUES ($1, $2, $3, 'Demo', 'User', $4)`,
		userID, username+"@example.com", username, passwordHash)
	require.NoError(t, err)

	return userID
}

func CreateTestSpot(t *testing.T, db DBLike, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	spotID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO spots (id, owner_id, address, city, state, country, lat, lng, name, description, price)
		VALUES ($1, $2, '123 Disney Lane', 'San Francisco', 'California', 'United States of America',
		        37.7645358, -122.4730327, $3, 'Place where web developers are created', 123)`,
		spotID, ownerID, name)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `INSERT INTO spot_images (spot_id, url, preview) VALUES ($1, $2, true)`,
		spotID, "https://img.example.com/"+spotID.String()+".png")
	require.NoError(t, err)

	return spotID
}

func CreateTestBooking(t *testing.T, db DBLike, spotID, userID uuid.UUID, start, end string) uuid.UUID {
	t.Helper()

	var bookingID uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO bookings (spot_id, user_id, start_date, end_date)
		VALUES ($1, $2, $3::date, $4::date)
		RETURNING id`,
		spotID, userID, start, end).Scan(&bookingID)
	require.NoError(t, err)

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB empties every application table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil || len(tables) == 0 {
			truncateSQL.Store("")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
