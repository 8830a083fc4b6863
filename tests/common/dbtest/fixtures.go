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

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestFlight(t *testing.T, db DBLike, number string, unitPriceCents int64, availableSeats, totalSeats int32) uuid.UUID {
	t.Helper()

	flightID := uuid.New()
	ctx := context.Background()

	departure := time.Now().UTC().AddDate(0, 1, 0)
	_, err := db.Exec(ctx, `INSERT INTO flights (id, number, origin, destination, departure, unit_price_cents, available_seats, total_seats)
		VALUES ($1, $2, 'LIS', 'GRU', $3, $4, $5, $6)`,
		flightID, number, departure, unitPriceCents, availableSeats, totalSeats)
	require.NoError(t, err)

	return flightID
}

func CreateTestPackage(t *testing.T, db DBLike, name, groupSize string, unitPriceCents int64, validUntil *time.Time) uuid.UUID {
	t.Helper()

	packageID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO tour_packages (id, name, destination, unit_price_cents, group_size, valid_until)
		VALUES ($1, $2, 'Douro Valley', $3, $4, $5)`,
		packageID, name, unitPriceCents, groupSize, validUntil)
	require.NoError(t, err)

	return packageID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from a clean state
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
