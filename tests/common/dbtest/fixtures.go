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

func CreateTestHost(t *testing.T, db DBLike, name, slug, timezone string) uuid.UUID {
	t.Helper()

	hostID := uuid.New()
	ctx := context.Background()

	email := slug + "@example.com"
	tag, err := db.Exec(ctx,
		"INSERT INTO hosts (id, name, slug, email, timezone) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (slug) DO NOTHING",
		hostID, name, slug, email, timezone)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM hosts WHERE slug = $1", slug).Scan(&hostID)
		require.NoError(t, err)
	}

	return hostID
}

func CreateWorkingHours(t *testing.T, db DBLike, hostID uuid.UUID, dayOfWeek int, start, end, timezone string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO working_hours (host_id, day_of_week, start_time, end_time, timezone) VALUES ($1, $2, $3, $4, $5)",
		hostID, dayOfWeek, start, end, timezone)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO hosts (id, name, slug, email, timezone) VALUES
		    (gen_random_uuid(), 'Alex Rivera', 'alex-rivera', 'alex@example.com', 'America/New_York'),
		    (gen_random_uuid(), 'Yuki Tanaka', 'yuki-tanaka', 'yuki@example.com', 'Asia/Tokyo')
		ON CONFLICT (slug) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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

	return SeedReferenceData(pool)
}
