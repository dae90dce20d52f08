// Package testinternals holds helpers shared by the postgres backed integration tests.
package testinternals

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/abcde-dev/abcdecom/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	defaultPostgresHost = "localhost"
	defaultPostgresPort = "5432"
	defaultPostgresDB   = "abcde_test"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewTestDBPool connects to the postgres given by POSTGRES_HOST, POSTGRES_PORT and POSTGRES_DB,
// and makes sure the schema exists. The pool is closed when the test ends.
func NewTestDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := envOr("POSTGRES_HOST", defaultPostgresHost)
	t.Logf("using postgres host: %s", host)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         envOr("POSTGRES_PORT", defaultPostgresPort),
		DBName:         envOr("POSTGRES_DB", defaultPostgresDB),
		TracingEnabled: false,
	})
	require.NoError(t, err)
	require.NoError(t, dbPool.Ping(timeoutCtx))
	require.NoError(t, db.Bootstrap(timeoutCtx, dbPool))

	t.Cleanup(dbPool.Close)
	return dbPool
}

// Truncate empties the given tables, for tests that assert on whole table contents.
func Truncate(t *testing.T, dbPool *pgxpool.Pool, tables ...string) {
	t.Helper()
	for _, table := range tables {
		_, err := dbPool.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY;", table))
		require.NoError(t, err)
	}
}
