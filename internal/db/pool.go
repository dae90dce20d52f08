package db

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultMaxConns        = 10
	defaultMaxConnIdleTime = 5 * time.Minute
	healthCheckPeriod      = 30 * time.Second
)

type NewDBPoolParams struct {
	// ConnString, when set, is used as is and the address params are ignored
	ConnString     string
	DBHost         string
	DBPort         string
	DBName         string
	MaxConns       int32
	TracingEnabled bool
}

func (p NewDBPoolParams) connString() string {
	if p.ConnString != "" {
		return p.ConnString
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.User("postgres"),
		Host:   net.JoinHostPort(p.DBHost, p.DBPort),
		Path:   "/" + p.DBName,
	}
	return u.String()
}

// NewDBPool builds the pgx pool shared by all repos. Connections are opened lazily,
// so an unreachable db surfaces on the first query or ping, not here.
func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(params.connString())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	poolConfig.MaxConns = defaultMaxConns
	if params.MaxConns > 0 {
		poolConfig.MaxConns = params.MaxConns
	}
	poolConfig.MaxConnIdleTime = defaultMaxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	return pool, nil
}
