package visits

import (
	"context"
	"errors"
	"fmt"

	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidDesignation = errors.New("invalid designation")

var _ visitRepo = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the visit; a zero CreatedAt means now.
func (r *Repo) Add(ctx context.Context, visit *Visit) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.visit.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !IsValidDesignation(visit.Designation) {
		return ErrInvalidDesignation
	}

	var createdAt any
	if !visit.CreatedAt.IsZero() {
		createdAt = visit.CreatedAt
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO blog_visit (username, email, designation, created_at) VALUES ($1, $2, $3, COALESCE($4, now())) RETURNING id, created_at;`,
		visit.Username, visit.Email, visit.Designation, createdAt,
	).Scan(&visit.ID, &visit.CreatedAt); err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}

	return nil
}

// All returns the newest visits first.
func (r *Repo) All(ctx context.Context) (_ []*Visit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.visit.all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, username, email, designation, created_at FROM blog_visit ORDER BY created_at DESC, id DESC;`,
	)
	if err != nil {
		return nil, err
	}

	visits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Visit, error) {
		v := &Visit{}
		err := row.Scan(&v.ID, &v.Username, &v.Email, &v.Designation, &v.CreatedAt)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect visits: %w", err)
	}

	return visits, nil
}
