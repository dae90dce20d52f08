package subscribers

import (
	"context"
	"fmt"

	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"
	"github.com/abcde-dev/abcdecom/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ subscriberRepo = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add relies on the unique constraint on subscriber.email, so two concurrent
// subscriptions of one address leave exactly one row.
func (r *Repo) Add(ctx context.Context, email string) (_ *Subscriber, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.subscriber.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	subscriber := &Subscriber{Email: email}
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO subscriber (email) VALUES ($1) RETURNING id, created_at;`,
		email,
	).Scan(&subscriber.ID, &subscriber.CreatedAt); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("insert subscriber: %w", err)
	}

	return subscriber, nil
}

func (r *Repo) Exists(ctx context.Context, email string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.subscriber.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM subscriber WHERE email = $1);`,
		email,
	).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *Repo) All(ctx context.Context) (_ []*Subscriber, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.subscriber.all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, email, created_at FROM subscriber ORDER BY id;`)
	if err != nil {
		return nil, err
	}

	subscribers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Subscriber, error) {
		s := &Subscriber{}
		err := row.Scan(&s.ID, &s.Email, &s.CreatedAt)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect subscribers: %w", err)
	}

	return subscribers, nil
}

// Emails returns all addresses in subscription order.
func (r *Repo) Emails(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.subscriber.emails")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT email FROM subscriber ORDER BY id;`)
	if err != nil {
		return nil, err
	}

	emails, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect emails: %w", err)
	}

	return emails, nil
}
