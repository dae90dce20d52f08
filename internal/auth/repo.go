package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"
	"github.com/abcde-dev/abcdecom/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var _ adminRepo = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, username, passwordHash string) (_ *Admin, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	admin := &Admin{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO admin (username, password_hash) VALUES ($1, $2) RETURNING id, created_at;`,
		username, passwordHash,
	).Scan(&admin.ID, &admin.CreatedAt); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}

	return admin, nil
}

func (r *Repo) ByUsername(ctx context.Context, username string) (_ *Admin, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.byUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.scanAdmin(r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash, created_at FROM admin WHERE username = $1;`,
		username,
	))
}

func (r *Repo) ByID(ctx context.Context, id int) (_ *Admin, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.byId")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.scanAdmin(r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash, created_at FROM admin WHERE id = $1;`,
		id,
	))
}

func (r *Repo) scanAdmin(row pgx.Row) (*Admin, error) {
	admin := &Admin{}
	if err := row.Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}
