package projects

import (
	"context"
	"errors"
	"fmt"

	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const projectColumns = `id, title, description, github_url, category, created_at, updated_at`

var _ projectRepo = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, project *Project) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.project.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !IsValidCategory(project.Category) {
		return ErrInvalidCategory
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO project (title, description, github_url, category) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at;`,
		project.Title, project.Description, project.GithubURL, project.Category,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}

	return nil
}

// All returns the newest projects first.
func (r *Repo) All(ctx context.Context) (_ []*Project, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.project.all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+projectColumns+` FROM project ORDER BY created_at DESC, id DESC;`)
	if err != nil {
		return nil, err
	}
	return collectProjects(rows)
}

func (r *Repo) ByCategory(ctx context.Context, category string) (_ []*Project, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.project.byCategory")
	span.SetAttributes(attribute.String("category", category))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !IsValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+projectColumns+` FROM project WHERE category = $1 ORDER BY created_at DESC, id DESC;`,
		category,
	)
	if err != nil {
		return nil, err
	}
	return collectProjects(rows)
}

func (r *Repo) ByID(ctx context.Context, id int) (_ *Project, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.project.byId")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanProject(r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM project WHERE id = $1;`, id))
}

func (r *Repo) Update(ctx context.Context, id int, update ProjectUpdate) (_ *Project, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.project.update")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if update.Category != nil && !IsValidCategory(*update.Category) {
		return nil, ErrInvalidCategory
	}
	if update.Empty() {
		return r.ByID(ctx, id)
	}

	return scanProject(r.db.QueryRow(
		ctx,
		`UPDATE project SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			github_url = COALESCE($4, github_url),
			category = COALESCE($5, category),
			updated_at = now()
		WHERE id = $1
		RETURNING `+projectColumns+`;`,
		id, update.Title, update.Description, update.GithubURL, update.Category,
	))
}

// Delete returns the removed project.
func (r *Repo) Delete(ctx context.Context, id int) (_ *Project, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.project.delete")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanProject(r.db.QueryRow(ctx, `DELETE FROM project WHERE id = $1 RETURNING `+projectColumns+`;`, id))
}

func scanProject(row pgx.Row) (*Project, error) {
	p := &Project{}
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.GithubURL, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func collectProjects(rows pgx.Rows) ([]*Project, error) {
	projects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Project, error) {
		return scanProject(row)
	})
	if err != nil {
		return nil, fmt.Errorf("collect projects: %w", err)
	}
	return projects, nil
}
