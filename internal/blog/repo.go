package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// manual caching of blog posts not needed (at least for this use case):
// https://github.com/jackc/pgx/wiki/Automatic-Prepared-Statement-Caching

const blogColumns = `id, title, description, date, image_url, video_url, created_at, updated_at`

var _ blogRepo = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, post *BlogPost) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO blog_post (title, description, date, image_url, video_url) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at;`,
		post.Title, post.Description, post.Date, post.ImageURL, post.VideoURL,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt); err != nil {
		return fmt.Errorf("insert blog post: %w", err)
	}

	return nil
}

// All returns every post, most recent date first.
func (r *Repo) All(ctx context.Context) (_ []*BlogPost, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+blogColumns+` FROM blog_post ORDER BY date DESC, id DESC;`)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

func (r *Repo) Latest(ctx context.Context, limit int) (_ []*BlogPost, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.latest")
	span.SetAttributes(attribute.Int("limit", limit))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+blogColumns+` FROM blog_post ORDER BY date DESC, id DESC LIMIT $1;`, limit)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

func (r *Repo) ByID(ctx context.Context, id int) (_ *BlogPost, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.byId")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanPost(r.db.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_post WHERE id = $1;`, id))
}

func (r *Repo) Update(ctx context.Context, id int, update BlogPostUpdate) (_ *BlogPost, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.update")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if update.Empty() {
		return r.ByID(ctx, id)
	}

	return scanPost(r.db.QueryRow(
		ctx,
		`UPDATE blog_post SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			date = COALESCE($4, date),
			image_url = COALESCE($5, image_url),
			video_url = COALESCE($6, video_url),
			updated_at = now()
		WHERE id = $1
		RETURNING `+blogColumns+`;`,
		id, update.Title, update.Description, update.Date, update.ImageURL, update.VideoURL,
	))
}

// Delete returns the removed post.
func (r *Repo) Delete(ctx context.Context, id int) (_ *BlogPost, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.delete")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanPost(r.db.QueryRow(ctx, `DELETE FROM blog_post WHERE id = $1 RETURNING `+blogColumns+`;`, id))
}

func scanPost(row pgx.Row) (*BlogPost, error) {
	p := &BlogPost{}
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Date, &p.ImageURL, &p.VideoURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return p, nil
}

func collectPosts(rows pgx.Rows) ([]*BlogPost, error) {
	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*BlogPost, error) {
		return scanPost(row)
	})
	if err != nil {
		return nil, fmt.Errorf("collect blog posts: %w", err)
	}
	return posts, nil
}
