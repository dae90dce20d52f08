package blog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const LatestCacheKey = "blog::latest"

var _ blogRepo = (*CachingRepo)(nil)

// CachingRepo serves the latest posts from redis and drops the cached list on every write.
// Redis failures fall through to the wrapped repo.
type CachingRepo struct {
	blogRepo
	redisClient *redis.Client
	ttl         time.Duration
}

func NewCachingRepo(repo blogRepo, redisClient *redis.Client, ttl time.Duration) *CachingRepo {
	return &CachingRepo{
		blogRepo:    repo,
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (c *CachingRepo) Latest(ctx context.Context, limit int) ([]*BlogPost, error) {
	if limit != LatestLimit {
		return c.blogRepo.Latest(ctx, limit)
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.blog.latest")
	defer span.End()

	cached, err := c.redisClient.Get(ctx, LatestCacheKey).Bytes()
	switch {
	case err == nil:
		var posts []*BlogPost
		if err := json.Unmarshal(cached, &posts); err == nil {
			span.SetAttributes(attribute.Bool("blog.latest.from-cache", true))
			log.Tracef("latest blogs served from redis cache")
			return posts, nil
		}
		log.Errorf("unmarshal cached latest blogs: %s", err)
	case errors.Is(err, redis.Nil):
		log.Tracef("latest blogs not in redis cache")
	default:
		log.Errorf("get latest blogs from redis: %s", err)
	}
	span.SetAttributes(attribute.Bool("blog.latest.from-cache", false))

	posts, err := c.blogRepo.Latest(ctx, limit)
	if err != nil {
		return nil, err
	}

	postsJson, err := json.Marshal(posts)
	if err != nil {
		log.Errorf("marshal latest blogs for cache: %s", err)
		return posts, nil
	}
	if err := c.redisClient.Set(ctx, LatestCacheKey, postsJson, c.ttl).Err(); err != nil {
		log.Errorf("cache latest blogs in redis: %s", err)
	}

	return posts, nil
}

func (c *CachingRepo) Add(ctx context.Context, post *BlogPost) error {
	if err := c.blogRepo.Add(ctx, post); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachingRepo) Update(ctx context.Context, id int, update BlogPostUpdate) (*BlogPost, error) {
	post, err := c.blogRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return post, nil
}

func (c *CachingRepo) Delete(ctx context.Context, id int) (*BlogPost, error) {
	post, err := c.blogRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return post, nil
}

func (c *CachingRepo) invalidate(ctx context.Context) {
	if err := c.redisClient.Del(ctx, LatestCacheKey).Err(); err != nil {
		log.Errorf("invalidate latest blogs cache: %s", err)
	}
}
