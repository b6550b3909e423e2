package catalogoinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/vinculohr/vinculo/pkg/logx"
	"github.com/vinculohr/vinculo/seleccion/catalogo"
)

const cacheKeyPrefix = "catalogo:"

// RedisResolver is a read-through cache over the catalogo repository.
// Misses fall through to Postgres and populate the cache with a TTL, so
// renames become visible once the entry expires.
type RedisResolver struct {
	client *redis.Client
	repo   catalogo.Repository
	ttl    time.Duration
}

// NewRedisResolver creates a cached catalogo resolver
func NewRedisResolver(client *redis.Client, repo catalogo.Repository, ttl time.Duration) *RedisResolver {
	if ttl == 0 {
		ttl = 10 * time.Minute
	}
	return &RedisResolver{
		client: client,
		repo:   repo,
		ttl:    ttl,
	}
}

func cacheKey(kind catalogo.Kind, id string) string {
	return fmt.Sprintf("%s%s:%s", cacheKeyPrefix, kind, id)
}

// Resolve answers an id → nombre lookup
func (r *RedisResolver) Resolve(ctx context.Context, kind catalogo.Kind, id string) (string, error) {
	key := cacheKey(kind, id)

	nombre, err := r.client.Get(ctx, key).Result()
	if err == nil {
		return nombre, nil
	}
	if err != redis.Nil {
		// A failing cache degrades to direct lookups.
		logx.Warnf("catalogo cache read failed for %s: %v", key, err)
	}

	item, err := r.repo.GetByID(ctx, kind, id)
	if err != nil {
		return "", err
	}

	if err := r.client.Set(ctx, key, item.Nombre, r.ttl).Err(); err != nil {
		logx.Warnf("catalogo cache write failed for %s: %v", key, err)
	}

	return item.Nombre, nil
}

// Invalidate drops the cached nombre after an update
func (r *RedisResolver) Invalidate(ctx context.Context, kind catalogo.Kind, id string) {
	if err := r.client.Del(ctx, cacheKey(kind, id)).Err(); err != nil {
		logx.Warnf("catalogo cache invalidation failed for %s:%s: %v", kind, id, err)
	}
}
