// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"devsnap_backend/internal/feature/snapshots/domain/entity"
	"devsnap_backend/internal/feature/snapshots/usecase"
)

// CachingSnapshotRepository decorates a SnapshotRepository with Redis caching
// of single-snapshot reads. Share-link resolution is by far the hottest read
// path and snapshots are immutable apart from name/description, so FindByID
// caches well. Lists and counts are served straight from the database.
type CachingSnapshotRepository struct {
	inner     usecase.SnapshotRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure the decorator still implements SnapshotRepository.
var _ usecase.SnapshotRepository = (*CachingSnapshotRepository)(nil)

// NewCachingSnapshotRepository decorates a SnapshotRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is empty, it
// uses "snapshots".
func NewCachingSnapshotRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SnapshotRepository, namespace string) *CachingSnapshotRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "snapshots"
	}
	return &CachingSnapshotRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingSnapshotRepository) cacheKey(id string) string {
	return fmt.Sprintf("%s:%s", c.namespace, id)
}

// Create passes through; the new snapshot has no cache entry yet.
func (c *CachingSnapshotRepository) Create(ctx context.Context, snapshot *entity.Snapshot) error {
	return c.inner.Create(ctx, snapshot)
}

// FindByID retrieves a snapshot, checking cache first then falling back to
// the database.
func (c *CachingSnapshotRepository) FindByID(ctx context.Context, id string) (*entity.Snapshot, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Snapshot
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) Populate cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// ListByOwner passes through; owner listings are not cached.
func (c *CachingSnapshotRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Snapshot, error) {
	return c.inner.ListByOwner(ctx, ownerID)
}

// UpdateMetadata updates the database and invalidates the cached entry.
func (c *CachingSnapshotRepository) UpdateMetadata(ctx context.Context, id string, name, description *string) error {
	if err := c.inner.UpdateMetadata(ctx, id, name, description); err != nil {
		return err
	}
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.cacheKey(id)).Err() // Best effort: don't fail if cache deletion fails
	}
	return nil
}

// Delete removes the snapshot and invalidates the cached entry.
func (c *CachingSnapshotRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.cacheKey(id)).Err()
	}
	return nil
}

// CountByOwner passes through; counts are not cached.
func (c *CachingSnapshotRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	return c.inner.CountByOwner(ctx, ownerID)
}
