package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	userentity "devsnap_backend/internal/feature/auth/domain/entity"
	"devsnap_backend/internal/feature/sharelinks/domain/entity"
	"devsnap_backend/internal/feature/sharelinks/usecase"
	snapentity "devsnap_backend/internal/feature/snapshots/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(
		&userentity.User{},
		&snapentity.Snapshot{},
		&entity.ShareLink{},
	)
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func seedSnapshot(t *testing.T, db *gorm.DB, id, ownerID string) {
	t.Helper()
	require.NoError(t, db.Create(&snapentity.Snapshot{
		ID:         id,
		UserID:     ownerID,
		Name:       "Snapshot " + id,
		CapturedAt: time.Now(),
	}).Error)
}

func newTestLink(id, snapshotID, slug string) *entity.ShareLink {
	return &entity.ShareLink{
		ID:         id,
		SnapshotID: snapshotID,
		Slug:       slug,
		Visibility: entity.VisibilityPublic,
	}
}

func TestShareLinkPostgres_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewShareLinkPostgres(db)
		seedSnapshot(t, db, "snap-1", "user-1")

		err := repo.Create(context.Background(), newTestLink("link-1", "snap-1", "abc12345"))
		assert.NoError(t, err)
	})

	t.Run("slug collision error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewShareLinkPostgres(db)
		seedSnapshot(t, db, "snap-1", "user-1")

		require.NoError(t, repo.Create(context.Background(), newTestLink("link-1", "snap-1", "same-slug")))

		err := repo.Create(context.Background(), newTestLink("link-2", "snap-1", "same-slug"))
		assert.ErrorIs(t, err, usecase.ErrDuplicateSlug, "constraint violation should map to ErrDuplicateSlug")
	})
}

func TestShareLinkPostgres_FindBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShareLinkPostgres(db)
	seedSnapshot(t, db, "snap-1", "user-1")
	ctx := context.Background()

	expires := time.Now().Add(time.Hour)
	link := newTestLink("link-1", "snap-1", "abc12345")
	link.Visibility = entity.VisibilityUnlisted
	link.PasswordHash = "$2a$10$hash"
	link.ExpiresAt = &expires
	require.NoError(t, repo.Create(ctx, link))

	t.Run("found", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, "abc12345")
		require.NoError(t, err)
		assert.Equal(t, "link-1", found.ID)
		assert.Equal(t, entity.VisibilityUnlisted, found.Visibility)
		assert.Equal(t, "$2a$10$hash", found.PasswordHash)
		require.NotNil(t, found.ExpiresAt)
		assert.WithinDuration(t, expires, *found.ExpiresAt, time.Second)
	})

	t.Run("not found error", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, "missing")
		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrLinkNotFound)
	})
}

func TestShareLinkPostgres_IncrementViewCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShareLinkPostgres(db)
	seedSnapshot(t, db, "snap-1", "user-1")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestLink("link-1", "snap-1", "abc12345")))

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementViewCount(ctx, "link-1"))
	}

	found, err := repo.FindByID(ctx, "link-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, found.ViewCount)

	err = repo.IncrementViewCount(ctx, "missing")
	assert.ErrorIs(t, err, usecase.ErrLinkNotFound)
}

func TestShareLinkPostgres_ListBySnapshot(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShareLinkPostgres(db)
	seedSnapshot(t, db, "snap-1", "user-1")
	seedSnapshot(t, db, "snap-2", "user-1")
	ctx := context.Background()

	older := newTestLink("link-old", "snap-1", "old12345")
	older.CreatedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, repo.Create(ctx, older))

	newer := newTestLink("link-new", "snap-1", "new12345")
	newer.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, newer))

	require.NoError(t, repo.Create(ctx, newTestLink("link-other", "snap-2", "oth12345")))

	links, err := repo.ListBySnapshot(ctx, "snap-1")
	require.NoError(t, err)

	require.Len(t, links, 2, "only links for the snapshot should be listed")
	assert.Equal(t, "link-new", links[0].ID, "newest first")
	assert.Equal(t, "link-old", links[1].ID)
}

func TestShareLinkPostgres_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShareLinkPostgres(db)
	seedSnapshot(t, db, "snap-1", "user-1")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestLink("link-1", "snap-1", "abc12345")))

	require.NoError(t, repo.Delete(ctx, "link-1"))
	_, err := repo.FindByID(ctx, "link-1")
	assert.ErrorIs(t, err, usecase.ErrLinkNotFound)

	assert.NoError(t, repo.Delete(ctx, "link-1"), "repeat delete is a no-op")
}

func TestShareLinkPostgres_OwnerStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShareLinkPostgres(db)
	ctx := context.Background()

	seedSnapshot(t, db, "snap-1", "user-1")
	seedSnapshot(t, db, "snap-2", "user-1")
	seedSnapshot(t, db, "snap-other", "user-2")

	a := newTestLink("link-a", "snap-1", "aaa11111")
	a.ViewCount = 5
	require.NoError(t, repo.Create(ctx, a))

	b := newTestLink("link-b", "snap-2", "bbb22222")
	b.ViewCount = 2
	require.NoError(t, repo.Create(ctx, b))

	other := newTestLink("link-c", "snap-other", "ccc33333")
	other.ViewCount = 100
	require.NoError(t, repo.Create(ctx, other))

	count, err := repo.CountByOwner(ctx, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	views, err := repo.TotalViewsByOwner(ctx, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 7, views, "views of other owners should not leak in")

	views, err = repo.TotalViewsByOwner(ctx, "user-ghost")
	require.NoError(t, err)
	assert.Zero(t, views, "an owner with no links sums to zero")
}
