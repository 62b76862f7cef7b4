package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"devsnap_backend/internal/feature/sharelinks/domain/entity"
	snapentity "devsnap_backend/internal/feature/snapshots/domain/entity"
	snapusecase "devsnap_backend/internal/feature/snapshots/usecase"
)

// fakeShareLinkRepository is an in-memory ShareLinkRepository. A mutex guards
// every method so concurrency tests can hammer it from many goroutines.
type fakeShareLinkRepository struct {
	mu        sync.Mutex
	links     map[string]*entity.ShareLink // by ID
	createErr []error                      // popped per Create call when non-empty
}

func newFakeShareLinkRepository() *fakeShareLinkRepository {
	return &fakeShareLinkRepository{links: map[string]*entity.ShareLink{}}
}

func (f *fakeShareLinkRepository) Create(_ context.Context, link *entity.ShareLink) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.createErr) > 0 {
		err := f.createErr[0]
		f.createErr = f.createErr[1:]
		if err != nil {
			return err
		}
	}
	for _, existing := range f.links {
		if existing.Slug == link.Slug {
			return ErrDuplicateSlug
		}
	}
	f.links[link.ID] = link
	return nil
}

func (f *fakeShareLinkRepository) FindBySlug(_ context.Context, slug string) (*entity.ShareLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, link := range f.links {
		if link.Slug == slug {
			copied := *link
			return &copied, nil
		}
	}
	return nil, ErrLinkNotFound
}

func (f *fakeShareLinkRepository) FindByID(_ context.Context, id string) (*entity.ShareLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	link, ok := f.links[id]
	if !ok {
		return nil, ErrLinkNotFound
	}
	copied := *link
	return &copied, nil
}

func (f *fakeShareLinkRepository) ListBySnapshot(_ context.Context, snapshotID string) ([]*entity.ShareLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ShareLink
	for _, link := range f.links {
		if link.SnapshotID == snapshotID {
			out = append(out, link)
		}
	}
	return out, nil
}

func (f *fakeShareLinkRepository) IncrementViewCount(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	link, ok := f.links[id]
	if !ok {
		return ErrLinkNotFound
	}
	link.ViewCount++
	return nil
}

func (f *fakeShareLinkRepository) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.links, id)
	return nil
}

func (f *fakeShareLinkRepository) CountByOwner(_ context.Context, _ string) (int64, error) {
	return int64(len(f.links)), nil
}

func (f *fakeShareLinkRepository) TotalViewsByOwner(_ context.Context, _ string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total int64
	for _, link := range f.links {
		total += link.ViewCount
	}
	return total, nil
}

// fakeSnapshotReader serves snapshots from a fixed map.
type fakeSnapshotReader struct {
	byID map[string]*snapentity.Snapshot
}

func newFakeSnapshotReader(snapshots ...*snapentity.Snapshot) *fakeSnapshotReader {
	byID := map[string]*snapentity.Snapshot{}
	for _, s := range snapshots {
		byID[s.ID] = s
	}
	return &fakeSnapshotReader{byID: byID}
}

func (f *fakeSnapshotReader) FindByID(_ context.Context, id string) (*snapentity.Snapshot, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, snapusecase.ErrSnapshotNotFound
	}
	return s, nil
}

func ownedSnapshot() *snapentity.Snapshot {
	return &snapentity.Snapshot{ID: "snap-1", UserID: "user-1", Name: "Mine"}
}

func TestShareLinkUsecase_Create(t *testing.T) {
	t.Run("defaults to public visibility", func(t *testing.T) {
		repo := newFakeShareLinkRepository()
		uc := NewShareLinkUsecase(repo, newFakeSnapshotReader(ownedSnapshot()))

		link, err := uc.Create(context.Background(), "user-1", "snap-1", CreateInput{})
		require.NoError(t, err)

		assert.Equal(t, entity.VisibilityPublic, link.Visibility)
		assert.Len(t, link.Slug, 8, "slug should be 8 characters")
		assert.Empty(t, link.PasswordHash)
		assert.Nil(t, link.ExpiresAt)
	})

	t.Run("unknown snapshot error", func(t *testing.T) {
		uc := NewShareLinkUsecase(newFakeShareLinkRepository(), newFakeSnapshotReader())

		_, err := uc.Create(context.Background(), "user-1", "missing", CreateInput{})

		assert.ErrorIs(t, err, ErrSnapshotNotFound)
	})

	t.Run("non-owner cannot share", func(t *testing.T) {
		uc := NewShareLinkUsecase(newFakeShareLinkRepository(), newFakeSnapshotReader(ownedSnapshot()))

		_, err := uc.Create(context.Background(), "user-2", "snap-1", CreateInput{})

		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("unknown visibility error", func(t *testing.T) {
		uc := NewShareLinkUsecase(newFakeShareLinkRepository(), newFakeSnapshotReader(ownedSnapshot()))

		_, err := uc.Create(context.Background(), "user-1", "snap-1", CreateInput{Visibility: "internal"})

		assert.ErrorIs(t, err, ErrInvalidVisibility)
	})

	t.Run("private link requires a password", func(t *testing.T) {
		uc := NewShareLinkUsecase(newFakeShareLinkRepository(), newFakeSnapshotReader(ownedSnapshot()))

		_, err := uc.Create(context.Background(), "user-1", "snap-1", CreateInput{Visibility: "private"})

		assert.ErrorIs(t, err, ErrPasswordMissing)
	})

	t.Run("password is stored as a bcrypt hash", func(t *testing.T) {
		repo := newFakeShareLinkRepository()
		uc := NewShareLinkUsecase(repo, newFakeSnapshotReader(ownedSnapshot()))

		link, err := uc.Create(context.Background(), "user-1", "snap-1", CreateInput{
			Visibility: "private",
			Password:   "hunter2",
		})
		require.NoError(t, err)

		assert.NotContains(t, link.PasswordHash, "hunter2", "plaintext must never be stored")
		assert.True(t, strings.HasPrefix(link.PasswordHash, "$2"), "hash should be bcrypt")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(link.PasswordHash), []byte("hunter2")))
	})

	t.Run("public link may opt in to a password", func(t *testing.T) {
		repo := newFakeShareLinkRepository()
		uc := NewShareLinkUsecase(repo, newFakeSnapshotReader(ownedSnapshot()))

		link, err := uc.Create(context.Background(), "user-1", "snap-1", CreateInput{Password: "hunter2"})
		require.NoError(t, err)

		assert.Equal(t, entity.VisibilityPublic, link.Visibility)
		assert.True(t, link.PasswordGated())
	})

	t.Run("slug collision is retried with a fresh slug", func(t *testing.T) {
		repo := newFakeShareLinkRepository()
		repo.createErr = []error{ErrDuplicateSlug, ErrDuplicateSlug, nil}
		uc := NewShareLinkUsecase(repo, newFakeSnapshotReader(ownedSnapshot()))

		link, err := uc.Create(context.Background(), "user-1", "snap-1", CreateInput{})
		require.NoError(t, err)
		assert.Len(t, repo.links, 1)
		assert.Len(t, link.Slug, 8)
	})

	t.Run("persistent collisions give up", func(t *testing.T) {
		repo := newFakeShareLinkRepository()
		for i := 0; i < maxSlugAttempts; i++ {
			repo.createErr = append(repo.createErr, ErrDuplicateSlug)
		}
		uc := NewShareLinkUsecase(repo, newFakeSnapshotReader(ownedSnapshot()))

		_, err := uc.Create(context.Background(), "user-1", "snap-1", CreateInput{})

		assert.ErrorIs(t, err, ErrSlugExhausted)
	})
}

func TestShareLinkUsecase_Resolve(t *testing.T) {
	hash := func(t *testing.T, password string) string {
		t.Helper()
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		return string(h)
	}

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name     string
		link     *entity.ShareLink
		slug     string
		password string
		wantErr  error
	}{
		{
			name:    "unknown slug",
			link:    &entity.ShareLink{ID: "link-1", SnapshotID: "snap-1", Slug: "known123"},
			slug:    "unknown1",
			wantErr: ErrLinkNotFound,
		},
		{
			name:    "expired link",
			link:    &entity.ShareLink{ID: "link-1", SnapshotID: "snap-1", Slug: "gone1234", ExpiresAt: &past},
			slug:    "gone1234",
			wantErr: ErrLinkExpired,
		},
		{
			name: "expiry is reported before the password gate",
			link: func() *entity.ShareLink {
				return &entity.ShareLink{
					ID: "link-1", SnapshotID: "snap-1", Slug: "gone1234",
					Visibility: entity.VisibilityPrivate, PasswordHash: hash(t, "secret"), ExpiresAt: &past,
				}
			}(),
			slug:    "gone1234",
			wantErr: ErrLinkExpired,
		},
		{
			name: "gated link without a password",
			link: func() *entity.ShareLink {
				return &entity.ShareLink{ID: "link-1", SnapshotID: "snap-1", Slug: "gate1234", PasswordHash: hash(t, "secret")}
			}(),
			slug:    "gate1234",
			wantErr: ErrPasswordRequired,
		},
		{
			name: "gated link with the wrong password",
			link: func() *entity.ShareLink {
				return &entity.ShareLink{ID: "link-1", SnapshotID: "snap-1", Slug: "gate1234", PasswordHash: hash(t, "secret")}
			}(),
			slug:     "gate1234",
			password: "guess",
			wantErr:  ErrPasswordRequired,
		},
		{
			name: "gated link with the right password",
			link: func() *entity.ShareLink {
				return &entity.ShareLink{ID: "link-1", SnapshotID: "snap-1", Slug: "gate1234", PasswordHash: hash(t, "secret")}
			}(),
			slug:     "gate1234",
			password: "secret",
		},
		{
			name: "open link with future expiry",
			link: &entity.ShareLink{ID: "link-1", SnapshotID: "snap-1", Slug: "live1234", ExpiresAt: &future},
			slug: "live1234",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeShareLinkRepository()
			repo.links[tt.link.ID] = tt.link
			uc := NewShareLinkUsecase(repo, newFakeSnapshotReader(ownedSnapshot()))

			snapshot, link, err := uc.Resolve(context.Background(), tt.slug, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, snapshot)
				assert.Zero(t, tt.link.ViewCount, "failed resolutions must not count views")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "snap-1", snapshot.ID)
			assert.EqualValues(t, 1, link.ViewCount, "returned link should carry the new count")
			assert.EqualValues(t, 1, repo.links[tt.link.ID].ViewCount)
		})
	}

	t.Run("dangling link reports not found", func(t *testing.T) {
		repo := newFakeShareLinkRepository()
		repo.links["link-1"] = &entity.ShareLink{ID: "link-1", SnapshotID: "snap-gone", Slug: "dangling"}
		uc := NewShareLinkUsecase(repo, newFakeSnapshotReader())

		_, _, err := uc.Resolve(context.Background(), "dangling", "")

		assert.ErrorIs(t, err, ErrLinkNotFound)
	})
}

func TestShareLinkUsecase_Resolve_ConcurrentViews(t *testing.T) {
	const viewers = 50

	repo := newFakeShareLinkRepository()
	repo.links["link-1"] = &entity.ShareLink{ID: "link-1", SnapshotID: "snap-1", Slug: "busy1234"}
	uc := NewShareLinkUsecase(repo, newFakeSnapshotReader(ownedSnapshot()))

	var wg sync.WaitGroup
	errs := make(chan error, viewers)
	for i := 0; i < viewers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := uc.Resolve(context.Background(), "busy1234", "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.EqualValues(t, viewers, repo.links["link-1"].ViewCount, "every view should be counted exactly once")
}

func TestShareLinkUsecase_Delete(t *testing.T) {
	t.Run("owner delete removes the link", func(t *testing.T) {
		repo := newFakeShareLinkRepository()
		repo.links["link-1"] = &entity.ShareLink{ID: "link-1", SnapshotID: "snap-1", Slug: "abc12345"}
		uc := NewShareLinkUsecase(repo, newFakeSnapshotReader(ownedSnapshot()))

		require.NoError(t, uc.Delete(context.Background(), "user-1", "link-1"))
		assert.Empty(t, repo.links)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		repo := newFakeShareLinkRepository()
		repo.links["link-1"] = &entity.ShareLink{ID: "link-1", SnapshotID: "snap-1", Slug: "abc12345"}
		uc := NewShareLinkUsecase(repo, newFakeSnapshotReader(ownedSnapshot()))

		err := uc.Delete(context.Background(), "user-2", "link-1")

		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Len(t, repo.links, 1)
	})

	t.Run("absent link is a no-op", func(t *testing.T) {
		uc := NewShareLinkUsecase(newFakeShareLinkRepository(), newFakeSnapshotReader(ownedSnapshot()))

		assert.NoError(t, uc.Delete(context.Background(), "user-1", "missing"))
	})
}

func TestNewSlug(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		slug, err := newSlug()
		require.NoError(t, err)
		assert.Len(t, slug, slugLength)
		for _, r := range slug {
			assert.Contains(t, slugCharset, string(r), "slug should only use the URL-safe charset")
		}
		seen[slug] = true
	}
	assert.Greater(t, len(seen), 90, "slugs should be effectively unique")
}
