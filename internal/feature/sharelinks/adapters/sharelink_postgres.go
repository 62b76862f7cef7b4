// Package adapters provides repository implementations for the sharelinks feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"devsnap_backend/internal/feature/sharelinks/domain/entity"
	"devsnap_backend/internal/feature/sharelinks/usecase"
)

// shareLinkPostgres is a GORM implementation of the ShareLinkRepository
// interface. The connection must be opened with TranslateError so
// unique-constraint violations surface as gorm.ErrDuplicatedKey.
type shareLinkPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure shareLinkPostgres implements ShareLinkRepository.
var _ usecase.ShareLinkRepository = (*shareLinkPostgres)(nil)

// NewShareLinkPostgres creates a new instance of shareLinkPostgres.
func NewShareLinkPostgres(db *gorm.DB) *shareLinkPostgres {
	return &shareLinkPostgres{db: db}
}

// Create persists a new share link. A slug collision is reported as
// usecase.ErrDuplicateSlug straight from the uniqueness constraint; there is
// no prior existence check to race against.
func (r *shareLinkPostgres) Create(ctx context.Context, link *entity.ShareLink) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrDuplicateSlug
		}
		return err
	}
	return nil
}

// FindBySlug retrieves a link by its public slug.
// It returns usecase.ErrLinkNotFound if no link has the slug.
func (r *shareLinkPostgres) FindBySlug(ctx context.Context, slug string) (*entity.ShareLink, error) {
	var link entity.ShareLink
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

// FindByID retrieves a link by ID.
// It returns usecase.ErrLinkNotFound if the link does not exist.
func (r *shareLinkPostgres) FindByID(ctx context.Context, id string) (*entity.ShareLink, error) {
	var link entity.ShareLink
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

// ListBySnapshot retrieves all links referencing the snapshot, newest first.
func (r *shareLinkPostgres) ListBySnapshot(ctx context.Context, snapshotID string) ([]*entity.ShareLink, error) {
	var links []*entity.ShareLink
	if err := r.db.WithContext(ctx).
		Where("snapshot_id = ?", snapshotID).
		Order("created_at DESC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// IncrementViewCount adds 1 to the view count as a single UPDATE with a SQL
// expression, so concurrent resolutions never lose updates.
func (r *shareLinkPostgres) IncrementViewCount(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.ShareLink{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrLinkNotFound
	}
	return nil
}

// Delete removes the link. Deleting an absent ID is a no-op.
func (r *shareLinkPostgres) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ShareLink{}).Error
}

// CountByOwner returns the number of links on snapshots owned by the user.
func (r *shareLinkPostgres) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.ShareLink{}).
		Joins("JOIN snapshots ON snapshots.id = share_links.snapshot_id").
		Where("snapshots.user_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

// TotalViewsByOwner sums the view counts across the user's share links.
func (r *shareLinkPostgres) TotalViewsByOwner(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.ShareLink{}).
		Joins("JOIN snapshots ON snapshots.id = share_links.snapshot_id").
		Where("snapshots.user_id = ?", ownerID).
		Select("COALESCE(SUM(share_links.view_count), 0)").
		Scan(&total).Error
	return total, err
}
