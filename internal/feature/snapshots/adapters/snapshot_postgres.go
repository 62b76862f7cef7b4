// Package adapters provides repository implementations for the snapshots feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"devsnap_backend/internal/feature/snapshots/domain/entity"
	"devsnap_backend/internal/feature/snapshots/usecase"
)

// snapshotPostgres is a GORM implementation of the SnapshotRepository interface.
type snapshotPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure snapshotPostgres implements SnapshotRepository.
var _ usecase.SnapshotRepository = (*snapshotPostgres)(nil)

// NewSnapshotPostgres creates a new instance of snapshotPostgres.
func NewSnapshotPostgres(db *gorm.DB) *snapshotPostgres {
	return &snapshotPostgres{db: db}
}

// Create persists a new snapshot to the database.
func (r *snapshotPostgres) Create(ctx context.Context, snapshot *entity.Snapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

// FindByID retrieves a snapshot by ID.
// It returns usecase.ErrSnapshotNotFound if the snapshot does not exist.
func (r *snapshotPostgres) FindByID(ctx context.Context, id string) (*entity.Snapshot, error) {
	var s entity.Snapshot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSnapshotNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByOwner retrieves all snapshots owned by the user, most recent first.
func (r *snapshotPostgres) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Snapshot, error) {
	var snapshots []*entity.Snapshot
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

// UpdateMetadata updates name and/or description. Nil fields are left
// unchanged. The captured sections are never touched here.
func (r *snapshotPostgres) UpdateMetadata(ctx context.Context, id string, name, description *string) error {
	updates := map[string]any{}
	if name != nil {
		updates["name"] = *name
	}
	if description != nil {
		updates["description"] = *description
	}
	if len(updates) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&entity.Snapshot{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrSnapshotNotFound
	}
	return nil
}

// Delete removes the snapshot and every share link referencing it, in one
// transaction. Deleting an absent ID is a no-op.
func (r *snapshotPostgres) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM share_links WHERE snapshot_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Snapshot{}).Error
	})
}

// CountByOwner returns the number of snapshots owned by the user.
func (r *snapshotPostgres) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Snapshot{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error
	return count, err
}
