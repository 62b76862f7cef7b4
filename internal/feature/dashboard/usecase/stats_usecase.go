// Package usecase implements the business logic for the dashboard feature.
package usecase

import "context"

// SnapshotCounter is the slice of the snapshot store the dashboard needs.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type SnapshotCounter interface {
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}

// ShareLinkStats is the slice of the share-link store the dashboard needs.
type ShareLinkStats interface {
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	TotalViewsByOwner(ctx context.Context, ownerID string) (int64, error)
}

// Stats is the per-user overview shown on the dashboard.
type Stats struct {
	Snapshots  int64
	ShareLinks int64
	TotalViews int64
}

// statsUsecase aggregates per-user counters for the dashboard.
type statsUsecase struct {
	snapshots SnapshotCounter
	links     ShareLinkStats
}

// NewStatsUsecase creates a new instance of statsUsecase.
func NewStatsUsecase(snapshots SnapshotCounter, links ShareLinkStats) *statsUsecase {
	return &statsUsecase{
		snapshots: snapshots,
		links:     links,
	}
}

// Overview returns the user's snapshot count, share-link count and total views.
func (u *statsUsecase) Overview(ctx context.Context, ownerID string) (*Stats, error) {
	snapshots, err := u.snapshots.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	links, err := u.links.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	views, err := u.links.TotalViewsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &Stats{
		Snapshots:  snapshots,
		ShareLinks: links,
		TotalViews: views,
	}, nil
}
