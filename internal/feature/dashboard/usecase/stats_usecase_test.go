package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshotCounter struct {
	count int64
	err   error
}

func (f *fakeSnapshotCounter) CountByOwner(_ context.Context, _ string) (int64, error) {
	return f.count, f.err
}

type fakeShareLinkStats struct {
	count    int64
	views    int64
	countErr error
	viewsErr error
}

func (f *fakeShareLinkStats) CountByOwner(_ context.Context, _ string) (int64, error) {
	return f.count, f.countErr
}

func (f *fakeShareLinkStats) TotalViewsByOwner(_ context.Context, _ string) (int64, error) {
	return f.views, f.viewsErr
}

func TestStatsUsecase_Overview(t *testing.T) {
	t.Run("aggregates all three counters", func(t *testing.T) {
		uc := NewStatsUsecase(
			&fakeSnapshotCounter{count: 3},
			&fakeShareLinkStats{count: 5, views: 42},
		)

		stats, err := uc.Overview(context.Background(), "user-1")
		require.NoError(t, err)

		assert.EqualValues(t, 3, stats.Snapshots)
		assert.EqualValues(t, 5, stats.ShareLinks)
		assert.EqualValues(t, 42, stats.TotalViews)
	})

	t.Run("counter failure is propagated", func(t *testing.T) {
		boom := errors.New("db down")
		uc := NewStatsUsecase(
			&fakeSnapshotCounter{err: boom},
			&fakeShareLinkStats{},
		)

		stats, err := uc.Overview(context.Background(), "user-1")

		assert.Nil(t, stats)
		assert.ErrorIs(t, err, boom)
	})
}
