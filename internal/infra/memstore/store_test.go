package memstore_test

import (
	"context"
	"testing"

	"rentdesk/internal/domain/equipment"
	"rentdesk/internal/domain/settings"
	"rentdesk/internal/infra"
	"rentdesk/internal/infra/memstore"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *memstore.Store {
	return memstore.NewStore(settings.Default(5))
}

func newTestItem(t *testing.T) *equipment.Item {
	t.Helper()
	item, err := equipment.NewItem("Mixer", "Audio", "", 45, 600, 3, equipment.StatusNew)
	require.NoError(t, err)
	return item
}

func TestWithinCommitsOnSuccess(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	item := newTestItem(t)

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Equipment().Create(ctx, item)
	})
	require.NoError(t, err)

	err = store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Equipment().FindByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(item, found), "committed entity must round-trip unchanged")
		return nil
	})
	require.NoError(t, err)
}

func TestWithinRollsBackOnError(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	item := newTestItem(t)
	boom := errs.New("boom")

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Equipment().Create(ctx, item); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Equipment().FindByID(ctx, item.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound), "rolled-back write must not be visible")
		return nil
	})
	require.NoError(t, err)
}

func TestFindReturnsCopy(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	item := newTestItem(t)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Equipment().Create(ctx, item)
	}))

	// Mutating a fetched entity without calling Update must not leak.
	require.NoError(t, store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Equipment().FindByID(ctx, item.ID)
		require.NoError(t, err)
		found.AvailableQuantity = 0
		return nil
	}))

	require.NoError(t, store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Equipment().FindByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, found.AvailableQuantity)
		return nil
	}))
}

func TestCategoryDuplicateName(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	first, err := equipment.NewCategory("Lighting")
	require.NoError(t, err)
	second, err := equipment.NewCategory("Lighting")
	require.NoError(t, err)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Categories().Create(ctx, first)
	}))

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Categories().Create(ctx, second)
	})
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Settings().Get(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 5.0, s.TaxPercentage, 1e-9)

		s.CompanyName = "Coast Rentals"
		s.TaxPercentage = 7.5
		return tx.Settings().Save(ctx, s)
	}))

	require.NoError(t, store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Settings().Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Coast Rentals", s.CompanyName)
		assert.InDelta(t, 7.5, s.TaxPercentage, 1e-9)
		return nil
	}))
}
