package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshblock/pkg/domain"
)

func TestBlockRepository_CRUD(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	b := &domain.Block{
		ID:    "recent_today",
		Label: "Recent today",
		Settings: domain.BlockConfig{
			Title: "Updated today", NoResultsMessage: "Nothing yet", CacheHours: 6, ResultLimit: 5,
		},
	}
	require.NoError(t, repos.Block.CreateBlock(ctx, b))
	assert.Equal(t, "content", b.Region, "region defaults to content")

	got, err := repos.Block.GetBlock(ctx, "recent_today")
	require.NoError(t, err)
	assert.Equal(t, "Recent today", got.Label)
	assert.Equal(t, "content", got.Region)
	assert.Equal(t, b.Settings, got.Settings)
	assert.False(t, got.CreatedAt.IsZero())

	got.Label = "Changed today"
	got.Weight = 3
	got.Settings.ResultLimit = 0
	got.Settings.CacheHours = 24
	require.NoError(t, repos.Block.UpdateBlock(ctx, got))

	updated, err := repos.Block.GetBlock(ctx, "recent_today")
	require.NoError(t, err)
	assert.Equal(t, "Changed today", updated.Label)
	assert.Equal(t, 3, updated.Weight)
	assert.Equal(t, 24, updated.Settings.CacheHours)
	assert.Equal(t, 0, updated.Settings.ResultLimit)
	assert.Equal(t, "Updated today", updated.Settings.Title)

	require.Error(t, repos.Block.CreateBlock(ctx, b), "duplicate id")

	require.NoError(t, repos.Block.DeleteBlock(ctx, "recent_today"))
	_, err = repos.Block.GetBlock(ctx, "recent_today")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, repos.Block.DeleteBlock(ctx, "recent_today"), ErrNotFound)
	require.ErrorIs(t, repos.Block.UpdateBlock(ctx, updated), ErrNotFound)
}

func TestBlockRepository_CreateEmptyID(t *testing.T) {
	repos := setupTestDB(t)
	err := repos.Block.CreateBlock(context.Background(), &domain.Block{Label: "no id"})
	require.EqualError(t, err, "create block: empty id")
}

func TestBlockRepository_ListBlocks(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	for _, b := range []domain.Block{
		{ID: "c_second", Region: "content", Weight: 2},
		{ID: "s_first", Region: "sidebar", Weight: 0},
		{ID: "c_first_b", Region: "content", Weight: 1},
		{ID: "c_first_a", Region: "content", Weight: 1},
	} {
		require.NoError(t, repos.Block.CreateBlock(ctx, &b))
	}

	ids := func(blocks []domain.Block) []string {
		res := make([]string, len(blocks))
		for i, b := range blocks {
			res[i] = b.ID
		}
		return res
	}

	t.Run("region", func(t *testing.T) {
		blocks, err := repos.Block.ListBlocks(ctx, "content")
		require.NoError(t, err)
		assert.Equal(t, []string{"c_first_a", "c_first_b", "c_second"}, ids(blocks))
	})

	t.Run("all", func(t *testing.T) {
		blocks, err := repos.Block.ListBlocks(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"c_first_a", "c_first_b", "c_second", "s_first"}, ids(blocks))
	})

	t.Run("empty region", func(t *testing.T) {
		blocks, err := repos.Block.ListBlocks(ctx, "footer")
		require.NoError(t, err)
		assert.Empty(t, blocks)
	})
}

func TestSettingsSQL_Scan(t *testing.T) {
	tbl := []struct {
		name    string
		value   any
		want    domain.BlockConfig
		wantErr bool
	}{
		{name: "nil", value: nil, want: domain.BlockConfig{}},
		{name: "string", value: `{"title":"t","how_many_to_show":4}`, want: domain.BlockConfig{Title: "t", ResultLimit: 4}},
		{name: "bytes", value: []byte(`{"how_many_hours_to_cache":12}`), want: domain.BlockConfig{CacheHours: 12}},
		{name: "bad json", value: "{", wantErr: true},
		{name: "unsupported type", value: 42, wantErr: true},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			var s settingsSQL
			err := s.Scan(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, domain.BlockConfig(s))
		})
	}
}
