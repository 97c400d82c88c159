package block

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshblock/pkg/block/mocks"
	"github.com/umputun/freshblock/pkg/domain"
	"github.com/umputun/freshblock/pkg/render"
)

func TestLazyArgs(t *testing.T) {
	cfg := domain.BlockConfig{Title: "T", NoResultsMessage: "M", CacheHours: 6, ResultLimit: 3}
	args := LazyArgs(cfg)
	assert.Equal(t, []string{"T", "M", "3"}, args)

	back, err := ParseLazyArgs(args)
	require.NoError(t, err)
	assert.Equal(t, domain.BlockConfig{Title: "T", NoResultsMessage: "M", ResultLimit: 3}, back, "cache hours is not an argument")

	_, err = ParseLazyArgs([]string{"T"})
	require.Error(t, err)
	_, err = ParseLazyArgs([]string{"T", "M", "x"})
	require.Error(t, err)
}

func TestPlugin_BuildAndResolve(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	fetcher := &mocks.ContentFetcherMock{
		FetchFunc: func(_ context.Context, cfg domain.BlockConfig, at time.Time) (domain.RenderPayload, error) {
			assert.Equal(t, now, at)
			return domain.RenderPayload{
				Title:            cfg.Title,
				NoResultsMessage: cfg.NoResultsMessage,
				Items: []domain.ContentItem{
					{ID: 1, UUID: "u-1", Title: "Page - today 1", Changed: now.Add(-time.Hour)},
					{ID: 2, UUID: "u-2", Title: "Tom & Jerry <3", Changed: now.Add(-2 * time.Hour)},
				},
			}, nil
		},
		LocationFunc: func(context.Context) *time.Location { return time.UTC },
	}

	reg := render.NewRegistry(render.NewMemoryCache(), render.Config{})
	p, err := New(fetcher, reg, func() time.Time { return now })
	require.NoError(t, err)

	cfg := domain.BlockConfig{Title: "Example Block", NoResultsMessage: "none", CacheHours: 1, ResultLimit: 2}
	ph, err := p.Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, render.Token(BuilderName, []string{"Example Block", "none", "2"}), ph.Token)
	assert.Equal(t, time.Hour, ph.TTL)
	assert.Empty(t, fetcher.FetchCalls(), "build does not fetch")

	html, err := reg.Resolve(context.Background(), ph.Token)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<h2 class="recent-content__title">Example Block</h2>`)
	assert.Contains(t, string(html), "Page - today 1")
	assert.Contains(t, string(html), "Tom &amp; Jerry &lt;3")
	assert.Contains(t, string(html), `<time datetime="2024-05-10T14:00:00Z">14:00</time>`)
	assert.NotContains(t, string(html), "none")
	require.Len(t, fetcher.FetchCalls(), 1)
	assert.Equal(t, 2, fetcher.FetchCalls()[0].Cfg.ResultLimit)

	_, err = reg.Resolve(context.Background(), ph.Token)
	require.NoError(t, err)
	assert.Len(t, fetcher.FetchCalls(), 1, "second resolve is cached")

	require.NoError(t, reg.Invalidate(context.Background(), CacheTagContentList))
	_, err = reg.Resolve(context.Background(), ph.Token)
	require.NoError(t, err)
	assert.Len(t, fetcher.FetchCalls(), 2, "content list invalidation drops the fragment")
}

func TestPlugin_RenderEmpty(t *testing.T) {
	fetcher := &mocks.ContentFetcherMock{}
	p, err := New(fetcher, render.NewRegistry(render.NewMemoryCache(), render.Config{}), nil)
	require.NoError(t, err)

	html, err := p.Render(domain.RenderPayload{
		NoResultsMessage: `<em>Nothing</em> today<script>alert(1)</script>`,
	}, time.UTC)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<p class="recent-content__empty"><em>Nothing</em> today</p>`)
	assert.NotContains(t, string(html), "script")
	assert.NotContains(t, string(html), "<h2", "no title header for empty title")
	assert.NotContains(t, string(html), "<ul")

	_, err = p.Render(domain.RenderPayload{}, nil)
	require.Error(t, err)
}

func TestPlugin_RenderInSiteTimezone(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	p, err := New(&mocks.ContentFetcherMock{}, render.NewRegistry(render.NewMemoryCache(), render.Config{}), nil)
	require.NoError(t, err)
	html, err := p.Render(domain.RenderPayload{Items: []domain.ContentItem{
		{Title: "x", Changed: time.Date(2024, 5, 10, 22, 30, 0, 0, time.UTC)},
	}}, loc)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<time datetime="2024-05-11T01:30:00&#43;03:00">01:30</time>`)
}

func TestPlugin_LazyLoadErrors(t *testing.T) {
	fetcher := &mocks.ContentFetcherMock{
		FetchFunc: func(context.Context, domain.BlockConfig, time.Time) (domain.RenderPayload, error) {
			return domain.RenderPayload{}, errors.New("db gone")
		},
	}
	p, err := New(fetcher, render.NewRegistry(render.NewMemoryCache(), render.Config{}), nil)
	require.NoError(t, err)

	_, err = p.LazyLoad(context.Background(), []string{"only one"})
	require.Error(t, err)

	_, err = p.LazyLoad(context.Background(), []string{"t", "m", "0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db gone")
}
