package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshblock/pkg/domain"
	"github.com/umputun/freshblock/pkg/repository"
	"github.com/umputun/freshblock/server/mocks"
)

func TestServer_rssHandler(t *testing.T) {
	db := &mocks.DatabaseMock{
		GetBlockFunc: func(ctx context.Context, id string) (*domain.Block, error) {
			switch id {
			case "recent":
				return &domain.Block{ID: id, Label: "Recent", Settings: domain.BlockConfig{Title: "Updated today", CacheHours: 1}}, nil
			case "broken":
				return &domain.Block{ID: id}, nil
			}
			return nil, fmt.Errorf("get block %s: %w", id, repository.ErrNotFound)
		},
	}
	fetcher := &mocks.PayloadFetcherMock{
		FetchFunc: func(ctx context.Context, cfg domain.BlockConfig, now time.Time) (domain.RenderPayload, error) {
			if cfg.Title == "" {
				return domain.RenderPayload{}, fmt.Errorf("query failed")
			}
			return domain.RenderPayload{Title: cfg.Title, Items: []domain.ContentItem{
				{ID: 4, UUID: "uuid-4", Title: "Page - today 4", Type: "page", Changed: now.Add(-time.Hour)},
			}}, nil
		},
	}
	srv := testServer(t, Params{DB: db, Fetcher: fetcher})

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/rss/recent", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))

	parsed, err := gofeed.NewParser().ParseString(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, "Updated today", parsed.Title)
	require.Len(t, parsed.Items, 1)
	assert.Equal(t, "Page - today 4", parsed.Items[0].Title)
	assert.Equal(t, "https://example.com/#content-4", parsed.Items[0].Link)
	assert.Contains(t, w.Body.String(), `href="https://example.com/rss/recent"`)
	assert.Contains(t, w.Body.String(), "<ttl>60</ttl>")

	w = serve(srv, httptest.NewRequest(http.MethodGet, "/rss/unknown", http.NoBody))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(srv, httptest.NewRequest(http.MethodGet, "/rss/broken", http.NoBody))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
