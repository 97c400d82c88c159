package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshblock/pkg/domain"
	"github.com/umputun/freshblock/pkg/repository"
	"github.com/umputun/freshblock/server/mocks"
)

func TestServer_listBlocksHandler(t *testing.T) {
	db := &mocks.DatabaseMock{
		ListBlocksFunc: func(ctx context.Context, region string) ([]domain.Block, error) {
			if region == "broken" {
				return nil, fmt.Errorf("db down")
			}
			return []domain.Block{{ID: "recent", Region: "content", Settings: domain.BlockConfig{Title: "Today", CacheHours: 12}}}, nil
		},
	}
	srv := testServer(t, Params{DB: db})

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/blocks?region=content", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	var blocks []domain.Block
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &blocks))
	require.Len(t, blocks, 1)
	assert.Equal(t, "recent", blocks[0].ID)
	assert.Equal(t, 12, blocks[0].Settings.CacheHours)
	assert.Contains(t, w.Body.String(), `"how_many_hours_to_cache":12`)
	assert.Equal(t, "content", db.ListBlocksCalls()[0].Region)

	w = serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/blocks?region=broken", http.NoBody))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"db down"`)
}

func TestServer_blockPayloadHandler(t *testing.T) {
	settings := domain.BlockConfig{Title: "Today", NoResultsMessage: "None", CacheHours: 1, ResultLimit: 2}
	db := &mocks.DatabaseMock{
		GetBlockFunc: func(ctx context.Context, id string) (*domain.Block, error) {
			if id != "recent" {
				return nil, fmt.Errorf("get block %s: %w", id, repository.ErrNotFound)
			}
			return &domain.Block{ID: id, Settings: settings}, nil
		},
	}
	fetcher := &mocks.PayloadFetcherMock{
		FetchFunc: func(ctx context.Context, cfg domain.BlockConfig, now time.Time) (domain.RenderPayload, error) {
			return domain.RenderPayload{Title: cfg.Title, NoResultsMessage: cfg.NoResultsMessage,
				Items: []domain.ContentItem{{ID: 1, Title: "Page - today 1"}}}, nil
		},
	}
	srv := testServer(t, Params{DB: db, Fetcher: fetcher})

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/blocks/recent/payload", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	var payload domain.RenderPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "Today", payload.Title)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "Page - today 1", payload.Items[0].Title)

	require.Len(t, fetcher.FetchCalls(), 1)
	assert.Equal(t, settings, fetcher.FetchCalls()[0].Cfg)
	assert.Equal(t, testNow, fetcher.FetchCalls()[0].Now)

	w = serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/blocks/other/payload", http.NoBody))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, fetcher.FetchCalls(), 1)
}

func TestServer_blockPayloadHandler_FetchError(t *testing.T) {
	db := &mocks.DatabaseMock{
		GetBlockFunc: func(ctx context.Context, id string) (*domain.Block, error) { return &domain.Block{ID: id}, nil },
	}
	fetcher := &mocks.PayloadFetcherMock{
		FetchFunc: func(ctx context.Context, cfg domain.BlockConfig, now time.Time) (domain.RenderPayload, error) {
			return domain.RenderPayload{}, fmt.Errorf("query content ids: disk I/O error")
		},
	}
	srv := testServer(t, Params{DB: db, Fetcher: fetcher})

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/blocks/recent/payload", http.NoBody))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "disk I/O error")
}

func TestServer_listContentHandler(t *testing.T) {
	db := &mocks.DatabaseMock{
		ListContentFunc: func(ctx context.Context, limit, offset int) ([]domain.ContentItem, error) {
			return []domain.ContentItem{{ID: 3, Title: "three"}}, nil
		},
	}
	srv := testServer(t, Params{DB: db})

	tbl := []struct {
		query         string
		limit, offset int
	}{
		{"", 50, 0},
		{"?limit=10&offset=20", 10, 20},
		{"?limit=-1&offset=x", 50, 0},
		{"?limit=abc&offset=-5", 50, 0},
	}
	for i, tt := range tbl {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/content"+tt.query, http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		call := db.ListContentCalls()[i]
		assert.Equal(t, tt.limit, call.Limit, tt.query)
		assert.Equal(t, tt.offset, call.Offset, tt.query)
	}

	var items []domain.ContentItem
	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/content", http.NoBody))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Equal(t, []domain.ContentItem{{ID: 3, Title: "three"}}, items)
}

func TestServer_createContentHandler(t *testing.T) {
	newMocks := func() (*mocks.DatabaseMock, *mocks.RendererMock) {
		db := &mocks.DatabaseMock{
			CreateContentFunc: func(ctx context.Context, item *domain.ContentItem) error {
				item.ID = 42
				item.UUID = "2f1b6c3e-8a4d-4b7e-9c2a-5d6e7f8a9b0c"
				return nil
			},
		}
		renderer := &mocks.RendererMock{
			InvalidateFunc: func(ctx context.Context, tags ...string) error { return nil },
		}
		return db, renderer
	}

	t.Run("created", func(t *testing.T) {
		db, renderer := newMocks()
		srv := testServer(t, Params{DB: db, Renderer: renderer})

		body := `{"title":" Page - today 1 ","body":"text","author_id":7,"changed":"2024-07-04T09:00:00-05:00"}`
		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/content", strings.NewReader(body)))
		require.Equal(t, http.StatusCreated, w.Code)

		var item domain.ContentItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
		assert.Equal(t, int64(42), item.ID)
		assert.Equal(t, "2f1b6c3e-8a4d-4b7e-9c2a-5d6e7f8a9b0c", item.UUID)

		created := db.CreateContentCalls()[0].Item
		assert.Equal(t, "Page - today 1", created.Title)
		assert.Equal(t, "text", created.Body)
		assert.Equal(t, int64(7), created.AuthorID)
		assert.True(t, created.Published, "published unless told otherwise")
		assert.True(t, created.Changed.Equal(time.Date(2024, 7, 4, 14, 0, 0, 0, time.UTC)))

		require.Len(t, renderer.InvalidateCalls(), 1)
		assert.Equal(t, []string{"content_list"}, renderer.InvalidateCalls()[0].Tags)
	})

	t.Run("unpublished", func(t *testing.T) {
		db, renderer := newMocks()
		srv := testServer(t, Params{DB: db, Renderer: renderer})
		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/content", strings.NewReader(`{"title":"draft","published":false}`)))
		require.Equal(t, http.StatusCreated, w.Code)
		assert.False(t, db.CreateContentCalls()[0].Item.Published)
	})

	t.Run("invalidation failure is not fatal", func(t *testing.T) {
		db, renderer := newMocks()
		renderer.InvalidateFunc = func(ctx context.Context, tags ...string) error { return fmt.Errorf("cache gone") }
		srv := testServer(t, Params{DB: db, Renderer: renderer})
		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/content", strings.NewReader(`{"title":"x"}`)))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	for _, body := range []string{`{"title":"  "}`, `{}`, `not json`} {
		t.Run("bad request "+body, func(t *testing.T) {
			db, renderer := newMocks()
			srv := testServer(t, Params{DB: db, Renderer: renderer})
			w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/content", strings.NewReader(body)))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, db.CreateContentCalls())
			assert.Empty(t, renderer.InvalidateCalls())
		})
	}

	t.Run("store error", func(t *testing.T) {
		db, renderer := newMocks()
		db.CreateContentFunc = func(ctx context.Context, item *domain.ContentItem) error { return fmt.Errorf("db locked") }
		srv := testServer(t, Params{DB: db, Renderer: renderer})
		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/content", strings.NewReader(`{"title":"x"}`)))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, renderer.InvalidateCalls())
	})
}

func TestServer_updateContentHandler(t *testing.T) {
	stored := domain.ContentItem{ID: 5, UUID: "u-5", Type: "article", Title: "old", Body: "old body", Published: true}
	newMocks := func() (*mocks.DatabaseMock, *mocks.RendererMock) {
		db := &mocks.DatabaseMock{
			GetContentFunc: func(ctx context.Context, id int64) (*domain.ContentItem, error) {
				if id != stored.ID {
					return nil, fmt.Errorf("get content %d: %w", id, repository.ErrNotFound)
				}
				item := stored
				return &item, nil
			},
			UpdateContentFunc: func(ctx context.Context, item *domain.ContentItem) error { return nil },
		}
		renderer := &mocks.RendererMock{
			InvalidateFunc: func(ctx context.Context, tags ...string) error { return nil },
		}
		return db, renderer
	}

	t.Run("updated", func(t *testing.T) {
		db, renderer := newMocks()
		srv := testServer(t, Params{DB: db, Renderer: renderer})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/content/5", strings.NewReader(`{"title":"new","published":false}`))
		w := serve(srv, req)
		require.Equal(t, http.StatusOK, w.Code)

		updated := db.UpdateContentCalls()[0].Item
		assert.Equal(t, int64(5), updated.ID)
		assert.Equal(t, "u-5", updated.UUID)
		assert.Equal(t, "article", updated.Type, "type kept when not given")
		assert.Equal(t, "new", updated.Title)
		assert.Empty(t, updated.Body)
		assert.False(t, updated.Published)
		assert.True(t, updated.Changed.IsZero(), "store sets the change time")
		assert.Len(t, renderer.InvalidateCalls(), 1)
	})

	t.Run("not found", func(t *testing.T) {
		db, renderer := newMocks()
		srv := testServer(t, Params{DB: db, Renderer: renderer})
		w := serve(srv, httptest.NewRequest(http.MethodPut, "/api/v1/content/9", strings.NewReader(`{"title":"new"}`)))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, db.UpdateContentCalls())
		assert.Empty(t, renderer.InvalidateCalls())
	})

	t.Run("invalid id", func(t *testing.T) {
		db, renderer := newMocks()
		srv := testServer(t, Params{DB: db, Renderer: renderer})
		w := serve(srv, httptest.NewRequest(http.MethodPut, "/api/v1/content/abc", strings.NewReader(`{"title":"new"}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid content ID")
	})

	t.Run("removed concurrently", func(t *testing.T) {
		db, renderer := newMocks()
		db.UpdateContentFunc = func(ctx context.Context, item *domain.ContentItem) error {
			return fmt.Errorf("update content %d: %w", item.ID, repository.ErrNotFound)
		}
		srv := testServer(t, Params{DB: db, Renderer: renderer})
		w := serve(srv, httptest.NewRequest(http.MethodPut, "/api/v1/content/5", strings.NewReader(`{"title":"new"}`)))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_deleteContentHandler(t *testing.T) {
	db := &mocks.DatabaseMock{
		DeleteContentFunc: func(ctx context.Context, id int64) error {
			if id != 5 {
				return fmt.Errorf("delete content %d: %w", id, repository.ErrNotFound)
			}
			return nil
		},
	}
	renderer := &mocks.RendererMock{
		InvalidateFunc: func(ctx context.Context, tags ...string) error { return nil },
	}
	srv := testServer(t, Params{DB: db, Renderer: renderer})

	w := serve(srv, httptest.NewRequest(http.MethodDelete, "/api/v1/content/5", http.NoBody))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, renderer.InvalidateCalls(), 1)

	w = serve(srv, httptest.NewRequest(http.MethodDelete, "/api/v1/content/6", http.NoBody))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, renderer.InvalidateCalls(), 1)

	w = serve(srv, httptest.NewRequest(http.MethodDelete, "/api/v1/content/x", http.NoBody))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
