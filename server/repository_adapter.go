package server

import (
	"context"

	"github.com/umputun/freshblock/pkg/domain"
	"github.com/umputun/freshblock/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// ListBlocks returns blocks of a region, all blocks for empty region
func (r *RepositoryAdapter) ListBlocks(ctx context.Context, region string) ([]domain.Block, error) {
	blocks, err := r.repos.Block.ListBlocks(ctx, region)
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// GetBlock returns a block by id
func (r *RepositoryAdapter) GetBlock(ctx context.Context, id string) (*domain.Block, error) {
	return r.repos.Block.GetBlock(ctx, id)
}

// CreateBlock places a new block
func (r *RepositoryAdapter) CreateBlock(ctx context.Context, b *domain.Block) error {
	return r.repos.Block.CreateBlock(ctx, b)
}

// UpdateBlock saves block placement and settings
func (r *RepositoryAdapter) UpdateBlock(ctx context.Context, b *domain.Block) error {
	return r.repos.Block.UpdateBlock(ctx, b)
}

// DeleteBlock removes a block
func (r *RepositoryAdapter) DeleteBlock(ctx context.Context, id string) error {
	return r.repos.Block.DeleteBlock(ctx, id)
}

// ListContent returns a page of content items, never nil
func (r *RepositoryAdapter) ListContent(ctx context.Context, limit, offset int) ([]domain.ContentItem, error) {
	items, err := r.repos.Content.ListContent(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.ContentItem{}
	}
	return items, nil
}

// GetContent returns a content item by id
func (r *RepositoryAdapter) GetContent(ctx context.Context, id int64) (*domain.ContentItem, error) {
	return r.repos.Content.GetContent(ctx, id)
}

// CreateContent adds a content item
func (r *RepositoryAdapter) CreateContent(ctx context.Context, item *domain.ContentItem) error {
	return r.repos.Content.CreateContent(ctx, item)
}

// UpdateContent saves a content item
func (r *RepositoryAdapter) UpdateContent(ctx context.Context, item *domain.ContentItem) error {
	return r.repos.Content.UpdateContent(ctx, item)
}

// DeleteContent removes a content item
func (r *RepositoryAdapter) DeleteContent(ctx context.Context, id int64) error {
	return r.repos.Content.DeleteContent(ctx, id)
}
