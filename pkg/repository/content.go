package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/freshblock/pkg/domain"
)

// ContentRepository handles content-related database operations
type ContentRepository struct {
	db *sqlx.DB
}

// contentSQL represents a content row, timestamps are unix seconds
type contentSQL struct {
	ID       int64  `db:"id"`
	UUID     string `db:"uuid"`
	Type     string `db:"type"`
	Title    string `db:"title"`
	Body     string `db:"body"`
	AuthorID int64  `db:"author_id"`
	Status   bool   `db:"status"`
	Created  int64  `db:"created"`
	Changed  int64  `db:"changed"`
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// CreateContent inserts a new content item. Missing uuid, type and timestamps are filled in.
func (r *ContentRepository) CreateContent(ctx context.Context, item *domain.ContentItem) error {
	if item.UUID == "" {
		item.UUID = uuid.NewString()
	}
	if item.Type == "" {
		item.Type = "page"
	}
	now := time.Now()
	if item.Created.IsZero() {
		item.Created = now
	}
	if item.Changed.IsZero() {
		item.Changed = item.Created
	}
	item.Created = item.Created.Truncate(time.Second)
	item.Changed = item.Changed.Truncate(time.Second)

	query := `
		INSERT INTO content (uuid, type, title, body, author_id, status, created, changed)
		VALUES (:uuid, :type, :title, :body, :author_id, :status, :created, :changed)
	`
	return withRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, toContentSQL(item))
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("create content: %w", err)}
		}
		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		item.ID = id
		return nil
	})
}

// UpdateContent saves all fields of an existing item. Zero Changed is set to now.
func (r *ContentRepository) UpdateContent(ctx context.Context, item *domain.ContentItem) error {
	if item.Changed.IsZero() {
		item.Changed = time.Now()
	}
	item.Changed = item.Changed.Truncate(time.Second)

	query := `
		UPDATE content
		SET type = :type, title = :title, body = :body, author_id = :author_id,
		    status = :status, changed = :changed
		WHERE id = :id
	`
	return withRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, toContentSQL(item))
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("update content: %w", err)}
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return &criticalError{err: fmt.Errorf("update content %d: %w", item.ID, ErrNotFound)}
		}
		return nil
	})
}

// DeleteContent removes a content item
func (r *ContentRepository) DeleteContent(ctx context.Context, id int64) error {
	return withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, "DELETE FROM content WHERE id = ?", id)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("delete content: %w", err)}
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return &criticalError{err: fmt.Errorf("delete content %d: %w", id, ErrNotFound)}
		}
		return nil
	})
}

// GetContent retrieves a content item by id
func (r *ContentRepository) GetContent(ctx context.Context, id int64) (*domain.ContentItem, error) {
	var row contentSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM content WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get content %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	item := row.toDomain()
	return &item, nil
}

// ListContent returns content ordered by last change, most recent first
func (r *ContentRepository) ListContent(ctx context.Context, limit, offset int) ([]domain.ContentItem, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	var rows []contentSQL
	query := "SELECT * FROM content ORDER BY changed DESC, id ASC LIMIT ? OFFSET ?"
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	items := make([]domain.ContentItem, len(rows))
	for i := range rows {
		items[i] = rows[i].toDomain()
	}
	return items, nil
}

// QueryIDs returns ids of content matching the query, both change bounds exclusive.
// Results are ordered by last change, most recent first, ties by id.
func (r *ContentRepository) QueryIDs(ctx context.Context, q domain.ContentQuery) ([]int64, error) {
	query := "SELECT id FROM content WHERE 1=1"
	args := []any{}
	if !q.ChangedAfter.IsZero() {
		query += " AND changed > ?"
		args = append(args, q.ChangedAfter.Unix())
	}
	if !q.ChangedBefore.IsZero() {
		query += " AND changed < ?"
		args = append(args, q.ChangedBefore.Unix())
	}
	if q.PublishedOnly {
		query += " AND status = 1"
	}
	query += " ORDER BY changed DESC, id ASC"

	limit := q.Limit
	if limit <= 0 {
		limit = -1
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, q.Offset)

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("query content ids: %w", err)
	}
	return ids, nil
}

// LoadMultiple loads full content records for ids in one query, keeping the order of ids.
// Ids without a record are skipped.
func (r *ContentRepository) LoadMultiple(ctx context.Context, ids []int64) ([]domain.ContentItem, error) {
	if len(ids) == 0 {
		return []domain.ContentItem{}, nil
	}

	query, args, err := sqlx.In("SELECT * FROM content WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("build load query: %w", err)
	}

	var rows []contentSQL
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	byID := make(map[int64]domain.ContentItem, len(rows))
	for i := range rows {
		byID[rows[i].ID] = rows[i].toDomain()
	}

	items := make([]domain.ContentItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func toContentSQL(item *domain.ContentItem) *contentSQL {
	return &contentSQL{
		ID:       item.ID,
		UUID:     item.UUID,
		Type:     item.Type,
		Title:    item.Title,
		Body:     item.Body,
		AuthorID: item.AuthorID,
		Status:   item.Published,
		Created:  item.Created.Unix(),
		Changed:  item.Changed.Unix(),
	}
}

func (c *contentSQL) toDomain() domain.ContentItem {
	return domain.ContentItem{
		ID:        c.ID,
		UUID:      c.UUID,
		Type:      c.Type,
		Title:     c.Title,
		Body:      c.Body,
		AuthorID:  c.AuthorID,
		Published: c.Status,
		Created:   time.Unix(c.Created, 0),
		Changed:   time.Unix(c.Changed, 0),
	}
}
