package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/freshblock/pkg/domain"
)

// CacheRepository stores rendered fragments with expiry and cache tags
type CacheRepository struct {
	db *sqlx.DB
}

type cacheSQL struct {
	Key       string  `db:"key"`
	Value     []byte  `db:"value"`
	Tags      tagsSQL `db:"tags"`
	ExpiresAt int64   `db:"expires_at"`
	CreatedAt int64   `db:"created_at"`
}

// tagsSQL is a JSON array of cache tags
type tagsSQL []string

// Value implements driver.Valuer for database storage
func (t tagsSQL) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(t))
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (t *tagsSQL) Scan(value any) error {
	if value == nil {
		*t = tagsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*t = tagsSQL{}
		return nil
	}

	return json.Unmarshal(data, (*[]string)(t))
}

// NewCacheRepository creates a new cache repository
func NewCacheRepository(db *sqlx.DB) *CacheRepository {
	return &CacheRepository{db: db}
}

// Get returns a live entry for the key. Expired entries are reported as missing.
func (r *CacheRepository) Get(ctx context.Context, key string, now time.Time) (domain.CacheEntry, bool, error) {
	var row cacheSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM render_cache WHERE key = ? AND expires_at > ?", key, now.Unix())
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CacheEntry{}, false, nil
	}
	if err != nil {
		return domain.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}
	return domain.CacheEntry{
		Key:       row.Key,
		Value:     row.Value,
		Tags:      []string(row.Tags),
		ExpiresAt: time.Unix(row.ExpiresAt, 0),
		CreatedAt: time.Unix(row.CreatedAt, 0),
	}, true, nil
}

// Set stores or replaces an entry
func (r *CacheRepository) Set(ctx context.Context, entry domain.CacheEntry) error {
	row := cacheSQL{
		Key:       entry.Key,
		Value:     entry.Value,
		Tags:      tagsSQL(entry.Tags),
		ExpiresAt: entry.ExpiresAt.Unix(),
		CreatedAt: entry.CreatedAt.Unix(),
	}
	query := `
		INSERT INTO render_cache (key, value, tags, expires_at, created_at)
		VALUES (:key, :value, :tags, :expires_at, :created_at)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value, tags = excluded.tags,
			expires_at = excluded.expires_at, created_at = excluded.created_at
	`
	return withRetry(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("set cache entry: %w", err)}
		}
		return nil
	})
}

// InvalidateTags removes every entry carrying any of the tags
func (r *CacheRepository) InvalidateTags(ctx context.Context, tags ...string) error {
	if len(tags) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM render_cache WHERE EXISTS (
		SELECT 1 FROM json_each(render_cache.tags) WHERE json_each.value IN (?))`, tags)
	if err != nil {
		return fmt.Errorf("build invalidate query: %w", err)
	}
	return withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("invalidate cache tags: %w", err)}
		}
		return nil
	})
}

// Purge deletes entries expired at now and returns how many were removed
func (r *CacheRepository) Purge(ctx context.Context, now time.Time) (int, error) {
	var removed int64
	err := withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, "DELETE FROM render_cache WHERE expires_at <= ?", now.Unix())
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("purge cache: %w", err)}
		}
		removed, _ = result.RowsAffected()
		return nil
	})
	return int(removed), err
}
