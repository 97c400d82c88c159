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

// BlockRepository handles placed block instances
type BlockRepository struct {
	db *sqlx.DB
}

// blockSQL represents a block row
type blockSQL struct {
	ID        string      `db:"id"`
	Label     string      `db:"label"`
	Region    string      `db:"region"`
	Weight    int         `db:"weight"`
	Settings  settingsSQL `db:"settings"`
	CreatedAt time.Time   `db:"created_at"`
	UpdatedAt time.Time   `db:"updated_at"`
}

// settingsSQL is the JSON encoded block configuration
type settingsSQL domain.BlockConfig

// Value implements driver.Valuer for database storage
func (s settingsSQL) Value() (driver.Value, error) {
	data, err := json.Marshal(domain.BlockConfig(s))
	if err != nil {
		return nil, fmt.Errorf("marshal block settings: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (s *settingsSQL) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*s = settingsSQL{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported settings type %T", value)
	}
	var cfg domain.BlockConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("unmarshal block settings: %w", err)
	}
	*s = settingsSQL(cfg)
	return nil
}

// NewBlockRepository creates a new block repository
func NewBlockRepository(db *sqlx.DB) *BlockRepository {
	return &BlockRepository{db: db}
}

// CreateBlock places a new block instance
func (r *BlockRepository) CreateBlock(ctx context.Context, b *domain.Block) error {
	if b.ID == "" {
		return errors.New("create block: empty id")
	}
	if b.Region == "" {
		b.Region = "content"
	}
	query := `
		INSERT INTO blocks (id, label, region, weight, settings)
		VALUES (:id, :label, :region, :weight, :settings)
	`
	return withRetry(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, toBlockSQL(b)); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("create block: %w", err)}
		}
		return nil
	})
}

// UpdateBlock stores label, region, weight and settings of an existing block
func (r *BlockRepository) UpdateBlock(ctx context.Context, b *domain.Block) error {
	query := `
		UPDATE blocks
		SET label = :label, region = :region, weight = :weight, settings = :settings,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = :id
	`
	return withRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, toBlockSQL(b))
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("update block: %w", err)}
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return &criticalError{err: fmt.Errorf("update block %s: %w", b.ID, ErrNotFound)}
		}
		return nil
	})
}

// DeleteBlock removes a block instance together with its configuration
func (r *BlockRepository) DeleteBlock(ctx context.Context, id string) error {
	return withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, "DELETE FROM blocks WHERE id = ?", id)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("delete block: %w", err)}
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return &criticalError{err: fmt.Errorf("delete block %s: %w", id, ErrNotFound)}
		}
		return nil
	})
}

// GetBlock retrieves a block by id
func (r *BlockRepository) GetBlock(ctx context.Context, id string) (*domain.Block, error) {
	var row blockSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM blocks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get block %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get block: %w", err)
	}
	b := row.toDomain()
	return &b, nil
}

// ListBlocks returns blocks of the region ordered by weight, all blocks for empty region
func (r *BlockRepository) ListBlocks(ctx context.Context, region string) ([]domain.Block, error) {
	var rows []blockSQL
	var err error
	if region == "" {
		err = r.db.SelectContext(ctx, &rows, "SELECT * FROM blocks ORDER BY region, weight, id")
	} else {
		err = r.db.SelectContext(ctx, &rows, "SELECT * FROM blocks WHERE region = ? ORDER BY weight, id", region)
	}
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	blocks := make([]domain.Block, len(rows))
	for i := range rows {
		blocks[i] = rows[i].toDomain()
	}
	return blocks, nil
}

func toBlockSQL(b *domain.Block) *blockSQL {
	return &blockSQL{
		ID:       b.ID,
		Label:    b.Label,
		Region:   b.Region,
		Weight:   b.Weight,
		Settings: settingsSQL(b.Settings),
	}
}

func (b *blockSQL) toDomain() domain.Block {
	return domain.Block{
		ID:        b.ID,
		Label:     b.Label,
		Region:    b.Region,
		Weight:    b.Weight,
		Settings:  domain.BlockConfig(b.Settings),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
