package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/utils"
)

// CartRepository stores one items document per user: item id -> quantity.
//
// MergeItems folds the given keys into whatever is stored (set-with-merge);
// OverwriteItems replaces the stored map wholesale.
type CartRepository interface {
	GetItems(ctx context.Context, userID string) (map[string]int, bool, error)
	MergeItems(ctx context.Context, userID string, items map[string]int) error
	OverwriteItems(ctx context.Context, userID string, items map[string]int) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) GetItems(ctx context.Context, userID string) (map[string]int, bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT items FROM carts WHERE user_id = $1`

	var itemsJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, userID).Scan(&itemsJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, storeError("get cart", err)
	}

	items := map[string]int{}

	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &items); err != nil {
			return nil, false, fmt.Errorf("failed to unmarshal cart items: %w", err)
		}
	}

	return items, true, nil
}

func (r *cartRepository) MergeItems(ctx context.Context, userID string, items map[string]int) error {
	query := `
		INSERT INTO carts (user_id, items, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET items = carts.items || EXCLUDED.items, updated_at = NOW()
	`

	return r.write(ctx, "merge cart", query, userID, items)
}

func (r *cartRepository) OverwriteItems(ctx context.Context, userID string, items map[string]int) error {
	query := `
		INSERT INTO carts (user_id, items, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET items = EXCLUDED.items, updated_at = NOW()
	`

	return r.write(ctx, "overwrite cart", query, userID, items)
}

func (r *cartRepository) write(ctx context.Context, op, query, userID string, items map[string]int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if items == nil {
		items = map[string]int{}
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart items: %w", err)
	}

	if _, err := r.DB.ExecContext(dbCtx, query, userID, itemsJSON); err != nil {
		return storeError(op, err)
	}

	return nil
}
