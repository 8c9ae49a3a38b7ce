package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/utils"
)

// InventoryRepository is the catalog collection. Items are schemaless JSONB
// documents keyed by SKU; List returns them in id order, which is the catalog
// iteration order everywhere else.
type InventoryRepository interface {
	GetItem(ctx context.Context, id string) (*models.InventoryItem, error)
	ListItems(ctx context.Context) ([]*models.InventoryItem, error)
	FilterByField(ctx context.Context, field, value string) ([]*models.InventoryItem, error)
	SelectField(ctx context.Context, field string) ([]string, error)
	UpsertItems(ctx context.Context, items []*models.InventoryItem) error
}

type inventoryRepository struct {
	DB *sql.DB
}

func NewInventoryRepo(db *sql.DB) InventoryRepository {
	return &inventoryRepository{DB: db}
}

func (r *inventoryRepository) GetItem(ctx context.Context, id string) (*models.InventoryItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, doc FROM inventory WHERE id = $1`

	var (
		docID string
		doc   []byte
	)

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&docID, &doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, storeError("get inventory item", err)
	}

	return decodeItem(docID, doc)
}

func (r *inventoryRepository) ListItems(ctx context.Context) ([]*models.InventoryItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, doc FROM inventory ORDER BY id`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, storeError("list inventory", err)
	}

	return scanItems(rows)
}

func (r *inventoryRepository) FilterByField(ctx context.Context, field, value string) ([]*models.InventoryItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, doc FROM inventory WHERE doc->>$1 = $2 ORDER BY id`

	rows, err := r.DB.QueryContext(dbCtx, query, field, value)
	if err != nil {
		return nil, storeError("filter inventory", err)
	}

	return scanItems(rows)
}

func (r *inventoryRepository) SelectField(ctx context.Context, field string) ([]string, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT DISTINCT doc->>$1 FROM inventory WHERE doc->>$1 IS NOT NULL`

	rows, err := r.DB.QueryContext(dbCtx, query, field)
	if err != nil {
		return nil, storeError("select inventory field", err)
	}
	defer rows.Close()

	values := []string{}

	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", field, err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("select inventory field", err)
	}

	return values, nil
}

// UpsertItems writes one batch in a single transaction; either every document
// in the batch lands or none does.
func (r *inventoryRepository) UpsertItems(ctx context.Context, items []*models.InventoryItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return storeError("begin inventory batch", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO inventory (id, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
	`

	for _, item := range items {
		doc, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal inventory item %s: %w", item.ID, err)
		}

		if _, err := tx.ExecContext(dbCtx, query, item.ID, doc); err != nil {
			return storeError("upsert inventory item", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storeError("commit inventory batch", err)
	}

	return nil
}

func scanItems(rows *sql.Rows) ([]*models.InventoryItem, error) {
	defer rows.Close()

	items := []*models.InventoryItem{}

	for rows.Next() {
		var (
			id  string
			doc []byte
		)

		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scanning inventory row: %w", err)
		}

		item, err := decodeItem(id, doc)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("iterating inventory", err)
	}

	return items, nil
}

// Missing optional fields decode to their zero values: "" for strings, 0 for
// price and rating.
func decodeItem(id string, doc []byte) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}

	if err := json.Unmarshal(doc, item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal inventory document %s: %w", id, err)
	}

	if item.ID == "" {
		item.ID = id
	}

	return item, nil
}
