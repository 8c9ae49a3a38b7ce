package repository

import (
	"context"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
)

// UnavailableStore stands in for the document store when it could not be
// reached. Every call fails with ErrStoreUnavailable.
type UnavailableStore struct {
	cause error
}

var (
	_ InventoryRepository = (*UnavailableStore)(nil)
	_ CartRepository      = (*UnavailableStore)(nil)
	_ UserRepository      = (*UnavailableStore)(nil)
)

func NewUnavailableStore(cause error) *UnavailableStore {
	return &UnavailableStore{cause: cause}
}

func (s *UnavailableStore) err(op string) error {
	return unavailableError(op, s.cause)
}

func (s *UnavailableStore) GetItem(context.Context, string) (*models.InventoryItem, error) {
	return nil, s.err("get inventory item")
}

func (s *UnavailableStore) ListItems(context.Context) ([]*models.InventoryItem, error) {
	return nil, s.err("list inventory")
}

func (s *UnavailableStore) FilterByField(context.Context, string, string) ([]*models.InventoryItem, error) {
	return nil, s.err("filter inventory")
}

func (s *UnavailableStore) SelectField(context.Context, string) ([]string, error) {
	return nil, s.err("select inventory field")
}

func (s *UnavailableStore) UpsertItems(context.Context, []*models.InventoryItem) error {
	return s.err("upsert inventory")
}

func (s *UnavailableStore) GetItems(context.Context, string) (map[string]int, bool, error) {
	return nil, false, s.err("get cart")
}

func (s *UnavailableStore) MergeItems(context.Context, string, map[string]int) error {
	return s.err("merge cart")
}

func (s *UnavailableStore) OverwriteItems(context.Context, string, map[string]int) error {
	return s.err("overwrite cart")
}

func (s *UnavailableStore) CreateUser(context.Context, *models.User) (bool, error) {
	return false, s.err("create user")
}

func (s *UnavailableStore) GetUser(context.Context, string) (*models.User, error) {
	return nil, s.err("get user")
}
