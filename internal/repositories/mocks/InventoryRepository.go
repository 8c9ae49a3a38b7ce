package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type InventoryRepository struct {
	mock.Mock
}

func (m *InventoryRepository) GetItem(ctx context.Context, id string) (*models.InventoryItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*models.InventoryItem)
	return item, args.Error(1)
}

func (m *InventoryRepository) ListItems(ctx context.Context) ([]*models.InventoryItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*models.InventoryItem)
	return items, args.Error(1)
}

func (m *InventoryRepository) FilterByField(ctx context.Context, field, value string) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, field, value)
	items, _ := args.Get(0).([]*models.InventoryItem)
	return items, args.Error(1)
}

func (m *InventoryRepository) SelectField(ctx context.Context, field string) ([]string, error) {
	args := m.Called(ctx, field)
	values, _ := args.Get(0).([]string)
	return values, args.Error(1)
}

func (m *InventoryRepository) UpsertItems(ctx context.Context, items []*models.InventoryItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}
