package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) GetProduct(ctx context.Context, id string) (*models.InventoryItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*models.InventoryItem)
	return item, args.Error(1)
}

func (m *CatalogService) ByCategory(ctx context.Context, rawCategory string) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, rawCategory)
	items, _ := args.Get(0).([]*models.InventoryItem)
	return items, args.Error(1)
}

func (m *CatalogService) Search(ctx context.Context, query string) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, query)
	items, _ := args.Get(0).([]*models.InventoryItem)
	return items, args.Error(1)
}

func (m *CatalogService) TopProducts(ctx context.Context, count int) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, count)
	items, _ := args.Get(0).([]*models.InventoryItem)
	return items, args.Error(1)
}

func (m *CatalogService) AllCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]string)
	return categories, args.Error(1)
}
