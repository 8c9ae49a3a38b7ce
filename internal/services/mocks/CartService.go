package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) AddItem(ctx context.Context, userID, itemID string, quantity int) (*models.Cart, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	cart, _ := args.Get(0).(*models.Cart)
	return cart, args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, userID, itemID string) (*models.Cart, bool, error) {
	args := m.Called(ctx, userID, itemID)
	cart, _ := args.Get(0).(*models.Cart)
	return cart, args.Bool(1), args.Error(2)
}

func (m *CartService) ClearCart(ctx context.Context, userID string) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	cart, _ := args.Get(0).(*models.Cart)
	return cart, args.Error(1)
}

func (m *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	cart, _ := args.Get(0).(*models.Cart)
	return cart, args.Error(1)
}

func (m *CartService) GetDetails(ctx context.Context, userID string) (*models.EnrichedCart, error) {
	args := m.Called(ctx, userID)
	details, _ := args.Get(0).(*models.EnrichedCart)
	return details, args.Error(1)
}
