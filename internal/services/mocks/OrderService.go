package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type OrderService struct {
	mock.Mock
}

func (m *OrderService) GetOrderStatus(ctx context.Context, orderID string) (*models.OrderStatusResponse, error) {
	args := m.Called(ctx, orderID)
	resp, _ := args.Get(0).(*models.OrderStatusResponse)
	return resp, args.Error(1)
}

func (m *OrderService) ReturnOrder(ctx context.Context, orderID string, req *models.ReturnOrderRequest) (*models.ReturnOrderResponse, error) {
	args := m.Called(ctx, orderID, req)
	resp, _ := args.Get(0).(*models.ReturnOrderResponse)
	return resp, args.Error(1)
}
