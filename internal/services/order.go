package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	appErrors "github.com/aaravmahajanofficial/cymbal-sports-api/internal/errors"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

// Orders are mocked: nothing is stored, and the status is derived from the id.
const estimatedDelivery = "2023-12-01"

var mockStatuses = []models.OrderStatus{
	models.OrderStatusShipped,
	models.OrderStatusDelivered,
	models.OrderStatusProcessing,
	models.OrderStatusCancelled,
}

type OrderService interface {
	GetOrderStatus(ctx context.Context, orderID string) (*models.OrderStatusResponse, error)
	ReturnOrder(ctx context.Context, orderID string, req *models.ReturnOrderRequest) (*models.ReturnOrderResponse, error)
}

type orderService struct {
	policy *bluemonday.Policy
}

func NewOrderService() OrderService {
	return &orderService{policy: bluemonday.StrictPolicy()}
}

func (s *orderService) GetOrderStatus(ctx context.Context, orderID string) (*models.OrderStatusResponse, error) {

	if strings.TrimSpace(orderID) == "" {
		return nil, appErrors.BadRequestError("Order id is required")
	}

	// Sum of code points, not bytes.
	sum := 0
	for _, r := range orderID {
		sum += int(r)
	}

	return &models.OrderStatusResponse{
		OrderID:           orderID,
		Status:            mockStatuses[sum%len(mockStatuses)],
		EstimatedDelivery: estimatedDelivery,
	}, nil
}

func (s *orderService) ReturnOrder(ctx context.Context, orderID string, req *models.ReturnOrderRequest) (*models.ReturnOrderResponse, error) {

	if strings.TrimSpace(orderID) == "" {
		return nil, appErrors.BadRequestError("Order id is required")
	}

	// Markup is stripped; the policy's entity escaping is undone since the
	// reason goes back as JSON text, not HTML.
	reason := strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(req.Reason)))
	if reason == "" {
		return nil, appErrors.ValidationError("Return reason is required")
	}

	return &models.ReturnOrderResponse{
		OrderID: orderID,
		Status:  models.OrderStatusReturnInitiated,
		Message: fmt.Sprintf("Return initiated for order %s. Reason: %s", orderID, reason),
	}, nil
}
