package models

type OrderStatus string

const (
	OrderStatusShipped         OrderStatus = "SHIPPED"
	OrderStatusDelivered       OrderStatus = "DELIVERED"
	OrderStatusProcessing      OrderStatus = "PROCESSING"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
	OrderStatusReturnInitiated OrderStatus = "RETURN_INITIATED"
)

type OrderStatusResponse struct {
	OrderID           string      `json:"order_id"`
	Status            OrderStatus `json:"status"`
	EstimatedDelivery string      `json:"estimated_delivery"`
}

type ReturnOrderRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type ReturnOrderResponse struct {
	OrderID string      `json:"order_id"`
	Status  OrderStatus `json:"status"`
	Message string      `json:"message"`
}
