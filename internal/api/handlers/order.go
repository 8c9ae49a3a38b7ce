package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	service "github.com/aaravmahajanofficial/cymbal-sports-api/internal/services"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/utils"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

func (h *OrderHandler) GetOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderID := r.PathValue("id")

		status, err := h.orderService.GetOrderStatus(r.Context(), orderID)
		if err != nil {
			logger.Warn("Failed to fetch order status", slog.String("orderId", orderID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, status)
	}
}

func (h *OrderHandler) ReturnOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderID := r.PathValue("id")

		var req models.ReturnOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.orderService.ReturnOrder(r.Context(), orderID, &req)
		if err != nil {
			logger.Warn("Order return rejected", slog.String("orderId", orderID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order return initiated", slog.String("orderId", orderID))
		response.Success(w, http.StatusOK, resp)
	}
}
