package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/errors"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	service "github.com/aaravmahajanofficial/cymbal-sports-api/internal/services"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/utils"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), req.UserID, req.ItemID, req.Quantity)
		if err != nil {
			logger.Error("Failed to add item to cart", slog.String("userId", req.UserID), slog.String("itemId", req.ItemID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.String("userId", req.UserID), slog.String("itemId", req.ItemID))
		response.Success(w, http.StatusOK, models.CartMutationResponse{Message: "Item added to cart", Cart: cart})
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RemoveItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, removed, err := h.cartService.RemoveItem(r.Context(), req.UserID, req.ItemID)
		if err != nil {
			logger.Error("Failed to remove item from cart", slog.String("userId", req.UserID), slog.String("itemId", req.ItemID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if !removed {
			logger.Warn("Item not in cart", slog.String("userId", req.UserID), slog.String("itemId", req.ItemID))
			response.Error(w, errors.BadRequestError("Item not found in cart"))
			return
		}

		response.Success(w, http.StatusOK, models.CartMutationResponse{Message: "Item removed from cart", Cart: cart})
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ClearCartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.ClearCart(r.Context(), req.UserID)
		if err != nil {
			logger.Error("Failed to clear cart", slog.String("userId", req.UserID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.CartMutationResponse{Message: "Cart cleared", Cart: cart})
	}
}

// GetCart renders the priced view of the user's cart.
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID := r.PathValue("user_id")
		if userID == "" {
			response.Error(w, errors.BadRequestError("User id is required"))
			return
		}

		details, err := h.cartService.GetDetails(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to fetch cart details", slog.String("userId", userID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, details)
	}
}
