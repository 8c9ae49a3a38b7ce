package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	service "github.com/aaravmahajanofficial/cymbal-sports-api/internal/services"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/utils/response"
)

type AdminHandler struct {
	inventoryService service.InventoryService
}

func NewAdminHandler(inventoryService service.InventoryService) *AdminHandler {
	return &AdminHandler{inventoryService: inventoryService}
}

// SaveInventory reloads the catalog from the configured CSV file.
func (h *AdminHandler) SaveInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logger = logger.With(slog.String("requestedBy", claims.Username))
		}

		saved, err := h.inventoryService.Reload(r.Context())
		if err != nil {
			logger.Error("Inventory reload failed", slog.Int("saved", saved), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Inventory reloaded", slog.Int("saved", saved))
		response.Success(w, http.StatusOK, models.SaveInventoryResponse{Message: "Inventory saved successfully", Saved: saved})
	}
}
