package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/errors"
	service "github.com/aaravmahajanofficial/cymbal-sports-api/internal/services"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/utils"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/utils/response"
)

type ProductHandler struct {
	catalogService service.CatalogService
}

func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")

		item, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to fetch product", slog.String("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

// for eg: GET /api/products/top?count=4
func (h *ProductHandler) TopProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		count, err := utils.QueryInt(r, "count", 0)
		if err != nil || count < 0 {
			response.Error(w, errors.BadRequestError("count must be a non-negative integer"))
			return
		}

		items, err := h.catalogService.TopProducts(r.Context(), count)
		if err != nil {
			logger.Error("Failed to fetch top products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

func (h *ProductHandler) ByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		category := r.PathValue("category")

		items, err := h.catalogService.ByCategory(r.Context(), category)
		if err != nil {
			logger.Error("Failed to fetch products by category", slog.String("category", category), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

// for eg: GET /api/products/search?q=ball
func (h *ProductHandler) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		query := r.URL.Query().Get("q")

		items, err := h.catalogService.Search(r.Context(), query)
		if err != nil {
			logger.Error("Product search failed", slog.String("query", query), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

// Categories are sorted here for display; the service returns them unordered.
func (h *ProductHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		categories, err := h.catalogService.AllCategories(r.Context())
		if err != nil {
			logger.Error("Failed to fetch categories", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		sorted := slices.Clone(categories)
		slices.Sort(sorted)

		response.Success(w, http.StatusOK, sorted)
	}
}
