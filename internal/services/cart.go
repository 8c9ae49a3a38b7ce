package service

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/cymbal-sports-api/internal/errors"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/metrics"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	repository "github.com/aaravmahajanofficial/cymbal-sports-api/internal/repositories"
	"github.com/shopspring/decimal"
)

// CartService owns per-user carts and their priced view.
//
// Every mutation is a read followed by a write of the same document with no
// lock between them, so two concurrent adds for one user can lose an update.
// Moving to an atomic JSONB increment would close that gap.
type CartService interface {
	AddItem(ctx context.Context, userID, itemID string, quantity int) (*models.Cart, error)
	// RemoveItem reports false, without writing, when the cart or the item is absent.
	RemoveItem(ctx context.Context, userID, itemID string) (*models.Cart, bool, error)
	ClearCart(ctx context.Context, userID string) (*models.Cart, error)
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	GetDetails(ctx context.Context, userID string) (*models.EnrichedCart, error)
}

type cartService struct {
	carts     repository.CartRepository
	inventory repository.InventoryRepository
}

func NewCartService(carts repository.CartRepository, inventory repository.InventoryRepository) CartService {
	return &cartService{carts: carts, inventory: inventory}
}

func (s *cartService) AddItem(ctx context.Context, userID, itemID string, quantity int) (*models.Cart, error) {

	if strings.TrimSpace(userID) == "" || strings.TrimSpace(itemID) == "" {
		return nil, appErrors.BadRequestError("User id and item id are required")
	}

	if quantity <= 0 {
		return nil, appErrors.BadRequestError("Quantity must be a positive integer")
	}

	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if items[itemID] > math.MaxInt-quantity {
		return nil, appErrors.BadRequestError("Quantity too large").
			WithDetail("the item's total quantity would overflow")
	}

	items[itemID] += quantity

	if err := s.carts.MergeItems(ctx, userID, map[string]int{itemID: items[itemID]}); err != nil {
		return nil, storeFailure("Failed to update cart", err)
	}

	metrics.RecordCartMutation("add")
	middleware.LoggerFromContext(ctx).Debug("Cart item added",
		slog.String("userId", userID), slog.String("itemId", itemID), slog.Int("quantity", items[itemID]))

	return &models.Cart{UserID: userID, Items: items}, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID string) (*models.Cart, bool, error) {

	if strings.TrimSpace(userID) == "" {
		return nil, false, appErrors.BadRequestError("User id is required")
	}

	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	if _, ok := items[itemID]; !ok {
		return &models.Cart{UserID: userID, Items: items}, false, nil
	}

	delete(items, itemID)

	if err := s.carts.OverwriteItems(ctx, userID, items); err != nil {
		return nil, false, storeFailure("Failed to update cart", err)
	}

	metrics.RecordCartMutation("remove")

	return &models.Cart{UserID: userID, Items: items}, true, nil
}

func (s *cartService) ClearCart(ctx context.Context, userID string) (*models.Cart, error) {

	if strings.TrimSpace(userID) == "" {
		return nil, appErrors.BadRequestError("User id is required")
	}

	empty := map[string]int{}

	if err := s.carts.OverwriteItems(ctx, userID, empty); err != nil {
		return nil, storeFailure("Failed to clear cart", err)
	}

	metrics.RecordCartMutation("clear")

	return &models.Cart{UserID: userID, Items: empty}, nil
}

func (s *cartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {

	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.Cart{UserID: userID, Items: items}, nil
}

// GetDetails prices the cart against the live catalog. Lines whose item is gone,
// or whose lookup fails, are dropped from both the lines and the total. Lines
// are ordered by item id.
func (s *cartService) GetDetails(ctx context.Context, userID string) (*models.EnrichedCart, error) {

	logger := middleware.LoggerFromContext(ctx)

	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := &models.EnrichedCart{
		UserID: userID,
		Items:  []models.CartLine{},
	}

	total := decimal.Zero

	for _, itemID := range slices.Sorted(maps.Keys(items)) {
		quantity := items[itemID]

		item, err := s.inventory.GetItem(ctx, itemID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				logger.Warn("Skipping orphaned cart line", slog.String("userId", userID), slog.String("itemId", itemID))
				metrics.RecordSkippedCartLine("orphan")
			} else {
				logger.Warn("Skipping cart line after lookup failure",
					slog.String("userId", userID), slog.String("itemId", itemID), slog.String("error", err.Error()))
				metrics.RecordSkippedCartLine("lookup_error")
			}
			continue
		}

		details.Items = append(details.Items, models.CartLine{
			ItemID:   itemID,
			Quantity: quantity,
			Title:    item.Title,
			Price:    item.Price,
			ImageURL: item.ImageURL,
		})

		total = total.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(quantity))))
	}

	// Round is half away from zero; prices are non-negative so this is half-up.
	details.TotalPrice = total.Round(2).InexactFloat64()

	return details, nil
}

// load returns the stored items, or an empty map when the user has no cart.
func (s *cartService) load(ctx context.Context, userID string) (map[string]int, error) {

	items, _, err := s.carts.GetItems(ctx, userID)
	if err != nil {
		return nil, storeFailure("Failed to fetch cart", err)
	}

	if items == nil {
		items = map[string]int{}
	}

	return items, nil
}
