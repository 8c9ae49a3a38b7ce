package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/cache"
	appErrors "github.com/aaravmahajanofficial/cymbal-sports-api/internal/errors"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	repository "github.com/aaravmahajanofficial/cymbal-sports-api/internal/repositories"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/taxonomy"
)

const DefaultTopProducts = 8

type CatalogService interface {
	GetProduct(ctx context.Context, id string) (*models.InventoryItem, error)
	ByCategory(ctx context.Context, rawCategory string) ([]*models.InventoryItem, error)
	Search(ctx context.Context, query string) ([]*models.InventoryItem, error)
	TopProducts(ctx context.Context, count int) ([]*models.InventoryItem, error)
	AllCategories(ctx context.Context) ([]string, error)
}

type catalogService struct {
	repo       repository.InventoryRepository
	cache      cache.Cache
	topDefault int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewCatalogService builds the query layer. A zero seed draws one from the
// clock, so repeated TopProducts calls differ between runs.
func NewCatalogService(repo repository.InventoryRepository, c cache.Cache, topDefault int, seed uint64) CatalogService {
	if topDefault <= 0 {
		topDefault = DefaultTopProducts
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &catalogService{
		repo:       repo,
		cache:      c,
		topDefault: topDefault,
		rng:        rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.InventoryItem, error) {

	if strings.TrimSpace(id) == "" {
		return nil, appErrors.BadRequestError("Product id is required")
	}

	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, storeFailure("Failed to fetch product", err)
	}

	return item, nil
}

// ByCategory matches the normalized category exactly. Input that normalizes to
// nothing applies no filter.
func (s *catalogService) ByCategory(ctx context.Context, rawCategory string) ([]*models.InventoryItem, error) {

	category, ok := taxonomy.Normalize(rawCategory)
	if !ok {
		items, err := s.repo.ListItems(ctx)
		if err != nil {
			return nil, storeFailure("Failed to list products", err)
		}
		return items, nil
	}

	items, err := s.repo.FilterByField(ctx, "category", category)
	if err != nil {
		return nil, storeFailure("Failed to fetch products by category", err)
	}

	return items, nil
}

// Search is a case-insensitive substring match on titles only, in catalog order.
func (s *catalogService) Search(ctx context.Context, query string) ([]*models.InventoryItem, error) {

	if strings.TrimSpace(query) == "" {
		return []*models.InventoryItem{}, nil
	}

	// Surrounding spaces are part of the substring.
	needle := strings.ToLower(query)

	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, storeFailure("Failed to search products", err)
	}

	matches := []*models.InventoryItem{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), needle) {
			matches = append(matches, item)
		}
	}

	return matches, nil
}

// TopProducts samples up to count items uniformly without replacement.
func (s *catalogService) TopProducts(ctx context.Context, count int) ([]*models.InventoryItem, error) {

	if count <= 0 {
		count = s.topDefault
	}

	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, storeFailure("Failed to fetch top products", err)
	}

	count = min(count, len(items))
	pool := make([]*models.InventoryItem, len(items))
	copy(pool, items)

	s.mu.Lock()
	for i := range count {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	s.mu.Unlock()

	return pool[:count], nil
}

// AllCategories returns the distinct category values in inventory, unordered.
// The list is cached until the next inventory reload.
func (s *catalogService) AllCategories(ctx context.Context) ([]string, error) {

	logger := middleware.LoggerFromContext(ctx)

	var categories []string

	found, err := s.cache.Get(ctx, cache.CategoriesKey, &categories)
	if err != nil {
		logger.Warn("Category cache read failed", slog.String("error", err.Error()))
	}
	if found {
		return categories, nil
	}

	categories, err = s.repo.SelectField(ctx, "category")
	if err != nil {
		return nil, storeFailure("Failed to fetch categories", err)
	}

	if err := s.cache.Set(ctx, cache.CategoriesKey, categories, 0); err != nil {
		logger.Warn("Category cache write failed", slog.String("error", err.Error()))
	}

	return categories, nil
}
