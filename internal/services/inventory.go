package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/cache"
	appErrors "github.com/aaravmahajanofficial/cymbal-sports-api/internal/errors"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/metrics"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	repository "github.com/aaravmahajanofficial/cymbal-sports-api/internal/repositories"
)

// MaxBatchSize keeps each upsert transaction under 500 writes.
const MaxBatchSize = 400

// InventoryService bulk-loads the catalog from CSV.
type InventoryService interface {
	// Reload reads the configured CSV file.
	Reload(ctx context.Context) (int, error)
	// Load upserts every row of r and returns how many were written. Batches
	// that committed before a failure stay committed.
	Load(ctx context.Context, r io.Reader) (int, error)
}

type inventoryService struct {
	repo      repository.InventoryRepository
	cache     cache.Cache
	csvPath   string
	batchSize int
}

func NewInventoryService(repo repository.InventoryRepository, c cache.Cache, csvPath string, batchSize int) InventoryService {
	if batchSize <= 0 || batchSize > MaxBatchSize {
		batchSize = MaxBatchSize
	}

	return &inventoryService{repo: repo, cache: c, csvPath: csvPath, batchSize: batchSize}
}

func (s *inventoryService) Reload(ctx context.Context) (int, error) {

	f, err := os.Open(s.csvPath)
	if err != nil {
		return 0, appErrors.InternalError("Inventory file not found").WithDetail(s.csvPath).WithError(err)
	}
	defer f.Close()

	return s.Load(ctx, f)
}

func (s *inventoryService) Load(ctx context.Context, r io.Reader) (int, error) {

	logger := middleware.LoggerFromContext(ctx)

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, appErrors.BadRequestError("Inventory file has no header row").WithError(err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return 0, appErrors.BadRequestError(err.Error())
	}

	saved := 0
	batch := make([]*models.InventoryItem, 0, s.batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.repo.UpsertItems(ctx, batch); err != nil {
			return storeFailure("Failed to save inventory batch", err)
		}
		saved += len(batch)
		metrics.RecordInventoryLoaded(len(batch))
		logger.Debug("Inventory batch committed", slog.Int("size", len(batch)), slog.Int("saved", saved))
		batch = make([]*models.InventoryItem, 0, s.batchSize)
		return nil
	}

	// Line 1 is the header.
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return saved, appErrors.BadRequestError(fmt.Sprintf("Malformed inventory row at line %d", line)).WithError(err)
		}

		item, err := parseInventoryRecord(record, index)
		if err != nil {
			return saved, appErrors.BadRequestError(fmt.Sprintf("Invalid inventory row at line %d", line)).WithDetail(err.Error()).WithError(err)
		}

		batch = append(batch, item)

		if len(batch) == s.batchSize {
			if err := flush(); err != nil {
				return saved, err
			}
		}
	}

	// the last, partial batch
	if err := flush(); err != nil {
		return saved, err
	}

	if err := s.cache.Invalidate(ctx, cache.CategoriesKey); err != nil {
		logger.Warn("Failed to invalidate category cache", slog.String("error", err.Error()))
	}

	logger.Info("Inventory loaded", slog.Int("saved", saved))

	return saved, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{"id", "price", "rating"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("inventory header is missing column %q", required)
		}
	}

	return index, nil
}

func parseInventoryRecord(record []string, index map[string]int) (*models.InventoryItem, error) {

	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	id := field("id")
	if id == "" {
		return nil, errors.New("id is empty")
	}

	price, err := strconv.ParseFloat(field("price"), 64)
	if err != nil {
		return nil, fmt.Errorf("price for %s: %w", id, err)
	}

	rating, err := strconv.ParseFloat(field("rating"), 64)
	if err != nil {
		return nil, fmt.Errorf("rating for %s: %w", id, err)
	}

	return &models.InventoryItem{
		ID:              id,
		Category:        field("category"),
		Title:           field("title"),
		Description:     field("description"),
		Price:           price,
		InventoryStatus: models.InventoryStatus(field("inventory_status")),
		Rating:          rating,
		ImageURL:        field("image_url"),
	}, nil
}
