package service_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/cache"
	cacheMocks "github.com/aaravmahajanofficial/cymbal-sports-api/internal/cache/mocks"
	appErrors "github.com/aaravmahajanofficial/cymbal-sports-api/internal/errors"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	repository "github.com/aaravmahajanofficial/cymbal-sports-api/internal/repositories"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/cymbal-sports-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const inventoryHeader = "id,category,title,description,price,inventory_status,rating,image_url\n"

func inventoryCSV(rows int) string {
	var b strings.Builder
	b.WriteString(inventoryHeader)
	for i := range rows {
		fmt.Fprintf(&b, "SKU-%d,Golf,Cymbal Pro Golf Bag %d,\"Bag, with pockets\",%d.50,IN_STOCK,4.5,https://img/SKU-%d.png\n", 10000+i, i, 100+i, 10000+i)
	}
	return b.String()
}

func batchOf(n int) any {
	return mock.MatchedBy(func(items []*models.InventoryItem) bool { return len(items) == n })
}

func TestInventoryLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Commits full batches and the partial tail", func(t *testing.T) {
		// Arrange
		repo := new(mocks.InventoryRepository)
		c := new(cacheMocks.Cache)
		loader := service.NewInventoryService(repo, c, "", 2)
		repo.On("UpsertItems", ctx, batchOf(2)).Return(nil).Twice()
		repo.On("UpsertItems", ctx, batchOf(1)).Return(nil).Once()
		c.On("Invalidate", ctx, []string{cache.CategoriesKey}).Return(nil).Once()

		// Act
		saved, err := loader.Load(ctx, strings.NewReader(inventoryCSV(5)))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 5, saved)
		repo.AssertNumberOfCalls(t, "UpsertItems", 3)
		c.AssertExpectations(t)
	})

	t.Run("Success - Parses prices and ratings as decimals", func(t *testing.T) {
		// Arrange
		repo := new(mocks.InventoryRepository)
		c := new(cacheMocks.Cache)
		loader := service.NewInventoryService(repo, c, "", 400)
		var got []*models.InventoryItem
		repo.On("UpsertItems", ctx, mock.Anything).
			Run(func(args mock.Arguments) { got = args.Get(1).([]*models.InventoryItem) }).
			Return(nil).Once()
		c.On("Invalidate", ctx, mock.Anything).Return(nil).Once()

		// Act
		saved, err := loader.Load(ctx, strings.NewReader(inventoryCSV(1)))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, saved)
		require.Len(t, got, 1)
		assert.Equal(t, &models.InventoryItem{
			ID:              "SKU-10000",
			Category:        "Golf",
			Title:           "Cymbal Pro Golf Bag 0",
			Description:     "Bag, with pockets",
			Price:           100.5,
			InventoryStatus: models.InventoryStatusInStock,
			Rating:          4.5,
			ImageURL:        "https://img/SKU-10000.png",
		}, got[0])
	})

	t.Run("Success - Batch size is capped at 400", func(t *testing.T) {
		// Arrange
		repo := new(mocks.InventoryRepository)
		c := new(cacheMocks.Cache)
		loader := service.NewInventoryService(repo, c, "", 1000)
		repo.On("UpsertItems", ctx, batchOf(400)).Return(nil).Once()
		repo.On("UpsertItems", ctx, batchOf(1)).Return(nil).Once()
		c.On("Invalidate", ctx, mock.Anything).Return(nil).Once()

		// Act
		saved, err := loader.Load(ctx, strings.NewReader(inventoryCSV(401)))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 401, saved)
		repo.AssertExpectations(t)
	})

	t.Run("Success - Cache invalidation failure is not fatal", func(t *testing.T) {
		// Arrange
		repo := new(mocks.InventoryRepository)
		c := new(cacheMocks.Cache)
		loader := service.NewInventoryService(repo, c, "", 400)
		repo.On("UpsertItems", ctx, mock.Anything).Return(nil).Once()
		c.On("Invalidate", ctx, mock.Anything).Return(errors.New("redis down")).Once()

		// Act
		saved, err := loader.Load(ctx, strings.NewReader(inventoryCSV(2)))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, saved)
	})

	t.Run("Failure - Bad price keeps committed batches", func(t *testing.T) {
		// Arrange
		repo := new(mocks.InventoryRepository)
		c := new(cacheMocks.Cache)
		loader := service.NewInventoryService(repo, c, "", 2)
		repo.On("UpsertItems", ctx, batchOf(2)).Return(nil).Once()
		data := inventoryCSV(2) + "SKU-BAD,Golf,Broken,,free,IN_STOCK,4.0,\n"

		// Act
		saved, err := loader.Load(ctx, strings.NewReader(data))

		// Assert
		assert.Equal(t, 2, saved)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		assert.Contains(t, appErr.Message, "line 4")
		c.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Missing required column", func(t *testing.T) {
		// Arrange
		repo := new(mocks.InventoryRepository)
		loader := service.NewInventoryService(repo, new(cacheMocks.Cache), "", 400)

		// Act
		saved, err := loader.Load(ctx, strings.NewReader("id,title\nSKU-1,Bag\n"))

		// Assert
		assert.Zero(t, saved)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"price"`)
		repo.AssertNotCalled(t, "UpsertItems", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Store Unavailable", func(t *testing.T) {
		// Arrange
		repo := new(mocks.InventoryRepository)
		loader := service.NewInventoryService(repo, new(cacheMocks.Cache), "", 400)
		repo.On("UpsertItems", ctx, mock.Anything).Return(repository.ErrStoreUnavailable).Once()

		// Act
		saved, err := loader.Load(ctx, strings.NewReader(inventoryCSV(3)))

		// Assert
		assert.Zero(t, saved)
		assertStoreUnavailable(t, err)
	})
}

func TestInventoryReload(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Reads the configured file", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "inventory.csv")
		require.NoError(t, os.WriteFile(path, []byte(inventoryCSV(3)), 0o600))
		repo := new(mocks.InventoryRepository)
		c := new(cacheMocks.Cache)
		loader := service.NewInventoryService(repo, c, path, 400)
		repo.On("UpsertItems", ctx, batchOf(3)).Return(nil).Once()
		c.On("Invalidate", ctx, mock.Anything).Return(nil).Once()

		// Act
		saved, err := loader.Reload(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 3, saved)
	})

	t.Run("Failure - Missing file", func(t *testing.T) {
		// Arrange
		loader := service.NewInventoryService(new(mocks.InventoryRepository), new(cacheMocks.Cache), filepath.Join(t.TempDir(), "nope.csv"), 400)

		// Act
		saved, err := loader.Reload(ctx)

		// Assert
		assert.Zero(t, saved)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeInternal, appErr.Code)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
