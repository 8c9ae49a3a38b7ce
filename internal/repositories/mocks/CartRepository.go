package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) GetItems(ctx context.Context, userID string) (map[string]int, bool, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).(map[string]int)
	return items, args.Bool(1), args.Error(2)
}

func (m *CartRepository) MergeItems(ctx context.Context, userID string, items map[string]int) error {
	args := m.Called(ctx, userID, items)
	return args.Error(0)
}

func (m *CartRepository) OverwriteItems(ctx context.Context, userID string, items map[string]int) error {
	args := m.Called(ctx, userID, items)
	return args.Error(0)
}
