package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type InventoryService struct {
	mock.Mock
}

func (m *InventoryService) Reload(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *InventoryService) Load(ctx context.Context, r io.Reader) (int, error) {
	args := m.Called(ctx, r)
	return args.Int(0), args.Error(1)
}
