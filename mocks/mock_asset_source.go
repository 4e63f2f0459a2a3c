package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAssetSource is a mock implementation of port.AssetSource.
type MockAssetSource struct {
	mock.Mock
}

func (m *MockAssetSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAssetSource) Location() string {
	args := m.Called()
	return args.String(0)
}
