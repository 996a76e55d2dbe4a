package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/lecturedeck/internal/generator"
)

// MockGenerator is a mock implementation of generator.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, req generator.Request) (*generator.Batch, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generator.Batch), args.Error(1)
}
