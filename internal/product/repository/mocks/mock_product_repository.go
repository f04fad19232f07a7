package mocks

import (
	"context"
	"time"

	"github.com/ridloal/product-catalog-service/internal/product/domain"
	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int, error) {
	args := m.Called(ctx, filter)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *MockProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetProductByKey(ctx context.Context, key string) (*domain.Product, error) {
	args := m.Called(ctx, key)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) InsertProduct(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	// Repository asli mengisi field generated saat insert sukses.
	if product != nil && args.Error(0) == nil {
		product.ID = "mocked-product-id"
		product.CreatedAt = time.Now()
		product.ModifiedAt = product.CreatedAt
	}
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	if product != nil && args.Error(0) == nil {
		product.ModifiedAt = time.Now()
	}
	return args.Error(0)
}
