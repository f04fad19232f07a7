package mocks

import (
	"context"

	"github.com/ridloal/product-catalog-service/internal/product/domain"
	"github.com/stretchr/testify/mock"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) ListProducts(ctx context.Context, req domain.ListProductsRequest) (*domain.ProductList, error) {
	args := m.Called(ctx, req)
	if l := args.Get(0); l != nil {
		return l.(*domain.ProductList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, req)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, id, req)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) PatchProduct(ctx context.Context, id string, req domain.PatchProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, id, req)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, id string) (*domain.DeleteResult, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.DeleteResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) RestoreProduct(ctx context.Context, id string) (*domain.DeleteResult, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.DeleteResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) UpdateProductImage(ctx context.Context, id string, req domain.UpdateImageRequest) (*domain.ImageResult, error) {
	args := m.Called(ctx, id, req)
	if r := args.Get(0); r != nil {
		return r.(*domain.ImageResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) DeactivateProduct(ctx context.Context, id string) (*domain.StatusResult, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.StatusResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) ActivateProduct(ctx context.Context, id string) (*domain.StatusResult, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.StatusResult), args.Error(1)
	}
	return nil, args.Error(1)
}
