package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/ridloal/product-catalog-service/internal/product/domain"
	"github.com/ridloal/product-catalog-service/internal/product/repository"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductKeyTaken = errors.New("product_key is already registered")
	ErrInvalidPrice    = errors.New("price must have at most 2 decimal places")
	ErrAlreadyDeleted  = errors.New("product is already marked as deleted")
	ErrNotDeleted      = errors.New("product is not marked as deleted")
	ErrAlreadyInactive = errors.New("product is already deactivated")
	ErrAlreadyActive   = errors.New("product is already activated")
)

// Kolom yang boleh dipakai untuk sort. Nilai lain diabaikan tanpa error.
var sortableColumns = map[string]bool{
	"name":       true,
	"price":      true,
	"created_at": true,
	"type":       true,
	"status":     true,
}

type ProductService interface {
	ListProducts(ctx context.Context, req domain.ListProductsRequest) (*domain.ProductList, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) (*domain.Product, error)
	PatchProduct(ctx context.Context, id string, req domain.PatchProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) (*domain.DeleteResult, error)
	RestoreProduct(ctx context.Context, id string) (*domain.DeleteResult, error)
	UpdateProductImage(ctx context.Context, id string, req domain.UpdateImageRequest) (*domain.ImageResult, error)
	DeactivateProduct(ctx context.Context, id string) (*domain.StatusResult, error)
	ActivateProduct(ctx context.Context, id string) (*domain.StatusResult, error)
}

type productServiceImpl struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productServiceImpl{repo: repo}
}

func (s *productServiceImpl) ListProducts(ctx context.Context, req domain.ListProductsRequest) (*domain.ProductList, error) {
	page, limit, offset := paginationParams(req.Page, req.Limit)
	filter := buildListFilter(req, limit, offset)

	products, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.ProductList{
		Total:    total,
		Page:     page,
		Limit:    limit,
		Products: products,
	}, nil
}

// buildListFilter menerjemahkan query param mentah menjadi filter bertipe.
// Setiap filter hanya dipasang jika param-nya dikirim; min/max_price yang
// tidak bisa di-parse diabaikan.
func buildListFilter(req domain.ListProductsRequest, limit, offset int) domain.ProductFilter {
	f := domain.ProductFilter{Limit: limit, Offset: offset, Order: "ASC"}

	if req.Type != "" {
		f.Type = &req.Type
	}
	if req.Status != "" {
		status := req.Status == "true"
		f.Status = &status
	}
	if req.IsDeleted != "" {
		isDeleted := req.IsDeleted == "true"
		f.IsDeleted = &isDeleted
	}
	if req.MinPrice != "" {
		if v, err := strconv.ParseFloat(req.MinPrice, 64); err == nil {
			f.MinPrice = &v
		}
	}
	if req.MaxPrice != "" {
		if v, err := strconv.ParseFloat(req.MaxPrice, 64); err == nil {
			f.MaxPrice = &v
		}
	}
	if req.Query != "" {
		f.Search = &req.Query
	}
	if sortableColumns[req.Sort] {
		f.Sort = req.Sort
		if req.Order == "desc" {
			f.Order = "DESC"
		}
	}
	return f
}

func (s *productServiceImpl) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.IsDeleted {
		// Produk yang sudah soft-delete tidak terlihat lewat get by id
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	if req.ProductKey != nil && *req.ProductKey != "" {
		if err := s.ensureKeyAvailable(ctx, *req.ProductKey); err != nil {
			return nil, err
		}
	}

	price, err := formatPrice(*req.Price)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Type:        req.Type,
		Name:        req.Name,
		Price:       price,
		Status:      *req.Status,
		Description: req.Description,
		ProductKey:  req.ProductKey,
		ImageLink:   req.ImageLink,
	}

	if err := s.repo.InsertProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductKeyTaken) {
			return nil, ErrProductKeyTaken
		}
		return nil, err
	}
	return product, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ProductKey != nil && *req.ProductKey != "" && !sameKey(product.ProductKey, *req.ProductKey) {
		if err := s.ensureKeyAvailable(ctx, *req.ProductKey); err != nil {
			return nil, err
		}
	}

	price, err := formatPrice(*req.Price)
	if err != nil {
		return nil, err
	}

	product.Type = req.Type
	product.Name = req.Name
	product.Price = price
	product.Status = *req.Status
	product.Description = req.Description
	product.ProductKey = req.ProductKey
	product.ImageLink = req.ImageLink

	if err := s.saveProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productServiceImpl) PatchProduct(ctx context.Context, id string, req domain.PatchProductRequest) (*domain.Product, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ProductKey != nil && *req.ProductKey != "" && !sameKey(product.ProductKey, *req.ProductKey) {
		if err := s.ensureKeyAvailable(ctx, *req.ProductKey); err != nil {
			return nil, err
		}
	}

	if req.Type != nil {
		product.Type = *req.Type
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		price, err := formatPrice(*req.Price)
		if err != nil {
			return nil, err
		}
		product.Price = price
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.ProductKey != nil {
		product.ProductKey = req.ProductKey
	}
	if req.ImageLink != nil {
		product.ImageLink = req.ImageLink
	}

	if err := s.saveProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, id string) (*domain.DeleteResult, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.IsDeleted {
		return nil, ErrAlreadyDeleted
	}

	now := time.Now()
	product.IsDeleted = true
	product.DeletedAt = &now

	if err := s.saveProduct(ctx, product); err != nil {
		return nil, err
	}
	return &domain.DeleteResult{ID: product.ID, IsDeleted: true, DeletedAt: product.DeletedAt}, nil
}

func (s *productServiceImpl) RestoreProduct(ctx context.Context, id string) (*domain.DeleteResult, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsDeleted {
		return nil, ErrNotDeleted
	}

	product.IsDeleted = false
	product.DeletedAt = nil

	if err := s.saveProduct(ctx, product); err != nil {
		return nil, err
	}
	return &domain.DeleteResult{ID: product.ID, IsDeleted: false, DeletedAt: nil}, nil
}

func (s *productServiceImpl) UpdateProductImage(ctx context.Context, id string, req domain.UpdateImageRequest) (*domain.ImageResult, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.ImageLink = &req.ImageLink

	if err := s.saveProduct(ctx, product); err != nil {
		return nil, err
	}
	return &domain.ImageResult{ID: product.ID, ImageLink: req.ImageLink, ModifiedAt: product.ModifiedAt}, nil
}

func (s *productServiceImpl) DeactivateProduct(ctx context.Context, id string) (*domain.StatusResult, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.Status {
		return nil, ErrAlreadyInactive
	}

	product.Status = false

	if err := s.saveProduct(ctx, product); err != nil {
		return nil, err
	}
	return &domain.StatusResult{ID: product.ID, Status: product.Status, ModifiedAt: product.ModifiedAt}, nil
}

func (s *productServiceImpl) ActivateProduct(ctx context.Context, id string) (*domain.StatusResult, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Status {
		return nil, ErrAlreadyActive
	}

	product.Status = true

	if err := s.saveProduct(ctx, product); err != nil {
		return nil, err
	}
	return &domain.StatusResult{ID: product.ID, Status: product.Status, ModifiedAt: product.ModifiedAt}, nil
}

// findProduct mengambil row apa adanya, termasuk yang soft-deleted.
// Operasi mutasi (update, restore, dll.) tetap berlaku untuk row deleted.
func (s *productServiceImpl) findProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productServiceImpl) saveProduct(ctx context.Context, product *domain.Product) error {
	err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}
		if errors.Is(err, repository.ErrProductKeyTaken) {
			return ErrProductKeyTaken
		}
		return err
	}
	return nil
}

// ensureKeyAvailable adalah pre-check uniqueness untuk pesan error yang ramah.
// Guard final tetap index unik di database (lihat repository).
func (s *productServiceImpl) ensureKeyAvailable(ctx context.Context, key string) error {
	existing, err := s.repo.GetProductByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil
		}
		return err
	}
	if existing != nil {
		return ErrProductKeyTaken
	}
	return nil
}

func sameKey(current *string, next string) bool {
	return current != nil && *current == next
}

// formatPrice menolak harga dengan lebih dari 2 digit desimal dan
// memformat sisanya menjadi string 2 desimal.
func formatPrice(price float64) (string, error) {
	cents := price * 100
	if math.Abs(cents-math.Round(cents)) > 1e-9 {
		return "", ErrInvalidPrice
	}
	return strconv.FormatFloat(price, 'f', 2, 64), nil
}
