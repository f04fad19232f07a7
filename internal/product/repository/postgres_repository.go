package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/ridloal/product-catalog-service/internal/platform/logger"
	"github.com/ridloal/product-catalog-service/internal/product/domain"
)

var ErrProductNotFound = errors.New("product not found")
var ErrProductKeyTaken = errors.New("product with this product_key already exists")

type ProductRepository interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	GetProductByKey(ctx context.Context, key string) (*domain.Product, error)
	InsertProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	// Tidak ada hard delete: delete hanyalah flag is_deleted via UpdateProduct.
}

const productColumns = `id, type, name, price, status, description, product_key, image_link, created_at, modified_at, is_deleted, deleted_at`

type postgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) ProductRepository {
	return &postgresProductRepository{db: db}
}

// buildListQuery menyusun query count dan query halaman dari filter. Semua nilai
// filter (termasuk pola ILIKE untuk q) dikirim sebagai placeholder $n, tidak
// pernah digabung ke string query. Sort/Order sudah tervalidasi di service
// sehingga aman diinterpolasi sebagai nama kolom.
func buildListQuery(f domain.ProductFilter) (countQuery, pageQuery string, args []interface{}) {
	conds := []string{}
	args = []interface{}{}

	if f.Type != nil {
		args = append(args, *f.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.IsDeleted != nil {
		args = append(args, *f.IsDeleted)
		conds = append(conds, fmt.Sprintf("is_deleted = $%d", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}
	if f.Search != nil {
		args = append(args, "%"+*f.Search+"%")
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	orderBy := " ORDER BY created_at DESC"
	if f.Sort != "" {
		orderBy = fmt.Sprintf(" ORDER BY %s %s", f.Sort, f.Order)
	}

	countQuery = "SELECT COUNT(*) FROM products" + where
	pageQuery = "SELECT " + productColumns + " FROM products" + where + orderBy +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	return countQuery, pageQuery, args
}

func (r *postgresProductRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int, error) {
	countQuery, pageQuery, args := buildListQuery(filter)

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		logger.Error("ListProducts: count query failed", err)
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, pageQuery, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		logger.Error("ListProducts: page query failed", err)
		return nil, 0, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			logger.Error("ListProducts: scan failed", err)
			return nil, 0, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListProducts: rows iteration error", err)
		return nil, 0, err
	}
	return products, total, nil
}

func (r *postgresProductRepository) getProductBy(ctx context.Context, field, value string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + field + ` = $1`
	var p domain.Product
	err := scanProduct(r.db.QueryRowContext(ctx, query, value), &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		logger.Error("GetProductBy "+field+": query failed", err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.getProductBy(ctx, "id", id)
}

func (r *postgresProductRepository) GetProductByKey(ctx context.Context, key string) (*domain.Product, error) {
	return r.getProductBy(ctx, "product_key", key)
}

func (r *postgresProductRepository) InsertProduct(ctx context.Context, product *domain.Product) error {
	query := `INSERT INTO products (id, type, name, price, status, description, product_key, image_link, created_at, modified_at, is_deleted, deleted_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
              RETURNING created_at, modified_at`

	product.ID = uuid.New().String()
	now := time.Now()
	product.CreatedAt = now
	product.ModifiedAt = now
	product.IsDeleted = false
	product.DeletedAt = nil

	err := r.db.QueryRowContext(ctx, query,
		product.ID, product.Type, product.Name, product.Price, product.Status,
		nullString(product.Description), nullString(product.ProductKey), nullString(product.ImageLink),
		product.CreatedAt, product.ModifiedAt, product.IsDeleted, nullTime(product.DeletedAt),
	).Scan(&product.CreatedAt, &product.ModifiedAt)

	if err != nil {
		// Kode error '23505' adalah unique_violation (index unik product_key),
		// backstop untuk race check-then-write di service layer.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			logger.Error("InsertProduct: unique violation", err)
			return ErrProductKeyTaken
		}
		logger.Error("InsertProduct: failed to insert product", err)
		return err
	}
	return nil
}

func (r *postgresProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	query := `UPDATE products SET type = $1, name = $2, price = $3, status = $4, description = $5,
              product_key = $6, image_link = $7, modified_at = $8, is_deleted = $9, deleted_at = $10
              WHERE id = $11 RETURNING modified_at`

	product.ModifiedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		product.Type, product.Name, product.Price, product.Status,
		nullString(product.Description), nullString(product.ProductKey), nullString(product.ImageLink),
		product.ModifiedAt, product.IsDeleted, nullTime(product.DeletedAt),
		product.ID,
	).Scan(&product.ModifiedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			logger.Error("UpdateProduct: unique violation", err)
			return ErrProductKeyTaken
		}
		logger.Error("UpdateProduct: failed to update product", err)
		return err
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner, p *domain.Product) error {
	var description, productKey, imageLink sql.NullString
	var deletedAt sql.NullTime

	err := row.Scan(
		&p.ID, &p.Type, &p.Name, &p.Price, &p.Status,
		&description, &productKey, &imageLink,
		&p.CreatedAt, &p.ModifiedAt, &p.IsDeleted, &deletedAt,
	)
	if err != nil {
		return err
	}
	if description.Valid {
		p.Description = &description.String
	}
	if productKey.Valid {
		p.ProductKey = &productKey.String
	}
	if imageLink.Valid {
		p.ImageLink = &imageLink.String
	}
	if deletedAt.Valid {
		p.DeletedAt = &deletedAt.Time
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s != nil {
		return sql.NullString{String: *s, Valid: true}
	}
	return sql.NullString{}
}

func nullTime(t *time.Time) sql.NullTime {
	if t != nil {
		return sql.NullTime{Time: *t, Valid: true}
	}
	return sql.NullTime{}
}
