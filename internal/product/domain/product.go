package domain

import (
	"time"
)

// Price disimpan sebagai string dengan tepat 2 digit desimal (kolom numeric(8,2)).
type Product struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Name        string     `json:"name"`
	Price       string     `json:"price"`
	Status      bool       `json:"status"`
	Description *string    `json:"description"`
	ProductKey  *string    `json:"product_key"`
	ImageLink   *string    `json:"image_link"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedAt  time.Time  `json:"modified_at"`
	IsDeleted   bool       `json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

// Price dan Status pointer agar nilai 0 dan false tetap lolos binding "required".
type CreateProductRequest struct {
	Type        string   `json:"type" binding:"required,max=10"`
	Name        string   `json:"name" binding:"required,max=255"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Status      *bool    `json:"status" binding:"required"`
	Description *string  `json:"description"`
	ProductKey  *string  `json:"product_key" binding:"omitempty,max=8"`
	ImageLink   *string  `json:"image_link" binding:"omitempty,url,max=200"`
}

// Full replacement: semua kolom ditimpa, termasuk yang optional.
type UpdateProductRequest struct {
	Type        string   `json:"type" binding:"required,max=10"`
	Name        string   `json:"name" binding:"required,max=255"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Status      *bool    `json:"status" binding:"required"`
	Description *string  `json:"description"`
	ProductKey  *string  `json:"product_key" binding:"omitempty,max=8"`
	ImageLink   *string  `json:"image_link" binding:"omitempty,url,max=200"`
}

// Hanya field yang dikirim yang ditimpa.
type PatchProductRequest struct {
	Type        *string  `json:"type" binding:"omitempty,max=10"`
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Status      *bool    `json:"status"`
	Description *string  `json:"description"`
	ProductKey  *string  `json:"product_key" binding:"omitempty,max=8"`
	ImageLink   *string  `json:"image_link" binding:"omitempty,url,max=200"`
}

type UpdateImageRequest struct {
	ImageLink string `json:"image_link" binding:"required,url,max=200"`
}

// Query param list/search, semua string mentah. Parsing ke ProductFilter
// dilakukan di service layer.
type ListProductsRequest struct {
	Page      string `form:"page"`
	Limit     string `form:"limit"`
	Sort      string `form:"sort"`
	Order     string `form:"order"`
	Status    string `form:"status"`
	IsDeleted string `form:"is_deleted"`
	Type      string `form:"type"`
	MinPrice  string `form:"min_price"`
	MaxPrice  string `form:"max_price"`
	Query     string `form:"q"`
}

// ProductFilter adalah hasil parsing ListProductsRequest yang siap dieksekusi
// repository. Field nil berarti filter tidak dipakai. Sort sudah tervalidasi
// terhadap allow-list kolom (kosong = default ordering), Order "ASC"/"DESC".
type ProductFilter struct {
	Type      *string
	Status    *bool
	IsDeleted *bool
	MinPrice  *float64
	MaxPrice  *float64
	Search    *string
	Sort      string
	Order     string
	Limit     int
	Offset    int
}

type ProductList struct {
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Products []Product `json:"products"`
}

type DeleteResult struct {
	ID        string     `json:"id"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
}

type StatusResult struct {
	ID         string    `json:"id"`
	Status     bool      `json:"status"`
	ModifiedAt time.Time `json:"modified_at"`
}

type ImageResult struct {
	ID         string    `json:"id"`
	ImageLink  string    `json:"image_link"`
	ModifiedAt time.Time `json:"modified_at"`
}
