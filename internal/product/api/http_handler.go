package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/product-catalog-service/internal/platform/logger"
	"github.com/ridloal/product-catalog-service/internal/platform/response"
	"github.com/ridloal/product-catalog-service/internal/product/domain"
	"github.com/ridloal/product-catalog-service/internal/product/service"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(ps service.ProductService) *ProductHandler {
	return &ProductHandler{productService: ps}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.GET("/search", h.ListProducts) // semantik sama dengan list
		productRoutes.GET("/:id", h.GetProduct)
		productRoutes.POST("", h.CreateProduct)
		productRoutes.PUT("/:id", h.UpdateProduct)
		productRoutes.PATCH("/:id", h.PatchProduct)
		productRoutes.DELETE("/:id", h.DeleteProduct)
		productRoutes.PATCH("/:id/restore", h.RestoreProduct)
		productRoutes.PATCH("/:id/update-image", h.UpdateProductImage)
		productRoutes.PATCH("/:id/deactivate", h.DeactivateProduct)
		productRoutes.PATCH("/:id/activate", h.ActivateProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var req domain.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(http.StatusBadRequest, "Invalid query parameters: "+err.Error()))
		return
	}

	list, err := h.productService.ListProducts(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, "ListProducts", err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "Products retrieved successfully.", list))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, "GetProduct", err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "Product retrieved.", product))
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, "CreateProduct", err)
		return
	}
	c.JSON(http.StatusCreated, response.New(http.StatusCreated, "Product created successfully.", product))
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req domain.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, "UpdateProduct", err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "Product updated successfully.", product))
}

func (h *ProductHandler) PatchProduct(c *gin.Context) {
	var req domain.PatchProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	product, err := h.productService.PatchProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, "PatchProduct", err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "Product updated successfully.", product))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	result, err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, "DeleteProduct", err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "Product deleted successfully.", result))
}

func (h *ProductHandler) RestoreProduct(c *gin.Context) {
	result, err := h.productService.RestoreProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, "RestoreProduct", err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "Product restored successfully.", result))
}

func (h *ProductHandler) UpdateProductImage(c *gin.Context) {
	var req domain.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.productService.UpdateProductImage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, "UpdateProductImage", err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "Product image updated successfully.", result))
}

func (h *ProductHandler) DeactivateProduct(c *gin.Context) {
	result, err := h.productService.DeactivateProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, "DeactivateProduct", err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "Product deactivated successfully.", result))
}

func (h *ProductHandler) ActivateProduct(c *gin.Context) {
	result, err := h.productService.ActivateProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, "ActivateProduct", err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "Product activated successfully.", result))
}

// writeServiceError menerjemahkan sentinel error service ke status HTTP.
// Error yang tidak dikenali di-log dan dikembalikan sebagai 500 generik.
func (h *ProductHandler) writeServiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, response.Err(http.StatusNotFound, "Product not found"))
	case errors.Is(err, service.ErrProductKeyTaken):
		c.JSON(http.StatusConflict, response.Err(http.StatusConflict, err.Error()))
	case errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrAlreadyDeleted),
		errors.Is(err, service.ErrNotDeleted),
		errors.Is(err, service.ErrAlreadyInactive),
		errors.Is(err, service.ErrAlreadyActive):
		c.JSON(http.StatusBadRequest, response.Err(http.StatusBadRequest, err.Error()))
	default:
		logger.Error(op+": service error", err)
		c.JSON(http.StatusInternalServerError, response.Err(http.StatusInternalServerError, "Internal server error"))
	}
}
