package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/GTDGit/seller_hub/internal/contract"
	"github.com/GTDGit/seller_hub/internal/utils"
)

// ProductHandler handles product-related HTTP endpoints.
type ProductHandler struct {
	productService ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts returns products filtered by the optional search and category query params.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var q contract.ListProductsQuery
	_ = c.ShouldBindQuery(&q)

	products, err := h.productService.ListProducts(c.Request.Context(), q.Search, q.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Products retrieved successfully", products)
}

// GetProduct returns a single product.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Product retrieved successfully", p)
}

// CreateProduct validates the body and creates a product.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	in := inputOf[contract.CreateProductInput](c)

	p, err := h.productService.CreateProduct(c.Request.Context(), in.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Product created successfully", p)
}

// UpdateProduct applies a partial update to a product.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in := inputOf[contract.UpdateProductInput](c)

	p, err := h.productService.UpdateProduct(c.Request.Context(), id, in.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Product updated successfully", p)
}
