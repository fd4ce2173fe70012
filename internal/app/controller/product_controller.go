package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/internal/app/service"
	apperrors "github.com/lovehampers/lovehampers-backend/internal/errors"
	"github.com/lovehampers/lovehampers-backend/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

type ProductRequest struct {
	ID          string  `json:"id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" binding:"required"`
	ImageURL    string  `json:"image"`
}

// GetProducts lists the catalog, optionally filtered by category
// GET /api/products?category=hampers
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	category := c.Query("category")

	var (
		products []model.Product
		err      error
	)
	if category != "" {
		products, err = ctrl.productService.GetProductsByCategory(model.ProductCategory(category))
	} else {
		products, err = ctrl.productService.GetAllProducts()
	}
	if err != nil {
		log.Error("Failed to fetch products", err, map[string]interface{}{
			"category": category,
		})
		apperrors.InternalError(c, "Could not load the catalog")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns one catalog product
// GET /api/products/:id
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")

	product, err := ctrl.productService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateProduct adds a catalog product (admin)
// POST /api/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Please check the product details")
		return
	}

	product := &model.Product{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    model.ProductCategory(req.Category),
		ImageURL:    req.ImageURL,
	}

	if err := ctrl.productService.CreateProduct(product); err != nil {
		if errors.Is(err, service.ErrInvalidPrice) {
			apperrors.BadRequest(c, apperrors.ProductInvalidPrice, "Price must be zero or greater")
			return
		}
		log.Error("Failed to create product", err, map[string]interface{}{
			"product_id": req.ID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct edits a catalog product (admin)
// PUT /api/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Please check the product details")
		return
	}

	product := &model.Product{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    model.ProductCategory(req.Category),
		ImageURL:    req.ImageURL,
	}

	if err := ctrl.productService.UpdateProduct(product); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
		case errors.Is(err, service.ErrInvalidPrice):
			apperrors.BadRequest(c, apperrors.ProductInvalidPrice, "Price must be zero or greater")
		default:
			log.Error("Failed to update product", err, map[string]interface{}{
				"product_id": product.ID,
			})
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct removes a catalog product (admin)
// DELETE /api/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")

	if err := ctrl.productService.DeleteProduct(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
