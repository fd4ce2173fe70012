package service

import (
	"errors"

	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/internal/app/repository"
	"github.com/lovehampers/lovehampers-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("product price must be a non-negative number")
)

type ProductService interface {
	GetAllProducts() ([]model.Product, error)
	GetProductsByCategory(category model.ProductCategory) ([]model.Product, error)
	GetProductByID(id string) (*model.Product, error)
	CreateProduct(product *model.Product) error
	UpdateProduct(product *model.Product) error
	DeleteProduct(id string) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) GetAllProducts() ([]model.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		logger.Error("Failed to fetch catalog", err)
		return nil, err
	}
	return products, nil
}

func (s *productService) GetProductsByCategory(category model.ProductCategory) ([]model.Product, error) {
	return s.productRepo.FindByCategory(category)
}

func (s *productService) GetProductByID(id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return product, nil
}

// CreateProduct validates the price once at the catalog boundary; totals
// downstream do plain arithmetic on it.
func (s *productService) CreateProduct(product *model.Product) error {
	if product.Price < 0 {
		logger.Warn("Rejecting product with negative price", map[string]interface{}{
			"product_id": product.ID,
			"price":      product.Price,
		})
		return ErrInvalidPrice
	}

	if err := s.productRepo.Create(product); err != nil {
		return err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil
}

func (s *productService) UpdateProduct(product *model.Product) error {
	if product.Price < 0 {
		return ErrInvalidPrice
	}

	existing, err := s.productRepo.FindByID(product.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Category = product.Category
	existing.ImageURL = product.ImageURL
	return s.productRepo.Update(existing)
}

func (s *productService) DeleteProduct(id string) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.productRepo.Delete(id)
}
