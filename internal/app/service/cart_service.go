package service

import (
	"errors"

	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/internal/app/repository"
	"github.com/lovehampers/lovehampers-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrCartItemNotFound = errors.New("cart item not found")

// CartService owns the device-scoped cart: every mutation loads the
// snapshot, applies the change through the aggregate, and persists the
// result before returning.
type CartService interface {
	GetCart(deviceID string) (*model.Cart, error)
	AddToCart(deviceID, productID string) (*model.Cart, error)
	AddPurchasable(deviceID string, p model.Purchasable) (*model.Cart, error)
	SetQuantity(deviceID, productID string, quantity int) (*model.Cart, error)
	RemoveFromCart(deviceID, productID string) (*model.Cart, error)
	ClearCart(deviceID string) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartService) GetCart(deviceID string) (*model.Cart, error) {
	return s.cartRepo.Load(deviceID)
}

// AddToCart resolves a catalog product and merges it into the cart
func (s *cartService) AddToCart(deviceID, productID string) (*model.Cart, error) {
	logger.Info("Adding item to cart", map[string]interface{}{
		"device_id":  deviceID,
		"product_id": productID,
	})

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
				"device_id":  deviceID,
				"product_id": productID,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}

	return s.AddPurchasable(deviceID, *product)
}

// AddPurchasable merges any purchasable into the cart, including synthetic
// bundle products that have no catalog row.
func (s *cartService) AddPurchasable(deviceID string, p model.Purchasable) (*model.Cart, error) {
	cart, err := s.cartRepo.Load(deviceID)
	if err != nil {
		return nil, err
	}

	cart.Add(p)

	if err := s.cartRepo.Save(deviceID, cart); err != nil {
		return nil, err
	}

	logger.Info("Cart item added successfully", map[string]interface{}{
		"device_id":   deviceID,
		"product_id":  p.PurchasableID(),
		"total_items": cart.TotalItems(),
	})
	return cart, nil
}

// SetQuantity sets a line's quantity; zero or less removes the line
func (s *cartService) SetQuantity(deviceID, productID string, quantity int) (*model.Cart, error) {
	cart, err := s.cartRepo.Load(deviceID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, item := range cart.Items() {
		if item.ProductID == productID {
			found = true
			break
		}
	}
	if !found {
		logger.Warn("Cart item not found for quantity update", map[string]interface{}{
			"device_id":  deviceID,
			"product_id": productID,
		})
		return nil, ErrCartItemNotFound
	}

	cart.SetQuantity(productID, quantity)

	if err := s.cartRepo.Save(deviceID, cart); err != nil {
		return nil, err
	}

	logger.Info("Cart quantity updated", map[string]interface{}{
		"device_id":  deviceID,
		"product_id": productID,
		"quantity":   quantity,
	})
	return cart, nil
}

// RemoveFromCart deletes a line; removing an absent line is a no-op
func (s *cartService) RemoveFromCart(deviceID, productID string) (*model.Cart, error) {
	cart, err := s.cartRepo.Load(deviceID)
	if err != nil {
		return nil, err
	}

	cart.Remove(productID)

	if err := s.cartRepo.Save(deviceID, cart); err != nil {
		return nil, err
	}

	logger.Info("Cart item removed", map[string]interface{}{
		"device_id":  deviceID,
		"product_id": productID,
	})
	return cart, nil
}

// ClearCart empties the cart and removes the persisted snapshot
func (s *cartService) ClearCart(deviceID string) error {
	if err := s.cartRepo.Delete(deviceID); err != nil {
		return err
	}

	logger.Info("Cart cleared", map[string]interface{}{
		"device_id": deviceID,
	})
	return nil
}
