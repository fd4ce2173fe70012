package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/internal/app/repository"
	"github.com/lovehampers/lovehampers-backend/pkg/logger"
)

// PackagingFee is the flat surcharge for the box/basket of a custom bundle
const PackagingFee = 500.0

const bundleName = "Custom Valentine's Package"

const bundleImageURL = "https://images.unsplash.com/photo-1549465220-1a8b9238cd48?q=80&w=1000"

var (
	ErrEmptySelection   = errors.New("bundle selection is empty")
	ErrIneligibleItem   = errors.New("hampers cannot be added to a bundle")
	ErrUnknownSelection = errors.New("selection contains an unknown product")
)

// BundleQuote prices a draft selection before the customer commits
type BundleQuote struct {
	Products     []model.Product `json:"products"`
	ItemsTotal   float64         `json:"items_total"`
	PackagingFee float64         `json:"packaging_fee"`
	Total        float64         `json:"total"`
}

// BundleService turns a customer-picked subset of the catalog into a single
// purchasable hamper. Selections live on the client; the service itself is
// stateless.
type BundleService interface {
	EligibleProducts() ([]model.Product, error)
	Quote(productIDs []string) (*BundleQuote, error)
	Confirm(deviceID string, productIDs []string) (*model.Cart, *model.SyntheticProduct, error)
}

type bundleService struct {
	productRepo repository.ProductRepository
	cartService CartService
}

func NewBundleService(productRepo repository.ProductRepository, cartService CartService) BundleService {
	return &bundleService{
		productRepo: productRepo,
		cartService: cartService,
	}
}

// EligibleProducts lists everything a bundle may contain: the catalog minus
// existing hampers, so a hamper never nests inside a hamper.
func (s *bundleService) EligibleProducts() ([]model.Product, error) {
	return s.productRepo.FindExcludingCategory(model.CategoryHampers)
}

// Quote resolves the selection against the catalog and prices it
func (s *bundleService) Quote(productIDs []string) (*BundleQuote, error) {
	if len(productIDs) == 0 {
		return nil, ErrEmptySelection
	}

	products, err := s.productRepo.FindByIDs(dedupe(productIDs))
	if err != nil {
		return nil, err
	}
	if len(products) != len(dedupe(productIDs)) {
		logger.Warn("Bundle selection contains unknown products", map[string]interface{}{
			"requested": len(dedupe(productIDs)),
			"resolved":  len(products),
		})
		return nil, ErrUnknownSelection
	}

	var itemsTotal float64
	for _, p := range products {
		if p.Category == model.CategoryHampers {
			logger.Warn("Bundle selection contains a hamper", map[string]interface{}{
				"product_id": p.ID,
			})
			return nil, ErrIneligibleItem
		}
		itemsTotal += p.Price
	}

	return &BundleQuote{
		Products:     products,
		ItemsTotal:   itemsTotal,
		PackagingFee: PackagingFee,
		Total:        itemsTotal + PackagingFee,
	}, nil
}

// Confirm synthesizes a single product-shaped bundle from the selection and
// pushes it into the cart with quantity 1. The generated identifier never
// resolves against the catalog; downstream code treats it as opaque.
func (s *bundleService) Confirm(deviceID string, productIDs []string) (*model.Cart, *model.SyntheticProduct, error) {
	quote, err := s.Quote(productIDs)
	if err != nil {
		return nil, nil, err
	}

	names := make([]string, 0, len(quote.Products))
	for _, p := range quote.Products {
		names = append(names, p.Name)
	}
	joined := strings.Join(names, ", ")

	bundle := &model.SyntheticProduct{
		ID:          fmt.Sprintf("custom-%s", uuid.New().String()),
		Name:        bundleName,
		Price:       quote.Total,
		Category:    model.CategoryHampers,
		ImageURL:    bundleImageURL,
		Description: fmt.Sprintf("A personalized selection containing: %s", joined),
		Note:        joined,
	}

	cart, err := s.cartService.AddPurchasable(deviceID, *bundle)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Bundle confirmed and added to cart", map[string]interface{}{
		"device_id":  deviceID,
		"bundle_id":  bundle.ID,
		"item_count": len(quote.Products),
		"total":      bundle.Price,
	})
	return cart, bundle, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
