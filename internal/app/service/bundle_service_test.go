package service

import (
	"strings"
	"testing"

	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/internal/app/repository"
	"github.com/lovehampers/lovehampers-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBundleServiceTest(t *testing.T) (BundleService, CartService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	cartService := NewCartService(cartRepo, productRepo)
	bundleService := NewBundleService(productRepo, cartService)

	products := []model.Product{
		{ID: "1", Name: "Chocolates", Price: 450, Category: model.CategoryBudget},
		{ID: "2", Name: "Teddy Bear", Price: 900, Category: model.CategoryBudget},
		{ID: "3", Name: "Deluxe Hamper", Price: 3500, Category: model.CategoryHampers},
		{ID: "4", Name: "Scented Candle", Price: 600, Category: model.CategoryKeepsakes},
	}
	for i := range products {
		require.NoError(t, testDB.Create(&products[i]).Error)
	}

	return bundleService, cartService
}

func TestBundleService_EligibleProducts_ExcludesHampers(t *testing.T) {
	bundleService, _ := setupBundleServiceTest(t)

	products, err := bundleService.EligibleProducts()
	assert.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.NotEqual(t, model.CategoryHampers, p.Category)
	}
}

func TestBundleService_Quote_AddsPackagingFee(t *testing.T) {
	bundleService, _ := setupBundleServiceTest(t)

	quote, err := bundleService.Quote([]string{"1", "2"})
	assert.NoError(t, err)
	assert.Equal(t, 1350.0, quote.ItemsTotal)
	assert.Equal(t, PackagingFee, quote.PackagingFee)
	assert.Equal(t, 1850.0, quote.Total)
}

func TestBundleService_Quote_EmptySelection(t *testing.T) {
	bundleService, _ := setupBundleServiceTest(t)

	_, err := bundleService.Quote(nil)
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestBundleService_Quote_RejectsHamper(t *testing.T) {
	bundleService, _ := setupBundleServiceTest(t)

	_, err := bundleService.Quote([]string{"1", "3"})
	assert.ErrorIs(t, err, ErrIneligibleItem)
}

func TestBundleService_Quote_UnknownProduct(t *testing.T) {
	bundleService, _ := setupBundleServiceTest(t)

	_, err := bundleService.Quote([]string{"1", "9999"})
	assert.ErrorIs(t, err, ErrUnknownSelection)
}

func TestBundleService_Quote_DeduplicatesSelection(t *testing.T) {
	bundleService, _ := setupBundleServiceTest(t)

	quote, err := bundleService.Quote([]string{"1", "1", "2"})
	assert.NoError(t, err)
	assert.Equal(t, 1850.0, quote.Total)
}

func TestBundleService_Confirm_AddsBundleToCart(t *testing.T) {
	bundleService, cartService := setupBundleServiceTest(t)

	cart, bundle, err := bundleService.Confirm(testDeviceID, []string{"1", "2"})
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(bundle.ID, "custom-"))
	assert.Equal(t, "Custom Valentine's Package", bundle.Name)
	assert.Equal(t, 1850.0, bundle.Price)
	assert.Contains(t, bundle.Description, "Chocolates")
	assert.Contains(t, bundle.Description, "Teddy Bear")

	require.Len(t, cart.Items(), 1)
	line := cart.Items()[0]
	assert.Equal(t, bundle.ID, line.ProductID)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, "Chocolates, Teddy Bear", line.CustomText)

	// Persisted snapshot reflects the bundle line
	reloaded, err := cartService.GetCart(testDeviceID)
	assert.NoError(t, err)
	require.Len(t, reloaded.Items(), 1)
	assert.Equal(t, bundle.ID, reloaded.Items()[0].ProductID)
}

func TestBundleService_Confirm_DistinctIdentifiers(t *testing.T) {
	bundleService, _ := setupBundleServiceTest(t)

	_, first, err := bundleService.Confirm("device-a", []string{"1"})
	require.NoError(t, err)
	_, second, err := bundleService.Confirm("device-b", []string{"1"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
