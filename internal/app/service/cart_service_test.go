package service

import (
	"testing"

	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/internal/app/repository"
	"github.com/lovehampers/lovehampers-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testDeviceID = "device-test-1"

func setupCartServiceTest(t *testing.T) (CartService, *model.Product, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	cartService := NewCartService(cartRepo, productRepo)

	product := &model.Product{
		ID:          "1",
		Name:        "Valentine Gift Box",
		Description: "A curated box of sweets",
		Price:       900,
		Category:    model.CategoryBudget,
	}
	testDB.Create(product)

	return cartService, product, testDB
}

func TestCartService_GetCart_InitiallyEmpty(t *testing.T) {
	cartService, _, _ := setupCartServiceTest(t)

	cart, err := cartService.GetCart(testDeviceID)
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_AddToCart_Success(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	cart, err := cartService.AddToCart(testDeviceID, product.ID)
	assert.NoError(t, err)
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 1, cart.Items()[0].Quantity)
	assert.Equal(t, product.Name, cart.Items()[0].Name)
}

func TestCartService_AddToCart_ProductNotFound(t *testing.T) {
	cartService, _, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(testDeviceID, "9999")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartService_AddToCart_MergesExistingLine(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(testDeviceID, product.ID)
	require.NoError(t, err)
	cart, err := cartService.AddToCart(testDeviceID, product.ID)
	require.NoError(t, err)

	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 2, cart.Items()[0].Quantity)
}

func TestCartService_AddToCart_PersistsAcrossLoads(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(testDeviceID, product.ID)
	require.NoError(t, err)

	// A fresh read hits the stored snapshot
	cart, err := cartService.GetCart(testDeviceID)
	assert.NoError(t, err)
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, product.Price, cart.Items()[0].Price)
}

func TestCartService_CartsAreDeviceScoped(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart("device-a", product.ID)
	require.NoError(t, err)

	cart, err := cartService.GetCart("device-b")
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_SetQuantity_Success(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(testDeviceID, product.ID)
	require.NoError(t, err)

	cart, err := cartService.SetQuantity(testDeviceID, product.ID, 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, cart.Items()[0].Quantity)
}

func TestCartService_SetQuantity_ZeroRemovesLine(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(testDeviceID, product.ID)
	require.NoError(t, err)

	cart, err := cartService.SetQuantity(testDeviceID, product.ID, 0)
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_SetQuantity_NotFound(t *testing.T) {
	cartService, _, _ := setupCartServiceTest(t)

	_, err := cartService.SetQuantity(testDeviceID, "9999", 3)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartService_RemoveFromCart_Success(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(testDeviceID, product.ID)
	require.NoError(t, err)

	cart, err := cartService.RemoveFromCart(testDeviceID, product.ID)
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_RemoveFromCart_AbsentLineIsNoOp(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(testDeviceID, product.ID)
	require.NoError(t, err)

	cart, err := cartService.RemoveFromCart(testDeviceID, "9999")
	assert.NoError(t, err)
	assert.Len(t, cart.Items(), 1)
}

func TestCartService_AddPurchasable_Synthetic(t *testing.T) {
	cartService, _, _ := setupCartServiceTest(t)

	bundle := model.SyntheticProduct{
		ID:       "custom-abc",
		Name:     "Custom Valentine's Package",
		Price:    1850,
		Category: model.CategoryHampers,
		Note:     "Chocolates, Teddy Bear",
	}

	cart, err := cartService.AddPurchasable(testDeviceID, bundle)
	assert.NoError(t, err)
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, "custom-abc", cart.Items()[0].ProductID)
	assert.Equal(t, "Chocolates, Teddy Bear", cart.Items()[0].CustomText)
}

func TestCartService_ClearCart(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(testDeviceID, product.ID)
	require.NoError(t, err)

	err = cartService.ClearCart(testDeviceID)
	assert.NoError(t, err)

	cart, err := cartService.GetCart(testDeviceID)
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_CorruptSnapshotYieldsEmptyCart(t *testing.T) {
	cartService, _, testDB := setupCartServiceTest(t)

	snapshot := &model.CartSnapshot{
		DeviceID: testDeviceID,
		Payload:  "{not json",
	}
	require.NoError(t, testDB.Create(snapshot).Error)

	cart, err := cartService.GetCart(testDeviceID)
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
