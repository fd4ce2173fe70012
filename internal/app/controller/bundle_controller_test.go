package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/internal/app/repository"
	"github.com/lovehampers/lovehampers-backend/internal/app/service"
	"github.com/lovehampers/lovehampers-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBundleControllerTest(t *testing.T) (*BundleController, *gin.Engine) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	cartService := service.NewCartService(cartRepo, productRepo)
	bundleService := service.NewBundleService(productRepo, cartService)
	bundleController := NewBundleController(bundleService)

	products := []model.Product{
		{ID: "1", Name: "Chocolates", Price: 450, Category: model.CategoryBudget},
		{ID: "2", Name: "Teddy Bear", Price: 900, Category: model.CategoryBudget},
		{ID: "3", Name: "Deluxe Hamper", Price: 3500, Category: model.CategoryHampers},
	}
	for i := range products {
		require.NoError(t, testDB.Create(&products[i]).Error)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return bundleController, router
}

func TestBundleController_GetEligibleProducts(t *testing.T) {
	controller, router := setupBundleControllerTest(t)

	router.GET("/bundle/products", controller.GetEligibleProducts)

	req := httptest.NewRequest(http.MethodGet, "/bundle/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decodeBody(t, w)["count"])
}

func TestBundleController_Quote_Success(t *testing.T) {
	controller, router := setupBundleControllerTest(t)

	router.POST("/bundle/quote", controller.Quote)

	body, _ := json.Marshal(BundleSelectionRequest{ProductIDs: []string{"1", "2"}})
	req := httptest.NewRequest(http.MethodPost, "/bundle/quote", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, float64(1350), response["items_total"])
	assert.Equal(t, float64(500), response["packaging_fee"])
	assert.Equal(t, float64(1850), response["total"])
}

func TestBundleController_Quote_RejectsHamper(t *testing.T) {
	controller, router := setupBundleControllerTest(t)

	router.POST("/bundle/quote", controller.Quote)

	body, _ := json.Marshal(BundleSelectionRequest{ProductIDs: []string{"1", "3"}})
	req := httptest.NewRequest(http.MethodPost, "/bundle/quote", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BUNDLE_INELIGIBLE_ITEM")
}

func TestBundleController_Confirm_Success(t *testing.T) {
	controller, router := setupBundleControllerTest(t)

	router.POST("/bundle/confirm", func(c *gin.Context) {
		setDeviceInContext(c, testDevice)
		controller.Confirm(c)
	})

	body, _ := json.Marshal(BundleSelectionRequest{ProductIDs: []string{"1", "2"}})
	req := httptest.NewRequest(http.MethodPost, "/bundle/confirm", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeBody(t, w)

	bundle := response["bundle"].(map[string]interface{})
	assert.Equal(t, "Custom Valentine's Package", bundle["name"])
	assert.Equal(t, float64(1850), bundle["price"])

	cart := response["cart"].(map[string]interface{})
	assert.Equal(t, float64(1), cart["total_items"])
}

func TestBundleController_Confirm_EmptySelection(t *testing.T) {
	controller, router := setupBundleControllerTest(t)

	router.POST("/bundle/confirm", func(c *gin.Context) {
		setDeviceInContext(c, testDevice)
		controller.Confirm(c)
	})

	body, _ := json.Marshal(BundleSelectionRequest{ProductIDs: []string{}})
	req := httptest.NewRequest(http.MethodPost, "/bundle/confirm", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "BUNDLE_EMPTY_SELECTION")
}
