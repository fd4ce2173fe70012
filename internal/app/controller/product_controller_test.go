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
	"gorm.io/gorm"
)

func setupProductControllerTest(t *testing.T) (*ProductController, *gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	productService := service.NewProductService(productRepo)
	productController := NewProductController(productService)

	products := []model.Product{
		{ID: "1", Name: "Chocolates", Price: 450, Category: model.CategoryBudget},
		{ID: "2", Name: "Deluxe Hamper", Price: 3500, Category: model.CategoryHampers},
	}
	require.NoError(t, testDB.Create(&products).Error)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return productController, router, testDB
}

func TestProductController_GetProducts(t *testing.T) {
	controller, router, _ := setupProductControllerTest(t)

	router.GET("/products", controller.GetProducts)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, float64(2), response["count"])
}

func TestProductController_GetProducts_FilterByCategory(t *testing.T) {
	controller, router, _ := setupProductControllerTest(t)

	router.GET("/products", controller.GetProducts)

	req := httptest.NewRequest(http.MethodGet, "/products?category=hampers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, float64(1), response["count"])

	products := response["products"].([]interface{})
	first := products[0].(map[string]interface{})
	assert.Equal(t, "Deluxe Hamper", first["name"])
}

func TestProductController_GetProduct_NotFound(t *testing.T) {
	controller, router, _ := setupProductControllerTest(t)

	router.GET("/products/:id", controller.GetProduct)

	req := httptest.NewRequest(http.MethodGet, "/products/9999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestProductController_CreateProduct_Success(t *testing.T) {
	controller, router, _ := setupProductControllerTest(t)

	router.POST("/products", controller.CreateProduct)

	body, _ := json.Marshal(ProductRequest{
		ID:       "10",
		Name:     "Scented Candle",
		Price:    600,
		Category: "budget",
	})
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeBody(t, w)
	product := response["product"].(map[string]interface{})
	assert.Equal(t, "Scented Candle", product["name"])
}

func TestProductController_CreateProduct_NegativePrice(t *testing.T) {
	controller, router, _ := setupProductControllerTest(t)

	router.POST("/products", controller.CreateProduct)

	body, _ := json.Marshal(ProductRequest{
		ID:       "11",
		Name:     "Broken Price",
		Price:    -100,
		Category: "budget",
	})
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PRODUCT_INVALID_PRICE")
}

func TestProductController_UpdateProduct_Success(t *testing.T) {
	controller, router, testDB := setupProductControllerTest(t)

	router.PUT("/products/:id", controller.UpdateProduct)

	body, _ := json.Marshal(ProductRequest{
		ID:       "1",
		Name:     "Chocolates Deluxe",
		Price:    550,
		Category: "budget",
	})
	req := httptest.NewRequest(http.MethodPut, "/products/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	updated, err := repository.NewProductRepository(testDB).FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Chocolates Deluxe", updated.Name)
	assert.Equal(t, float64(550), updated.Price)
}

func TestProductController_UpdateProduct_NotFound(t *testing.T) {
	controller, router, _ := setupProductControllerTest(t)

	router.PUT("/products/:id", controller.UpdateProduct)

	body, _ := json.Marshal(ProductRequest{
		ID:       "9999",
		Name:     "Ghost",
		Price:    100,
		Category: "budget",
	})
	req := httptest.NewRequest(http.MethodPut, "/products/9999", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductController_DeleteProduct(t *testing.T) {
	controller, router, _ := setupProductControllerTest(t)

	router.DELETE("/products/:id", controller.DeleteProduct)
	router.GET("/products/:id", controller.GetProduct)

	req := httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/products/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
