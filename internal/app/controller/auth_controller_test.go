package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lovehampers/lovehampers-backend/internal/app/repository"
	"github.com/lovehampers/lovehampers-backend/internal/app/service"
	"github.com/lovehampers/lovehampers-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthControllerTest(t *testing.T) (*AuthController, *gin.Engine) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	authService := service.NewAuthService(userRepo, "test-secret", 15*time.Minute, 7*24*time.Hour)
	authController := NewAuthController(authService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/registration/", authController.Register)
	router.POST("/auth/login/", authController.Login)

	return authController, router
}

func registerPayload() *bytes.Buffer {
	body, _ := json.Marshal(RegisterRequest{
		Username:  "jane",
		Email:     "jane@example.com",
		Password1: "password123",
		Password2: "password123",
	})
	return bytes.NewBuffer(body)
}

func TestAuthController_Register_Success(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/registration/", registerPayload())
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeBody(t, w)
	assert.NotEmpty(t, response["key"])

	user := response["user"].(map[string]interface{})
	assert.Equal(t, "jane", user["username"])
	assert.Equal(t, "user", user["role"])
}

func TestAuthController_Register_PasswordMismatch(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	body, _ := json.Marshal(RegisterRequest{
		Username:  "jane",
		Email:     "jane@example.com",
		Password1: "password123",
		Password2: "different1",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/registration/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_PASSWORD_MISMATCH")
}

func TestAuthController_Register_DuplicateEmail(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/registration/", registerPayload())
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	body, _ := json.Marshal(RegisterRequest{
		Username:  "janet",
		Email:     "jane@example.com",
		Password1: "password123",
		Password2: "password123",
	})
	req = httptest.NewRequest(http.MethodPost, "/auth/registration/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_EMAIL_EXISTS")
}

func TestAuthController_Login_WithUsernameOrEmail(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/registration/", registerPayload())
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	for _, login := range []string{"jane", "jane@example.com"} {
		body, _ := json.Marshal(LoginRequest{Username: login, Password: "password123"})
		req = httptest.NewRequest(http.MethodPost, "/auth/login/", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, decodeBody(t, w)["key"])
	}
}

func TestAuthController_Login_InvalidCredentials(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	body, _ := json.Marshal(LoginRequest{Username: "nobody", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_INVALID_CREDENTIALS")
}
