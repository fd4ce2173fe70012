package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/internal/app/service"
	apperrors "github.com/lovehampers/lovehampers-backend/internal/errors"
	"github.com/lovehampers/lovehampers-backend/internal/middleware"
	"github.com/lovehampers/lovehampers-backend/pkg/util"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterRequest matches the storefront's registration form: the password
// is sent twice and confirmed server-side.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Password1 string `json:"password1" binding:"required,min=6"`
	Password2 string `json:"password2" binding:"required"`
}

// LoginRequest accepts a username or an email in the username field
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func userPayload(user *model.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	}
}

// authPayload shapes the response the client stores after sign-in. The
// access token is duplicated under "key" for clients using the Token scheme.
func authPayload(user *model.User, tokens *util.TokenPair) gin.H {
	return gin.H{
		"key":    tokens.AccessToken,
		"tokens": tokens,
		"user":   userPayload(user),
	}
}

// Register handles user registration
// POST /auth/registration/
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid registration request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Please check the registration details")
		return
	}

	user, tokens, err := ctrl.authService.Register(req.Username, req.Email, req.Password1, req.Password2)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			apperrors.BadRequest(c, apperrors.AuthPasswordMismatch, "The two passwords do not match")
		case errors.Is(err, service.ErrEmailAlreadyExists):
			apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "This email is already registered")
		case errors.Is(err, service.ErrUsernameAlreadyExists):
			apperrors.Conflict(c, apperrors.AuthUsernameExists, "This username is already taken")
		default:
			log.Error("Registration failed", err, map[string]interface{}{
				"email": req.Email,
			})
			apperrors.InternalError(c, "Registration failed. Please try again")
		}
		return
	}

	log.Info("User registered successfully", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})

	c.JSON(http.StatusCreated, authPayload(user, tokens))
}

// Login handles user login
// POST /auth/login/
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Please enter your username and password")
		return
	}

	user, tokens, err := ctrl.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn("Login failed: invalid credentials", map[string]interface{}{
				"login": req.Username,
			})
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "Incorrect username or password")
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"login": req.Username,
		})
		apperrors.InternalError(c, "Login failed. Please try again")
		return
	}

	log.Info("Login successful", map[string]interface{}{
		"user_id": user.ID,
	})

	c.JSON(http.StatusOK, authPayload(user, tokens))
}

// GetMe returns the authenticated user's profile
// GET /auth/me/
func (ctrl *AuthController) GetMe(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "You need to log in first")
		return
	}

	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.AuthUnauthorized, "Account not found")
			return
		}
		log.Error("Failed to fetch user", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}
