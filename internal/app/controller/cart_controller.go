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

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// Quantity is a pointer so an explicit zero (remove the line) survives the
// required check.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// cartPayload flattens the aggregate for the wire: lines in insertion
// order, derived totals, and the transient UI flags.
func cartPayload(cart *model.Cart) gin.H {
	items := cart.Items()
	if items == nil {
		items = []model.CartItem{}
	}
	return gin.H{
		"items":       items,
		"total_items": cart.TotalItems(),
		"total_price": cart.TotalPrice(),
		"is_open":     cart.IsOpen(),
		"just_added":  cart.JustAdded(),
	}
}

// GetCart returns the device's cart
// GET /api/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	deviceID := middleware.GetDeviceID(c)

	cart, err := ctrl.cartService.GetCart(deviceID)
	if err != nil {
		log.Error("Failed to load cart", err, map[string]interface{}{
			"device_id": deviceID,
		})
		apperrors.InternalError(c, "Could not load your cart")
		return
	}

	c.JSON(http.StatusOK, cartPayload(cart))
}

// AddItem adds a catalog product to the cart
// POST /api/cart/items
func (ctrl *CartController) AddItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "A product identifier is required")
		return
	}

	deviceID := middleware.GetDeviceID(c)

	cart, err := ctrl.cartService.AddToCart(deviceID, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"device_id":  deviceID,
			"product_id": req.ProductID,
		})
		apperrors.InternalError(c, "Could not add the item to your cart")
		return
	}

	c.JSON(http.StatusOK, cartPayload(cart))
}

// UpdateItem sets a line's quantity; zero or less removes the line
// PUT /api/cart/items/:productId
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "A quantity is required")
		return
	}

	deviceID := middleware.GetDeviceID(c)
	productID := c.Param("productId")

	cart, err := ctrl.cartService.SetQuantity(deviceID, productID, *req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			apperrors.NotFound(c, apperrors.CartItemNotFound, "That item is not in your cart")
			return
		}
		log.Error("Failed to update cart item", err, map[string]interface{}{
			"device_id":  deviceID,
			"product_id": productID,
		})
		apperrors.InternalError(c, "Could not update your cart")
		return
	}

	c.JSON(http.StatusOK, cartPayload(cart))
}

// RemoveItem removes a line from the cart
// DELETE /api/cart/items/:productId
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	deviceID := middleware.GetDeviceID(c)
	productID := c.Param("productId")

	cart, err := ctrl.cartService.RemoveFromCart(deviceID, productID)
	if err != nil {
		log.Error("Failed to remove cart item", err, map[string]interface{}{
			"device_id":  deviceID,
			"product_id": productID,
		})
		apperrors.InternalError(c, "Could not update your cart")
		return
	}

	c.JSON(http.StatusOK, cartPayload(cart))
}

// ClearCart empties the cart
// DELETE /api/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	deviceID := middleware.GetDeviceID(c)

	if err := ctrl.cartService.ClearCart(deviceID); err != nil {
		log.Error("Failed to clear cart", err, map[string]interface{}{
			"device_id": deviceID,
		})
		apperrors.InternalError(c, "Could not clear your cart")
		return
	}

	c.JSON(http.StatusOK, cartPayload(model.NewCart()))
}
