package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lovehampers/lovehampers-backend/internal/app/service"
	apperrors "github.com/lovehampers/lovehampers-backend/internal/errors"
	"github.com/lovehampers/lovehampers-backend/internal/middleware"
)

type BundleController struct {
	bundleService service.BundleService
}

func NewBundleController(bundleService service.BundleService) *BundleController {
	return &BundleController{
		bundleService: bundleService,
	}
}

type BundleSelectionRequest struct {
	ProductIDs []string `json:"product_ids" binding:"required"`
}

func respondBundleError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrEmptySelection):
		apperrors.BadRequest(c, apperrors.BundleEmptySelection, "Pick at least one item for your package")
	case errors.Is(err, service.ErrIneligibleItem):
		apperrors.BadRequest(c, apperrors.BundleIneligibleItem, "Ready-made hampers cannot go inside a custom package")
	case errors.Is(err, service.ErrUnknownSelection):
		apperrors.BadRequest(c, apperrors.BundleUnknownProduct, "Your selection contains an unknown product")
	default:
		return false
	}
	return true
}

// GetEligibleProducts lists what may go into a custom package
// GET /api/bundle/products
func (ctrl *BundleController) GetEligibleProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.bundleService.EligibleProducts()
	if err != nil {
		log.Error("Failed to fetch bundle-eligible products", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// Quote prices a draft selection without touching the cart
// POST /api/bundle/quote
func (ctrl *BundleController) Quote(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req BundleSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Pick at least one item for your package")
		return
	}

	quote, err := ctrl.bundleService.Quote(req.ProductIDs)
	if err != nil {
		if respondBundleError(c, err) {
			return
		}
		log.Error("Failed to quote bundle", err, map[string]interface{}{
			"selection_size": len(req.ProductIDs),
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Confirm turns the selection into a single package and adds it to the cart
// POST /api/bundle/confirm
func (ctrl *BundleController) Confirm(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req BundleSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Pick at least one item for your package")
		return
	}

	deviceID := middleware.GetDeviceID(c)

	cart, bundle, err := ctrl.bundleService.Confirm(deviceID, req.ProductIDs)
	if err != nil {
		if respondBundleError(c, err) {
			return
		}
		log.Error("Failed to confirm bundle", err, map[string]interface{}{
			"device_id":      deviceID,
			"selection_size": len(req.ProductIDs),
		})
		apperrors.InternalError(c, "Could not build your package")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"bundle": bundle,
		"cart":   cartPayload(cart),
	})
}
