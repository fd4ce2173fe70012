package controller

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/internal/app/pricing"
	"github.com/lovehampers/lovehampers-backend/internal/app/service"
	apperrors "github.com/lovehampers/lovehampers-backend/internal/errors"
	"github.com/lovehampers/lovehampers-backend/internal/middleware"
)

type OrderController struct {
	orderService  service.OrderService
	reportService service.ReportService
}

func NewOrderController(orderService service.OrderService, reportService service.ReportService) *OrderController {
	return &OrderController{
		orderService:  orderService,
		reportService: reportService,
	}
}

// CheckoutRequest is the submission payload. The client may also send its
// own view of the cart and total; the stored order is always built from the
// server-side cart, so those fields are ignored.
type CheckoutRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	PhoneNumber     string `json:"phone_number" binding:"required"`
	Address         string `json:"address" binding:"required"`
	DeliveryDate    string `json:"delivery_date"`
	DeliveryTime    string `json:"delivery_time"`
	TransactionCode string `json:"transaction_code" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// orderPayload decorates the stored order with the part-payment split
func orderPayload(order *model.Order) gin.H {
	deposit, balance := pricing.Split(order.TotalAmount)
	return gin.H{
		"order":   order,
		"deposit": deposit,
		"balance": balance,
	}
}

// Checkout submits the device's cart as an order
// POST /api/orders/
func (ctrl *OrderController) Checkout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid checkout request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Please fill in all checkout details")
		return
	}

	deviceID := middleware.GetDeviceID(c)
	userID := middleware.GetOptionalUserID(c)

	order, err := ctrl.orderService.Checkout(c.Request.Context(), deviceID, userID, service.CheckoutRequest{
		FullName:        req.FullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Address:         req.Address,
		DeliveryDate:    req.DeliveryDate,
		DeliveryTime:    req.DeliveryTime,
		TransactionCode: req.TransactionCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCheckoutInFlight):
			apperrors.Conflict(c, apperrors.CheckoutInFlight, "Your order is already being submitted")
		case errors.Is(err, service.ErrEmptyCart):
			apperrors.BadRequest(c, apperrors.CartEmpty, "Your cart is empty")
		default:
			log.Error("Checkout failed", err, map[string]interface{}{
				"device_id": deviceID,
			})
			apperrors.InternalError(c, "Could not place your order. Please try again")
		}
		return
	}

	c.JSON(http.StatusCreated, orderPayload(order))
}

// GetOrders lists the caller's orders; admins see every order
// GET /api/orders/
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "You need to log in first")
		return
	}

	orders, err := ctrl.orderService.GetOrders(userID, middleware.IsAdmin(c))
	if err != nil {
		log.Error("Failed to fetch orders", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "Could not load orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrder returns a single order. Customers may only read their own.
// GET /api/orders/:id
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseOrderID(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid order identifier")
		return
	}

	order, err := ctrl.orderService.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
			return
		}
		log.Error("Failed to fetch order", err, map[string]interface{}{
			"order_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	if !middleware.IsAdmin(c) {
		userID, _ := middleware.GetUserID(c)
		if order.UserID == nil || *order.UserID != userID {
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
			return
		}
	}

	c.JSON(http.StatusOK, orderPayload(order))
}

// UpdateStatus moves an order through its lifecycle (admin)
// PATCH /api/orders/:id
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseOrderID(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid order identifier")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "A status is required")
		return
	}

	order, err := ctrl.orderService.UpdateStatus(id, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
		case errors.Is(err, service.ErrInvalidOrderStatus):
			apperrors.BadRequest(c, apperrors.OrderInvalidStatus, "Status must be PENDING, PAID or DELIVERED")
		default:
			log.Error("Failed to update order status", err, map[string]interface{}{
				"order_id": id,
			})
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, orderPayload(order))
}

// DeleteOrder removes an order (admin)
// DELETE /api/orders/:id
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseOrderID(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid order identifier")
		return
	}

	if err := ctrl.orderService.DeleteOrder(id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
			return
		}
		log.Error("Failed to delete order", err, map[string]interface{}{
			"order_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// ExportOrders streams the order book as an XLSX workbook (admin)
// GET /api/orders/export
func (ctrl *OrderController) ExportOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var buf bytes.Buffer
	filename, err := ctrl.reportService.ExportOrders(&buf)
	if err != nil {
		log.Error("Failed to export orders", err)
		apperrors.InternalError(c, "Could not generate the export")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func parseOrderID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
