package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/internal/app/repository"
	"github.com/lovehampers/lovehampers-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrCheckoutInFlight   = errors.New("a checkout for this device is already in flight")
)

// CheckoutGuard serializes submissions per device: a second submit while the
// first is still in flight must fail to acquire.
type CheckoutGuard interface {
	Acquire(ctx context.Context, deviceID string) (bool, error)
	Release(ctx context.Context, deviceID string) error
}

// OrderNotifier receives order lifecycle events, e.g. for the admin
// dashboard feed. May be nil.
type OrderNotifier interface {
	NotifyOrderEvent(event string, order *model.Order)
}

// CheckoutRequest carries the customer-entered checkout fields. Delivery
// date and time are folded into the stored address so the admin sees them
// without a schema change, matching the storefront contract.
type CheckoutRequest struct {
	FullName        string
	Email           string
	PhoneNumber     string
	Address         string
	DeliveryDate    string
	DeliveryTime    string
	TransactionCode string
}

type OrderService interface {
	Checkout(ctx context.Context, deviceID string, userID *uint, req CheckoutRequest) (*model.Order, error)
	GetOrders(userID uint, isAdmin bool) ([]model.Order, error)
	GetOrderByID(id uint) (*model.Order, error)
	UpdateStatus(id uint, status model.OrderStatus) (*model.Order, error)
	DeleteOrder(id uint) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	guard     CheckoutGuard
	notifier  OrderNotifier
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	guard CheckoutGuard,
	notifier OrderNotifier,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		guard:     guard,
		notifier:  notifier,
	}
}

// Checkout snapshots the device's cart into an order. The cart is cleared
// only after the order is stored; any failure leaves the cart intact so the
// customer keeps their items.
func (s *orderService) Checkout(ctx context.Context, deviceID string, userID *uint, req CheckoutRequest) (*model.Order, error) {
	logger.Info("Processing checkout", map[string]interface{}{
		"device_id": deviceID,
		"user_id":   userID,
	})

	acquired, err := s.guard.Acquire(ctx, deviceID)
	if err != nil {
		logger.Error("Failed to acquire checkout guard", err, map[string]interface{}{
			"device_id": deviceID,
		})
		return nil, err
	}
	if !acquired {
		logger.Warn("Duplicate checkout rejected: submission already in flight", map[string]interface{}{
			"device_id": deviceID,
		})
		return nil, ErrCheckoutInFlight
	}
	defer func() {
		if releaseErr := s.guard.Release(ctx, deviceID); releaseErr != nil {
			logger.Error("Failed to release checkout guard", releaseErr, map[string]interface{}{
				"device_id": deviceID,
			})
		}
	}()

	cart, err := s.cartRepo.Load(deviceID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		logger.Warn("Cannot checkout: cart is empty", map[string]interface{}{
			"device_id": deviceID,
		})
		return nil, ErrEmptyCart
	}

	address := req.Address
	if req.DeliveryDate != "" || req.DeliveryTime != "" {
		address = fmt.Sprintf("%s | Date: %s | Time: %s", req.Address, req.DeliveryDate, req.DeliveryTime)
	}

	items := make([]model.OrderItem, 0, len(cart.Items()))
	for _, line := range cart.Items() {
		items = append(items, model.OrderItem{
			ProductName: line.Name,
			Quantity:    line.Quantity,
			Price:       line.Price,
			CustomText:  line.CustomText,
		})
	}

	order := &model.Order{
		UserID:          userID,
		FullName:        req.FullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Address:         address,
		TransactionCode: req.TransactionCode,
		TotalAmount:     cart.TotalPrice(),
		Status:          model.OrderStatusPending,
		Items:           items,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// Clear only on confirmed success; a failed clear is logged but the
	// order stands.
	if err := s.cartRepo.Delete(deviceID); err != nil {
		logger.Error("Order stored but cart clear failed", err, map[string]interface{}{
			"device_id": deviceID,
			"order_id":  order.ID,
		})
	}

	if s.notifier != nil {
		s.notifier.NotifyOrderEvent("order_created", order)
	}

	logger.Info("Order created successfully", map[string]interface{}{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
		"item_count":   len(order.Items),
	})
	return order, nil
}

// GetOrders returns the caller's orders, or every order for an admin
func (s *orderService) GetOrders(userID uint, isAdmin bool) ([]model.Order, error) {
	if isAdmin {
		return s.orderRepo.FindAll()
	}
	return s.orderRepo.FindByUserID(userID)
}

func (s *orderService) GetOrderByID(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves an order through PENDING -> PAID -> DELIVERED. The
// admin approval button sends PAID after verifying the payment reference.
func (s *orderService) UpdateStatus(id uint, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		logger.Warn("Rejected unknown order status", map[string]interface{}{
			"order_id": id,
			"status":   status,
		})
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status

	if s.notifier != nil {
		s.notifier.NotifyOrderEvent("order_status_changed", order)
	}

	logger.Info("Order status updated", map[string]interface{}{
		"order_id": id,
		"status":   status,
	})
	return order, nil
}

func (s *orderService) DeleteOrder(id uint) error {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return err
	}

	if err := s.orderRepo.Delete(id); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.NotifyOrderEvent("order_deleted", order)
	}

	logger.Info("Order deleted", map[string]interface{}{
		"order_id": id,
	})
	return nil
}
