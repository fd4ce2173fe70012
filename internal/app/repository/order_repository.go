package repository

import (
	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/pkg/logger"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	FindAll() ([]model.Order, error)
	FindByUserID(userID uint) ([]model.Order, error)
	FindByID(id uint) (*model.Order, error)
	UpdateStatus(id uint, status model.OrderStatus) error
	Delete(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *model.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"full_name":  order.FullName,
			"item_count": len(order.Items),
		})
		return err
	}
	return nil
}

func (r *orderRepository) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		logger.Error("Failed to list orders from database", err)
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindByUserID(userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		logger.Error("Failed to list user orders from database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) UpdateStatus(id uint, status model.OrderStatus) error {
	err := r.db.Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		logger.Error("Failed to update order status in database", err, map[string]interface{}{
			"order_id": id,
			"status":   status,
		})
		return err
	}
	return nil
}

func (r *orderRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Order{}, id).Error; err != nil {
		logger.Error("Failed to delete order from database", err, map[string]interface{}{
			"order_id": id,
		})
		return err
	}
	return nil
}
