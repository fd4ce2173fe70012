package repository

import (
	"errors"
	"time"

	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository persists the whole cart as one snapshot row per device.
// The cart is device-local, never account-scoped.
type CartRepository interface {
	Load(deviceID string) (*model.Cart, error)
	Save(deviceID string, cart *model.Cart) error
	Delete(deviceID string) error
	DeleteStale(olderThan time.Time) (int64, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// Load restores the device's cart. A missing row yields an empty cart; a
// corrupt payload is logged and also yields an empty cart, never an error.
func (r *cartRepository) Load(deviceID string) (*model.Cart, error) {
	var snapshot model.CartSnapshot
	err := r.db.Where("device_id = ?", deviceID).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.NewCart(), nil
		}
		logger.Error("Failed to load cart snapshot from database", err, map[string]interface{}{
			"device_id": deviceID,
		})
		return nil, err
	}

	cart, decodeErr := model.RestoreCart([]byte(snapshot.Payload))
	if decodeErr != nil {
		logger.Warn("Discarding corrupt cart snapshot", map[string]interface{}{
			"device_id": deviceID,
			"error":     decodeErr.Error(),
		})
	}
	return cart, nil
}

// Save writes the serialized item collection, inserting or updating the
// device's single snapshot row.
func (r *cartRepository) Save(deviceID string, cart *model.Cart) error {
	payload, err := cart.Snapshot()
	if err != nil {
		logger.Error("Failed to serialize cart", err, map[string]interface{}{
			"device_id": deviceID,
		})
		return err
	}

	snapshot := model.CartSnapshot{
		DeviceID: deviceID,
		Payload:  string(payload),
	}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&snapshot).Error
	if err != nil {
		logger.Error("Failed to save cart snapshot to database", err, map[string]interface{}{
			"device_id": deviceID,
		})
		return err
	}
	return nil
}

func (r *cartRepository) Delete(deviceID string) error {
	err := r.db.Where("device_id = ?", deviceID).
		Unscoped().
		Delete(&model.CartSnapshot{}).Error
	if err != nil {
		logger.Error("Failed to delete cart snapshot from database", err, map[string]interface{}{
			"device_id": deviceID,
		})
		return err
	}
	return nil
}

// DeleteStale purges snapshots not touched since the cutoff. Used by the
// nightly abandoned-cart cleanup job.
func (r *cartRepository) DeleteStale(olderThan time.Time) (int64, error) {
	result := r.db.Where("updated_at < ?", olderThan).
		Unscoped().
		Delete(&model.CartSnapshot{})
	if result.Error != nil {
		logger.Error("Failed to purge stale cart snapshots", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
