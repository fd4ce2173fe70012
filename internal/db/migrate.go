package db

import (
	"github.com/lovehampers/lovehampers-backend/config"
	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/pkg/logger"
	"github.com/lovehampers/lovehampers-backend/pkg/util"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.CartSnapshot{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed loads the catalog fixture and the dashboard admin account
func Seed(adminCfg *config.AdminConfig) error {
	if err := seedCatalog(); err != nil {
		logger.Error("Failed to seed catalog", err)
		return err
	}
	if err := seedAdmin(adminCfg); err != nil {
		logger.Error("Failed to seed admin account", err)
		return err
	}
	return nil
}

func seedCatalog() error {
	var count int64
	if err := DB.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Catalog already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	products := CatalogFixture()
	if err := DB.Create(&products).Error; err != nil {
		return err
	}

	logger.Info("Catalog seeded successfully", map[string]interface{}{
		"product_count": len(products),
	})
	return nil
}

// seedAdmin creates the dashboard administrator if configured and absent
func seedAdmin(cfg *config.AdminConfig) error {
	if cfg == nil || cfg.Email == "" || cfg.Password == "" {
		logger.Info("Admin seed not configured, skipping...")
		return nil
	}

	var count int64
	if err := DB.Model(&model.User{}).Where("email = ?", cfg.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := util.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     "admin",
		Email:        cfg.Email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := DB.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("Admin account seeded", map[string]interface{}{
		"email": cfg.Email,
	})
	return nil
}
