package scheduler

import (
	"time"

	"github.com/lovehampers/lovehampers-backend/internal/app/repository"
	"github.com/lovehampers/lovehampers-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Snapshots untouched for this long belong to abandoned carts
const staleCartAge = 30 * 24 * time.Hour

// CartCleanupScheduler purges abandoned device carts nightly
type CartCleanupScheduler struct {
	cron     *cron.Cron
	cartRepo repository.CartRepository
}

func NewCartCleanupScheduler(cartRepo repository.CartRepository) *CartCleanupScheduler {
	return &CartCleanupScheduler{
		cron:     cron.New(),
		cartRepo: cartRepo,
	}
}

// Start schedules the nightly purge at 03:00
func (s *CartCleanupScheduler) Start() error {
	_, err := s.cron.AddFunc("0 3 * * *", func() {
		logger.Info("Starting scheduled stale cart cleanup", nil)

		removed, err := s.cartRepo.DeleteStale(time.Now().Add(-staleCartAge))
		if err != nil {
			logger.Error("Failed to purge stale carts", err)
			return
		}

		logger.Info("Stale cart cleanup finished", map[string]interface{}{
			"removed": removed,
		})
	})
	if err != nil {
		logger.Error("Failed to add cron job for cart cleanup", err)
		return err
	}

	s.cron.Start()
	logger.Info("Cart cleanup scheduler started (daily at 3:00 AM)", nil)

	return nil
}

// Stop halts the scheduler
func (s *CartCleanupScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Cart cleanup scheduler stopped", nil)
}
