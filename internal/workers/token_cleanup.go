package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"cvgen_backend/internal/logger"
	"cvgen_backend/internal/repositories"
)

// TokenCleanupWorker periodically purges expired refresh tokens so dead
// sessions do not accumulate.
type TokenCleanupWorker struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	interval time.Duration
}

func NewTokenCleanupWorker(db *gorm.DB, interval time.Duration) *TokenCleanupWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &TokenCleanupWorker{
		db:       db,
		userRepo: repositories.NewUserRepository(),
		interval: interval,
	}
}

// Run cleans on startup and then on every tick until ctx is cancelled.
// Start with `go w.Run(ctx)`.
func (w *TokenCleanupWorker) Run(ctx context.Context) {
	w.clean()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("token cleanup worker stopped")
			return
		case <-ticker.C:
			w.clean()
		}
	}
}

func (w *TokenCleanupWorker) clean() {
	removed, err := w.userRepo.CleanExpiredRefreshTokens(w.db)
	if err != nil {
		logger.WithError(err).Error("refresh token cleanup failed")
		return
	}
	if removed > 0 {
		logger.Info("expired refresh tokens removed", "count", removed)
	}
}
