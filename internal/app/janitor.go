package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SessionExpirer удаляет неактивные сессии диалогов
type SessionExpirer interface {
	ExpireIdle(ttl time.Duration) int
}

// Janitor периодически чистит сессии, брошенные посреди диалога
type Janitor struct {
	sessions SessionExpirer
	ttl      time.Duration
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewJanitor создаёт фоновую задачу очистки
func NewJanitor(sessions SessionExpirer, ttl, interval time.Duration, logger *zap.Logger) *Janitor {
	return &Janitor{
		sessions: sessions,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Run блокируется до отмены ctx или вызова Stop
func (j *Janitor) Run(ctx context.Context) error {
	j.logger.Info("Starting session janitor",
		zap.Duration("ttl", j.ttl),
		zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweep()
		case <-j.stopChan:
			j.logger.Info("Session janitor stopped")
			return nil
		case <-ctx.Done():
			j.logger.Info("Session janitor cancelled")
			return nil
		}
	}
}

// Stop останавливает задачу
func (j *Janitor) Stop() {
	close(j.stopChan)
}

func (j *Janitor) sweep() {
	expired := j.sessions.ExpireIdle(j.ttl)
	if expired > 0 {
		j.logger.Info("Expired idle sessions", zap.Int("count", expired))
	}
}
