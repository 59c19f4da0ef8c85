package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/rolodex/internal/storage"
)

const (
	watchRetryInterval = 2 * time.Second
	maxBackoff         = 30 * time.Second
)

// watchStore forwards external changes to the store's file as messages. A
// failed watcher is restarted with exponential backoff until ctx is done.
func watchStore(ctx context.Context, kv storage.Store, logger *zap.Logger, send func(tea.Msg), interval time.Duration) error {
	if interval <= 0 {
		interval = watchRetryInterval
	}
	failures := 0
	for {
		err := storage.Watch(ctx, kv, func(msg storage.ChangedMsg) {
			logger.Debug("store changed on disk", zap.String("path", msg.Path))
			send(msg)
		})
		if err == nil || ctx.Err() != nil {
			return nil
		}

		wait := calculateBackoff(failures, interval)
		failures++
		logger.Warn("store watch failed",
			zap.Error(err),
			zap.Int("failures", failures),
			zap.Duration("retry_in", wait))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// calculateBackoff doubles base once per failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	wait := base
	for i := 0; i < failures && wait < maxBackoff; i++ {
		wait *= 2
	}
	return min(wait, maxBackoff)
}
