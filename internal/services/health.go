package services

import (
	"context"
	"time"

	"github.com/Renal37/order-dashboard/internal/logger"
	"github.com/Renal37/order-dashboard/internal/models"
	"go.uber.org/zap"
)

const DefaultHealthInterval = 30 * time.Second

// HealthMonitor polls the health endpoint and mirrors the result into the
// dashboard state. It never emits notifications.
type HealthMonitor struct {
	checker models.HealthChecker
	store   *Store
	task    *RecurringTask
}

func NewHealthMonitor(checker models.HealthChecker, store *Store, interval time.Duration) *HealthMonitor {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}

	m := &HealthMonitor{
		checker: checker,
		store:   store,
	}
	m.task = NewRecurringTask("health", interval, func(ctx context.Context) {
		m.Check(ctx)
	})

	return m
}

// Check runs a single health check and returns the resulting state.
func (m *HealthMonitor) Check(ctx context.Context) models.HealthState {
	healthy := true

	if _, err := m.checker.CheckHealth(ctx); err != nil {
		logger.Log.Warn("health check failed", zap.Error(err))
		healthy = false
	}

	// Results arriving after the state was closed are dropped.
	_ = m.store.Dispatch(healthChanged{healthy: healthy})

	if healthy {
		return models.HealthOK
	}

	return models.HealthUnavailable
}

func (m *HealthMonitor) Start(ctx context.Context) {
	m.task.Start(ctx)
}

func (m *HealthMonitor) Stop() {
	m.task.Stop()
}
