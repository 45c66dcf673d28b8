package services

import (
	"context"
	"time"

	"github.com/Renal37/order-dashboard/internal/logger"
	"github.com/Renal37/order-dashboard/internal/models"
	"go.uber.org/zap"
)

const DefaultNotificationInterval = 5 * time.Second

// NotificationPoller pulls server-side order events and adds them to the
// notification store. Fetch errors are only logged.
type NotificationPoller struct {
	source        models.NotificationSource
	notifications notificationSink
	task          *RecurringTask
}

func NewNotificationPoller(source models.NotificationSource, notifications notificationSink, interval time.Duration) *NotificationPoller {
	if interval <= 0 {
		interval = DefaultNotificationInterval
	}

	p := &NotificationPoller{
		source:        source,
		notifications: notifications,
	}
	p.task = NewRecurringTask("notifications", interval, func(ctx context.Context) {
		p.Poll(ctx)
	})

	return p
}

// Poll fetches pending events once and returns how many were stored.
func (p *NotificationPoller) Poll(ctx context.Context) int {
	events, err := p.source.FetchNotifications(ctx)
	if err != nil {
		logger.Log.Warn("failed to fetch notifications", zap.Error(err))
		return 0
	}

	var added int
	for _, event := range events {
		if _, ok := p.notifications.Add(event); ok {
			added++
		}
	}

	if added > 0 {
		logger.Log.Debug("notifications received", zap.Int("count", added))
	}

	return added
}

func (p *NotificationPoller) Start(ctx context.Context) {
	p.task.Start(ctx)
}

func (p *NotificationPoller) Stop() {
	p.task.Stop()
}
