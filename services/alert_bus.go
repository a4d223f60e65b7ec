package services

import (
	"context"

	"github.com/sirupsen/logrus"
)

// MetricsBus refreshes live metrics after a meal write. Safe to call with a nil hub.
type MetricsBus struct {
	metrics *MetricsService
	rt      *RealtimeHub
	log     logrus.FieldLogger
}

func NewMetricsBus(metrics *MetricsService, rt *RealtimeHub, log logrus.FieldLogger) *MetricsBus {
	return &MetricsBus{metrics: metrics, rt: rt, log: log}
}

// Publish recomputes ownerID's metrics and pushes them to their open sockets. Nothing is
// computed when the owner has no socket open.
func (b *MetricsBus) Publish(ctx context.Context, ownerID string) {
	if b == nil || !b.rt.Listening(ownerID) {
		return
	}
	m, err := b.metrics.ForOwner(ctx, ownerID)
	if err != nil {
		b.log.WithFields(logrus.Fields{"user_id": ownerID, "error": err}).Warn("live metrics not refreshed")
		return
	}
	sent := b.rt.BroadcastMetrics(ownerID, m)
	b.log.WithFields(logrus.Fields{"user_id": ownerID, "sockets": sent}).Debug("live metrics pushed")
}
