package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"socialuni/internal/core"
)

var notificationsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "socialuni_notifications_received_total",
	Help: "The total number of live notifications received, by type.",
}, []string{"type"})

// CountNotification is a pipeline stage: it counts a notification and
// passes it through.
func CountNotification(_ context.Context, n *core.Notification) error {
	notificationsReceived.WithLabelValues(n.Type).Inc()
	return nil
}
