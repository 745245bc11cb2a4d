package notification

import (
	"context"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/models"

	"go.uber.org/zap"
)

// Dispatcher holds the channel registry and fans one notification out to
// every resolved channel. It is constructed once at process start and passed
// by reference; channels are registered explicitly, never at import time.
type Dispatcher struct {
	channels map[string]Channel
	logger   *zap.Logger
}

func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		channels: make(map[string]Channel),
		logger:   logger,
	}
}

// Register adds a channel implementation under its own name.
func (d *Dispatcher) Register(ch Channel) {
	d.channels[ch.Name()] = ch
}

// Dispatch resolves policy over the event and attempts delivery on each
// channel. A failure on one channel never blocks the others; results are
// collected and summarized rather than aggregated into a single outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, n models.Notification) models.DispatchSummary {
	summary := models.DispatchSummary{}

	if !ShouldNotify(n) {
		d.logger.Debug("notification suppressed by policy",
			zap.String("type", string(n.Type)))
		return summary
	}

	n = ApplyPolicy(n)

	for _, name := range n.Channels {
		ch, ok := d.channels[name]
		if !ok {
			summary.Results = append(summary.Results, models.NotificationResult{
				Channel:   name,
				Error:     "channel not registered",
				Timestamp: time.Now(),
			})
			summary.Failed++
			summary.Total++
			continue
		}

		if !ch.Validate(n) {
			summary.Results = append(summary.Results, models.NotificationResult{
				Channel:   name,
				Error:     "notification rejected by channel validation",
				Timestamp: time.Now(),
			})
			summary.Failed++
			summary.Total++
			continue
		}

		res := ch.Send(ctx, n)
		summary.Results = append(summary.Results, res)
		summary.Total++
		if res.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	d.logger.Info("notification dispatched",
		zap.String("type", string(n.Type)),
		zap.String("priority", string(n.Priority)),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed))

	return summary
}
