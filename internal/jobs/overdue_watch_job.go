package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OverdueWatchJob flags in-transit orders that have passed their estimated
// delivery time. Runs every minute and logs each overdue order so operators
// can follow up with the driver.
type OverdueWatchJob struct {
	handler queries.ListOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewOverdueWatchJob creates a new job for watching overdue deliveries.
func NewOverdueWatchJob(handler queries.ListOrdersQueryHandler, logger *slog.Logger) *OverdueWatchJob {
	return &OverdueWatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_watch_job"),
		now:     time.Now,
	}
}

// Start begins the overdue watch job to run once a minute.
func (j *OverdueWatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.checkOverdue(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue watch job started (running every minute)")
	return nil
}

// Stop stops the overdue watch job.
func (j *OverdueWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue watch job stopped")
}

func (j *OverdueWatchJob) checkOverdue(ctx context.Context) {
	query, err := queries.NewListOrdersQuery(order.InTransit.String(), nil)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue watch query is invalid", "error", err)
		return
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue watch job failed", "error", err)
		return
	}

	now := j.now()
	for _, o := range orders {
		if o.EstimatedDelivery.Before(now) {
			j.logger.WarnContext(ctx, "Order is past its estimated delivery",
				"order_id", o.ID.String(),
				"estimated_delivery", o.EstimatedDelivery,
				"overdue_for", now.Sub(o.EstimatedDelivery).Round(time.Minute).String(),
			)
		}
	}
}
