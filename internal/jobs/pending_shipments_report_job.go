package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingShipmentsReportJob periodically reports the number of shipments that
// have not reached a terminal status. Runs every minute.
type PendingShipmentsReportJob struct {
	handler queries.GetUncompletedShipmentsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingShipmentsReportJob creates a new report job.
// Uses GetUncompletedShipmentsQueryHandler to count in-flight shipments.
func NewPendingShipmentsReportJob(
	handler queries.GetUncompletedShipmentsQueryHandler,
	logger *slog.Logger,
) *PendingShipmentsReportJob {
	return &PendingShipmentsReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_shipments_report_job"),
	}
}

// Start begins the report job to run every minute.
func (j *PendingShipmentsReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetUncompletedShipmentsQuery()

		shipments, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending shipments report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Pending shipments report", "count", len(shipments))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending shipments report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *PendingShipmentsReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending shipments report job stopped")
}
