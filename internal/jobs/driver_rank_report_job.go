package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/report"

	"github.com/robfig/cron/v3"
)

// DriverRankReporter builds the global driver rank report.
type DriverRankReporter interface {
	Handle(ctx context.Context, query queries.GetDriverRankReportQuery) ([]report.DriverDistance, error)
}

// DriverRankReportJob periodically logs the driver leaderboard by total distance.
type DriverRankReportJob struct {
	reporter DriverRankReporter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDriverRankReportJob creates a report job running on a seconds-enabled cron schedule,
// for example "0 */5 * * * *" for every five minutes.
func NewDriverRankReportJob(reporter DriverRankReporter, schedule string, logger *slog.Logger) *DriverRankReportJob {
	return &DriverRankReportJob{
		reporter: reporter,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "driver_rank_report_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *DriverRankReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver rank report job started", "schedule", j.schedule)
	return nil
}

// Run builds the report once and logs one line per ranked driver.
func (j *DriverRankReportJob) Run(ctx context.Context) {
	rows, err := j.reporter.Handle(ctx, queries.NewGetDriverRankReportQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Driver rank report failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Driver rank report", "drivers", len(rows))
	for i, row := range rows {
		j.logger.InfoContext(ctx, "Driver rank",
			"rank", i+1,
			"driver_id", row.Driver.ID().String(),
			"driver_name", row.Driver.Name(),
			"total_distance_km", row.TotalDistance,
		)
	}
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *DriverRankReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Driver rank report job stopped")
}
