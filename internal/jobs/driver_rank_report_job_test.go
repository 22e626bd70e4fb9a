package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/report"
	"dispatch/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDriverRankReporter struct {
	mock.Mock
}

func (m *MockDriverRankReporter) Handle(
	ctx context.Context,
	query queries.GetDriverRankReportQuery,
) ([]report.DriverDistance, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]report.DriverDistance)
	return rows, args.Error(1)
}

func newLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}

func TestDriverRankReportJob_RunLogsLeaderboard(t *testing.T) {
	mary, err := driver.NewDriver(kernel.NewUUID(), "Mary", kernel.NewUUID())
	require.NoError(t, err)
	robert, err := driver.NewDriver(kernel.NewUUID(), "Robert", kernel.NewUUID())
	require.NoError(t, err)

	reporter := &MockDriverRankReporter{}
	reporter.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetDriverRankReportQuery")).
		Return([]report.DriverDistance{
			{Driver: robert, TotalDistance: 19.5},
			{Driver: mary, TotalDistance: 5},
		}, nil)

	logger, buf := newLogger()
	job := jobs.NewDriverRankReportJob(reporter, "@every 1h", logger)

	job.Run(t.Context())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"drivers":2`)
	assert.Contains(t, lines[1], `"driver_name":"Robert"`)
	assert.Contains(t, lines[1], `"rank":1`)
	assert.Contains(t, lines[2], `"driver_name":"Mary"`)
	assert.Contains(t, lines[2], `"component":"driver_rank_report_job"`)
	reporter.AssertExpectations(t)
}

func TestDriverRankReportJob_RunLogsFailure(t *testing.T) {
	reporter := &MockDriverRankReporter{}
	reporter.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	logger, buf := newLogger()
	jobs.NewDriverRankReportJob(reporter, "@every 1h", logger).Run(t.Context())

	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), "connection refused")
}

func TestJobManager_StartAndStop(t *testing.T) {
	logger, buf := newLogger()
	manager := jobs.NewJobManager(&MockDriverRankReporter{}, "0 0 3 * * *", logger)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "Driver rank report job started")
	assert.Contains(t, buf.String(), "Driver rank report job stopped")
}

func TestJobManager_InvalidSchedule(t *testing.T) {
	logger, _ := newLogger()
	manager := jobs.NewJobManager(&MockDriverRankReporter{}, "not a schedule", logger)

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver rank report job")
}
