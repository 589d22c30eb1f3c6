package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/digital-grade-api/internal/config"
	"github.com/vfg2006/digital-grade-api/internal/metrics"
	"github.com/vfg2006/digital-grade-api/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

var sweepNow = time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)

func newTestSweepService(sweeper ReportSweeper, m *metrics.Metrics) *ReportSweepService {
	cfg := &config.Config{ReportSweep: config.ReportSweep{
		CronSchedule: "0 3 * * *",
		Retention:    90 * 24 * time.Hour,
	}}
	service := NewReportSweepService(sweeper, m, cfg)
	service.now = func() time.Time { return sweepNow }
	return service
}

func TestReportSweepService_Run(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(sweeper *mocks.MockReportSweeper)
		validate func(t *testing.T, service *ReportSweepService, m *metrics.Metrics, removed int64, err error)
	}{
		{
			name: "Sucesso - remove relatórios antes do corte de retenção",
			setup: func(sweeper *mocks.MockReportSweeper) {
				sweeper.EXPECT().
					Sweep(gomock.Any(), sweepNow.Add(-90*24*time.Hour)).
					Return(int64(4), nil)
			},
			validate: func(t *testing.T, service *ReportSweepService, m *metrics.Metrics, removed int64, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(4), removed)
				assert.Equal(t, 4.0, testutil.ToFloat64(m.SweptReports))

				status := service.GetStatus()
				assert.Equal(t, int64(4), status["last_removed"])
				assert.Equal(t, "", status["last_error"])
				assert.Equal(t, false, status["running"])
				assert.Equal(t, sweepNow, status["last_completed_at"])
			},
		},
		{
			name: "Erro - registra no status e não conta métrica",
			setup: func(sweeper *mocks.MockReportSweeper) {
				sweeper.EXPECT().Sweep(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))
			},
			validate: func(t *testing.T, service *ReportSweepService, m *metrics.Metrics, removed int64, err error) {
				assert.ErrorContains(t, err, "db down")
				assert.Zero(t, removed)
				assert.Equal(t, 0.0, testutil.ToFloat64(m.SweptReports))
				assert.Equal(t, "db down", service.GetStatus()["last_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sweeper := mocks.NewMockReportSweeper(ctrl)
			tt.setup(sweeper)

			m := metrics.New()
			service := newTestSweepService(sweeper, m)

			removed, err := service.Run(context.Background())
			tt.validate(t, service, m, removed, err)
		})
	}
}

func TestReportSweepService_RunWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	sweeper := mocks.NewMockReportSweeper(ctrl)

	service := newTestSweepService(sweeper, nil)
	service.running = true

	removed, err := service.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestReportSweepService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	sweeper := mocks.NewMockReportSweeper(ctrl)

	done := make(chan struct{})
	sweeper.EXPECT().Sweep(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			close(done)
			return 2, nil
		})

	service := newTestSweepService(sweeper, nil)
	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("limpeza manual não foi executada")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["last_removed"] == int64(2)
	}, time.Second, 10*time.Millisecond)
}

func TestReportSweepService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := newTestSweepService(mocks.NewMockReportSweeper(ctrl), nil)

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["enabled"])
}
