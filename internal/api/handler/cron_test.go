package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/digital-grade-api/internal/api/handler/router"
	"github.com/vfg2006/digital-grade-api/internal/metrics"
	"github.com/vfg2006/digital-grade-api/pkg/apiErrors"
)

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"running": false, "last_removed": 3}
}

func TestCronJobs(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		wantStatus    int
		wantTriggered int
		wantCode      string
	}{
		{"Dispara a limpeza de relatórios", http.MethodPost, "/v1/cron/report-sweep/run", http.StatusAccepted, 1, ""},
		{"Dispara todas as rotinas", http.MethodPost, "/v1/cron/all/run", http.StatusAccepted, 1, ""},
		{"Tipo desconhecido", http.MethodPost, "/v1/cron/meta/run", http.StatusBadRequest, 0, apiErrors.ErrInvalidRequest},
		{"Status das rotinas", http.MethodGet, "/v1/cron/status", http.StatusOK, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{}
			rt := router.New(router.WithRoutes(CronJobs(CronJobServices{ReportSweepService: job})...))

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTriggered, job.triggered)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}

	t.Run("Status traz o estado da limpeza", func(t *testing.T) {
		rt := router.New(router.WithRoutes(CronJobs(CronJobServices{ReportSweepService: &fakeCronJob{}})...))
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

		var status map[string]map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Equal(t, 3.0, status[CronJobTypeReportSweep]["last_removed"])
	})
}

func TestHealthcheckAndMetrics(t *testing.T) {
	m := metrics.New()
	m.IncAnalysis("created")

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Metrics(m)...),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "digital_grade_analyses_total")
}
