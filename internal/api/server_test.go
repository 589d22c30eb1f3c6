package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/digital-grade-api/internal/config"
	"github.com/vfg2006/digital-grade-api/internal/domain"
	"github.com/vfg2006/digital-grade-api/internal/metrics"
	"github.com/vfg2006/digital-grade-api/internal/usecases/grading/mocks"
	"github.com/vfg2006/digital-grade-api/pkg/log"
	"github.com/vfg2006/digital-grade-api/pkg/middleware"
)

func TestServer_Handler(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	grader := mocks.NewMockGrader(ctrl)
	grader.EXPECT().GetReport(gomock.Any(), "missing").Return(nil, domain.ErrReportNotFound)

	cfg := &config.Config{
		Server:  config.Server{Host: "127.0.0.1", Port: "0"},
		Grading: config.Grading{BranchTimeout: time.Second},
		Cors:    config.Cors{AllowedOrigins: []string{"*"}},
	}

	srv, err := New(cfg, grader, nil, metrics.New())
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/missing", nil)
	req.Header.Set("Origin", "https://painel.exemplo.com")
	req.Header.Set(middleware.CorrelationIDHeader, "corr-1")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "corr-1", rec.Header().Get(middleware.CorrelationIDHeader))
	assert.Equal(t, "https://painel.exemplo.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), "REP_001")
}
