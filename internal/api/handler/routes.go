package handler

import (
	"net/http"

	"github.com/vfg2006/digital-grade-api/internal/api/handler/router"
	"github.com/vfg2006/digital-grade-api/internal/metrics"
	"github.com/vfg2006/digital-grade-api/internal/usecases/grading"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(m),
		},
	}
}

func Analyses(grader grading.Grader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analyses",
			Method:  http.MethodPost,
			Handler: CreateAnalysis(grader),
		},
	}
}

func Reports(grader grading.Grader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodGet,
			Handler: GetLatestReport(grader),
		},
		{
			Path:    "/v1/reports/:id",
			Method:  http.MethodGet,
			Handler: GetReport(grader),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
