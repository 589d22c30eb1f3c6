// Package metrics agrupa os coletores Prometheus da API
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics reúne os coletores registrados num registry dedicado
type Metrics struct {
	Registry            *prometheus.Registry
	AnalysesTotal       *prometheus.CounterVec
	AnalysisDuration    prometheus.Histogram
	CategoryFallbacks   *prometheus.CounterVec
	AssessmentFallbacks *prometheus.CounterVec
	CollectorRetries    *prometheus.CounterVec
	CacheLookups        *prometheus.CounterVec
	SweptReports        prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	analyses := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "digital_grade_analyses_total",
			Help: "Total de análises por resultado.",
		},
		[]string{"outcome"},
	)
	duration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "digital_grade_analysis_duration_seconds",
			Help:    "Duração das análises que chegaram ao relatório final.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
	)
	categoryFallbacks := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "digital_grade_category_fallbacks_total",
			Help: "Categorias avaliadas pela heurística por falta de sinal.",
		},
		[]string{"category", "reason"},
	)
	assessmentFallbacks := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "digital_grade_assessment_fallbacks_total",
			Help: "Rubricas avaliadas por regras porque a IA não respondeu.",
		},
		[]string{"category"},
	)
	collectorRetries := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "digital_grade_collector_retries_total",
			Help: "Novas tentativas de coleta agendadas.",
		},
		[]string{"category"},
	)
	cacheLookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "digital_grade_cache_lookups_total",
			Help: "Consultas ao cache de relatórios por resultado.",
		},
		[]string{"result"},
	)
	swept := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "digital_grade_swept_reports_total",
			Help: "Relatórios expirados removidos pela rotina de limpeza.",
		},
	)

	registry.MustRegister(analyses, duration, categoryFallbacks, assessmentFallbacks, collectorRetries, cacheLookups, swept)

	return &Metrics{
		Registry:            registry,
		AnalysesTotal:       analyses,
		AnalysisDuration:    duration,
		CategoryFallbacks:   categoryFallbacks,
		AssessmentFallbacks: assessmentFallbacks,
		CollectorRetries:    collectorRetries,
		CacheLookups:        cacheLookups,
		SweptReports:        swept,
	}
}

func (m *Metrics) IncAnalysis(outcome string) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveAnalysis(d time.Duration) {
	if m == nil {
		return
	}
	m.AnalysisDuration.Observe(d.Seconds())
}

func (m *Metrics) IncCategoryFallback(category, reason string) {
	if m == nil {
		return
	}
	m.CategoryFallbacks.WithLabelValues(category, reason).Inc()
}

func (m *Metrics) IncAssessmentFallback(category string) {
	if m == nil {
		return
	}
	m.AssessmentFallbacks.WithLabelValues(category).Inc()
}

func (m *Metrics) IncCollectorRetry(category string) {
	if m == nil {
		return
	}
	m.CollectorRetries.WithLabelValues(category).Inc()
}

// IncCache registra um hit ou miss no cache
func (m *Metrics) IncCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) AddSwept(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SweptReports.Add(float64(n))
}
