// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/digital-grade-api/internal/config"
	"github.com/vfg2006/digital-grade-api/internal/metrics"
	"github.com/vfg2006/digital-grade-api/pkg/log"
)

//go:generate mockgen -source=report_sweep.go -destination=mocks/mock_report_sweep.go -package=mocks

const jobReportSweep = "report-sweep"

// ReportSweeper remove relatórios expirados antes do corte
type ReportSweeper interface {
	Sweep(ctx context.Context, cutoff time.Time) (int64, error)
}

type ReportSweepConfig struct {
	CronSchedule string
	Retention    time.Duration
	Enabled      bool
}

type ReportSweepService struct {
	scheduler       *gocron.Scheduler
	sweeper         ReportSweeper
	metrics         *metrics.Metrics
	config          ReportSweepConfig
	now             func() time.Time
	running         bool
	mutex           sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastRemoved     int64
	lastError       string
}

func NewReportSweepService(sweeper ReportSweeper, m *metrics.Metrics, cfg *config.Config) *ReportSweepService {
	sweepConfig := ReportSweepConfig{
		CronSchedule: cfg.ReportSweep.CronSchedule,
		Retention:    cfg.ReportSweep.Retention,
		Enabled:      cfg.ReportSweep.Enabled,
	}

	log.L.WithFields(log.Fields{
		"job":           jobReportSweep,
		"cron_schedule": sweepConfig.CronSchedule,
	}).Info("Configuração da limpeza de relatórios carregada")

	return &ReportSweepService{
		scheduler: gocron.NewScheduler(time.UTC),
		sweeper:   sweeper,
		metrics:   m,
		config:    sweepConfig,
		now:       time.Now,
	}
}

func (s *ReportSweepService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.WithField("job", jobReportSweep).Info("Limpeza de relatórios desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Run(ctx); err != nil {
			log.L.WithField("job", jobReportSweep).WithError(err).Error("Erro na limpeza de relatórios")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.WithField("job", jobReportSweep).Info("Parando limpeza de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa a limpeza uma vez. Se já houver uma em andamento, não faz nada.
func (s *ReportSweepService) Run(ctx context.Context) (int64, error) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		log.L.WithField("job", jobReportSweep).Warn("Limpeza de relatórios já está em execução")
		return 0, nil
	}
	s.running = true
	s.lastStartedAt = s.now()
	s.mutex.Unlock()

	cutoff := s.lastStartedAt.Add(-s.config.Retention)
	removed, err := s.sweeper.Sweep(ctx, cutoff)

	s.mutex.Lock()
	s.running = false
	s.lastCompletedAt = s.now()
	s.lastRemoved = removed
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.mutex.Unlock()

	if err != nil {
		return removed, fmt.Errorf("sweep reports: %w", err)
	}

	s.metrics.AddSwept(int(removed))
	log.L.WithFields(log.Fields{
		"job":     jobReportSweep,
		"removed": removed,
		"cutoff":  cutoff.Format(time.RFC3339),
	}).Info("Limpeza de relatórios concluída")

	return removed, nil
}

// TriggerManualSync inicia a limpeza em segundo plano
func (s *ReportSweepService) TriggerManualSync() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		log.L.WithField("job", jobReportSweep).Info("Limpeza de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.mutex.Unlock()

	go func() {
		if _, err := s.Run(context.Background()); err != nil {
			log.L.WithField("job", jobReportSweep).WithError(err).Error("Erro na limpeza manual de relatórios")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ReportSweepService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"retention":         s.config.Retention.String(),
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_removed":      s.lastRemoved,
		"last_error":        s.lastError,
	}
}
