package main

import (
	"context"

	"github.com/vfg2006/digital-grade-api/infrastructure/cache"
	"github.com/vfg2006/digital-grade-api/infrastructure/database/postgres"
	"github.com/vfg2006/digital-grade-api/infrastructure/integrator/assessment"
	"github.com/vfg2006/digital-grade-api/infrastructure/integrator/collector"
	"github.com/vfg2006/digital-grade-api/infrastructure/integrator/collector/collectorclient"
	"github.com/vfg2006/digital-grade-api/infrastructure/repository"
	"github.com/vfg2006/digital-grade-api/internal/api"
	"github.com/vfg2006/digital-grade-api/internal/config"
	"github.com/vfg2006/digital-grade-api/internal/metrics"
	"github.com/vfg2006/digital-grade-api/internal/scheduler"
	"github.com/vfg2006/digital-grade-api/internal/usecases/analyzing"
	"github.com/vfg2006/digital-grade-api/internal/usecases/grading"
	"github.com/vfg2006/digital-grade-api/internal/usecases/scoring"
	"github.com/vfg2006/digital-grade-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao carregar configuração")
	}

	log.Setup(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()

	var onShutdown []func()
	cacheOpts := []cache.Option{}
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		onShutdown = append(onShutdown, func() {
			if err := pgConn.Close(); err != nil {
				log.L.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
			}
		})
		cacheOpts = append(cacheOpts, cache.WithRepository(repository.NewReportRepository(pgConn)))
	} else {
		log.L.Warn("Banco de dados desabilitado, relatórios ficam apenas em memória")
	}

	reportCache, err := cache.New(cfg.Grading.MemoryEntries, cacheOpts...)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao criar cache de relatórios")
	}

	collectorIntegrator := collector.New(collectorclient.NewClient(cfg))

	suite := analyzing.NewSuite(newAssessor(ctx, cfg))

	grader := grading.NewService(
		collectorIntegrator,
		suite,
		scoring.NewBuilder(),
		reportCache,
		m,
		grading.Options{
			BranchTimeout:  cfg.Grading.BranchTimeout,
			CollectTimeout: cfg.Grading.CollectTimeout,
			RetryAttempts:  uint64(max(cfg.Grading.RetryAttempts, 0)),
			RetryBaseDelay: cfg.Grading.RetryBaseDelay,
			RetryMaxDelay:  cfg.Grading.RetryMaxDelay,
			RetryJitter:    cfg.Grading.RetryJitter,
			ReportTTL:      cfg.Grading.ReportTTL,
		},
	)

	reportSweepService := scheduler.NewReportSweepService(reportCache, m, cfg)
	if err := reportSweepService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de limpeza de relatórios")
	} else {
		log.L.Info("Agendador de limpeza de relatórios iniciado")
	}

	server, err := api.New(cfg, grader, reportSweepService, m, onShutdown...)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao criar servidor")
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// newAssessor devolve nil quando o avaliador de IA está desligado; Menu e Marketing usam as regras
func newAssessor(ctx context.Context, cfg *config.Config) analyzing.Assessor {
	if !cfg.Assessment.Enabled {
		log.L.Info("Avaliador de IA desabilitado, rubricas usarão apenas regras")
		return nil
	}

	chatModel, err := assessment.NewChatModel(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Error("Erro ao criar modelo de linguagem, rubricas usarão apenas regras")
		return nil
	}

	log.L.WithField("model", cfg.Assessment.Model).Info("Avaliador de IA configurado")
	return assessment.New(cfg, chatModel)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
