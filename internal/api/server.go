package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/vfg2006/digital-grade-api/internal/api/handler"
	"github.com/vfg2006/digital-grade-api/internal/api/handler/router"
	"github.com/vfg2006/digital-grade-api/internal/config"
	"github.com/vfg2006/digital-grade-api/internal/metrics"
	"github.com/vfg2006/digital-grade-api/internal/scheduler"
	"github.com/vfg2006/digital-grade-api/internal/usecases/grading"
	"github.com/vfg2006/digital-grade-api/pkg/log"
	"github.com/vfg2006/digital-grade-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	onShutdown []func()
}

func New(
	config *config.Config,
	grader grading.Grader,
	reportSweepService *scheduler.ReportSweepService,
	m *metrics.Metrics,
	onShutdown ...func(),
) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if reportSweepService != nil {
		cronServices.ReportSweepService = reportSweepService
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(m)...),
		router.WithRoutes(handler.Analyses(grader)...),
		router.WithRoutes(handler.Reports(grader)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
			// A análise completa pode levar até o prazo das coletas em paralelo
			WriteTimeout: config.Grading.BranchTimeout + 10*time.Second,
		},
		onShutdown: onShutdown,
	}

	return srv, nil
}

// Handler expõe a cadeia HTTP completa
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Log de início do desligamento
	log.L.WithFields(log.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	log.L.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	// Conexões externas só fecham depois que as requisições em andamento terminam
	for _, fn := range s.onShutdown {
		fn()
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}
