// Package grading orquestra a análise: validação, coleta em paralelo, avaliação e montagem do relatório
package grading

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/vfg2006/digital-grade-api/internal/domain"
	"github.com/vfg2006/digital-grade-api/internal/metrics"
	"github.com/vfg2006/digital-grade-api/internal/usecases/analyzing"
	"github.com/vfg2006/digital-grade-api/internal/usecases/scoring"
	"github.com/vfg2006/digital-grade-api/pkg/log"
)

// RunState é a etapa atual de uma análise
type RunState string

const (
	StateRequested    RunState = "requested"
	StateRejected     RunState = "rejected"
	StateCollecting   RunState = "collecting"
	StateScoring      RunState = "scoring"
	StateAggregating  RunState = "aggregating"
	StatePrioritizing RunState = "prioritizing"
	StateFinalized    RunState = "finalized"
)

// Resultados registrados em métricas
const (
	outcomeCreated   = "created"
	outcomeCached    = "cached"
	outcomeCoalesced = "coalesced"
	outcomeRejected  = "rejected"
	outcomeCanceled  = "canceled"
	outcomeFailed    = "failed"
)

// Options controla tempos e tentativas da orquestração
type Options struct {
	BranchTimeout  time.Duration
	CollectTimeout time.Duration
	RetryAttempts  uint64
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
	RetryJitter    time.Duration
	ReportTTL      time.Duration
}

func (o Options) withDefaults() Options {
	if o.BranchTimeout <= 0 {
		o.BranchTimeout = 20 * time.Second
	}
	if o.CollectTimeout <= 0 {
		o.CollectTimeout = 5 * time.Second
	}
	if o.RetryBaseDelay <= 0 {
		o.RetryBaseDelay = 200 * time.Millisecond
	}
	if o.RetryMaxDelay <= 0 {
		o.RetryMaxDelay = 2 * time.Second
	}
	if o.ReportTTL <= 0 {
		o.ReportTTL = domain.ReportValidity
	}
	return o
}

// Result é o relatório devolvido por Analyze
type Result struct {
	Report *domain.DigitalGradeReport
	// Cached indica relatório válido reaproveitado do cache
	Cached bool
	// Coalesced indica que a execução foi compartilhada entre requisições idênticas simultâneas
	Coalesced bool
}

type Service struct {
	collector SignalCollector
	suite     *analyzing.Suite
	builder   *scoring.Builder
	cache     ReportCache
	metrics   *metrics.Metrics
	validate  *validator.Validate
	opts      Options
	group     singleflight.Group
	now       func() time.Time

	flightsMu sync.Mutex
	flights   map[string]*flight
}

// flight é a execução compartilhada de uma chave. Roda num contexto desligado
// do chamador e só é cancelada quando o último interessado desiste.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

func NewService(
	collector SignalCollector,
	suite *analyzing.Suite,
	builder *scoring.Builder,
	cache ReportCache,
	m *metrics.Metrics,
	opts Options,
) *Service {
	return &Service{
		collector: collector,
		suite:     suite,
		builder:   builder,
		cache:     cache,
		metrics:   m,
		validate:  newValidator(),
		opts:      opts.withDefaults(),
		now:       time.Now,
		flights:   make(map[string]*flight),
	}
}

// joinFlight registra o chamador na execução da chave, criando-a se preciso
func (s *Service) joinFlight(ctx context.Context, key string) *flight {
	s.flightsMu.Lock()
	defer s.flightsMu.Unlock()

	f, ok := s.flights[key]
	if !ok {
		flightCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		f = &flight{ctx: flightCtx, cancel: cancel}
		s.flights[key] = f
	}
	f.waiters++
	return f
}

// leaveFlight remove o chamador; sem interessados restantes a execução é cancelada
// e novas requisições iniciam uma execução nova
func (s *Service) leaveFlight(key string, f *flight) {
	s.flightsMu.Lock()
	defer s.flightsMu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if s.flights[key] == f {
		delete(s.flights, key)
		s.group.Forget(key)
	}
}

// finishFlight desregistra a execução concluída para que a próxima chamada não a reutilize
func (s *Service) finishFlight(key string, f *flight) {
	s.flightsMu.Lock()
	defer s.flightsMu.Unlock()

	if s.flights[key] == f {
		delete(s.flights, key)
	}
}

// Analyze valida a requisição, reaproveita um relatório válido ou executa uma nova análise
func (s *Service) Analyze(ctx context.Context, request domain.AnalysisRequest) (*Result, error) {
	request = request.Normalized()
	logger := log.ForContext(ctx).WithField("business_name", request.BusinessName)
	logger.WithField("state", StateRequested).Info("Análise solicitada")

	if err := validateRequest(s.validate, request); err != nil {
		logger.WithFields(log.Fields{"state": StateRejected, "error": err.Error()}).Warn("Análise rejeitada")
		s.metrics.IncAnalysis(outcomeRejected)
		return nil, err
	}

	key := request.CacheKey()
	logger = logger.WithField("report_key", key)

	if report := s.cached(ctx, logger, key); report != nil {
		s.metrics.IncAnalysis(outcomeCached)
		return &Result{Report: report, Cached: true}, nil
	}

	for {
		result, again, err := s.await(ctx, logger, request, key)
		if !again {
			return result, err
		}
		logger.Info("Execução compartilhada cancelada por outro chamador, iniciando nova análise")
	}
}

// await entra na execução compartilhada da chave e espera o resultado.
// again=true quando a execução foi cancelada sem que o próprio chamador tenha desistido.
func (s *Service) await(ctx context.Context, logger log.Logger, request domain.AnalysisRequest, key string) (*Result, bool, error) {
	f := s.joinFlight(ctx, key)
	defer s.leaveFlight(key, f)

	ch := s.group.DoChan(key, func() (any, error) {
		defer s.finishFlight(key, f)
		return s.run(f.ctx, logger, request, key)
	})

	select {
	case <-ctx.Done():
		s.metrics.IncAnalysis(outcomeCanceled)
		return nil, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			if errors.Is(res.Err, context.Canceled) || errors.Is(res.Err, context.DeadlineExceeded) {
				if ctx.Err() == nil {
					return nil, true, nil
				}
				s.metrics.IncAnalysis(outcomeCanceled)
				return nil, false, ctx.Err()
			}
			s.metrics.IncAnalysis(outcomeFailed)
			return nil, false, res.Err
		}
		report := res.Val.(*domain.DigitalGradeReport)
		if res.Shared {
			s.metrics.IncAnalysis(outcomeCoalesced)
		} else {
			s.metrics.IncAnalysis(outcomeCreated)
		}
		return &Result{Report: report, Coalesced: res.Shared}, false, nil
	}
}

// GetReport devolve qualquer relatório armazenado, inclusive os expirados
func (s *Service) GetReport(ctx context.Context, id string) (*domain.DigitalGradeReport, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &domain.InputValidationError{Field: "report_id", Message: "is required"}
	}

	report, err := s.cache.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get report %s: %w", id, err)
	}
	if report == nil {
		return nil, domain.ErrReportNotFound
	}
	return report, nil
}

// GetLatestReport devolve o relatório mais recente do negócio
func (s *Service) GetLatestReport(ctx context.Context, businessName string) (*domain.DigitalGradeReport, error) {
	businessName = strings.TrimSpace(businessName)
	if businessName == "" {
		return nil, &domain.InputValidationError{Field: "business_name", Message: "is required"}
	}

	report, err := s.cache.GetLatestBySubject(ctx, businessName)
	if err != nil {
		return nil, fmt.Errorf("get latest report for %q: %w", businessName, err)
	}
	if report == nil {
		return nil, domain.ErrReportNotFound
	}
	return report, nil
}

func (s *Service) cached(ctx context.Context, logger log.Logger, key string) *domain.DigitalGradeReport {
	report, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.WithError(err).Warn("Falha ao consultar cache de relatórios, seguindo com nova análise")
		s.metrics.IncCache(false)
		return nil
	}
	if report == nil || report.IsStale(s.now()) {
		s.metrics.IncCache(false)
		return nil
	}
	s.metrics.IncCache(true)
	logger.WithField("report_id", report.ID).Info("Relatório válido encontrado no cache")
	return report
}

// run executa uma análise completa. Cancelamento do chamador interrompe as coletas
// e nenhum relatório é gravado.
func (s *Service) run(ctx context.Context, logger log.Logger, request domain.AnalysisRequest, key string) (*domain.DigitalGradeReport, error) {
	start := s.now()
	logger.WithField("state", StateCollecting).Info("Iniciando coleta das categorias")

	var results [domain.CategoryCount]domain.CategoryScore
	g, gctx := errgroup.WithContext(ctx)
	for _, category := range domain.AllCategories {
		g.Go(func() error {
			results[category.Index()] = s.scoreCategory(gctx, logger, request, category)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		logger.WithError(err).Warn("Análise cancelada pelo chamador, nenhum relatório gravado")
		return nil, err
	}

	var scores domain.CategoryScores
	for _, score := range results {
		scores.Set(score)
	}

	logger.WithField("state", StateAggregating).Info("Agregando notas")
	report, err := s.builder.Build(domain.Subject{BusinessName: request.BusinessName, Request: request}, key, scores)
	if err != nil {
		logger.WithError(err).Error("Falha ao montar relatório")
		return nil, err
	}
	logger.WithFields(log.Fields{
		"state":           StatePrioritizing,
		"recommendations": len(report.Recommendations),
	}).Info("Recomendações priorizadas")

	if err := s.cache.Put(ctx, key, report, s.opts.ReportTTL); err != nil {
		logger.WithError(err).Warn("Falha ao gravar relatório no cache")
	}

	s.metrics.ObserveAnalysis(s.now().Sub(start))
	logger.WithFields(log.Fields{
		"state":         StateFinalized,
		"report_id":     report.ID,
		"overall_grade": report.OverallGrade,
		"grade_letter":  report.GradeLetter,
	}).Info("Análise finalizada")

	return report, nil
}

// scoreCategory coleta e avalia uma categoria dentro do seu próprio prazo
func (s *Service) scoreCategory(ctx context.Context, logger log.Logger, request domain.AnalysisRequest, category domain.Category) domain.CategoryScore {
	ctx, cancel := context.WithTimeout(ctx, s.opts.BranchTimeout)
	defer cancel()

	logger = logger.WithField("category", category.String())

	observation := s.observe(ctx, logger, request, category)
	if observation.Absence != nil {
		s.metrics.IncCategoryFallback(category.String(), string(observation.Absence.Reason))
	}

	logger.WithField("state", StateScoring).Debug("Avaliando categoria")
	score := s.suite.For(category).Analyze(ctx, observation.WithSubject(request.BusinessName))
	if score.HasIssue(domain.IssueAssessmentUnavailable) {
		s.metrics.IncAssessmentFallback(category.String())
	}

	return score
}

// observe transforma a coleta (com novas tentativas) numa observação; falhas viram ausência
func (s *Service) observe(ctx context.Context, logger log.Logger, request domain.AnalysisRequest, category domain.Category) domain.Observation {
	identifier, ok := request.Identifier(category)
	if !ok {
		return emptyObservation(category)
	}

	signal, err := s.fetch(ctx, category, identifier)
	if err != nil {
		var collectionErr *domain.CollectionError
		if !errors.As(err, &collectionErr) {
			collectionErr = &domain.CollectionError{Category: category, Reason: domain.AbsentUnreachable, Err: err}
		}
		logger.WithFields(log.Fields{
			"reason": collectionErr.Reason,
			"error":  err.Error(),
		}).Warn("Coleta indisponível, usando estimativa heurística")
		return domain.Absent(category, collectionErr.Reason, collectionErr.Error())
	}

	if signal == nil {
		return domain.Absent(category, domain.AbsentNotFound, "coletor não retornou sinal")
	}
	if signal.Category() != category {
		return domain.Absent(category, domain.AbsentParseError, fmt.Sprintf("sinal de %s recebido para %s", signal.Category(), category))
	}

	return domain.Observed(signal)
}

func (s *Service) fetch(ctx context.Context, category domain.Category, identifier string) (domain.CategorySignal, error) {
	backoff := retry.NewExponential(s.opts.RetryBaseDelay)
	backoff = retry.WithCappedDuration(s.opts.RetryMaxDelay, backoff)
	if s.opts.RetryJitter > 0 {
		backoff = retry.WithJitter(s.opts.RetryJitter, backoff)
	}
	backoff = retry.WithMaxRetries(s.opts.RetryAttempts, backoff)

	var signal domain.CategorySignal
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if attempt > 0 {
			s.metrics.IncCollectorRetry(category.String())
		}
		attempt++

		callCtx, cancel := context.WithTimeout(ctx, s.opts.CollectTimeout)
		defer cancel()

		result, err := s.collector.Fetch(callCtx, category, identifier)
		if err != nil {
			collectionErr := asCollectionError(category, err)
			if collectionErr.Retryable() {
				return retry.RetryableError(collectionErr)
			}
			return collectionErr
		}
		signal = result
		return nil
	})
	if err != nil {
		return nil, asCollectionError(category, err)
	}
	return signal, nil
}

func asCollectionError(category domain.Category, err error) *domain.CollectionError {
	var collectionErr *domain.CollectionError
	if errors.As(err, &collectionErr) {
		return collectionErr
	}
	return &domain.CollectionError{Category: category, Reason: domain.AbsentUnreachable, Err: err}
}

// emptyObservation é o sinal "coletado vazio" das categorias sem identificador.
// Menu sem identificador não tem o que avaliar e vira ausência.
func emptyObservation(category domain.Category) domain.Observation {
	switch category {
	case domain.CategoryWebsite:
		return domain.Observed(domain.WebsiteSignal{NoWebsite: true})
	case domain.CategoryBusinessProfile:
		return domain.Observed(domain.BusinessProfileSignal{})
	case domain.CategorySocialMedia:
		return domain.Observed(domain.SocialMediaSignal{})
	case domain.CategoryMarketing:
		return domain.Observed(domain.MarketingSignal{})
	}
	return domain.Absent(category, domain.AbsentNotFound, "nenhum identificador informado")
}
