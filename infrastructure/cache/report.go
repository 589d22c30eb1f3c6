// Package cache guarda os relatórios em memória com a persistência como segunda camada
package cache

import (
	"context"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/vfg2006/digital-grade-api/infrastructure/repository"
	"github.com/vfg2006/digital-grade-api/internal/domain"
)

const defaultEntries = 512

type entry struct {
	report   *domain.DigitalGradeReport
	deadline time.Time
}

// ReportCache combina um LRU em memória com o repositório de relatórios.
// Sem repositório, funciona apenas em memória.
type ReportCache struct {
	byKey     *lru.Cache[string, entry]
	byID      *lru.Cache[string, *domain.DigitalGradeReport]
	bySubject *lru.Cache[string, *domain.DigitalGradeReport]
	repo      repository.ReportRepository
	now       func() time.Time
}

type Option func(*ReportCache)

// WithRepository liga a camada persistente
func WithRepository(repo repository.ReportRepository) Option {
	return func(c *ReportCache) {
		c.repo = repo
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *ReportCache) {
		c.now = now
	}
}

func New(size int, opts ...Option) (*ReportCache, error) {
	if size <= 0 {
		size = defaultEntries
	}

	byKey, err := lru.New[string, entry](size)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cache por chave")
	}
	byID, err := lru.New[string, *domain.DigitalGradeReport](size)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cache por id")
	}
	bySubject, err := lru.New[string, *domain.DigitalGradeReport](size)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cache por negócio")
	}

	c := &ReportCache{
		byKey:     byKey,
		byID:      byID,
		bySubject: bySubject,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get devolve o relatório válido da chave. nil, nil quando não há.
func (c *ReportCache) Get(ctx context.Context, key string) (*domain.DigitalGradeReport, error) {
	now := c.now()
	if e, ok := c.byKey.Get(key); ok {
		if now.Before(e.deadline) && !e.report.IsStale(now) {
			return e.report, nil
		}
		c.byKey.Remove(key)
	}

	if c.repo == nil {
		return nil, nil
	}

	report, err := c.repo.GetLatestByCacheKey(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar relatório persistido")
	}
	if report == nil || report.IsStale(now) {
		return nil, nil
	}

	c.remember(key, report, report.ExpiresAt)
	return report, nil
}

// Put guarda o relatório em memória e, quando configurado, no repositório
func (c *ReportCache) Put(ctx context.Context, key string, report *domain.DigitalGradeReport, ttl time.Duration) error {
	if report == nil {
		return errors.New("relatório nulo")
	}

	deadline := report.ExpiresAt
	if ttl > 0 {
		if byTTL := c.now().Add(ttl); byTTL.Before(deadline) {
			deadline = byTTL
		}
	}
	c.remember(key, report, deadline)

	if c.repo == nil {
		return nil
	}
	return c.repo.Save(ctx, report)
}

// GetByID devolve qualquer relatório armazenado, inclusive expirados
func (c *ReportCache) GetByID(ctx context.Context, id string) (*domain.DigitalGradeReport, error) {
	if report, ok := c.byID.Get(id); ok {
		return report, nil
	}
	if c.repo == nil {
		return nil, nil
	}

	report, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar relatório por id")
	}
	if report != nil {
		c.byID.Add(report.ID, report)
	}
	return report, nil
}

// GetLatestBySubject devolve o relatório mais recente do negócio
func (c *ReportCache) GetLatestBySubject(ctx context.Context, businessName string) (*domain.DigitalGradeReport, error) {
	if c.repo != nil {
		report, err := c.repo.GetLatestByBusinessName(ctx, businessName)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao consultar relatório do negócio")
		}
		if report != nil {
			return report, nil
		}
	}

	if report, ok := c.bySubject.Get(subjectKey(businessName)); ok {
		return report, nil
	}
	return nil, nil
}

// Sweep remove os relatórios expirados antes do corte e as entradas vencidas da memória.
// Devolve quantos relatórios foram removidos.
func (c *ReportCache) Sweep(ctx context.Context, cutoff time.Time) (int64, error) {
	now := c.now()
	for _, key := range c.byKey.Keys() {
		if e, ok := c.byKey.Peek(key); ok && !now.Before(e.deadline) {
			c.byKey.Remove(key)
		}
	}

	var removed int64
	for _, id := range c.byID.Keys() {
		if report, ok := c.byID.Peek(id); ok && report.ExpiresAt.Before(cutoff) {
			c.byID.Remove(id)
			removed++
		}
	}
	for _, name := range c.bySubject.Keys() {
		if report, ok := c.bySubject.Peek(name); ok && report.ExpiresAt.Before(cutoff) {
			c.bySubject.Remove(name)
		}
	}

	if c.repo == nil {
		return removed, nil
	}

	deleted, err := c.repo.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		return removed, err
	}
	return deleted, nil
}

func (c *ReportCache) remember(key string, report *domain.DigitalGradeReport, deadline time.Time) {
	c.byKey.Add(key, entry{report: report, deadline: deadline})
	c.byID.Add(report.ID, report)

	name := subjectKey(report.Subject.BusinessName)
	if current, ok := c.bySubject.Peek(name); ok && current.GeneratedAt.After(report.GeneratedAt) {
		return
	}
	c.bySubject.Add(name, report)
}

func subjectKey(businessName string) string {
	return strings.ToLower(strings.TrimSpace(businessName))
}
