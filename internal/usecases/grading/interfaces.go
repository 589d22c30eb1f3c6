package grading

import (
	"context"
	"time"

	"github.com/vfg2006/digital-grade-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// SignalCollector busca os fatos brutos de uma categoria.
// Falhas devem vir como *domain.CollectionError com o motivo da ausência.
type SignalCollector interface {
	Fetch(ctx context.Context, category domain.Category, identifier string) (domain.CategorySignal, error)
}

// ReportCache guarda relatórios por chave de requisição.
// Get devolve apenas relatórios dentro da validade; nil, nil quando não há.
type ReportCache interface {
	Get(ctx context.Context, key string) (*domain.DigitalGradeReport, error)
	Put(ctx context.Context, key string, report *domain.DigitalGradeReport, ttl time.Duration) error
	GetByID(ctx context.Context, id string) (*domain.DigitalGradeReport, error)
	GetLatestBySubject(ctx context.Context, businessName string) (*domain.DigitalGradeReport, error)
}

// Grader é o caso de uso exposto para a API
type Grader interface {
	Analyze(ctx context.Context, request domain.AnalysisRequest) (*Result, error)
	GetReport(ctx context.Context, id string) (*domain.DigitalGradeReport, error)
	GetLatestReport(ctx context.Context, businessName string) (*domain.DigitalGradeReport, error)
}
