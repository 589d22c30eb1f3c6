package analyzing

import (
	"context"

	"github.com/vfg2006/digital-grade-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Assessor define o colaborador de IA que avalia rubricas de Menu e Marketing
type Assessor interface {
	// Assess devolve sub-notas de 0 a 100 para cada critério da rubrica
	Assess(ctx context.Context, request domain.RubricRequest) (*domain.RubricAssessment, error)
}

// Analyzer converte a observação de uma categoria em uma avaliação de 0 a 100
type Analyzer interface {
	Category() domain.Category
	Analyze(ctx context.Context, observation domain.Observation) domain.CategoryScore
}
