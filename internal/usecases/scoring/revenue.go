package scoring

import "github.com/vfg2006/digital-grade-api/internal/domain"

// Valores mensais em USD por ponto de melhoria possível
const (
	LowImpactPerPoint  = 25
	HighImpactPerPoint = 75
)

// EstimateRevenueImpact calcula a faixa mensal de receita recuperável a partir da nota geral
func EstimateRevenueImpact(overall int) domain.RevenueImpactEstimate {
	if overall < 0 {
		overall = 0
	}
	if overall > 100 {
		overall = 100
	}

	potential := float64(100 - overall)
	return domain.RevenueImpactEstimate{
		Low:  potential * LowImpactPerPoint,
		High: potential * HighImpactPerPoint,
	}
}
