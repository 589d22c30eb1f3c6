package scoring

import (
	"sort"
	"strings"

	"github.com/vfg2006/digital-grade-api/internal/domain"
	"github.com/vfg2006/digital-grade-api/pkg/utils"
)

// PrioritizationThreshold só categorias abaixo desta nota contribuem com recomendações
const PrioritizationThreshold = 80

const (
	impactWeight = 0.4
	easeWeight   = 0.3
	timeWeight   = 0.3
)

// Ponte das faixas qualitativas para valores numéricos
const (
	bandTop    = 1.0
	bandMiddle = 0.6
	bandBottom = 0.3
)

func impactValue(band domain.ImpactBand) float64 {
	switch band {
	case domain.ImpactHigh:
		return bandTop
	case domain.ImpactMedium:
		return bandMiddle
	}
	return bandBottom
}

func easeValue(band domain.EffortBand) float64 {
	switch band {
	case domain.EffortEasy:
		return bandTop
	case domain.EffortMedium:
		return bandMiddle
	}
	return bandBottom
}

func timeValue(band domain.TimeBand) float64 {
	switch band {
	case domain.TimeFast:
		return bandTop
	case domain.TimeMedium:
		return bandMiddle
	}
	return bandBottom
}

// PriorityScore combina impacto, facilidade e tempo, arredondado em duas casas
func PriorityScore(seed domain.RecommendationSeed) float64 {
	return utils.RoundWithTwoDecimalPlace(
		impactValue(seed.RevenueImpact)*impactWeight +
			easeValue(seed.Effort)*easeWeight +
			timeValue(seed.TimeToImpact)*timeWeight,
	)
}

type candidate struct {
	recommendation domain.Recommendation
	weight         int
	categoryIndex  int
	emission       int
}

// Prioritize ordena as seeds das categorias abaixo do limite e devolve no máximo cinco.
// Empates: peso da categoria, depois ordem fixa das categorias, depois ordem de emissão.
func Prioritize(scores domain.CategoryScores) []domain.Recommendation {
	candidates := make([]candidate, 0)
	for _, score := range scores.All() {
		if score.Score >= PrioritizationThreshold {
			continue
		}
		for i, seed := range score.Seeds {
			if seed.Category == 0 {
				seed.Category = score.Category
			}
			candidates = append(candidates, candidate{
				recommendation: domain.Recommendation{RecommendationSeed: seed, PriorityScore: PriorityScore(seed)},
				weight:         WeightBasisPoints(score.Category),
				categoryIndex:  score.Category.Index(),
				emission:       i,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.recommendation.PriorityScore != b.recommendation.PriorityScore {
			return a.recommendation.PriorityScore > b.recommendation.PriorityScore
		}
		if a.weight != b.weight {
			return a.weight > b.weight
		}
		if a.categoryIndex != b.categoryIndex {
			return a.categoryIndex < b.categoryIndex
		}
		return a.emission < b.emission
	})

	seen := make(map[string]struct{}, len(candidates))
	recommendations := make([]domain.Recommendation, 0, domain.MaxRecommendations)
	for _, c := range candidates {
		key := strings.ToLower(strings.TrimSpace(c.recommendation.Title))
		if _, duplicated := seen[key]; duplicated {
			continue
		}
		seen[key] = struct{}{}

		recommendations = append(recommendations, c.recommendation)
		if len(recommendations) == domain.MaxRecommendations {
			break
		}
	}

	return recommendations
}
