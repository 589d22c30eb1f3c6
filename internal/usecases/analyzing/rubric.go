package analyzing

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/vfg2006/digital-grade-api/internal/domain"
)

// weakCriterionLimit sub-notas abaixo deste valor geram problema e seed
const weakCriterionLimit = 50

// rubricItem é um critério da rubrica com a nota por regra e a seed de correção
type rubricItem struct {
	criterion domain.RubricCriterion
	fallback  float64
	seed      domain.RecommendationSeed
}

// rubricScorer avalia uma rubrica com o Assessor e recorre às regras item a item
type rubricScorer struct {
	category domain.Category
	assessor Assessor
}

func (r rubricScorer) score(ctx context.Context, b *scoreBuilder, request domain.RubricRequest, items []rubricItem) {
	request.Category = r.category
	request.Criteria = make([]domain.RubricCriterion, 0, len(items))
	for _, item := range items {
		request.Criteria = append(request.Criteria, item.criterion)
	}

	var subScores map[string]float64
	assessment, err := r.assess(ctx, request)
	if err != nil {
		b.issue(domain.IssueAssessmentUnavailable, domain.SeverityLow, "")
		b.diagnostic("avaliação externa indisponível, usando regras: %v", err)
	} else {
		subScores = assessment.SubScores
		r.notes(b, assessment)
	}

	missing := make([]string, 0)
	for _, item := range items {
		value, found := subScores[item.criterion.Key]
		if !found {
			value = item.fallback
			if err == nil {
				missing = append(missing, item.criterion.Key)
			}
		}
		value = clampSubScore(value)
		b.add(value / 100 * float64(item.criterion.Points))

		if value < weakCriterionLimit {
			b.issue(domain.IssueWeakCriterion, domain.SeverityMedium, item.criterion.Key)
			b.seed(item.seed.Title, item.seed.Description, item.seed.RevenueImpact, item.seed.Effort, item.seed.TimeToImpact)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		b.issue(domain.IssueAssessmentUnavailable, domain.SeverityLow, strings.Join(missing, ","))
		b.diagnostic("sub-notas ausentes na avaliação externa: %s", strings.Join(missing, ","))
	}
}

// assess chama o Assessor; sem Assessor ou com erro devolve ExternalAssessmentError
func (r rubricScorer) assess(ctx context.Context, request domain.RubricRequest) (*domain.RubricAssessment, error) {
	if r.assessor == nil {
		return nil, &domain.ExternalAssessmentError{Category: r.category, Err: errors.New("assessor not configured")}
	}

	assessment, err := r.assessor.Assess(ctx, request)
	if err != nil {
		var assessmentErr *domain.ExternalAssessmentError
		if errors.As(err, &assessmentErr) {
			return nil, err
		}
		return nil, &domain.ExternalAssessmentError{Category: r.category, Err: err}
	}
	if assessment == nil {
		return nil, &domain.ExternalAssessmentError{Category: r.category, Err: errors.New("empty assessment")}
	}

	return assessment, nil
}

// notes copia as observações da IA para o diagnóstico
func (r rubricScorer) notes(b *scoreBuilder, assessment *domain.RubricAssessment) {
	if assessment == nil {
		return
	}
	for _, note := range assessment.Notes {
		if note = strings.TrimSpace(note); note != "" {
			b.diagnostic("ia: %s", note)
		}
	}
}

// tierScore devolve o valor do primeiro limite atingido, limites em ordem decrescente
func tierScore(value int, limits []int, scores []float64) float64 {
	for i, limit := range limits {
		if value >= limit {
			return scores[i]
		}
	}
	return 0
}
