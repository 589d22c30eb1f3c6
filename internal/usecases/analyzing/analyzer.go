// Package analyzing contém os analisadores de cada categoria da presença digital
package analyzing

import (
	"fmt"
	"math"

	"github.com/vfg2006/digital-grade-api/internal/domain"
)

const (
	// OptimizationThreshold abaixo desta nota o analisador emite seeds de otimização
	OptimizationThreshold = 80
	// ImprovementThreshold abaixo desta nota o analisador emite seeds de melhoria
	ImprovementThreshold = 60
	// HeuristicScore é a nota determinística usada quando o sinal está ausente
	HeuristicScore = 50
)

// Suite agrupa um analisador por categoria, na ordem de domain.AllCategories
type Suite struct {
	analyzers [domain.CategoryCount]Analyzer
}

// NewSuite cria os cinco analisadores. assessor pode ser nil: Menu e Marketing usam as regras.
func NewSuite(assessor Assessor) *Suite {
	return &Suite{
		analyzers: [domain.CategoryCount]Analyzer{
			NewWebsiteAnalyzer(),
			NewBusinessProfileAnalyzer(),
			NewSocialMediaAnalyzer(),
			NewMenuAnalyzer(assessor),
			NewMarketingAnalyzer(assessor),
		},
	}
}

// For retorna o analisador da categoria
func (s *Suite) For(category domain.Category) Analyzer {
	if !category.Valid() {
		return nil
	}
	return s.analyzers[category.Index()]
}

// scoreBuilder acumula pontos, problemas e seeds de uma categoria
type scoreBuilder struct {
	category    domain.Category
	points      float64
	issues      []domain.Issue
	seeds       []domain.RecommendationSeed
	diagnostics []string
	estimated   bool
}

func newScoreBuilder(category domain.Category) *scoreBuilder {
	return &scoreBuilder{category: category}
}

func (b *scoreBuilder) add(points float64) {
	b.points += points
}

func (b *scoreBuilder) issue(code string, severity domain.Severity, detail string) {
	b.issues = append(b.issues, domain.Issue{Code: code, Severity: severity, Detail: detail})
}

func (b *scoreBuilder) seed(title, description string, impact domain.ImpactBand, effort domain.EffortBand, timeToImpact domain.TimeBand) {
	b.seeds = append(b.seeds, domain.RecommendationSeed{
		Title:         title,
		Description:   description,
		Category:      b.category,
		RevenueImpact: impact,
		Effort:        effort,
		TimeToImpact:  timeToImpact,
	})
}

func (b *scoreBuilder) diagnostic(format string, args ...any) {
	b.diagnostics = append(b.diagnostics, fmt.Sprintf(format, args...))
}

// total é a nota arredondada e limitada a [0,100]
func (b *scoreBuilder) total() int {
	return clampScore(b.points)
}

func (b *scoreBuilder) build() domain.CategoryScore {
	issues := b.issues
	if issues == nil {
		issues = []domain.Issue{}
	}
	seeds := b.seeds
	if seeds == nil {
		seeds = []domain.RecommendationSeed{}
	}
	return domain.CategoryScore{
		Category:    b.category,
		Score:       b.total(),
		Issues:      issues,
		Seeds:       seeds,
		Estimated:   b.estimated,
		Diagnostics: b.diagnostics,
	}
}

// absentScore é o fallback heurístico para qualquer motivo de ausência
func absentScore(observation domain.Observation, category domain.Category, fallback domain.RecommendationSeed) domain.CategoryScore {
	b := newScoreBuilder(category)
	b.estimated = true
	b.add(HeuristicScore)

	reason := domain.AbsentNotFound
	detail := ""
	if observation.Absence != nil {
		reason = observation.Absence.Reason
		detail = observation.Absence.Detail
	}
	b.issue(domain.IssueInsufficientData, domain.SeverityMedium, string(reason))
	if detail != "" {
		b.diagnostic("coleta ausente (%s): %s", reason, detail)
	} else {
		b.diagnostic("coleta ausente (%s)", reason)
	}

	b.seed(fallback.Title, fallback.Description, fallback.RevenueImpact, fallback.Effort, fallback.TimeToImpact)
	return b.build()
}

// mismatchedSignal trata um sinal de tipo inesperado como erro de parse
func mismatchedSignal(observation domain.Observation, category domain.Category) domain.Observation {
	if observation.Absence != nil {
		return observation
	}
	detail := "sinal ausente"
	if observation.Signal != nil {
		detail = fmt.Sprintf("sinal de tipo inesperado: %T", observation.Signal)
	}
	return domain.Absent(category, domain.AbsentParseError, detail)
}

func clampScore(points float64) int {
	if math.IsNaN(points) || points <= 0 {
		return 0
	}
	if points >= 100 {
		return 100
	}
	return int(math.Round(points))
}

// clampSubScore limita uma sub-nota externa a [0,100]
func clampSubScore(value float64) float64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// ratio devolve part/whole em pontos de 0 a 100
func ratio(part, whole int) float64 {
	if whole <= 0 || part <= 0 {
		return 0
	}
	if part >= whole {
		return 100
	}
	return float64(part) / float64(whole) * 100
}
