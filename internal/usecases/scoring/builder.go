package scoring

import (
	"fmt"
	"time"

	"github.com/vfg2006/digital-grade-api/internal/domain"
	"github.com/vfg2006/digital-grade-api/pkg/utils"
)

// Builder monta o relatório final. É o único componente que escreve o artefato.
type Builder struct {
	now   func() time.Time
	newID func() (string, error)
}

type BuilderOption func(*Builder)

// WithClock substitui o relógio usado em GeneratedAt
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.now = now
	}
}

// WithIDGenerator substitui o gerador de IDs de relatório
func WithIDGenerator(newID func() (string, error)) BuilderOption {
	return func(b *Builder) {
		b.newID = newID
	}
}

func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		now:   time.Now,
		newID: utils.GenerateReportID,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build agrega, prioriza e estima a receita. Violações de contrato resultam em AggregationError.
func (b *Builder) Build(subject domain.Subject, cacheKey string, scores domain.CategoryScores) (*domain.DigitalGradeReport, error) {
	if violations := ValidateScores(scores); len(violations) > 0 {
		return nil, &domain.AggregationError{Violations: violations}
	}

	overall := OverallGrade(scores)
	recommendations := Prioritize(scores)

	id, err := b.newID()
	if err != nil {
		return nil, fmt.Errorf("generate report id: %w", err)
	}

	generatedAt := b.now().UTC().Truncate(time.Second)
	report := &domain.DigitalGradeReport{
		ID:              id,
		CacheKey:        cacheKey,
		Subject:         subject,
		OverallGrade:    overall,
		GradeLetter:     GradeLetterFor(overall),
		CategoryScores:  scores,
		Recommendations: recommendations,
		RevenueImpact:   EstimateRevenueImpact(overall),
		GeneratedAt:     generatedAt,
		ExpiresAt:       generatedAt.Add(domain.ReportValidity),
	}

	if violations := ValidateReport(report); len(violations) > 0 {
		return nil, &domain.AggregationError{Violations: violations}
	}

	return report, nil
}

// ValidateScores confere que cada slot carrega a própria categoria e uma nota em [0,100]
func ValidateScores(scores domain.CategoryScores) []string {
	var violations []string
	all := scores.All()
	for i, category := range domain.AllCategories {
		score := all[i]
		if score.Category != category {
			violations = append(violations, fmt.Sprintf("slot %s holds category %s", category, score.Category))
		}
		if score.Score < 0 || score.Score > 100 {
			violations = append(violations, fmt.Sprintf("%s score out of range: %d", category, score.Score))
		}
	}
	return violations
}

// ValidateReport confere os invariantes do relatório montado
func ValidateReport(report *domain.DigitalGradeReport) []string {
	violations := ValidateScores(report.CategoryScores)
	if report.OverallGrade < 0 || report.OverallGrade > 100 {
		violations = append(violations, fmt.Sprintf("overall grade out of range: %d", report.OverallGrade))
	}
	if len(report.Recommendations) > domain.MaxRecommendations {
		violations = append(violations, fmt.Sprintf("too many recommendations: %d", len(report.Recommendations)))
	}
	for i := 1; i < len(report.Recommendations); i++ {
		if report.Recommendations[i].PriorityScore > report.Recommendations[i-1].PriorityScore {
			violations = append(violations, "recommendations not sorted by priority")
			break
		}
	}
	if !report.ExpiresAt.Equal(report.GeneratedAt.Add(domain.ReportValidity)) {
		violations = append(violations, "expires_at must be generated_at + 30 days")
	}
	return violations
}
