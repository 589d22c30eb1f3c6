package domain

import "time"

// ReportValidity é a janela de validade de um relatório gerado
const ReportValidity = 30 * 24 * time.Hour

// MaxRecommendations é o limite de recomendações por relatório
const MaxRecommendations = 5

// GradeLetter é a nota em letra derivada da nota geral
type GradeLetter string

const (
	GradeA GradeLetter = "A"
	GradeB GradeLetter = "B"
	GradeC GradeLetter = "C"
	GradeD GradeLetter = "D"
	GradeF GradeLetter = "F"
)

// RevenueImpactEstimate é a faixa mensal estimada em USD
type RevenueImpactEstimate struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Annual deriva a faixa anual a partir da mensal
func (e RevenueImpactEstimate) Annual() RevenueImpactEstimate {
	return RevenueImpactEstimate{Low: e.Low * 12, High: e.High * 12}
}

// Subject identifica o negócio avaliado
type Subject struct {
	BusinessName string          `json:"business_name"`
	Request      AnalysisRequest `json:"request"`
}

// DigitalGradeReport é o artefato imutável de uma análise.
// Uma nova análise gera um novo relatório, nunca altera um existente.
type DigitalGradeReport struct {
	ID              string                `json:"report_id"`
	CacheKey        string                `json:"cache_key"`
	Subject         Subject               `json:"subject"`
	OverallGrade    int                   `json:"overall_grade"`
	GradeLetter     GradeLetter           `json:"grade_letter"`
	CategoryScores  CategoryScores        `json:"category_scores"`
	Recommendations []Recommendation      `json:"recommendations"`
	RevenueImpact   RevenueImpactEstimate `json:"revenue_impact_estimate"`
	GeneratedAt     time.Time             `json:"generated_at"`
	ExpiresAt       time.Time             `json:"expires_at"`
}

// IsStale informa se o relatório passou da janela de validade
func (r *DigitalGradeReport) IsStale(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// CategoryDetail expõe problemas e a marcação de estimativa de cada categoria
type CategoryDetail struct {
	Score       int      `json:"score"`
	Estimated   bool     `json:"estimated"`
	Issues      []Issue  `json:"issues"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

type RecommendationResponse struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      Category   `json:"category"`
	RevenueImpact ImpactBand `json:"revenue_impact_band"`
	Effort        EffortBand `json:"effort_band"`
	TimeToImpact  TimeBand   `json:"time_to_impact_band"`
	PriorityScore float64    `json:"priority_score"`
}

// DigitalGradeReportResponse é o contrato de saída da API
type DigitalGradeReportResponse struct {
	ReportID              string                    `json:"report_id"`
	BusinessName          string                    `json:"business_name"`
	OverallGrade          int                       `json:"overall_grade"`
	GradeLetter           GradeLetter               `json:"grade_letter"`
	CategoryScores        map[string]int            `json:"category_scores"`
	CategoryDetails       map[string]CategoryDetail `json:"category_details"`
	Recommendations       []RecommendationResponse  `json:"recommendations"`
	RevenueImpactEstimate RevenueImpactEstimate     `json:"revenue_impact_estimate"`
	AnnualRevenueImpact   RevenueImpactEstimate     `json:"annual_revenue_impact_estimate"`
	GeneratedAt           string                    `json:"generated_at"`
	ExpiresAt             string                    `json:"expires_at"`
	Stale                 bool                      `json:"stale"`
}

// ToResponse projeta o relatório no contrato de saída
func (r *DigitalGradeReport) ToResponse(now time.Time) *DigitalGradeReportResponse {
	scores := make(map[string]int, CategoryCount)
	details := make(map[string]CategoryDetail, CategoryCount)
	for _, score := range r.CategoryScores.All() {
		scores[score.Category.String()] = score.Score

		issues := score.Issues
		if issues == nil {
			issues = []Issue{}
		}
		details[score.Category.String()] = CategoryDetail{
			Score:       score.Score,
			Estimated:   score.Estimated,
			Issues:      issues,
			Diagnostics: score.Diagnostics,
		}
	}

	recommendations := make([]RecommendationResponse, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		recommendations = append(recommendations, RecommendationResponse{
			Title:         rec.Title,
			Description:   rec.Description,
			Category:      rec.Category,
			RevenueImpact: rec.RevenueImpact,
			Effort:        rec.Effort,
			TimeToImpact:  rec.TimeToImpact,
			PriorityScore: rec.PriorityScore,
		})
	}

	return &DigitalGradeReportResponse{
		ReportID:              r.ID,
		BusinessName:          r.Subject.BusinessName,
		OverallGrade:          r.OverallGrade,
		GradeLetter:           r.GradeLetter,
		CategoryScores:        scores,
		CategoryDetails:       details,
		Recommendations:       recommendations,
		RevenueImpactEstimate: r.RevenueImpact,
		AnnualRevenueImpact:   r.RevenueImpact.Annual(),
		GeneratedAt:           r.GeneratedAt.UTC().Format(time.RFC3339),
		ExpiresAt:             r.ExpiresAt.UTC().Format(time.RFC3339),
		Stale:                 r.IsStale(now),
	}
}
