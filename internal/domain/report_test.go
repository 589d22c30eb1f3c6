package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDigitalGradeReport_ToResponse(t *testing.T) {
	generatedAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	report := &DigitalGradeReport{
		ID:           "rep1",
		Subject:      Subject{BusinessName: "Cantina"},
		OverallGrade: 81,
		GradeLetter:  GradeB,
		Recommendations: []Recommendation{{
			RecommendationSeed: RecommendationSeed{Title: "Ative o SSL", Category: CategoryWebsite, RevenueImpact: ImpactMedium, Effort: EffortEasy, TimeToImpact: TimeFast},
			PriorityScore:      0.72,
		}},
		RevenueImpact: RevenueImpactEstimate{Low: 500, High: 1500},
		GeneratedAt:   generatedAt,
		ExpiresAt:     generatedAt.Add(ReportValidity),
	}
	for _, category := range AllCategories {
		report.CategoryScores.Set(CategoryScore{Category: category, Score: 80 + category.Index()})
	}

	response := report.ToResponse(generatedAt.Add(time.Hour))

	assert.Equal(t, "rep1", response.ReportID)
	assert.Equal(t, "Cantina", response.BusinessName)
	assert.Equal(t, map[string]int{
		"website":          80,
		"business_profile": 81,
		"social_media":     82,
		"menu":             83,
		"marketing":        84,
	}, response.CategoryScores)
	assert.NotNil(t, response.CategoryDetails["menu"].Issues, "issues nunca sai nulo")
	assert.Equal(t, RevenueImpactEstimate{Low: 6000, High: 18000}, response.AnnualRevenueImpact)
	assert.Equal(t, "2024-03-15T12:00:00Z", response.GeneratedAt)
	assert.Equal(t, "2024-04-14T12:00:00Z", response.ExpiresAt)
	assert.False(t, response.Stale)
	assert.Len(t, response.Recommendations, 1)
	assert.Equal(t, 0.72, response.Recommendations[0].PriorityScore)

	assert.True(t, report.ToResponse(report.ExpiresAt).Stale, "no instante da expiração o relatório já é obsoleto")
}
