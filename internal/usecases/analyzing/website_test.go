package analyzing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/digital-grade-api/internal/domain"
)

func seedTitles(seeds []domain.RecommendationSeed) []string {
	titles := make([]string, 0, len(seeds))
	for _, s := range seeds {
		titles = append(titles, s.Title)
	}
	return titles
}

func TestWebsiteAnalyzer_Analyze(t *testing.T) {
	analyzer := NewWebsiteAnalyzer()

	tests := []struct {
		name        string
		observation domain.Observation
		validate    func(t *testing.T, score domain.CategoryScore)
	}{
		{
			name:        "Site fora do ar - nota zero e problema bloqueante",
			observation: domain.Observed(domain.WebsiteSignal{StatusCode: 503, HasSSL: true, ResponseTime: time.Second}),
			validate: func(t *testing.T, score domain.CategoryScore) {
				assert.Equal(t, 0, score.Score)
				assert.Equal(t, domain.CategoryWebsite, score.Category)
				assert.Len(t, score.Issues, 1)
				assert.Equal(t, domain.IssueWebsiteUnreachable, score.Issues[0].Code)
				assert.Equal(t, domain.SeverityBlocking, score.Issues[0].Severity)
				assert.Equal(t, "status 503", score.Issues[0].Detail)
				assert.Equal(t, "Restore website availability", score.Seeds[0].Title)
				assert.Equal(t, domain.ImpactHigh, score.Seeds[0].RevenueImpact)
				assert.False(t, score.Estimated)
			},
		},
		{
			name:        "Negócio sem site - problema próprio e seed de criação",
			observation: domain.Observed(domain.WebsiteSignal{NoWebsite: true}),
			validate: func(t *testing.T, score domain.CategoryScore) {
				assert.Equal(t, 0, score.Score)
				assert.False(t, score.Estimated)
				assert.True(t, score.HasIssue(domain.IssueNoWebsite))
				assert.False(t, score.HasIssue(domain.IssueWebsiteUnreachable))
				assert.Equal(t, "Create a website", score.Seeds[0].Title)
				assert.NotContains(t, seedTitles(score.Seeds), "Restore website availability")
			},
		},
		{
			name:        "Site sem resposta - detalhe sem status",
			observation: domain.Observed(domain.WebsiteSignal{}),
			validate: func(t *testing.T, score domain.CategoryScore) {
				assert.Equal(t, 0, score.Score)
				assert.Equal(t, "sem resposta", score.Issues[0].Detail)
			},
		},
		{
			name: "Site completo - nota limitada a 100 com seeds padrão",
			observation: domain.Observed(domain.WebsiteSignal{
				StatusCode:   200,
				HasSSL:       true,
				ResponseTime: 800 * time.Millisecond,
				Content: &domain.WebsiteContent{
					Title:             "Cantina da Nonna | Italian food in Porto",
					MetaDescription:   "Family Italian restaurant in Porto with fresh pasta made daily, wood-fired pizza, a cozy terrace and takeaway or delivery every day.",
					HasContactInfo:    true,
					HasMenu:           true,
					HasHours:          true,
					HasOnlineOrdering: true,
				},
			}),
			validate: func(t *testing.T, score domain.CategoryScore) {
				assert.Equal(t, 100, score.Score)
				assert.Empty(t, score.Issues)
				assert.NotNil(t, score.Issues)
				assert.ElementsMatch(t, []string{"Add clear calls to action", "Optimize the site for mobile visitors"}, seedTitles(score.Seeds))
			},
		},
		{
			name:        "Sem SSL e resposta lenta - seeds de otimização",
			observation: domain.Observed(domain.WebsiteSignal{StatusCode: 200, ResponseTime: 3 * time.Second}),
			validate: func(t *testing.T, score domain.CategoryScore) {
				// 40 + 0 + 15 + 10
				assert.Equal(t, 65, score.Score)
				assert.True(t, score.HasIssue(domain.IssueMissingSSL))
				assert.True(t, score.HasIssue(domain.IssueSlowResponse))
				titles := seedTitles(score.Seeds)
				assert.Contains(t, titles, "Install an SSL certificate")
				assert.Contains(t, titles, "Add clear calls to action")
				assert.NotContains(t, titles, "Rebuild the website's key pages")
			},
		},
		{
			name:        "Resposta em exatamente 2s - faixa rápida",
			observation: domain.Observed(domain.WebsiteSignal{StatusCode: 200, HasSSL: true, ResponseTime: 2 * time.Second}),
			validate: func(t *testing.T, score domain.CategoryScore) {
				// 40 + 20 + 20 + 10
				assert.Equal(t, 90, score.Score)
				assert.False(t, score.HasIssue(domain.IssueSlowResponse))
				assert.False(t, score.HasIssue(domain.IssueVerySlowResponse))
			},
		},
		{
			name:        "Resposta em exatamente 4s - faixa lenta",
			observation: domain.Observed(domain.WebsiteSignal{StatusCode: 200, HasSSL: true, ResponseTime: 4 * time.Second}),
			validate: func(t *testing.T, score domain.CategoryScore) {
				// 40 + 20 + 15 + 10
				assert.Equal(t, 85, score.Score)
				assert.True(t, score.HasIssue(domain.IssueSlowResponse))
				assert.False(t, score.HasIssue(domain.IssueVerySlowResponse))
				assert.Equal(t, "4.0s", score.Issues[0].Detail)
			},
		},
		{
			name:        "Resposta muito lenta - seed de melhoria",
			observation: domain.Observed(domain.WebsiteSignal{StatusCode: 200, ResponseTime: 6 * time.Second}),
			validate: func(t *testing.T, score domain.CategoryScore) {
				// 40 + 0 + 5 + 10
				assert.Equal(t, 55, score.Score)
				assert.True(t, score.HasIssue(domain.IssueVerySlowResponse))
				assert.Contains(t, seedTitles(score.Seeds), "Rebuild the website's key pages")
			},
		},
		{
			name: "Conteúdo sem título e sem descrição",
			observation: domain.Observed(&domain.WebsiteSignal{
				StatusCode:   200,
				HasSSL:       true,
				ResponseTime: time.Second,
				Content:      &domain.WebsiteContent{HasMenu: true},
			}),
			validate: func(t *testing.T, score domain.CategoryScore) {
				// 40 + 20 + 20 + 10 + 5
				assert.Equal(t, 95, score.Score)
				assert.True(t, score.HasIssue(domain.IssueMissingTitle))
				assert.True(t, score.HasIssue(domain.IssueMissingMetaDescription))
				assert.True(t, score.HasIssue(domain.IssueMissingContactInfo))
				assert.True(t, score.HasIssue(domain.IssueMissingOnlineOrdering))
			},
		},
		{
			name:        "Coleta ausente - heurística determinística",
			observation: domain.Absent(domain.CategoryWebsite, domain.AbsentUnreachable, "timeout"),
			validate: func(t *testing.T, score domain.CategoryScore) {
				assert.Equal(t, HeuristicScore, score.Score)
				assert.True(t, score.Estimated)
				assert.True(t, score.HasIssue(domain.IssueInsufficientData))
				assert.Equal(t, "unreachable", score.Issues[0].Detail)
				assert.Len(t, score.Seeds, 1)
				assert.Equal(t, "Confirm your website is online", score.Seeds[0].Title)
				assert.Equal(t, domain.CategoryWebsite, score.Seeds[0].Category)
				assert.Equal(t, []string{"coleta ausente (unreachable): timeout"}, score.Diagnostics)
			},
		},
		{
			name:        "Sinal de outra categoria - tratado como erro de parse",
			observation: domain.Observation{Category: domain.CategoryWebsite, Signal: domain.MenuSignal{}},
			validate: func(t *testing.T, score domain.CategoryScore) {
				assert.Equal(t, HeuristicScore, score.Score)
				assert.True(t, score.Estimated)
				assert.Equal(t, string(domain.AbsentParseError), score.Issues[0].Detail)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := analyzer.Analyze(context.Background(), tt.observation)
			tt.validate(t, score)
		})
	}
}
