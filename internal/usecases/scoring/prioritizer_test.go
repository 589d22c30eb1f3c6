package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/digital-grade-api/internal/domain"
)

func seedFor(category domain.Category, title string, impact domain.ImpactBand, effort domain.EffortBand, timeBand domain.TimeBand) domain.RecommendationSeed {
	return domain.RecommendationSeed{
		Title:         title,
		Category:      category,
		RevenueImpact: impact,
		Effort:        effort,
		TimeToImpact:  timeBand,
	}
}

func TestPriorityScore(t *testing.T) {
	tests := []struct {
		name string
		seed domain.RecommendationSeed
		want float64
	}{
		{name: "Melhor combinação", seed: seedFor(domain.CategoryWebsite, "a", domain.ImpactHigh, domain.EffortEasy, domain.TimeFast), want: 1.0},
		{name: "Pior combinação", seed: seedFor(domain.CategoryWebsite, "a", domain.ImpactLow, domain.EffortHard, domain.TimeSlow), want: 0.3},
		{name: "Impacto alto e esforço médio", seed: seedFor(domain.CategoryWebsite, "a", domain.ImpactHigh, domain.EffortMedium, domain.TimeFast), want: 0.88},
		{name: "Faixas médias", seed: seedFor(domain.CategoryWebsite, "a", domain.ImpactMedium, domain.EffortEasy, domain.TimeMedium), want: 0.72},
		{name: "Faixa desconhecida vale o mínimo", seed: seedFor(domain.CategoryWebsite, "a", "", "", ""), want: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityScore(tt.seed))
		})
	}
}

func TestPrioritize(t *testing.T) {
	tests := []struct {
		name     string
		scores   func() domain.CategoryScores
		validate func(t *testing.T, recommendations []domain.Recommendation)
	}{
		{
			name: "Categorias com nota alta não contribuem",
			scores: func() domain.CategoryScores {
				s := scoresOf(80, 95, 79, 100, 100)
				s.Website.Seeds = []domain.RecommendationSeed{seedFor(domain.CategoryWebsite, "site", domain.ImpactHigh, domain.EffortEasy, domain.TimeFast)}
				s.SocialMedia.Seeds = []domain.RecommendationSeed{seedFor(domain.CategorySocialMedia, "social", domain.ImpactLow, domain.EffortHard, domain.TimeSlow)}
				return s
			},
			validate: func(t *testing.T, recommendations []domain.Recommendation) {
				require.Len(t, recommendations, 1)
				assert.Equal(t, "social", recommendations[0].Title)
			},
		},
		{
			name: "Empate resolvido pelo peso e pela ordem das categorias",
			scores: func() domain.CategoryScores {
				s := scoresOf(10, 10, 10, 10, 10)
				s.Marketing.Seeds = []domain.RecommendationSeed{seedFor(domain.CategoryMarketing, "marketing", domain.ImpactMedium, domain.EffortEasy, domain.TimeFast)}
				s.Menu.Seeds = []domain.RecommendationSeed{seedFor(domain.CategoryMenu, "menu", domain.ImpactMedium, domain.EffortEasy, domain.TimeFast)}
				s.SocialMedia.Seeds = []domain.RecommendationSeed{seedFor(domain.CategorySocialMedia, "social", domain.ImpactMedium, domain.EffortEasy, domain.TimeFast)}
				s.BusinessProfile.Seeds = []domain.RecommendationSeed{seedFor(domain.CategoryBusinessProfile, "perfil", domain.ImpactMedium, domain.EffortEasy, domain.TimeFast)}
				s.Website.Seeds = []domain.RecommendationSeed{seedFor(domain.CategoryWebsite, "site", domain.ImpactMedium, domain.EffortEasy, domain.TimeFast)}
				return s
			},
			validate: func(t *testing.T, recommendations []domain.Recommendation) {
				titles := make([]string, 0, len(recommendations))
				for _, r := range recommendations {
					titles = append(titles, r.Title)
				}
				assert.Equal(t, []string{"site", "perfil", "social", "menu", "marketing"}, titles)
			},
		},
		{
			name: "Títulos repetidos são colapsados",
			scores: func() domain.CategoryScores {
				s := scoresOf(10, 10, 100, 100, 100)
				s.Website.Seeds = []domain.RecommendationSeed{
					seedFor(domain.CategoryWebsite, "Add photos", domain.ImpactLow, domain.EffortEasy, domain.TimeFast),
				}
				s.BusinessProfile.Seeds = []domain.RecommendationSeed{
					seedFor(domain.CategoryBusinessProfile, "add photos ", domain.ImpactHigh, domain.EffortEasy, domain.TimeFast),
				}
				return s
			},
			validate: func(t *testing.T, recommendations []domain.Recommendation) {
				require.Len(t, recommendations, 1)
				assert.Equal(t, domain.CategoryBusinessProfile, recommendations[0].Category)
				assert.Equal(t, 1.0, recommendations[0].PriorityScore)
			},
		},
		{
			name: "No máximo cinco recomendações em ordem decrescente",
			scores: func() domain.CategoryScores {
				s := scoresOf(0, 0, 0, 0, 0)
				bands := []domain.ImpactBand{domain.ImpactLow, domain.ImpactMedium, domain.ImpactHigh}
				for i := 0; i < 9; i++ {
					s.Menu.Seeds = append(s.Menu.Seeds, seedFor(domain.CategoryMenu, fmt.Sprintf("menu-%d", i), bands[i%3], domain.EffortMedium, domain.TimeMedium))
				}
				return s
			},
			validate: func(t *testing.T, recommendations []domain.Recommendation) {
				require.Len(t, recommendations, domain.MaxRecommendations)
				for i := 1; i < len(recommendations); i++ {
					assert.GreaterOrEqual(t, recommendations[i-1].PriorityScore, recommendations[i].PriorityScore)
				}
				assert.Equal(t, "menu-2", recommendations[0].Title)
				assert.Equal(t, "menu-5", recommendations[1].Title)
				assert.Equal(t, "menu-8", recommendations[2].Title)
				assert.Equal(t, "menu-1", recommendations[3].Title)
			},
		},
		{
			name: "Sem seeds - lista vazia",
			scores: func() domain.CategoryScores {
				return scoresOf(10, 10, 10, 10, 10)
			},
			validate: func(t *testing.T, recommendations []domain.Recommendation) {
				assert.NotNil(t, recommendations)
				assert.Empty(t, recommendations)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Prioritize(tt.scores()))
		})
	}
}
