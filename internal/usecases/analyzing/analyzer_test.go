package analyzing

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/digital-grade-api/internal/domain"
)

func TestNewSuite(t *testing.T) {
	suite := NewSuite(nil)

	for _, category := range domain.AllCategories {
		analyzer := suite.For(category)
		require.NotNil(t, analyzer, category.String())
		assert.Equal(t, category, analyzer.Category())
	}
	assert.Nil(t, suite.For(domain.Category(0)))
	assert.Nil(t, suite.For(domain.Category(99)))
}

func adversarialObservations() []domain.Observation {
	observations := []domain.Observation{
		domain.Observed(domain.WebsiteSignal{StatusCode: 200, HasSSL: true, ResponseTime: -time.Hour, Content: &domain.WebsiteContent{
			Title: "x", MetaDescription: "y", HasContactInfo: true, HasMenu: true, HasHours: true, HasOnlineOrdering: true,
		}}),
		domain.Observed(domain.WebsiteSignal{StatusCode: 999}),
		domain.Observed(domain.WebsiteSignal{NoWebsite: true, StatusCode: 200, HasSSL: true}),
		domain.Observed(domain.BusinessProfileSignal{Rating: math.NaN(), ReviewCount: -5}),
		domain.Observed(domain.BusinessProfileSignal{Rating: 1000, ReviewCount: math.MaxInt32, Name: "a", Address: "b", Phone: "c", Verified: true, Categories: []string{"food"}, HasHours: true, HasPhotos: true, HasWebsite: true}),
		domain.Observed(domain.SocialMediaSignal{Platforms: make([]string, 1000)}),
		domain.Observed(domain.MenuSignal{ItemCount: -1, ItemsWithDescription: 100, ItemsWithPhotos: -3, SectionCount: -2}),
		domain.Observed(domain.MenuSignal{ItemCount: 1, ItemsWithDescription: 1000, ItemsWithPhotos: 1000, ItemsWithPrice: 1000, DietaryTaggedItems: 1000, SectionCount: 1000, HasPromotions: true}),
		domain.Observed(domain.MarketingSignal{MonthlyBudget: -100, Campaigns: []domain.Campaign{{Budget: math.Inf(1)}}}),
	}
	for _, category := range domain.AllCategories {
		for _, reason := range []domain.AbsentReason{domain.AbsentUnreachable, domain.AbsentRateLimited, domain.AbsentNotFound, domain.AbsentParseError} {
			observations = append(observations, domain.Absent(category, reason, ""))
		}
	}
	return observations
}

func TestSuite_ScoresStayInRange(t *testing.T) {
	suite := NewSuite(nil)

	for _, observation := range adversarialObservations() {
		score := suite.For(observation.Category).Analyze(context.Background(), observation)
		assert.GreaterOrEqual(t, score.Score, 0)
		assert.LessOrEqual(t, score.Score, 100)
		assert.Equal(t, observation.Category, score.Category)
		for _, seed := range score.Seeds {
			assert.Equal(t, observation.Category, seed.Category)
		}
	}
}

func TestSuite_Deterministic(t *testing.T) {
	suite := NewSuite(nil)

	for _, observation := range adversarialObservations() {
		analyzer := suite.For(observation.Category)
		first := analyzer.Analyze(context.Background(), observation)
		second := analyzer.Analyze(context.Background(), observation)
		assert.Equal(t, first, second)
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(math.NaN()))
	assert.Equal(t, 0, clampScore(-3))
	assert.Equal(t, 100, clampScore(140))
	assert.Equal(t, 100, clampScore(math.Inf(1)))
	assert.Equal(t, 63, clampScore(62.6))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, ratio(1, 0))
	assert.Equal(t, 0.0, ratio(-1, 10))
	assert.Equal(t, 100.0, ratio(12, 10))
	assert.InDelta(t, 25.0, ratio(1, 4), 0.0001)
}
