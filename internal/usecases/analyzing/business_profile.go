package analyzing

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/digital-grade-api/internal/domain"
)

const (
	profileFieldPoints        = 10
	profileVerifiedPoints     = 20
	profileCategoriesPoints   = 20
	profileFoodBonus          = 5
	profileAccessibilityPoint = 5

	// Os dois pools de avaliações somam no máximo 25
	ratingPoolMax = 15.0
	countPoolMax  = 10.0
	ratingTierMax = 25.0
	countTierMax  = 15.0
)

var foodKeywords = []string{
	"restaurant", "cafe", "coffee", "bakery", "bar", "pizza", "food",
	"grill", "diner", "bistro", "catering", "kitchen", "brewery", "deli",
}

var businessProfileAbsentSeed = domain.RecommendationSeed{
	Title:         "Claim your Google Business Profile",
	Description:   "We could not find a business listing. Claiming it puts the business on Maps and local search.",
	RevenueImpact: domain.ImpactHigh,
	Effort:        domain.EffortEasy,
	TimeToImpact:  domain.TimeFast,
}

type BusinessProfileAnalyzer struct{}

func NewBusinessProfileAnalyzer() *BusinessProfileAnalyzer {
	return &BusinessProfileAnalyzer{}
}

func (a *BusinessProfileAnalyzer) Category() domain.Category {
	return domain.CategoryBusinessProfile
}

func (a *BusinessProfileAnalyzer) Analyze(_ context.Context, observation domain.Observation) domain.CategoryScore {
	signal, ok := businessProfileSignal(observation)
	if !ok {
		return absentScore(mismatchedSignal(observation, domain.CategoryBusinessProfile), domain.CategoryBusinessProfile, businessProfileAbsentSeed)
	}

	b := newScoreBuilder(domain.CategoryBusinessProfile)

	missingBasics := 0
	for _, field := range []struct {
		value string
		code  string
	}{
		{signal.Name, domain.IssueMissingName},
		{signal.Address, domain.IssueMissingAddress},
		{signal.Phone, domain.IssueMissingPhone},
	} {
		if strings.TrimSpace(field.value) != "" {
			b.add(profileFieldPoints)
			continue
		}
		missingBasics++
		b.issue(field.code, domain.SeverityHigh, "")
	}
	if missingBasics > 0 {
		b.seed("Complete name, address and phone on the listing",
			"Incomplete contact details make the listing rank lower and cost calls and visits.",
			domain.ImpactHigh, domain.EffortEasy, domain.TimeFast)
	}

	if signal.Verified {
		b.add(profileVerifiedPoints)
	} else {
		b.issue(domain.IssueProfileUnverified, domain.SeverityHigh, "")
		b.seed("Verify your business profile",
			"Verified listings show up more often in local search and can be edited by the owner.",
			domain.ImpactHigh, domain.EffortEasy, domain.TimeFast)
	}

	rating, count := reviewPools(signal.Rating, signal.ReviewCount)
	b.add(rating + count)
	b.diagnostic("avaliações: nota %.2f, contagem %.2f", rating, count)
	if signal.ReviewCount < 5 {
		b.issue(domain.IssueFewReviews, domain.SeverityMedium, fmt.Sprintf("%d avaliações", signal.ReviewCount))
		b.seed("Ask happy customers for reviews",
			"A steady flow of recent reviews lifts both ranking and conversion. Ask at checkout or with a follow-up message.",
			domain.ImpactMedium, domain.EffortEasy, domain.TimeMedium)
	}
	if signal.ReviewCount > 0 && signal.Rating < 3.0 {
		b.issue(domain.IssueLowRating, domain.SeverityHigh, fmt.Sprintf("%.1f", signal.Rating))
		b.seed("Respond to negative reviews",
			"Answer low-star reviews publicly and fix the recurring complaints they mention.",
			domain.ImpactHigh, domain.EffortMedium, domain.TimeSlow)
	}

	if hasCategories(signal.Categories) {
		b.add(profileCategoriesPoints)
		if isFoodRelated(signal.Categories) {
			b.add(profileFoodBonus)
		}
	} else {
		b.issue(domain.IssueMissingCategories, domain.SeverityMedium, "")
		b.seed("Choose precise business categories",
			"Categories decide which searches the listing appears for.",
			domain.ImpactMedium, domain.EffortEasy, domain.TimeFast)
	}

	missingAccess := make([]string, 0, 3)
	if signal.HasHours {
		b.add(profileAccessibilityPoint)
	} else {
		missingAccess = append(missingAccess, "hours")
	}
	if signal.HasPhotos {
		b.add(profileAccessibilityPoint)
	} else {
		missingAccess = append(missingAccess, "photos")
	}
	if signal.HasWebsite {
		b.add(profileAccessibilityPoint)
	} else {
		missingAccess = append(missingAccess, "website")
	}
	if len(missingAccess) > 0 {
		b.issue(domain.IssueMissingAccessibility, domain.SeverityLow, strings.Join(missingAccess, ","))
		b.seed("Add hours, photos and a website link to the listing",
			"Listings with photos and hours get noticeably more direction requests and clicks.",
			domain.ImpactMedium, domain.EffortEasy, domain.TimeFast)
	}

	if b.total() < ImprovementThreshold {
		b.seed("Keep the business profile active",
			"Post updates and offers on the listing every week so it stays fresh in local results.",
			domain.ImpactMedium, domain.EffortMedium, domain.TimeMedium)
	}

	return b.build()
}

// reviewPools converte nota e volume de avaliações nos dois pools limitados
func reviewPools(rating float64, reviewCount int) (float64, float64) {
	var ratingTier float64
	switch {
	case reviewCount <= 0:
		ratingTier = 0
	case rating >= 4.5:
		ratingTier = 25
	case rating >= 4.0:
		ratingTier = 20
	case rating >= 3.5:
		ratingTier = 15
	case rating >= 3.0:
		ratingTier = 10
	default:
		ratingTier = 5
	}

	var countTier float64
	switch {
	case reviewCount >= 100:
		countTier = 15
	case reviewCount >= 50:
		countTier = 12
	case reviewCount >= 20:
		countTier = 8
	case reviewCount >= 5:
		countTier = 5
	default:
		countTier = 2
	}

	ratingPool := ratingTier * ratingPoolMax / ratingTierMax
	countPool := countTier * countPoolMax / countTierMax
	return capPoints(ratingPool, ratingPoolMax), capPoints(countPool, countPoolMax)
}

func capPoints(value, max float64) float64 {
	if value > max {
		return max
	}
	if value < 0 {
		return 0
	}
	return value
}

func hasCategories(categories []string) bool {
	for _, c := range categories {
		if strings.TrimSpace(c) != "" {
			return true
		}
	}
	return false
}

func isFoodRelated(categories []string) bool {
	for _, c := range categories {
		lower := strings.ToLower(c)
		for _, keyword := range foodKeywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}

func businessProfileSignal(observation domain.Observation) (domain.BusinessProfileSignal, bool) {
	if observation.IsAbsent() {
		return domain.BusinessProfileSignal{}, false
	}
	switch s := observation.Signal.(type) {
	case domain.BusinessProfileSignal:
		return s, true
	case *domain.BusinessProfileSignal:
		if s != nil {
			return *s, true
		}
	}
	return domain.BusinessProfileSignal{}, false
}
