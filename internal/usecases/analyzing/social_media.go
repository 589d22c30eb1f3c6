package analyzing

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/digital-grade-api/internal/domain"
)

const (
	socialAdditionalPoints = 4
	socialAdditionalMax    = 5
	socialIntegrationScore = 20
)

type essentialPlatform struct {
	key    string
	label  string
	points float64
}

var essentialPlatforms = []essentialPlatform{
	{key: "facebook", label: "Facebook", points: 13},
	{key: "instagram", label: "Instagram", points: 13},
	{key: "yelp", label: "Yelp", points: 14},
}

var socialMediaAbsentSeed = domain.RecommendationSeed{
	Title:         "Audit your social media profiles",
	Description:   "We could not read the social profiles. Check that the pages are public and linked from the website.",
	RevenueImpact: domain.ImpactLow,
	Effort:        domain.EffortEasy,
	TimeToImpact:  domain.TimeMedium,
}

type SocialMediaAnalyzer struct{}

func NewSocialMediaAnalyzer() *SocialMediaAnalyzer {
	return &SocialMediaAnalyzer{}
}

func (a *SocialMediaAnalyzer) Category() domain.Category {
	return domain.CategorySocialMedia
}

func (a *SocialMediaAnalyzer) Analyze(_ context.Context, observation domain.Observation) domain.CategoryScore {
	signal, ok := socialMediaSignal(observation)
	if !ok {
		return absentScore(mismatchedSignal(observation, domain.CategorySocialMedia), domain.CategorySocialMedia, socialMediaAbsentSeed)
	}

	b := newScoreBuilder(domain.CategorySocialMedia)
	platforms := distinctPlatforms(signal.Platforms)

	for _, essential := range essentialPlatforms {
		if _, found := platforms[essential.key]; found {
			b.add(essential.points)
			continue
		}
		b.issue(domain.IssueMissingEssentialPlatform, domain.SeverityMedium, essential.key)
		b.seed(fmt.Sprintf("Create your %s profile", essential.label),
			fmt.Sprintf("Most local customers check %s before visiting. Set up a complete profile with photos and hours.", essential.label),
			domain.ImpactMedium, domain.EffortEasy, domain.TimeMedium)
	}

	additional := 0
	for key := range platforms {
		if !isEssentialPlatform(key) {
			additional++
		}
	}
	if additional > socialAdditionalMax {
		additional = socialAdditionalMax
	}
	b.add(float64(additional * socialAdditionalPoints))

	switch count := len(platforms); {
	case count >= 3:
		b.add(20)
	case count == 2:
		b.add(10)
	default:
		b.issue(domain.IssueExpandSocialPresence, domain.SeverityMedium, fmt.Sprintf("%d plataformas", count))
	}

	if signal.WebsiteIntegration {
		b.add(socialIntegrationScore)
	} else {
		b.issue(domain.IssueMissingSocialIntegration, domain.SeverityLow, "")
		b.seed("Link social profiles from the website",
			"Add social icons and embedded posts so visitors can follow the business in one tap.",
			domain.ImpactLow, domain.EffortEasy, domain.TimeFast)
	}

	if b.total() < OptimizationThreshold {
		b.seed("Post on a regular schedule",
			"Two or three posts a week with food photos and offers keep followers coming back.",
			domain.ImpactMedium, domain.EffortMedium, domain.TimeMedium)
	}

	return b.build()
}

// distinctPlatforms normaliza os nomes para minúsculas e remove repetições
func distinctPlatforms(platforms []string) map[string]struct{} {
	out := make(map[string]struct{}, len(platforms))
	for _, p := range platforms {
		key := strings.ToLower(strings.TrimSpace(p))
		if key == "" {
			continue
		}
		out[key] = struct{}{}
	}
	return out
}

func isEssentialPlatform(key string) bool {
	for _, essential := range essentialPlatforms {
		if essential.key == key {
			return true
		}
	}
	return false
}

func socialMediaSignal(observation domain.Observation) (domain.SocialMediaSignal, bool) {
	if observation.IsAbsent() {
		return domain.SocialMediaSignal{}, false
	}
	switch s := observation.Signal.(type) {
	case domain.SocialMediaSignal:
		return s, true
	case *domain.SocialMediaSignal:
		if s != nil {
			return *s, true
		}
	}
	return domain.SocialMediaSignal{}, false
}
