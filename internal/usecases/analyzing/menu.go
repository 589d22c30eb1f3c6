package analyzing

import (
	"context"

	"github.com/vfg2006/digital-grade-api/internal/domain"
)

// maxRubricContent limita o texto enviado ao avaliador
const maxRubricContent = 4000

var menuAbsentSeed = domain.RecommendationSeed{
	Title:         "Publish a digital menu",
	Description:   "We could not find a menu online. A readable menu on the website and delivery apps helps customers decide.",
	RevenueImpact: domain.ImpactLow,
	Effort:        domain.EffortEasy,
	TimeToImpact:  domain.TimeMedium,
}

type MenuAnalyzer struct {
	rubric rubricScorer
}

func NewMenuAnalyzer(assessor Assessor) *MenuAnalyzer {
	return &MenuAnalyzer{rubric: rubricScorer{category: domain.CategoryMenu, assessor: assessor}}
}

func (a *MenuAnalyzer) Category() domain.Category {
	return domain.CategoryMenu
}

func (a *MenuAnalyzer) Analyze(ctx context.Context, observation domain.Observation) domain.CategoryScore {
	signal, ok := menuSignal(observation)
	if !ok {
		return absentScore(mismatchedSignal(observation, domain.CategoryMenu), domain.CategoryMenu, menuAbsentSeed)
	}

	b := newScoreBuilder(domain.CategoryMenu)
	request := domain.RubricRequest{
		BusinessName: observation.Subject,
		Facts: map[string]any{
			"item_count":             signal.ItemCount,
			"section_count":          signal.SectionCount,
			"items_with_description": signal.ItemsWithDescription,
			"items_with_photos":      signal.ItemsWithPhotos,
			"items_with_price":       signal.ItemsWithPrice,
			"dietary_tagged_items":   signal.DietaryTaggedItems,
			"has_promotions":         signal.HasPromotions,
		},
		Content: truncateRunes(signal.MenuText, maxRubricContent),
	}
	a.rubric.score(ctx, b, request, menuRubric(signal))

	if b.total() < OptimizationThreshold {
		b.seed("Highlight best sellers on the menu",
			"Mark two or three signature items with a photo and a short story to lift the average ticket.",
			domain.ImpactMedium, domain.EffortEasy, domain.TimeFast)
	}
	if b.total() < ImprovementThreshold {
		b.seed("Redesign the menu layout",
			"Group items into clear sections and keep each section short so customers find what they want.",
			domain.ImpactMedium, domain.EffortMedium, domain.TimeMedium)
	}

	return b.build()
}

func menuRubric(signal domain.MenuSignal) []rubricItem {
	promotion := 30.0
	if signal.HasPromotions {
		promotion = 100
	}

	return []rubricItem{
		{
			criterion: domain.RubricCriterion{Key: "description_quality", Description: "Items have appetizing, informative descriptions", Points: 20},
			fallback:  ratio(signal.ItemsWithDescription, signal.ItemCount),
			seed: domain.RecommendationSeed{
				Title:         "Write descriptions for menu items",
				Description:   "Short descriptions with ingredients and preparation help customers choose and order more.",
				RevenueImpact: domain.ImpactMedium, Effort: domain.EffortEasy, TimeToImpact: domain.TimeFast,
			},
		},
		{
			criterion: domain.RubricCriterion{Key: "photo_availability", Description: "Items are shown with photos", Points: 15},
			fallback:  ratio(signal.ItemsWithPhotos, signal.ItemCount),
			seed: domain.RecommendationSeed{
				Title:         "Add photos to menu items",
				Description:   "Dishes with photos sell noticeably better on delivery apps.",
				RevenueImpact: domain.ImpactMedium, Effort: domain.EffortMedium, TimeToImpact: domain.TimeFast,
			},
		},
		{
			criterion: domain.RubricCriterion{Key: "pricing_strategy", Description: "Prices are present and consistently presented", Points: 20},
			fallback:  ratio(signal.ItemsWithPrice, signal.ItemCount),
			seed: domain.RecommendationSeed{
				Title:         "Show prices on every item",
				Description:   "Missing prices make customers hesitate. Publish them and review anchoring for premium items.",
				RevenueImpact: domain.ImpactMedium, Effort: domain.EffortEasy, TimeToImpact: domain.TimeFast,
			},
		},
		{
			criterion: domain.RubricCriterion{Key: "organization", Description: "The menu is organized into clear sections", Points: 15},
			fallback:  tierScore(signal.SectionCount, []int{4, 2, 1}, []float64{100, 70, 40}),
			seed: domain.RecommendationSeed{
				Title:         "Organize the menu into sections",
				Description:   "Starters, mains, drinks and desserts as separate sections make the menu easy to scan.",
				RevenueImpact: domain.ImpactLow, Effort: domain.EffortEasy, TimeToImpact: domain.TimeFast,
			},
		},
		{
			criterion: domain.RubricCriterion{Key: "promotional_opportunity", Description: "The menu features combos, specials or promotions", Points: 15},
			fallback:  promotion,
			seed: domain.RecommendationSeed{
				Title:         "Add combos and daily specials",
				Description:   "Bundles and specials raise the average order and give a reason to come back.",
				RevenueImpact: domain.ImpactMedium, Effort: domain.EffortEasy, TimeToImpact: domain.TimeFast,
			},
		},
		{
			criterion: domain.RubricCriterion{Key: "dietary_info", Description: "Items carry dietary and allergen information", Points: 15},
			fallback:  ratio(signal.DietaryTaggedItems, signal.ItemCount),
			seed: domain.RecommendationSeed{
				Title:         "Tag vegetarian, vegan and gluten-free items",
				Description:   "Dietary tags help customers filter on delivery apps and build trust with allergy-conscious guests.",
				RevenueImpact: domain.ImpactLow, Effort: domain.EffortEasy, TimeToImpact: domain.TimeMedium,
			},
		},
	}
}

func truncateRunes(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max])
}

func menuSignal(observation domain.Observation) (domain.MenuSignal, bool) {
	if observation.IsAbsent() {
		return domain.MenuSignal{}, false
	}
	switch s := observation.Signal.(type) {
	case domain.MenuSignal:
		return s, true
	case *domain.MenuSignal:
		if s != nil {
			return *s, true
		}
	}
	return domain.MenuSignal{}, false
}
