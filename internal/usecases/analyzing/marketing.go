package analyzing

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/digital-grade-api/internal/domain"
)

var marketingAbsentSeed = domain.RecommendationSeed{
	Title:         "Start a tracked marketing campaign",
	Description:   "There is no campaign history to assess. Run one small campaign with a tracking link or promo code to learn what works.",
	RevenueImpact: domain.ImpactMedium,
	Effort:        domain.EffortMedium,
	TimeToImpact:  domain.TimeMedium,
}

type MarketingAnalyzer struct {
	rubric rubricScorer
}

func NewMarketingAnalyzer(assessor Assessor) *MarketingAnalyzer {
	return &MarketingAnalyzer{rubric: rubricScorer{category: domain.CategoryMarketing, assessor: assessor}}
}

func (a *MarketingAnalyzer) Category() domain.Category {
	return domain.CategoryMarketing
}

func (a *MarketingAnalyzer) Analyze(ctx context.Context, observation domain.Observation) domain.CategoryScore {
	signal, ok := marketingSignal(observation)
	if !ok {
		return absentScore(mismatchedSignal(observation, domain.CategoryMarketing), domain.CategoryMarketing, marketingAbsentSeed)
	}

	facts := summarizeCampaigns(signal.Campaigns)

	b := newScoreBuilder(domain.CategoryMarketing)
	request := domain.RubricRequest{
		BusinessName: observation.Subject,
		Facts: map[string]any{
			"campaign_count":     len(signal.Campaigns),
			"monthly_budget":     signal.MonthlyBudget,
			"distinct_types":     facts.types,
			"distinct_channels":  facts.channels,
			"distinct_months":    facts.months,
			"budgeted_campaigns": facts.budgeted,
			"targeted_campaigns": facts.targeted,
			"tracked_campaigns":  facts.tracked,
		},
		Content: truncateRunes(campaignListing(signal.Campaigns), maxRubricContent),
	}
	a.rubric.score(ctx, b, request, marketingRubric(len(signal.Campaigns), facts))

	if b.total() < OptimizationThreshold {
		b.seed("Plan a monthly marketing calendar",
			"Map holidays, local events and slow days to campaigns a month ahead.",
			domain.ImpactMedium, domain.EffortMedium, domain.TimeMedium)
	}
	if b.total() < ImprovementThreshold {
		b.seed("Launch a loyalty or email program",
			"Repeat customers are the cheapest revenue. Collect contacts and send a monthly offer.",
			domain.ImpactHigh, domain.EffortMedium, domain.TimeSlow)
	}

	return b.build()
}

type campaignFacts struct {
	types    int
	channels int
	months   int
	budgeted int
	targeted int
	tracked  int
}

func summarizeCampaigns(campaigns []domain.Campaign) campaignFacts {
	types := make(map[string]struct{})
	channels := make(map[string]struct{})
	months := make(map[string]struct{})

	var facts campaignFacts
	for _, c := range campaigns {
		if t := strings.ToLower(strings.TrimSpace(c.Type)); t != "" {
			types[t] = struct{}{}
		}
		if ch := strings.ToLower(strings.TrimSpace(c.Channel)); ch != "" {
			channels[ch] = struct{}{}
		}
		if !c.StartedAt.IsZero() {
			months[c.StartedAt.UTC().Format("01")] = struct{}{}
		}
		if c.Budget > 0 {
			facts.budgeted++
		}
		if strings.TrimSpace(c.Audience) != "" {
			facts.targeted++
		}
		if c.Tracked {
			facts.tracked++
		}
	}

	facts.types = len(types)
	facts.channels = len(channels)
	facts.months = len(months)
	return facts
}

func marketingRubric(total int, facts campaignFacts) []rubricItem {
	return []rubricItem{
		{
			criterion: domain.RubricCriterion{Key: "campaign_diversity", Description: "Campaigns use a variety of types (promotions, events, loyalty, ads)", Points: 20},
			fallback:  tierScore(facts.types, []int{3, 2, 1}, []float64{100, 70, 40}),
			seed: domain.RecommendationSeed{
				Title:         "Diversify campaign types",
				Description:   "Mix promotions, events and loyalty offers instead of repeating the same discount.",
				RevenueImpact: domain.ImpactMedium, Effort: domain.EffortMedium, TimeToImpact: domain.TimeMedium,
			},
		},
		{
			criterion: domain.RubricCriterion{Key: "budget_allocation", Description: "Campaigns have explicit budgets", Points: 15},
			fallback:  ratio(facts.budgeted, total),
			seed: domain.RecommendationSeed{
				Title:         "Set a budget for every campaign",
				Description:   "A fixed budget per campaign makes results comparable and avoids overspending.",
				RevenueImpact: domain.ImpactLow, Effort: domain.EffortEasy, TimeToImpact: domain.TimeMedium,
			},
		},
		{
			criterion: domain.RubricCriterion{Key: "audience_targeting", Description: "Campaigns target a defined audience", Points: 20},
			fallback:  ratio(facts.targeted, total),
			seed: domain.RecommendationSeed{
				Title:         "Target campaigns at specific audiences",
				Description:   "Neighbors, regulars and lapsed customers respond to different offers. Aim each campaign at one group.",
				RevenueImpact: domain.ImpactMedium, Effort: domain.EffortMedium, TimeToImpact: domain.TimeMedium,
			},
		},
		{
			criterion: domain.RubricCriterion{Key: "channel_mix", Description: "Campaigns run across several channels", Points: 15},
			fallback:  tierScore(facts.channels, []int{3, 2, 1}, []float64{100, 70, 35}),
			seed: domain.RecommendationSeed{
				Title:         "Add more marketing channels",
				Description:   "Combine social, email and local listings so each campaign reaches more people.",
				RevenueImpact: domain.ImpactMedium, Effort: domain.EffortMedium, TimeToImpact: domain.TimeMedium,
			},
		},
		{
			criterion: domain.RubricCriterion{Key: "roi_tracking", Description: "Campaign results are tracked", Points: 15},
			fallback:  ratio(facts.tracked, total),
			seed: domain.RecommendationSeed{
				Title:         "Track campaign results",
				Description:   "Use promo codes or tracking links so you know which campaigns bring customers.",
				RevenueImpact: domain.ImpactMedium, Effort: domain.EffortEasy, TimeToImpact: domain.TimeFast,
			},
		},
		{
			criterion: domain.RubricCriterion{Key: "seasonality", Description: "Campaigns follow seasons and local events", Points: 15},
			fallback:  tierScore(facts.months, []int{4, 2, 1}, []float64{100, 60, 30}),
			seed: domain.RecommendationSeed{
				Title:         "Plan seasonal campaigns",
				Description:   "Holidays and local events are predictable peaks. Prepare offers for them ahead of time.",
				RevenueImpact: domain.ImpactLow, Effort: domain.EffortMedium, TimeToImpact: domain.TimeSlow,
			},
		},
	}
}

func campaignListing(campaigns []domain.Campaign) string {
	lines := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		line := fmt.Sprintf("- %s (tipo: %s, canal: %s, orçamento: %.2f, público: %s, rastreada: %t",
			c.Name, c.Type, c.Channel, c.Budget, c.Audience, c.Tracked)
		if !c.StartedAt.IsZero() {
			line += ", início: " + c.StartedAt.UTC().Format("2006-01-02")
		}
		lines = append(lines, line+")")
	}
	return strings.Join(lines, "\n")
}

func marketingSignal(observation domain.Observation) (domain.MarketingSignal, bool) {
	if observation.IsAbsent() {
		return domain.MarketingSignal{}, false
	}
	switch s := observation.Signal.(type) {
	case domain.MarketingSignal:
		return s, true
	case *domain.MarketingSignal:
		if s != nil {
			return *s, true
		}
	}
	return domain.MarketingSignal{}, false
}
