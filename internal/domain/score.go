package domain

// Severity classifica a gravidade de um problema encontrado
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityBlocking Severity = "blocking"
)

// Códigos de problemas emitidos pelos analisadores
const (
	IssueInsufficientData      = "insufficient_data"
	IssueAssessmentUnavailable = "assessment_unavailable"

	IssueNoWebsite              = "no_website"
	IssueWebsiteUnreachable     = "website_unreachable"
	IssueMissingSSL             = "missing_ssl"
	IssueSlowResponse           = "slow_response"
	IssueVerySlowResponse       = "very_slow_response"
	IssueMissingTitle           = "missing_title"
	IssueMissingMetaDescription = "missing_meta_description"
	IssueMissingContactInfo     = "missing_contact_info"
	IssueMissingOnlineOrdering  = "missing_online_ordering"

	IssueMissingName          = "missing_name"
	IssueMissingAddress       = "missing_address"
	IssueMissingPhone         = "missing_phone"
	IssueProfileUnverified    = "profile_unverified"
	IssueLowRating            = "low_rating"
	IssueFewReviews           = "few_reviews"
	IssueMissingCategories    = "missing_categories"
	IssueMissingAccessibility = "missing_accessibility_info"

	IssueMissingEssentialPlatform = "missing_essential_platform"
	IssueExpandSocialPresence     = "expand_social_presence"
	IssueMissingSocialIntegration = "missing_social_integration"

	IssueWeakCriterion = "weak_criterion"
)

type Issue struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Detail   string   `json:"detail,omitempty"`
}

// ImpactBand é a faixa qualitativa de impacto em receita
type ImpactBand string

const (
	ImpactLow    ImpactBand = "low"
	ImpactMedium ImpactBand = "medium"
	ImpactHigh   ImpactBand = "high"
)

// EffortBand é a faixa de esforço de implementação
type EffortBand string

const (
	EffortEasy   EffortBand = "easy"
	EffortMedium EffortBand = "medium"
	EffortHard   EffortBand = "hard"
)

// TimeBand é a faixa de tempo até o impacto aparecer
type TimeBand string

const (
	TimeFast   TimeBand = "fast"
	TimeMedium TimeBand = "medium"
	TimeSlow   TimeBand = "slow"
)

// RecommendationSeed é uma sugestão ainda não priorizada, emitida por um analisador
type RecommendationSeed struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      Category   `json:"category"`
	RevenueImpact ImpactBand `json:"revenue_impact_band"`
	Effort        EffortBand `json:"effort_band"`
	TimeToImpact  TimeBand   `json:"time_to_impact_band"`
}

// Recommendation é uma seed enriquecida com a pontuação de prioridade
type Recommendation struct {
	RecommendationSeed
	PriorityScore float64 `json:"priority_score"`
}

// CategoryScore é a avaliação de uma categoria. Não deve ser alterado após produzido.
type CategoryScore struct {
	Category    Category             `json:"category"`
	Score       int                  `json:"score"`
	Issues      []Issue              `json:"issues"`
	Seeds       []RecommendationSeed `json:"recommendation_seeds"`
	Estimated   bool                 `json:"estimated"`
	Diagnostics []string             `json:"diagnostics,omitempty"`
}

// HasIssue informa se o código aparece entre os problemas
func (s CategoryScore) HasIssue(code string) bool {
	for _, issue := range s.Issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}

// CategoryScores guarda exatamente uma avaliação por categoria
type CategoryScores struct {
	Website         CategoryScore `json:"website"`
	BusinessProfile CategoryScore `json:"business_profile"`
	SocialMedia     CategoryScore `json:"social_media"`
	Menu            CategoryScore `json:"menu"`
	Marketing       CategoryScore `json:"marketing"`
}

// Get retorna a avaliação da categoria
func (s *CategoryScores) Get(category Category) CategoryScore {
	if slot := s.slot(category); slot != nil {
		return *slot
	}
	return CategoryScore{}
}

// Set grava a avaliação no slot da sua própria categoria
func (s *CategoryScores) Set(score CategoryScore) bool {
	slot := s.slot(score.Category)
	if slot == nil {
		return false
	}
	*slot = score
	return true
}

// All retorna as avaliações na ordem de AllCategories
func (s *CategoryScores) All() [CategoryCount]CategoryScore {
	return [CategoryCount]CategoryScore{s.Website, s.BusinessProfile, s.SocialMedia, s.Menu, s.Marketing}
}

func (s *CategoryScores) slot(category Category) *CategoryScore {
	switch category {
	case CategoryWebsite:
		return &s.Website
	case CategoryBusinessProfile:
		return &s.BusinessProfile
	case CategorySocialMedia:
		return &s.SocialMedia
	case CategoryMenu:
		return &s.Menu
	case CategoryMarketing:
		return &s.Marketing
	}
	return nil
}
