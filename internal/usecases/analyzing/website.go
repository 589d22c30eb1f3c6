package analyzing

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/digital-grade-api/internal/domain"
)

// Orçamento de pontos do site
const (
	websiteReachablePoints = 40
	websiteSSLPoints       = 20
	websiteFastPoints      = 20
	websiteSlowPoints      = 15
	websiteVerySlowPoints  = 5
	websiteBaselinePoints  = 10

	websiteTitlePoints          = 15
	websiteTitleOptimalBonus    = 5
	websiteDescriptionPoints    = 15
	websiteDescriptionOptimal   = 5
	websiteContentFeaturePoints = 5

	websiteFastLimit = 2 * time.Second
	websiteSlowLimit = 4 * time.Second
)

var websiteAbsentSeed = domain.RecommendationSeed{
	Title:         "Confirm your website is online",
	Description:   "We could not check the website. Make sure it loads for customers and is linked from your listings.",
	RevenueImpact: domain.ImpactMedium,
	Effort:        domain.EffortEasy,
	TimeToImpact:  domain.TimeFast,
}

type WebsiteAnalyzer struct{}

func NewWebsiteAnalyzer() *WebsiteAnalyzer {
	return &WebsiteAnalyzer{}
}

func (a *WebsiteAnalyzer) Category() domain.Category {
	return domain.CategoryWebsite
}

func (a *WebsiteAnalyzer) Analyze(_ context.Context, observation domain.Observation) domain.CategoryScore {
	signal, ok := websiteSignal(observation)
	if !ok {
		return absentScore(mismatchedSignal(observation, domain.CategoryWebsite), domain.CategoryWebsite, websiteAbsentSeed)
	}

	b := newScoreBuilder(domain.CategoryWebsite)

	if signal.NoWebsite {
		b.issue(domain.IssueNoWebsite, domain.SeverityBlocking, "")
		b.seed("Create a website",
			"The business has no website. A simple site with menu, hours, location and contact details is where most customers check before visiting.",
			domain.ImpactHigh, domain.EffortMedium, domain.TimeMedium)
		b.seed("Link the new website from your listings",
			"Add the website to the Google Business Profile and social pages so customers and search engines find it.",
			domain.ImpactMedium, domain.EffortEasy, domain.TimeFast)
		return b.build()
	}

	// Site fora do ar zera todos os blocos
	if !signal.Reachable() {
		detail := "sem resposta"
		if signal.StatusCode != 0 {
			detail = fmt.Sprintf("status %d", signal.StatusCode)
		}
		b.issue(domain.IssueWebsiteUnreachable, domain.SeverityBlocking, detail)
		b.seed("Restore website availability",
			"Customers cannot reach the website. Fix hosting or DNS so the homepage answers with a successful response.",
			domain.ImpactHigh, domain.EffortMedium, domain.TimeFast)
		b.seed("Set up uptime monitoring",
			"Get alerted when the website goes down so outages are fixed before customers notice.",
			domain.ImpactMedium, domain.EffortEasy, domain.TimeFast)
		return b.build()
	}

	b.add(websiteReachablePoints)

	if signal.HasSSL {
		b.add(websiteSSLPoints)
	} else {
		b.issue(domain.IssueMissingSSL, domain.SeverityHigh, "")
		b.seed("Install an SSL certificate",
			"Browsers flag sites without HTTPS as not secure, which drives visitors away before they order.",
			domain.ImpactMedium, domain.EffortEasy, domain.TimeFast)
	}

	switch rt := signal.ResponseTime; {
	case rt <= websiteFastLimit:
		b.add(websiteFastPoints)
	case rt <= websiteSlowLimit:
		b.add(websiteSlowPoints)
		b.issue(domain.IssueSlowResponse, domain.SeverityMedium, fmt.Sprintf("%.1fs", rt.Seconds()))
		b.seed("Improve page load speed",
			"Compress images and enable caching so the homepage loads in under two seconds.",
			domain.ImpactMedium, domain.EffortMedium, domain.TimeMedium)
	default:
		b.add(websiteVerySlowPoints)
		b.issue(domain.IssueVerySlowResponse, domain.SeverityHigh, fmt.Sprintf("%.1fs", rt.Seconds()))
		b.seed("Fix very slow page loads",
			"Pages take more than four seconds to load and most mobile visitors leave before that.",
			domain.ImpactHigh, domain.EffortMedium, domain.TimeMedium)
	}

	// Site no ar: base de acessibilidade e seeds padrão
	b.add(websiteBaselinePoints)
	b.seed("Add clear calls to action",
		"Put order, call and directions buttons above the fold on every page.",
		domain.ImpactMedium, domain.EffortEasy, domain.TimeFast)
	b.seed("Optimize the site for mobile visitors",
		"Most local searches happen on phones. Check layout, tap targets and font sizes on small screens.",
		domain.ImpactMedium, domain.EffortMedium, domain.TimeMedium)

	if signal.Content != nil {
		scoreWebsiteContent(b, *signal.Content)
	}

	if b.total() < ImprovementThreshold {
		b.seed("Rebuild the website's key pages",
			"The current site misses several basics. A simple rebuild with menu, hours and contact pages pays off quickly.",
			domain.ImpactHigh, domain.EffortHard, domain.TimeSlow)
	}

	return b.build()
}

// scoreWebsiteContent soma as sub-notas extraídas do HTML, acima da base de 100 pontos
func scoreWebsiteContent(b *scoreBuilder, content domain.WebsiteContent) {
	titleLength := len([]rune(content.Title))
	if titleLength > 0 {
		b.add(websiteTitlePoints)
		if titleLength >= 30 && titleLength <= 60 {
			b.add(websiteTitleOptimalBonus)
		}
	} else {
		b.issue(domain.IssueMissingTitle, domain.SeverityMedium, "")
	}

	descriptionLength := len([]rune(content.MetaDescription))
	if descriptionLength > 0 {
		b.add(websiteDescriptionPoints)
		if descriptionLength >= 120 && descriptionLength <= 160 {
			b.add(websiteDescriptionOptimal)
		}
	} else {
		b.issue(domain.IssueMissingMetaDescription, domain.SeverityLow, "")
	}

	if titleLength == 0 || descriptionLength == 0 {
		b.seed("Write a search-friendly title and description",
			"A 30-60 character title and a 120-160 character description improve how the site shows up in search.",
			domain.ImpactLow, domain.EffortEasy, domain.TimeMedium)
	}

	if content.HasContactInfo {
		b.add(websiteContentFeaturePoints)
	} else {
		b.issue(domain.IssueMissingContactInfo, domain.SeverityMedium, "")
		b.seed("Show phone and address on every page",
			"Visitors ready to buy look for a phone number and address first.",
			domain.ImpactMedium, domain.EffortEasy, domain.TimeFast)
	}

	if content.HasMenu {
		b.add(websiteContentFeaturePoints)
	} else {
		b.seed("Publish the menu on the website",
			"An HTML menu page is indexed by search engines, unlike a PDF or a photo.",
			domain.ImpactMedium, domain.EffortEasy, domain.TimeFast)
	}

	if content.HasHours {
		b.add(websiteContentFeaturePoints)
	} else {
		b.seed("Publish opening hours",
			"Missing hours make customers call competitors instead.",
			domain.ImpactLow, domain.EffortEasy, domain.TimeFast)
	}

	if content.HasOnlineOrdering {
		b.add(websiteContentFeaturePoints)
	} else {
		b.issue(domain.IssueMissingOnlineOrdering, domain.SeverityMedium, "")
		b.seed("Add online ordering",
			"Direct online ordering captures revenue that otherwise goes to third-party apps with high commissions.",
			domain.ImpactHigh, domain.EffortMedium, domain.TimeMedium)
	}
}

func websiteSignal(observation domain.Observation) (domain.WebsiteSignal, bool) {
	if observation.IsAbsent() {
		return domain.WebsiteSignal{}, false
	}
	switch s := observation.Signal.(type) {
	case domain.WebsiteSignal:
		return s, true
	case *domain.WebsiteSignal:
		if s != nil {
			return *s, true
		}
	}
	return domain.WebsiteSignal{}, false
}
