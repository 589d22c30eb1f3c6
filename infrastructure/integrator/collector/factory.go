package collector

import (
	"strings"
	"time"

	collectordomain "github.com/vfg2006/digital-grade-api/infrastructure/integrator/collector/domain"
	"github.com/vfg2006/digital-grade-api/internal/domain"
)

func FactoryWebsiteSignal(dto collectordomain.Website) domain.WebsiteSignal {
	signal := domain.WebsiteSignal{
		StatusCode:   dto.StatusCode,
		HasSSL:       dto.HasSSL,
		ResponseTime: time.Duration(dto.ResponseTimeMS * float64(time.Millisecond)),
	}
	if dto.Content != nil {
		signal.Content = &domain.WebsiteContent{
			Title:             strings.TrimSpace(dto.Content.Title),
			MetaDescription:   strings.TrimSpace(dto.Content.MetaDescription),
			HasContactInfo:    dto.Content.HasContactInfo,
			HasMenu:           dto.Content.HasMenu,
			HasHours:          dto.Content.HasHours,
			HasOnlineOrdering: dto.Content.HasOnlineOrdering,
		}
	}
	return signal
}

func FactoryBusinessProfileSignal(dto collectordomain.BusinessProfile) domain.BusinessProfileSignal {
	categories := make([]string, 0, len(dto.Categories))
	for _, category := range dto.Categories {
		if c := strings.TrimSpace(category); c != "" {
			categories = append(categories, c)
		}
	}

	return domain.BusinessProfileSignal{
		Name:        strings.TrimSpace(dto.Name),
		Address:     strings.TrimSpace(dto.Address),
		Phone:       strings.TrimSpace(dto.Phone),
		Verified:    dto.Verified,
		Rating:      dto.Rating,
		ReviewCount: dto.ReviewCount,
		Categories:  categories,
		HasHours:    len(dto.Hours) > 0,
		HasPhotos:   dto.PhotoCount > 0,
		HasWebsite:  strings.TrimSpace(dto.Website) != "",
	}
}

func FactorySocialMediaSignal(dto collectordomain.SocialMedia) domain.SocialMediaSignal {
	platforms := make([]string, 0, len(dto.Profiles))
	for _, profile := range dto.Profiles {
		if p := strings.ToLower(strings.TrimSpace(profile.Platform)); p != "" {
			platforms = append(platforms, p)
		}
	}

	return domain.SocialMediaSignal{
		Platforms:          platforms,
		WebsiteIntegration: dto.WebsiteIntegration,
	}
}

func FactoryMenuSignal(dto collectordomain.Menu) domain.MenuSignal {
	signal := domain.MenuSignal{
		MenuText:      dto.Text,
		ItemCount:     len(dto.Items),
		SectionCount:  len(dto.Sections),
		HasPromotions: len(dto.Promotions) > 0,
	}

	for _, item := range dto.Items {
		if strings.TrimSpace(item.Description) != "" {
			signal.ItemsWithDescription++
		}
		if strings.TrimSpace(item.PhotoURL) != "" {
			signal.ItemsWithPhotos++
		}
		if item.Price != nil && *item.Price > 0 {
			signal.ItemsWithPrice++
		}
		if len(item.DietaryTags) > 0 {
			signal.DietaryTaggedItems++
		}
	}

	if signal.MenuText == "" {
		signal.MenuText = menuText(dto)
	}
	return signal
}

// menuText monta uma listagem simples quando o coletor não devolve o texto do cardápio
func menuText(dto collectordomain.Menu) string {
	var builder strings.Builder
	for _, item := range dto.Items {
		builder.WriteString(item.Name)
		if item.Description != "" {
			builder.WriteString(": ")
			builder.WriteString(item.Description)
		}
		builder.WriteString("\n")
	}
	return strings.TrimSpace(builder.String())
}

func FactoryMarketingSignal(dto collectordomain.Marketing) domain.MarketingSignal {
	campaigns := make([]domain.Campaign, 0, len(dto.Campaigns))
	for _, c := range dto.Campaigns {
		campaigns = append(campaigns, domain.Campaign{
			Name:      c.Name,
			Type:      strings.ToLower(strings.TrimSpace(c.Type)),
			Channel:   strings.ToLower(strings.TrimSpace(c.Channel)),
			Budget:    c.Budget,
			Audience:  c.Audience,
			Tracked:   c.Tracked,
			StartedAt: c.StartedAt,
		})
	}

	return domain.MarketingSignal{
		Campaigns:     campaigns,
		MonthlyBudget: dto.MonthlyBudget,
	}
}
