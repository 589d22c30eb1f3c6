package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// AnalysisRequest é a entrada de uma análise de presença digital
type AnalysisRequest struct {
	BusinessName         string   `json:"business_name" validate:"required,max=200"`
	WebsiteURL           string   `json:"website_url,omitempty" validate:"omitempty,url"`
	GoogleBusinessURL    string   `json:"google_business_url,omitempty" validate:"omitempty,url"`
	YelpURL              string   `json:"yelp_url,omitempty" validate:"omitempty,url"`
	FacebookPage         string   `json:"facebook_page,omitempty" validate:"omitempty,max=300"`
	InstagramHandle      string   `json:"instagram_handle,omitempty" validate:"omitempty,max=100"`
	DeliveryPlatformURLs []string `json:"delivery_platform_urls,omitempty" validate:"omitempty,dive,url"`
}

// Normalized devolve uma cópia com espaços removidos e entradas vazias descartadas
func (r AnalysisRequest) Normalized() AnalysisRequest {
	out := AnalysisRequest{
		BusinessName:      strings.TrimSpace(r.BusinessName),
		WebsiteURL:        strings.TrimSpace(r.WebsiteURL),
		GoogleBusinessURL: strings.TrimSpace(r.GoogleBusinessURL),
		YelpURL:           strings.TrimSpace(r.YelpURL),
		FacebookPage:      strings.TrimSpace(r.FacebookPage),
		InstagramHandle:   strings.TrimPrefix(strings.TrimSpace(r.InstagramHandle), "@"),
	}
	for _, u := range r.DeliveryPlatformURLs {
		if trimmed := strings.TrimSpace(u); trimmed != "" {
			out.DeliveryPlatformURLs = append(out.DeliveryPlatformURLs, trimmed)
		}
	}
	return out
}

// HasIdentifiers informa se ao menos um identificador opcional foi enviado
func (r AnalysisRequest) HasIdentifiers() bool {
	return r.WebsiteURL != "" || r.GoogleBusinessURL != "" || r.YelpURL != "" ||
		r.FacebookPage != "" || r.InstagramHandle != "" || len(r.DeliveryPlatformURLs) > 0
}

// Identifier retorna o identificador usado para coletar a categoria.
// ok=false quando a requisição não traz nada para ela.
func (r AnalysisRequest) Identifier(category Category) (string, bool) {
	switch category {
	case CategoryWebsite:
		return r.WebsiteURL, r.WebsiteURL != ""
	case CategoryBusinessProfile:
		if r.GoogleBusinessURL != "" {
			return r.GoogleBusinessURL, true
		}
		return r.YelpURL, r.YelpURL != ""
	case CategorySocialMedia:
		handles := make([]string, 0, 2)
		if r.FacebookPage != "" {
			handles = append(handles, "facebook:"+r.FacebookPage)
		}
		if r.InstagramHandle != "" {
			handles = append(handles, "instagram:"+r.InstagramHandle)
		}
		return strings.Join(handles, ","), len(handles) > 0
	case CategoryMenu:
		if len(r.DeliveryPlatformURLs) > 0 {
			return r.DeliveryPlatformURLs[0], true
		}
		return r.WebsiteURL, r.WebsiteURL != ""
	case CategoryMarketing:
		return r.BusinessName, r.BusinessName != ""
	}
	return "", false
}

// CacheKey identifica o par (negócio, conjunto de identificadores) de forma determinística
func (r AnalysisRequest) CacheKey() string {
	n := r.Normalized()

	parts := []string{
		"name=" + strings.ToLower(n.BusinessName),
		"website=" + strings.ToLower(n.WebsiteURL),
		"google=" + strings.ToLower(n.GoogleBusinessURL),
		"yelp=" + strings.ToLower(n.YelpURL),
		"facebook=" + strings.ToLower(n.FacebookPage),
		"instagram=" + strings.ToLower(n.InstagramHandle),
	}

	delivery := make([]string, 0, len(n.DeliveryPlatformURLs))
	for _, u := range n.DeliveryPlatformURLs {
		delivery = append(delivery, strings.ToLower(u))
	}
	sort.Strings(delivery)
	parts = append(parts, "delivery="+strings.Join(delivery, ","))

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
