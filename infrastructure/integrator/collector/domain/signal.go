package collectordomain

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

// SignalRequest é o corpo enviado ao coletor
type SignalRequest struct {
	Identifier string `json:"identifier"`
}

// SignalEnvelope é a resposta do coletor. Data varia conforme a categoria.
type SignalEnvelope struct {
	Category    string              `json:"category"`
	CollectedAt time.Time           `json:"collected_at"`
	Data        jsoniter.RawMessage `json:"data"`
}

// ErrorResponse representa a estrutura de erro do coletor
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Website struct {
	StatusCode     int             `json:"status_code"`
	HasSSL         bool            `json:"has_ssl"`
	ResponseTimeMS float64         `json:"response_time_ms"`
	Content        *WebsiteContent `json:"content"`
}

type WebsiteContent struct {
	Title             string `json:"title"`
	MetaDescription   string `json:"meta_description"`
	HasContactInfo    bool   `json:"has_contact_info"`
	HasMenu           bool   `json:"has_menu"`
	HasHours          bool   `json:"has_hours"`
	HasOnlineOrdering bool   `json:"has_online_ordering"`
}

type BusinessProfile struct {
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Phone       string            `json:"phone"`
	Verified    bool              `json:"verified"`
	Rating      float64           `json:"rating"`
	ReviewCount int               `json:"review_count"`
	Categories  []string          `json:"categories"`
	Hours       map[string]string `json:"hours"`
	PhotoCount  int               `json:"photo_count"`
	Website     string            `json:"website"`
}

type SocialMedia struct {
	Profiles           []SocialProfile `json:"profiles"`
	WebsiteIntegration bool            `json:"website_integration"`
}

type SocialProfile struct {
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	Followers int    `json:"followers"`
}

type Menu struct {
	Text       string     `json:"text"`
	Sections   []string   `json:"sections"`
	Items      []MenuItem `json:"items"`
	Promotions []string   `json:"promotions"`
}

type MenuItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	PhotoURL    string   `json:"photo_url"`
	DietaryTags []string `json:"dietary_tags"`
}

type Marketing struct {
	Campaigns     []Campaign `json:"campaigns"`
	MonthlyBudget float64    `json:"monthly_budget"`
}

type Campaign struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Channel   string    `json:"channel"`
	Budget    float64   `json:"budget"`
	Audience  string    `json:"audience"`
	Tracked   bool      `json:"tracked"`
	StartedAt time.Time `json:"started_at"`
}
