package domain

import "time"

// CategorySignal é implementado pelos sinais brutos de cada categoria.
// O conjunto é fechado: apenas os tipos deste pacote satisfazem a interface.
type CategorySignal interface {
	Category() Category
	isCategorySignal()
}

// AbsentReason descreve por que o coletor não conseguiu obter os dados
type AbsentReason string

const (
	AbsentUnreachable AbsentReason = "unreachable"
	AbsentRateLimited AbsentReason = "rate_limited"
	AbsentNotFound    AbsentReason = "not_found"
	AbsentParseError  AbsentReason = "parse_error"
)

// Absence marca uma categoria cujo sinal não pôde ser obtido
type Absence struct {
	Reason AbsentReason `json:"reason"`
	Detail string       `json:"detail,omitempty"`
}

// Observation é o resultado da coleta de uma categoria: ou um sinal, ou uma ausência.
// Um sinal vazio (coletado sem conteúdo) é diferente de uma ausência.
type Observation struct {
	Category Category
	Signal   CategorySignal
	Absence  *Absence
	// Subject é o nome do negócio, repassado às rubricas de IA
	Subject string
}

// WithSubject devolve a observação com o nome do negócio preenchido
func (o Observation) WithSubject(businessName string) Observation {
	o.Subject = businessName
	return o
}

// Observed cria uma observação com sinal coletado
func Observed(signal CategorySignal) Observation {
	return Observation{Category: signal.Category(), Signal: signal}
}

// Absent cria uma observação ausente para a categoria
func Absent(category Category, reason AbsentReason, detail string) Observation {
	return Observation{
		Category: category,
		Absence:  &Absence{Reason: reason, Detail: detail},
	}
}

// IsAbsent informa se a observação não possui sinal utilizável
func (o Observation) IsAbsent() bool {
	return o.Absence != nil || o.Signal == nil
}

// WebsiteContent são os dados extraídos do HTML quando disponíveis
type WebsiteContent struct {
	Title             string `json:"title"`
	MetaDescription   string `json:"meta_description"`
	HasContactInfo    bool   `json:"has_contact_info"`
	HasMenu           bool   `json:"has_menu"`
	HasHours          bool   `json:"has_hours"`
	HasOnlineOrdering bool   `json:"has_online_ordering"`
}

type WebsiteSignal struct {
	// NoWebsite marca o negócio que não informou site algum
	NoWebsite    bool            `json:"no_website,omitempty"`
	StatusCode   int             `json:"status_code"`
	HasSSL       bool            `json:"has_ssl"`
	ResponseTime time.Duration   `json:"response_time"`
	Content      *WebsiteContent `json:"content,omitempty"`
}

func (WebsiteSignal) Category() Category { return CategoryWebsite }
func (WebsiteSignal) isCategorySignal()  {}

// Reachable informa se o site respondeu com status 2xx
func (s WebsiteSignal) Reachable() bool {
	return s.StatusCode >= 200 && s.StatusCode < 300
}

type BusinessProfileSignal struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Verified    bool     `json:"verified"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Categories  []string `json:"categories"`
	HasHours    bool     `json:"has_hours"`
	HasPhotos   bool     `json:"has_photos"`
	HasWebsite  bool     `json:"has_website"`
}

func (BusinessProfileSignal) Category() Category { return CategoryBusinessProfile }
func (BusinessProfileSignal) isCategorySignal()  {}

type SocialMediaSignal struct {
	Platforms          []string `json:"platforms"`
	WebsiteIntegration bool     `json:"website_integration"`
}

func (SocialMediaSignal) Category() Category { return CategorySocialMedia }
func (SocialMediaSignal) isCategorySignal()  {}

type MenuSignal struct {
	MenuText             string `json:"menu_text"`
	ItemCount            int    `json:"item_count"`
	SectionCount         int    `json:"section_count"`
	ItemsWithDescription int    `json:"items_with_description"`
	ItemsWithPhotos      int    `json:"items_with_photos"`
	ItemsWithPrice       int    `json:"items_with_price"`
	DietaryTaggedItems   int    `json:"dietary_tagged_items"`
	HasPromotions        bool   `json:"has_promotions"`
}

func (MenuSignal) Category() Category { return CategoryMenu }
func (MenuSignal) isCategorySignal()  {}

// Campaign é um registro do histórico de campanhas do negócio
type Campaign struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Channel   string    `json:"channel"`
	Budget    float64   `json:"budget"`
	Audience  string    `json:"audience"`
	Tracked   bool      `json:"tracked"`
	StartedAt time.Time `json:"started_at"`
}

type MarketingSignal struct {
	Campaigns     []Campaign `json:"campaigns"`
	MonthlyBudget float64    `json:"monthly_budget"`
}

func (MarketingSignal) Category() Category { return CategoryMarketing }
func (MarketingSignal) isCategorySignal()  {}
