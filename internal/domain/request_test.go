package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalysisRequest_Normalized(t *testing.T) {
	request := AnalysisRequest{
		BusinessName:         "  Cantina da Nona ",
		WebsiteURL:           " https://cantina.com ",
		InstagramHandle:      " @cantina ",
		DeliveryPlatformURLs: []string{" ", "https://ifood.com/cantina ", ""},
	}

	got := request.Normalized()

	assert.Equal(t, "Cantina da Nona", got.BusinessName)
	assert.Equal(t, "https://cantina.com", got.WebsiteURL)
	assert.Equal(t, "cantina", got.InstagramHandle)
	assert.Equal(t, []string{"https://ifood.com/cantina"}, got.DeliveryPlatformURLs)
	assert.True(t, got.HasIdentifiers())
	assert.False(t, AnalysisRequest{BusinessName: "x", DeliveryPlatformURLs: []string{" "}}.Normalized().HasIdentifiers())
}

func TestAnalysisRequest_Identifier(t *testing.T) {
	request := AnalysisRequest{
		BusinessName:         "Cantina",
		WebsiteURL:           "https://cantina.com",
		YelpURL:              "https://yelp.com/cantina",
		FacebookPage:         "cantina.page",
		InstagramHandle:      "cantina",
		DeliveryPlatformURLs: []string{"https://ifood.com/cantina", "https://rappi.com/cantina"},
	}

	tests := []struct {
		name     string
		request  AnalysisRequest
		category Category
		want     string
		wantOK   bool
	}{
		{"Website usa website_url", request, CategoryWebsite, "https://cantina.com", true},
		{"Perfil usa yelp sem google", request, CategoryBusinessProfile, "https://yelp.com/cantina", true},
		{"Perfil prefere google", AnalysisRequest{GoogleBusinessURL: "https://g.page/c", YelpURL: "https://yelp.com/c"}, CategoryBusinessProfile, "https://g.page/c", true},
		{"Redes sociais combinam os perfis", request, CategorySocialMedia, "facebook:cantina.page,instagram:cantina", true},
		{"Menu usa a primeira plataforma de delivery", request, CategoryMenu, "https://ifood.com/cantina", true},
		{"Menu recorre ao website", AnalysisRequest{WebsiteURL: "https://c.com"}, CategoryMenu, "https://c.com", true},
		{"Marketing usa o nome", request, CategoryMarketing, "Cantina", true},
		{"Sem identificador", AnalysisRequest{BusinessName: "Cantina"}, CategoryWebsite, "", false},
		{"Categoria inválida", request, Category(0), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.request.Identifier(tt.category)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestAnalysisRequest_CacheKey(t *testing.T) {
	base := AnalysisRequest{
		BusinessName:         "Cantina da Nona",
		WebsiteURL:           "https://cantina.com",
		DeliveryPlatformURLs: []string{"https://ifood.com/a", "https://rappi.com/b"},
	}

	same := AnalysisRequest{
		BusinessName:         "  CANTINA DA NONA ",
		WebsiteURL:           "HTTPS://CANTINA.COM",
		DeliveryPlatformURLs: []string{"https://rappi.com/b", "https://ifood.com/a"},
	}
	other := base
	other.InstagramHandle = "cantina"

	assert.Len(t, base.CacheKey(), 64)
	assert.Equal(t, base.CacheKey(), same.CacheKey(), "caixa, espaços e ordem do delivery não alteram a chave")
	assert.NotEqual(t, base.CacheKey(), other.CacheKey())
}

func TestCategory_Text(t *testing.T) {
	for _, category := range AllCategories {
		text, err := category.MarshalText()
		assert.NoError(t, err)

		var parsed Category
		assert.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, category, parsed)
		assert.Equal(t, category, AllCategories[category.Index()])
	}

	_, err := Category(0).MarshalText()
	assert.Error(t, err)

	_, err = ParseCategory("delivery")
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	validation := &InputValidationError{Field: "identifiers", Message: ErrNoIdentifiers.Error(), Err: ErrNoIdentifiers}
	assert.True(t, errors.Is(validation, ErrNoIdentifiers))
	assert.True(t, IsInputValidation(validation))
	assert.Equal(t, "invalid input: identifiers: at least one business identifier is required", validation.Error())

	assert.True(t, (&CollectionError{Reason: AbsentRateLimited}).Retryable())
	assert.True(t, (&CollectionError{Reason: AbsentUnreachable}).Retryable())
	assert.False(t, (&CollectionError{Reason: AbsentNotFound}).Retryable())
	assert.False(t, (&CollectionError{Reason: AbsentParseError}).Retryable())

	assert.True(t, IsAggregation(&AggregationError{Violations: []string{"x"}}))
	assert.False(t, IsAggregation(validation))
}
