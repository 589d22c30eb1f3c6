// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"strings"
)

// Category identifica uma das cinco dimensões fixas da avaliação.
// O valor zero é inválido para que um slot não preenchido seja detectável.
type Category int

const (
	CategoryWebsite Category = iota + 1
	CategoryBusinessProfile
	CategorySocialMedia
	CategoryMenu
	CategoryMarketing
)

// CategoryCount é o número de categorias avaliadas
const CategoryCount = 5

// AllCategories lista as categorias na ordem fixa de avaliação
var AllCategories = [CategoryCount]Category{
	CategoryWebsite,
	CategoryBusinessProfile,
	CategorySocialMedia,
	CategoryMenu,
	CategoryMarketing,
}

var categoryNames = map[Category]string{
	CategoryWebsite:         "website",
	CategoryBusinessProfile: "business_profile",
	CategorySocialMedia:     "social_media",
	CategoryMenu:            "menu",
	CategoryMarketing:       "marketing",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Valid informa se a categoria pertence à enumeração
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Index retorna a posição da categoria em AllCategories
func (c Category) Index() int {
	return int(c) - 1
}

// ParseCategory converte o nome textual de uma categoria
func ParseCategory(value string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for category, name := range categoryNames {
		if name == normalized {
			return category, nil
		}
	}
	return 0, fmt.Errorf("categoria desconhecida: %q", value)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("categoria inválida: %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
