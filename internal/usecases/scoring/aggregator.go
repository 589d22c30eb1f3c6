// Package scoring agrega as notas por categoria, prioriza as recomendações e monta o relatório
package scoring

import (
	"fmt"
	"math"

	"github.com/vfg2006/digital-grade-api/internal/domain"
)

// WeightBasis é a soma obrigatória dos pesos, em pontos-base
const WeightBasis = 10000

// Pesos em pontos-base, na ordem de domain.AllCategories
var categoryWeights = [domain.CategoryCount]int{
	2500, // website
	2500, // business_profile
	2000, // social_media
	1500, // menu
	1500, // marketing
}

func init() {
	if err := checkWeights(categoryWeights); err != nil {
		panic(err)
	}
}

func checkWeights(weights [domain.CategoryCount]int) error {
	sum := 0
	for _, w := range weights {
		if w < 0 {
			return fmt.Errorf("negative category weight: %d", w)
		}
		sum += w
	}
	if sum != WeightBasis {
		return fmt.Errorf("category weights must sum to %d, got %d", WeightBasis, sum)
	}
	return nil
}

// WeightBasisPoints retorna o peso da categoria em pontos-base
func WeightBasisPoints(category domain.Category) int {
	if !category.Valid() {
		return 0
	}
	return categoryWeights[category.Index()]
}

// Weight retorna o peso da categoria como fração de 1
func Weight(category domain.Category) float64 {
	return float64(WeightBasisPoints(category)) / WeightBasis
}

// OverallGrade é a média ponderada arredondada das cinco notas.
// Os pesos nunca são renormalizados: categorias estimadas entram com a nota heurística.
func OverallGrade(scores domain.CategoryScores) int {
	total := 0
	for _, score := range scores.All() {
		total += score.Score * WeightBasisPoints(score.Category)
	}
	return int(math.Round(float64(total) / WeightBasis))
}

// GradeLetterFor converte a nota geral em letra
func GradeLetterFor(overall int) domain.GradeLetter {
	switch {
	case overall >= 90:
		return domain.GradeA
	case overall >= 80:
		return domain.GradeB
	case overall >= 70:
		return domain.GradeC
	case overall >= 60:
		return domain.GradeD
	default:
		return domain.GradeF
	}
}
