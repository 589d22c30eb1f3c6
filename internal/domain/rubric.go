package domain

// RubricCriterion é um item avaliado pelo colaborador de IA
type RubricCriterion struct {
	Key         string `json:"key"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// RubricRequest é a solicitação estruturada enviada ao avaliador de IA
type RubricRequest struct {
	Category     Category          `json:"category"`
	BusinessName string            `json:"business_name"`
	Criteria     []RubricCriterion `json:"criteria"`
	Facts        map[string]any    `json:"facts"`
	Content      string            `json:"content,omitempty"`
}

// RubricAssessment é a resposta do avaliador: sub-notas de 0 a 100 por critério
type RubricAssessment struct {
	SubScores map[string]float64 `json:"sub_scores"`
	Notes     []string           `json:"notes"`
}
