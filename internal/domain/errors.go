package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoIdentifiers indica uma requisição sem nenhum identificador de categoria
var ErrNoIdentifiers = errors.New("at least one business identifier is required")

// ErrReportNotFound indica que nenhum relatório corresponde à busca
var ErrReportNotFound = errors.New("report not found")

// InputValidationError rejeita a requisição antes da coleta. Nenhum relatório é produzido.
type InputValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *InputValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *InputValidationError) Unwrap() error {
	return e.Err
}

// CollectionError é a falha de coleta de uma categoria. É absorvida pelo fallback heurístico.
type CollectionError struct {
	Category Category
	Reason   AbsentReason
	Err      error
}

func (e *CollectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("collect %s: %s: %v", e.Category, e.Reason, e.Err)
	}
	return fmt.Sprintf("collect %s: %s", e.Category, e.Reason)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// Retryable informa se vale a pena tentar a coleta novamente
func (e *CollectionError) Retryable() bool {
	return e.Reason == AbsentUnreachable || e.Reason == AbsentRateLimited
}

// ExternalAssessmentError é a falha do avaliador de IA. Menu e Marketing recorrem às regras.
type ExternalAssessmentError struct {
	Category Category
	Err      error
}

func (e *ExternalAssessmentError) Error() string {
	return fmt.Sprintf("assessment %s: %v", e.Category, e.Err)
}

func (e *ExternalAssessmentError) Unwrap() error {
	return e.Err
}

// AggregationError indica violação de contrato interno na montagem do relatório
type AggregationError struct {
	Violations []string
}

func (e *AggregationError) Error() string {
	return "aggregation contract violated: " + strings.Join(e.Violations, "; ")
}

// IsInputValidation informa se err é (ou envolve) um InputValidationError
func IsInputValidation(err error) bool {
	var target *InputValidationError
	return errors.As(err, &target)
}

// IsAggregation informa se err é (ou envolve) um AggregationError
func IsAggregation(err error) bool {
	var target *AggregationError
	return errors.As(err, &target)
}
