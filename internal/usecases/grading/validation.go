package grading

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vfg2006/digital-grade-api/internal/domain"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest devolve *domain.InputValidationError para qualquer violação
func validateRequest(v *validator.Validate, request domain.AnalysisRequest) error {
	if err := v.Struct(request); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			fe := validationErrs[0]
			return &domain.InputValidationError{
				Field:   fieldPath(fe),
				Message: validationMessage(fe),
				Err:     err,
			}
		}
		return &domain.InputValidationError{Message: err.Error(), Err: err}
	}

	if !request.HasIdentifiers() {
		return &domain.InputValidationError{
			Field:   "identifiers",
			Message: domain.ErrNoIdentifiers.Error(),
			Err:     domain.ErrNoIdentifiers,
		}
	}

	return nil
}

// fieldPath remove o nome da struct raiz: AnalysisRequest.website_url -> website_url
func fieldPath(fe validator.FieldError) string {
	namespace := fe.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "url":
		return "must be a valid URL"
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}
