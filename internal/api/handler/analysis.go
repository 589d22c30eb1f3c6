package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/digital-grade-api/internal/domain"
	"github.com/vfg2006/digital-grade-api/internal/usecases/grading"
	"github.com/vfg2006/digital-grade-api/pkg/apiErrors"
	"github.com/vfg2006/digital-grade-api/pkg/log"
)

// tamanho máximo do corpo de POST /v1/analyses
const maxAnalysisBody = 64 << 10

var urlFields = map[string]struct{}{
	"website_url":         {},
	"google_business_url": {},
	"yelp_url":            {},
}

// CreateAnalysis executa (ou reaproveita) a análise de presença digital do negócio
func CreateAnalysis(grader grading.Grader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.AnalysisRequest
		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAnalysisBody))
		if err := decoder.Decode(&request); err != nil {
			logger.WithError(err).Warn("Corpo da análise inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		result, err := grader.Analyze(r.Context(), request)
		if err != nil {
			writeGradingError(w, r, err)
			return
		}

		status := http.StatusCreated
		if result.Cached {
			status = http.StatusOK
		}

		writeJSON(w, r, status, result.Report.ToResponse(time.Now()))
	})
}

// GetReport devolve um relatório pelo id, mesmo expirado
func GetReport(grader grading.Grader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := grader.GetReport(r.Context(), id)
		if err != nil {
			writeGradingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report.ToResponse(time.Now()))
	})
}

// GetLatestReport devolve o relatório mais recente do negócio informado em business_name
func GetLatestReport(grader grading.Grader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		businessName := r.URL.Query().Get("business_name")

		report, err := grader.GetLatestReport(r.Context(), businessName)
		if err != nil {
			writeGradingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report.ToResponse(time.Now()))
	})
}

func writeGradingError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var validationErr *domain.InputValidationError
	switch {
	case errors.As(err, &validationErr):
		logger.Warn("Requisição rejeitada na validação")
		details := map[string]string{"field": validationErr.Field, "reason": validationErr.Message}
		apiErrors.WriteError(w, validationCode(validationErr), validationErr.Error(), details)

	case errors.Is(err, domain.ErrReportNotFound):
		apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Relatório não encontrado", nil)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Warn("Análise interrompida antes de concluir")
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Análise interrompida", nil)

	case domain.IsAggregation(err):
		logger.Error("Falha ao montar relatório")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar relatório", nil)

	default:
		logger.Error("Erro inesperado na análise")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

// validationCode separa ausência de identificadores e URL malformada dos demais erros de entrada
func validationCode(err *domain.InputValidationError) string {
	if errors.Is(err, domain.ErrNoIdentifiers) || err.Field == "identifiers" {
		return apiErrors.ErrMissingRequiredData
	}
	if _, ok := urlFields[err.Field]; ok || strings.HasPrefix(err.Field, "delivery_platform_urls") {
		return apiErrors.ErrInvalidFormat
	}
	return apiErrors.ErrInvalidRequest
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}
