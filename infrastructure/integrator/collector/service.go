package collector

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/digital-grade-api/infrastructure/integrator/collector/collectorclient"
	collectordomain "github.com/vfg2006/digital-grade-api/infrastructure/integrator/collector/domain"
	"github.com/vfg2006/digital-grade-api/internal/domain"
	"github.com/vfg2006/digital-grade-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CollectorIntegrator traduz as respostas do coletor para os sinais do domínio
type CollectorIntegrator struct {
	Client collectorclient.Client
}

func New(client collectorclient.Client) *CollectorIntegrator {
	return &CollectorIntegrator{
		Client: client,
	}
}

// Fetch busca o sinal da categoria. Toda falha vira *domain.CollectionError.
func (s *CollectorIntegrator) Fetch(ctx context.Context, category domain.Category, identifier string) (domain.CategorySignal, error) {
	logger := log.ForContext(ctx).WithField("category", category.String())

	envelope, err := s.Client.FetchSignal(ctx, category.String(), identifier)
	if err != nil {
		collectionErr := &domain.CollectionError{
			Category: category,
			Reason:   reasonFor(err),
			Err:      err,
		}
		logger.WithFields(log.Fields{
			"reason": collectionErr.Reason,
			"error":  err.Error(),
		}).Warn("coletor: falha ao buscar sinal")
		return nil, collectionErr
	}

	signal, err := decodeSignal(category, envelope.Data)
	if err != nil {
		logger.WithError(err).Warn("coletor: falha ao converter sinal")
		return nil, &domain.CollectionError{
			Category: category,
			Reason:   domain.AbsentParseError,
			Err:      pkgerrors.Wrapf(err, "decode %s signal", category),
		}
	}

	logger.Debug("coletor: sinal obtido com sucesso")
	return signal, nil
}

func decodeSignal(category domain.Category, data []byte) (domain.CategorySignal, error) {
	switch category {
	case domain.CategoryWebsite:
		var dto collectordomain.Website
		if err := json.Unmarshal(data, &dto); err != nil {
			return nil, err
		}
		return FactoryWebsiteSignal(dto), nil
	case domain.CategoryBusinessProfile:
		var dto collectordomain.BusinessProfile
		if err := json.Unmarshal(data, &dto); err != nil {
			return nil, err
		}
		return FactoryBusinessProfileSignal(dto), nil
	case domain.CategorySocialMedia:
		var dto collectordomain.SocialMedia
		if err := json.Unmarshal(data, &dto); err != nil {
			return nil, err
		}
		return FactorySocialMediaSignal(dto), nil
	case domain.CategoryMenu:
		var dto collectordomain.Menu
		if err := json.Unmarshal(data, &dto); err != nil {
			return nil, err
		}
		return FactoryMenuSignal(dto), nil
	case domain.CategoryMarketing:
		var dto collectordomain.Marketing
		if err := json.Unmarshal(data, &dto); err != nil {
			return nil, err
		}
		return FactoryMarketingSignal(dto), nil
	default:
		return nil, pkgerrors.Errorf("unknown category %s", category)
	}
}

// reasonFor mapeia a falha do cliente para o motivo da ausência
func reasonFor(err error) domain.AbsentReason {
	var respErr *collectorclient.ResponseError
	if errors.As(err, &respErr) {
		switch {
		case respErr.StatusCode == http.StatusNotFound,
			respErr.StatusCode == http.StatusGone,
			respErr.StatusCode == http.StatusBadRequest,
			respErr.StatusCode == http.StatusUnprocessableEntity:
			return domain.AbsentNotFound
		case respErr.StatusCode == http.StatusTooManyRequests:
			return domain.AbsentRateLimited
		default:
			return domain.AbsentUnreachable
		}
	}

	var decodeErr *collectorclient.DecodeError
	if errors.As(err, &decodeErr) {
		return domain.AbsentParseError
	}

	return domain.AbsentUnreachable
}
