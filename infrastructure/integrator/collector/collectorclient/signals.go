package collectorclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"
	collectordomain "github.com/vfg2006/digital-grade-api/infrastructure/integrator/collector/domain"
)

const maxErrorBody = 4096

// FetchSignal executa POST {base}/v1/signals/{category} com o identificador no corpo
func (c *CollectorClient) FetchSignal(ctx context.Context, category string, identifier string) (*collectordomain.SignalEnvelope, error) {
	endpoint, err := url.Parse(c.config.Collector.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL do coletor")
	}
	endpoint.Path = path.Join(endpoint.Path, "/v1/signals", category)

	body, err := json.Marshal(collectordomain.SignalRequest{Identifier: identifier})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar o corpo da requisição")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.config.Collector.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Collector.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, responseError(resp)
	}

	var envelope collectordomain.SignalEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil, &DecodeError{Err: errors.New("missing data")}
	}
	if envelope.Category != "" && envelope.Category != category {
		return nil, &DecodeError{Err: errors.Errorf("expected category %s, got %s", category, envelope.Category)}
	}

	return &envelope, nil
}

func responseError(resp *http.Response) *ResponseError {
	respErr := &ResponseError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return respErr
	}

	var payload collectordomain.ErrorResponse
	if err := json.Unmarshal(raw, &payload); err == nil {
		respErr.Code = payload.Error.Code
		respErr.Message = payload.Error.Message
	}
	return respErr
}
