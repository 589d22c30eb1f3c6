package collectorclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/digital-grade-api/internal/config"
)

const signalsURL = "http://collector.local/v1/signals/website"

func newTestClient(t *testing.T) (Client, *httpmock.MockTransport) {
	t.Helper()
	cfg := &config.Config{Collector: config.Collector{URL: "http://collector.local", APIKey: "secret"}}
	transport := httpmock.NewMockTransport()
	return NewClientWithHTTP(cfg, &http.Client{Transport: transport}), transport
}

func TestCollectorClient_FetchSignal(t *testing.T) {
	tests := []struct {
		name      string
		responder httpmock.Responder
		validate  func(t *testing.T, body string, err error)
	}{
		{
			name:      "Sucesso - devolve o envelope",
			responder: httpmock.NewStringResponder(http.StatusOK, `{"category":"website","data":{"status_code":200,"has_ssl":true}}`),
			validate: func(t *testing.T, body string, err error) {
				require.NoError(t, err)
				assert.JSONEq(t, `{"status_code":200,"has_ssl":true}`, body)
			},
		},
		{
			name:      "Status 404 - erro de resposta com detalhes",
			responder: httpmock.NewStringResponder(http.StatusNotFound, `{"error":{"code":"NOT_FOUND","message":"unknown site"}}`),
			validate: func(t *testing.T, _ string, err error) {
				var respErr *ResponseError
				require.ErrorAs(t, err, &respErr)
				assert.Equal(t, http.StatusNotFound, respErr.StatusCode)
				assert.Equal(t, "NOT_FOUND", respErr.Code)
				assert.Equal(t, "collector responded 404: unknown site", respErr.Error())
			},
		},
		{
			name:      "Status 503 sem corpo",
			responder: httpmock.NewStringResponder(http.StatusServiceUnavailable, ""),
			validate: func(t *testing.T, _ string, err error) {
				var respErr *ResponseError
				require.ErrorAs(t, err, &respErr)
				assert.Equal(t, http.StatusServiceUnavailable, respErr.StatusCode)
				assert.Empty(t, respErr.Message)
			},
		},
		{
			name:      "JSON inválido - erro de decodificação",
			responder: httpmock.NewStringResponder(http.StatusOK, `{"category":`),
			validate: func(t *testing.T, _ string, err error) {
				var decodeErr *DecodeError
				assert.ErrorAs(t, err, &decodeErr)
			},
		},
		{
			name:      "Sem dados - erro de decodificação",
			responder: httpmock.NewStringResponder(http.StatusOK, `{"category":"website","data":null}`),
			validate: func(t *testing.T, _ string, err error) {
				var decodeErr *DecodeError
				assert.ErrorAs(t, err, &decodeErr)
			},
		},
		{
			name:      "Categoria divergente - erro de decodificação",
			responder: httpmock.NewStringResponder(http.StatusOK, `{"category":"menu","data":{}}`),
			validate: func(t *testing.T, _ string, err error) {
				var decodeErr *DecodeError
				require.ErrorAs(t, err, &decodeErr)
				assert.ErrorContains(t, err, "expected category website, got menu")
			},
		},
		{
			name:      "Falha de rede",
			responder: httpmock.NewErrorResponder(errors.New("connection refused")),
			validate: func(t *testing.T, _ string, err error) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "connection refused")
				var respErr *ResponseError
				assert.False(t, errors.As(err, &respErr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, transport := newTestClient(t)
			transport.RegisterResponder(http.MethodPost, signalsURL, tt.responder)

			envelope, err := client.FetchSignal(context.Background(), "website", "https://cantina.com")
			body := ""
			if envelope != nil {
				body = string(envelope.Data)
			}
			tt.validate(t, body, err)
			assert.Equal(t, 1, transport.GetTotalCallCount())
		})
	}
}

func TestCollectorClient_FetchSignal_Request(t *testing.T) {
	client, transport := newTestClient(t)

	transport.RegisterResponder(http.MethodPost, signalsURL, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "Bearer secret", req.Header.Get("Authorization"))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		raw, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"identifier":"https://cantina.com"}`, string(raw))

		return httpmock.NewStringResponse(http.StatusOK, `{"data":{}}`), nil
	})

	envelope, err := client.FetchSignal(context.Background(), "website", "https://cantina.com")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(envelope.Data))
}
