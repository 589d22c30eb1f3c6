package collectorclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	collectordomain "github.com/vfg2006/digital-grade-api/infrastructure/integrator/collector/domain"
	"github.com/vfg2006/digital-grade-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	FetchSignal(ctx context.Context, category string, identifier string) (*collectordomain.SignalEnvelope, error)
}

type CollectorClient struct {
	httpClient *http.Client
	config     *config.Config
}

// ResponseError é devolvido quando o coletor responde com status diferente de 2xx
type ResponseError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("collector responded %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("collector responded %d", e.StatusCode)
}

// DecodeError indica um corpo de resposta que não pôde ser interpretado
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode collector response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Collector.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return NewClientWithHTTP(cfg, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP permite injetar o http.Client (transporte de testes)
func NewClientWithHTTP(cfg *config.Config, httpClient *http.Client) Client {
	return &CollectorClient{
		httpClient: httpClient,
		config:     cfg,
	}
}
