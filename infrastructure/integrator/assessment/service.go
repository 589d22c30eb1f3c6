package assessment

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"

	"github.com/vfg2006/digital-grade-api/internal/config"
	"github.com/vfg2006/digital-grade-api/internal/domain"
	"github.com/vfg2006/digital-grade-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultRetryDelay = time.Second
	maxRetryDelay     = 8 * time.Second
	maxNotes          = 3
)

// ChatModel é o subconjunto do modelo de chat do eino usado pelo avaliador
type ChatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// AssessmentIntegrator avalia rubricas chamando um modelo de linguagem
type AssessmentIntegrator struct {
	chatModel  ChatModel
	limiter    *rate.Limiter
	maxRetries uint64
	retryDelay time.Duration
	timeout    time.Duration
}

type rubricResponse struct {
	SubScores map[string]float64 `json:"sub_scores"`
	Notes     []string           `json:"notes"`
}

// NewChatModel cria o cliente OpenAI compatível configurado pelo ambiente
func NewChatModel(ctx context.Context, cfg *config.Config) (ChatModel, error) {
	temperature := cfg.Assessment.Temperature
	maxTokens := cfg.Assessment.MaxTokens

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     cfg.Assessment.BaseURL,
		APIKey:      cfg.Assessment.APIKey,
		Model:       cfg.Assessment.Model,
		Timeout:     cfg.Assessment.Timeout,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return nil, errors.Wrap(err, "falha ao inicializar o modelo de linguagem")
	}
	return chatModel, nil
}

func New(cfg *config.Config, chatModel ChatModel) *AssessmentIntegrator {
	rpm := cfg.Assessment.RequestsPerMinute
	if rpm <= 0 {
		rpm = 30
	}
	maxRetries := cfg.Assessment.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &AssessmentIntegrator{
		chatModel:  chatModel,
		limiter:    rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
		maxRetries: uint64(maxRetries),
		retryDelay: defaultRetryDelay,
		timeout:    cfg.Assessment.Timeout,
	}
}

// Assess envia a rubrica ao modelo e devolve as sub-notas dos critérios pedidos.
// Chaves desconhecidas são descartadas; chaves ausentes ficam a cargo do chamador.
func (s *AssessmentIntegrator) Assess(ctx context.Context, request domain.RubricRequest) (*domain.RubricAssessment, error) {
	logger := log.ForContext(ctx).WithField("category", request.Category.String())
	messages := buildMessages(request)

	backoff := retry.NewExponential(s.retryDelay)
	backoff = retry.WithCappedDuration(maxRetryDelay, backoff)
	backoff = retry.WithMaxRetries(s.maxRetries, backoff)

	var response rubricResponse
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}

		callCtx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		message, err := s.chatModel.Generate(callCtx, messages)
		if err != nil {
			if isTransient(err) {
				logger.WithError(err).Debug("avaliação: falha temporária, tentando novamente")
				return retry.RetryableError(err)
			}
			return err
		}
		if message == nil {
			return retry.RetryableError(errors.New("empty model response"))
		}

		var parsed rubricResponse
		if err := json.Unmarshal([]byte(cleanContent(message.Content)), &parsed); err != nil {
			return retry.RetryableError(errors.Wrap(err, "json unmarshal"))
		}
		if len(parsed.SubScores) == 0 {
			return retry.RetryableError(errors.New("response without sub_scores"))
		}

		response = parsed
		return nil
	})
	if err != nil {
		logger.WithError(err).Warn("avaliação: modelo indisponível")
		return nil, errors.Wrap(err, "assess rubric")
	}

	return toAssessment(request, response), nil
}

func toAssessment(request domain.RubricRequest, response rubricResponse) *domain.RubricAssessment {
	assessment := &domain.RubricAssessment{
		SubScores: make(map[string]float64, len(request.Criteria)),
	}

	for _, criterion := range request.Criteria {
		value, ok := response.SubScores[criterion.Key]
		if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		assessment.SubScores[criterion.Key] = value
	}

	for _, note := range response.Notes {
		if n := strings.TrimSpace(note); n != "" {
			assessment.Notes = append(assessment.Notes, n)
		}
		if len(assessment.Notes) == maxNotes {
			break
		}
	}

	return assessment
}

// isTransient identifica limites de requisição e falhas do provedor
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"429", "too many requests", "rate limit", "500", "502", "503", "504", "timeout"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
