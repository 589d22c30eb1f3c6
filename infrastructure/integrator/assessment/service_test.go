package assessment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/vfg2006/digital-grade-api/internal/config"
	"github.com/vfg2006/digital-grade-api/internal/domain"
)

type reply struct {
	content string
	err     error
}

// fakeChatModel devolve as respostas na ordem e guarda as mensagens recebidas
type fakeChatModel struct {
	mu       sync.Mutex
	replies  []reply
	calls    int
	messages [][]*schema.Message
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.messages = append(f.messages, input)
	r := f.replies[len(f.replies)-1]
	if f.calls < len(f.replies) {
		r = f.replies[f.calls]
	}
	f.calls++

	if r.err != nil {
		return nil, r.err
	}
	return &schema.Message{Role: schema.Assistant, Content: r.content}, nil
}

func newTestIntegrator(chatModel ChatModel, maxRetries int) *AssessmentIntegrator {
	cfg := &config.Config{Assessment: config.Assessment{MaxRetries: maxRetries, RequestsPerMinute: 60}}
	integrator := New(cfg, chatModel)
	integrator.limiter = rate.NewLimiter(rate.Inf, 1)
	integrator.retryDelay = time.Millisecond
	return integrator
}

func menuRequest() domain.RubricRequest {
	return domain.RubricRequest{
		Category:     domain.CategoryMenu,
		BusinessName: "Cantina",
		Criteria: []domain.RubricCriterion{
			{Key: "description_quality", Description: "Items have descriptions", Points: 20},
			{Key: "photos", Description: "Items have photos", Points: 20},
		},
		Facts:   map[string]any{"item_count": 12, "has_promotions": true},
		Content: "Lasanha: bolonhesa",
	}
}

func TestAssessmentIntegrator_Assess(t *testing.T) {
	tests := []struct {
		name       string
		replies    []reply
		maxRetries int
		wantCalls  int
		validate   func(t *testing.T, assessment *domain.RubricAssessment, err error)
	}{
		{
			name:      "Sucesso - JSON puro",
			replies:   []reply{{content: `{"sub_scores":{"description_quality":80,"photos":40},"notes":["Good variety"]}`}},
			wantCalls: 1,
			validate: func(t *testing.T, assessment *domain.RubricAssessment, err error) {
				require.NoError(t, err)
				assert.Equal(t, map[string]float64{"description_quality": 80, "photos": 40}, assessment.SubScores)
				assert.Equal(t, []string{"Good variety"}, assessment.Notes)
			},
		},
		{
			name:      "Sucesso - cerca de markdown e chaves desconhecidas",
			replies:   []reply{{content: "```json\n{\"sub_scores\":{\"photos\":55,\"extra\":10},\"notes\":[\" \",\"a\",\"b\",\"c\",\"d\"]}\n```"}},
			wantCalls: 1,
			validate: func(t *testing.T, assessment *domain.RubricAssessment, err error) {
				require.NoError(t, err)
				assert.Equal(t, map[string]float64{"photos": 55}, assessment.SubScores)
				assert.Equal(t, []string{"a", "b", "c"}, assessment.Notes)
			},
		},
		{
			name: "Limite de requisições - tenta novamente",
			replies: []reply{
				{err: errors.New("error, status code: 429, message: too many requests")},
				{content: `{"sub_scores":{"description_quality":70,"photos":70}}`},
			},
			maxRetries: 2,
			wantCalls:  2,
			validate: func(t *testing.T, assessment *domain.RubricAssessment, err error) {
				require.NoError(t, err)
				assert.Len(t, assessment.SubScores, 2)
			},
		},
		{
			name: "Resposta inválida - tenta novamente até esgotar",
			replies: []reply{
				{content: "not json"},
			},
			maxRetries: 2,
			wantCalls:  3,
			validate: func(t *testing.T, assessment *domain.RubricAssessment, err error) {
				assert.Nil(t, assessment)
				assert.ErrorContains(t, err, "json unmarshal")
			},
		},
		{
			name:       "Resposta sem sub_scores",
			replies:    []reply{{content: `{"notes":["x"]}`}},
			maxRetries: 1,
			wantCalls:  2,
			validate: func(t *testing.T, assessment *domain.RubricAssessment, err error) {
				assert.Nil(t, assessment)
				assert.ErrorContains(t, err, "without sub_scores")
			},
		},
		{
			name:       "Erro permanente - sem nova tentativa",
			replies:    []reply{{err: errors.New("invalid api key")}},
			maxRetries: 3,
			wantCalls:  1,
			validate: func(t *testing.T, assessment *domain.RubricAssessment, err error) {
				assert.Nil(t, assessment)
				assert.ErrorContains(t, err, "invalid api key")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chatModel := &fakeChatModel{replies: tt.replies}
			integrator := newTestIntegrator(chatModel, tt.maxRetries)

			assessment, err := integrator.Assess(context.Background(), menuRequest())
			tt.validate(t, assessment, err)
			assert.Equal(t, tt.wantCalls, chatModel.calls)
		})
	}
}

func TestAssessmentIntegrator_Assess_Canceled(t *testing.T) {
	chatModel := &fakeChatModel{replies: []reply{{content: `{"sub_scores":{"photos":1}}`}}}
	integrator := newTestIntegrator(chatModel, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := integrator.Assess(ctx, menuRequest())
	require.Error(t, err)
	assert.Equal(t, 0, chatModel.calls)
}

func TestBuildMessages(t *testing.T) {
	messages := buildMessages(menuRequest())
	require.Len(t, messages, 2)
	assert.Equal(t, schema.System, messages[0].Role)
	assert.Equal(t, schema.User, messages[1].Role)

	content := messages[1].Content
	assert.Contains(t, content, "Business: Cantina")
	assert.Contains(t, content, "- description_quality (20 points): Items have descriptions")
	assert.Contains(t, content, "Lasanha: bolonhesa")
	assert.Less(t, strings.Index(content, "has_promotions"), strings.Index(content, "item_count"))
}

func TestCleanContent(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanContent("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanContent("  {\"a\":1}  "))
	assert.Equal(t, `{"a":1}`, cleanContent("```{\"a\":1}```"))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, isTransient(errors.New("status code: 503")))
	assert.True(t, isTransient(context.DeadlineExceeded))
	assert.False(t, isTransient(errors.New("invalid request")))
}
