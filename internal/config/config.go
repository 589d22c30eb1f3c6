package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Collector   Collector   `mapstructure:",squash"`
	Assessment  Assessment  `mapstructure:",squash"`
	Grading     Grading     `mapstructure:",squash"`
	ReportSweep ReportSweep `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Collector aponta para o serviço que coleta os sinais brutos de cada categoria
type Collector struct {
	URL     string        `mapstructure:"collector_url"`
	APIKey  string        `mapstructure:"collector_api_key"`
	Timeout time.Duration `mapstructure:"collector_timeout"`
}

// Assessment configura o modelo de linguagem usado nas rubricas de menu e marketing.
// Sem API key o avaliador fica desligado e as rubricas usam apenas regras.
type Assessment struct {
	Enabled           bool          `mapstructure:"llm_enabled"`
	BaseURL           string        `mapstructure:"llm_base_url"`
	APIKey            string        `mapstructure:"llm_api_key"`
	Model             string        `mapstructure:"llm_model"`
	Timeout           time.Duration `mapstructure:"llm_timeout"`
	Temperature       float32       `mapstructure:"llm_temperature"`
	MaxTokens         int           `mapstructure:"llm_max_tokens"`
	RequestsPerMinute int           `mapstructure:"llm_requests_per_minute"`
	MaxRetries        int           `mapstructure:"llm_max_retries"`
}

type Grading struct {
	BranchTimeout  time.Duration `mapstructure:"grading_branch_timeout"`
	CollectTimeout time.Duration `mapstructure:"grading_collect_timeout"`
	RetryAttempts  int           `mapstructure:"grading_retry_attempts"`
	RetryBaseDelay time.Duration `mapstructure:"grading_retry_base_delay"`
	RetryMaxDelay  time.Duration `mapstructure:"grading_retry_max_delay"`
	RetryJitter    time.Duration `mapstructure:"grading_retry_jitter"`
	ReportTTL      time.Duration `mapstructure:"grading_report_ttl"`
	MemoryEntries  int           `mapstructure:"grading_memory_entries"`
}

type ReportSweep struct {
	CronSchedule string        `mapstructure:"report_sweep_cron"`
	Retention    time.Duration `mapstructure:"report_sweep_retention"`
	Enabled      bool          `mapstructure:"report_sweep_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// IsDevelopment informa se a aplicação roda em ambiente local
func (a App) IsDevelopment() bool {
	return a.Env == "" || a.Env == "development"
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/digital_grade")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("COLLECTOR_URL", "http://localhost:8081")
	viper.SetDefault("COLLECTOR_API_KEY", "")
	viper.SetDefault("COLLECTOR_TIMEOUT", "10s")

	viper.SetDefault("LLM_ENABLED", false)
	viper.SetDefault("LLM_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "gpt-4o-mini")
	viper.SetDefault("LLM_TIMEOUT", "20s")
	viper.SetDefault("LLM_TEMPERATURE", 0)
	viper.SetDefault("LLM_MAX_TOKENS", 800)
	viper.SetDefault("LLM_REQUESTS_PER_MINUTE", 30) // limite de chamadas ao provedor
	viper.SetDefault("LLM_MAX_RETRIES", 2)

	viper.SetDefault("GRADING_BRANCH_TIMEOUT", "30s")
	viper.SetDefault("GRADING_COLLECT_TIMEOUT", "8s")
	viper.SetDefault("GRADING_RETRY_ATTEMPTS", 3)
	viper.SetDefault("GRADING_RETRY_BASE_DELAY", "200ms")
	viper.SetDefault("GRADING_RETRY_MAX_DELAY", "2s")
	viper.SetDefault("GRADING_RETRY_JITTER", "100ms")
	viper.SetDefault("GRADING_REPORT_TTL", "720h") // 30 dias
	viper.SetDefault("GRADING_MEMORY_ENTRIES", 512)

	viper.SetDefault("REPORT_SWEEP_CRON", "0 3 * * *")  // Todos os dias às 3h da manhã
	viper.SetDefault("REPORT_SWEEP_RETENTION", "2160h") // 90 dias após expirar
	viper.SetDefault("REPORT_SWEEP_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if config.Assessment.APIKey == "" {
		config.Assessment.Enabled = false
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
