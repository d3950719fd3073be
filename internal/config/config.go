package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	Mangools            Mangools            `mapstructure:",squash"`
	GoogleAnalytics     GoogleAnalytics     `mapstructure:",squash"`
	Semrush             Semrush             `mapstructure:",squash"`
	DashboardCache      DashboardCache      `mapstructure:",squash"`
	DashboardWarmupSync DashboardWarmupSync `mapstructure:",squash"`
	SecretKey           string              `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Mangools struct {
	BaseURL     string `mapstructure:"mangools_base_url"`
	AccessToken string `mapstructure:"mangools_access_token"`
}

type GoogleAnalytics struct {
	BaseURL string `mapstructure:"ga_base_url"`
	APIKey  string `mapstructure:"ga_api_key"`
}

type Semrush struct {
	BaseURL string `mapstructure:"semrush_base_url"`
	APIKey  string `mapstructure:"semrush_api_key"`
}

// DashboardCache controla a validade das entradas do cache de dashboards.
// TTLHours = 0 mantém o comportamento padrão: a entrada vale para sempre
// dentro da mesma janela de datas.
type DashboardCache struct {
	TTLHours int `mapstructure:"dashboard_cache_ttl_hours"`
}

type DashboardWarmupSync struct {
	CronSchedule        string `mapstructure:"dashboard_warmup_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"dashboard_warmup_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"dashboard_warmup_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"dashboard_warmup_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/seomanager")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("MANGOOLS_BASE_URL", "https://api.mangools.com/v3")
	viper.SetDefault("MANGOOLS_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("GA_BASE_URL", "https://analyticsdata.googleapis.com/v1beta")
	viper.SetDefault("GA_API_KEY", "your_api_key")

	viper.SetDefault("SEMRUSH_BASE_URL", "https://api.semrush.com")
	viper.SetDefault("SEMRUSH_API_KEY", "your_api_key")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Cache de dashboards: 0 = nunca expira
	viper.SetDefault("DASHBOARD_CACHE_TTL_HOURS", 0)

	// Defaults para o aquecimento do cache de dashboards
	viper.SetDefault("DASHBOARD_WARMUP_SYNC_CRON", "0 5 * * *")        // Todos os dias às 5h da manhã
	viper.SetDefault("DASHBOARD_WARMUP_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("DASHBOARD_WARMUP_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("DASHBOARD_WARMUP_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
