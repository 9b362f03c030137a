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
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	GoogleAds     GoogleAds     `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Credentials   Credentials   `mapstructure:",squash"`
	Sync          Sync          `mapstructure:",squash"`
	GoogleAdsSync GoogleAdsSync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	RunMigrations bool   `mapstructure:"database_run_migrations"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	// URL pública do front-end, usada nos redirecionamentos do OAuth
	URL string `mapstructure:"app_url"`
}

type GoogleAds struct {
	ClientID        string        `mapstructure:"google_ads_client_id"`
	ClientSecret    string        `mapstructure:"google_ads_client_secret"`
	DeveloperToken  string        `mapstructure:"google_ads_developer_token"`
	LoginCustomerID string        `mapstructure:"google_ads_login_customer_id"`
	APIURL          string        `mapstructure:"google_ads_api_url"`
	APIVersion      string        `mapstructure:"google_ads_api_version"`
	RedirectURL     string        `mapstructure:"google_ads_redirect_url"`
	RequestTimeout  time.Duration `mapstructure:"google_ads_request_timeout"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Credentials struct {
	// Chave (32 bytes, hex) usada para selar os refresh tokens no banco
	EncryptionKey string `mapstructure:"credentials_encryption_key"`
}

type Sync struct {
	PhaseTimeout      time.Duration `mapstructure:"sync_phase_timeout"`
	StaleAfter        time.Duration `mapstructure:"sync_stale_after"`
	LookbackDays      int           `mapstructure:"sync_lookback_days"`
	DispatchWorkers   int           `mapstructure:"sync_dispatch_workers"`
	DispatchQueueSize int           `mapstructure:"sync_dispatch_queue_size"`
}

type GoogleAdsSync struct {
	CampaignsInterval         time.Duration `mapstructure:"google_ads_sync_campaigns_interval"`
	MetricsInterval           time.Duration `mapstructure:"google_ads_sync_metrics_interval"`
	ConversionActionsInterval time.Duration `mapstructure:"google_ads_sync_conversion_actions_interval"`
	MaxConcurrentJobs         int           `mapstructure:"google_ads_sync_max_concurrent_jobs"`
	Enabled                   bool          `mapstructure:"google_ads_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/insightflow?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true)

	viper.SetDefault("APP_URL", "http://localhost:3000")

	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_API_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_API_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_REDIRECT_URL", "http://localhost:3000/api/auth/google-ads/callback")
	viper.SetDefault("GOOGLE_ADS_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("CREDENTIALS_ENCRYPTION_KEY", "") // ONLY LOCAL: vazio desabilita a criptografia

	// Defaults do orquestrador de sincronização
	viper.SetDefault("SYNC_PHASE_TIMEOUT", "2m") // Tempo máximo por fase (campanhas, métricas, conversões)
	viper.SetDefault("SYNC_STALE_AFTER", "30m")  // SYNCING mais antigo que isso pode ser retomado
	viper.SetDefault("SYNC_LOOKBACK_DAYS", 30)   // Janela de métricas
	viper.SetDefault("SYNC_DISPATCH_WORKERS", 3) // Workers da fila de sincronização
	viper.SetDefault("SYNC_DISPATCH_QUEUE_SIZE", 100)

	// Defaults do agendador
	viper.SetDefault("GOOGLE_ADS_SYNC_CAMPAIGNS_INTERVAL", "1h")
	viper.SetDefault("GOOGLE_ADS_SYNC_METRICS_INTERVAL", "4h")
	viper.SetDefault("GOOGLE_ADS_SYNC_CONVERSION_ACTIONS_INTERVAL", "24h")
	viper.SetDefault("GOOGLE_ADS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("GOOGLE_ADS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
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

	return config, nil
}

// loadEnvFile carrega o primeiro .env encontrado a partir do diretório atual
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
