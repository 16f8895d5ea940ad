package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Meta      Meta      `mapstructure:",squash"`
	Report    Report    `mapstructure:",squash"`
	SpendSync SpendSync `mapstructure:",squash"`
}

type Server struct {
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration `mapstructure:"server_request_timeout"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

// Meta guarda o acesso à Graph API. As listas vêm do ambiente no formato
// "chave:valor,chave:valor" e são convertidas em mapas por NewConfig.
type Meta struct {
	BaseURL        string        `mapstructure:"meta_base_url"`
	URL            string        `mapstructure:"meta_url"`
	Version        string        `mapstructure:"meta_version"`
	RequestTimeout time.Duration `mapstructure:"meta_request_timeout"`

	BusinessTokenPairs []string `mapstructure:"meta_business_tokens"`
	AdAccountPairs     []string `mapstructure:"meta_ad_accounts"`
	TeamBusinessPairs  []string `mapstructure:"meta_team_business"`

	BusinessTokens map[string]string `mapstructure:"-"` // business -> token
	AdAccounts     map[string]string `mapstructure:"-"` // time -> act_<id>
	TeamBusiness   map[string]string `mapstructure:"-"` // time -> business
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Report struct {
	Timezone           string         `mapstructure:"report_timezone"`
	MinChatBlockLength int            `mapstructure:"report_min_chat_block_length"`
	Location           *time.Location `mapstructure:"-"`
}

type SpendSync struct {
	CronSchedule  string `mapstructure:"spend_sync_cron"`
	Enabled       bool   `mapstructure:"spend_sync_enabled"`
	RetentionDays int    `mapstructure:"spend_sync_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", "60s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/orders?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_REQUEST_TIMEOUT", "15s")
	viper.SetDefault("META_BUSINESS_TOKENS", "") // main:<token>,c1:<token>
	viper.SetDefault("META_AD_ACCOUNTS", "A:act_876940394061784,B:act_1063536228108993,C:act_1256754798336209,C1:act_652648836844418")
	viper.SetDefault("META_TEAM_BUSINESS", "A:main,B:main,C:main,C1:c1")

	viper.SetDefault("REPORT_TIMEZONE", "Africa/Cairo")
	viper.SetDefault("REPORT_MIN_CHAT_BLOCK_LENGTH", 50)

	// Defaults para sincronização do gasto diário
	viper.SetDefault("SPEND_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SPEND_SYNC_ENABLED", false)
	viper.SetDefault("SPEND_SYNC_RETENTION_DAYS", 90)

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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	if config.Meta.BusinessTokens, err = ParsePairs(config.Meta.BusinessTokenPairs); err != nil {
		return nil, fmt.Errorf("META_BUSINESS_TOKENS: %w", err)
	}
	if config.Meta.AdAccounts, err = ParsePairs(config.Meta.AdAccountPairs); err != nil {
		return nil, fmt.Errorf("META_AD_ACCOUNTS: %w", err)
	}
	if config.Meta.TeamBusiness, err = ParsePairs(config.Meta.TeamBusinessPairs); err != nil {
		return nil, fmt.Errorf("META_TEAM_BUSINESS: %w", err)
	}

	config.Report.Location, err = time.LoadLocation(config.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("REPORT_TIMEZONE: %w", err)
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

// ParsePairs converte entradas "chave:valor" em um mapa. Entradas vazias são ignoradas.
func ParsePairs(entries []string) (map[string]string, error) {
	pairs := make(map[string]string, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		key, value, ok := strings.Cut(entry, ":")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("entrada inválida %q, esperado chave:valor", entry)
		}

		pairs[key] = value
	}

	return pairs, nil
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
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
