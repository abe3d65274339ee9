package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/sticky-analytics-api/pkg/utils"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Sticky          Sticky          `mapstructure:",squash"`
	Products        Products        `mapstructure:",squash"`
	FinancialWindow FinancialWindow `mapstructure:",squash"`
	ProductSync     ProductSync     `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
}

type Server struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	FrontendURL string `mapstructure:"frontend_url"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	// Aplica as migrações embutidas na inicialização
	AutoMigrate bool `mapstructure:"database_auto_migrate"`
}

// Sticky contém as credenciais da plataforma de pedidos
type Sticky struct {
	URL            string `mapstructure:"sticky_base_url"`
	Username       string `mapstructure:"sticky_username"`
	Password       string `mapstructure:"sticky_password"`
	TimeoutSeconds int    `mapstructure:"sticky_timeout_seconds"`
}

type Products struct {
	TargetIDs       []string      `mapstructure:"target_products"`
	CatalogCacheTTL time.Duration `mapstructure:"catalog_cache_ttl"`
}

// FinancialWindow define a janela de pedidos consultada em cada sincronização.
// EndDate vazio significa a data corrente.
type FinancialWindow struct {
	Days    int    `mapstructure:"financial_window_days"`
	EndDate string `mapstructure:"financial_window_end_date"`
}

type ProductSync struct {
	CronSchedule      string `mapstructure:"product_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"product_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"product_sync_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	AdminUsername     string        `mapstructure:"admin_username"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

// Enabled indica se as rotas administrativas exigem token
func (a Auth) Enabled() bool {
	return a.Secret != ""
}

// WindowEndDate interpreta FINANCIAL_WINDOW_END_DATE. Retorna nil quando não configurada.
func (w FinancialWindow) WindowEndDate() (*time.Time, error) {
	if strings.TrimSpace(w.EndDate) == "" {
		return nil, nil
	}

	endDate, err := utils.ParseDate(strings.TrimSpace(w.EndDate))
	if err != nil {
		return nil, fmt.Errorf("financial_window_end_date inválida (%s): %w", w.EndDate, err)
	}

	return endDate, nil
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3001)
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sticky_analytics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("STICKY_BASE_URL", "https://example.sticky.io/api/v1")
	viper.SetDefault("STICKY_USERNAME", "")
	viper.SetDefault("STICKY_PASSWORD", "")
	viper.SetDefault("STICKY_TIMEOUT_SECONDS", 30)

	viper.SetDefault("TARGET_PRODUCTS", "")
	viper.SetDefault("CATALOG_CACHE_TTL", "5m")

	viper.SetDefault("FINANCIAL_WINDOW_DAYS", 3)
	viper.SetDefault("FINANCIAL_WINDOW_END_DATE", "")

	// A cada 6 horas, executando um produto por vez
	viper.SetDefault("PRODUCT_SYNC_CRON", "0 */6 * * *")
	viper.SetDefault("PRODUCT_SYNC_MAX_CONCURRENT_JOBS", 1)
	viper.SetDefault("PRODUCT_SYNC_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return decode(viper.AllSettings())
}

// decode converte o mapa de configurações do viper na struct Config e valida o resultado
func decode(settings map[string]any) (*Config, error) {
	config := &Config{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           config,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(settings); err != nil {
		return nil, err
	}

	config.Products.TargetIDs = normalizeIDs(config.Products.TargetIDs)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica as configurações obrigatórias para o núcleo de sincronização
func (c *Config) Validate() error {
	if len(c.Products.TargetIDs) == 0 {
		return fmt.Errorf("config: target_products é obrigatório")
	}

	if c.Sticky.URL == "" {
		return fmt.Errorf("config: sticky_base_url é obrigatório")
	}

	if c.FinancialWindow.Days <= 0 {
		return fmt.Errorf("config: financial_window_days deve ser maior que zero")
	}

	if _, err := c.FinancialWindow.WindowEndDate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if c.Auth.Enabled() && c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("config: admin_password_hash é obrigatório quando auth_secret está definido")
	}

	return nil
}

// normalizeIDs remove espaços e identificadores vazios ou repetidos
func normalizeIDs(ids []string) []string {
	normalized := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, exists := seen[id]; exists {
			continue
		}
		seen[id] = struct{}{}
		normalized = append(normalized, id)
	}

	return normalized
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
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
