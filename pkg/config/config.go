package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/pkg/postgres"
	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	AppEnv   string
	LogLevel string

	GRPCPort    int
	HTTPPort    int
	GatewayPort int

	StoreBackend string
	Postgres     postgres.Config

	KafkaBrokers string
	KafkaTopic   string

	Stripe      ProviderConfig
	Clip        ProviderConfig
	Conekta     ProviderConfig
	MercadoPago ProviderConfig

	WebhookAllowUnsigned bool
	WebhookMaxBody       int64

	JWTSecret string
	RateRPS   float64
	RateBurst int

	DBTimeout       time.Duration
	ProviderTimeout time.Duration

	OrderServiceAddr string
}

// ProviderConfig holds webhook verification and outbound lookup settings.
// WebhookSecret is a PEM public key for conekta and an HMAC secret for the rest.
type ProviderConfig struct {
	WebhookSecret string
	APIKey        string
	BaseURL       string
}

func (p ProviderConfig) Enabled() bool { return p.WebhookSecret != "" || p.APIKey != "" }

var defaults = map[string]any{
	"app_env":                "dev",
	"log_level":              "info",
	"http_port":              8080,
	"grpc_port":              8081,
	"gateway_port":           8090,
	"store_backend":          BackendMemory,
	"postgres_host":          "localhost",
	"postgres_port":          5432,
	"postgres_user":          "storefront",
	"postgres_password":      "storefront",
	"postgres_db":            "storefront",
	"postgres_sslmode":       "disable",
	"postgres_max_open":      20,
	"postgres_max_idle":      5,
	"postgres_conn_lifetime": "30m",
	"kafka_brokers":          "",
	"kafka_topic":            "storefront.orders",
	"webhook_allow_unsigned": false,
	"webhook_max_body":       1 << 20,
	"jwt_secret":             "",
	"rate_rps":               10.0,
	"rate_burst":             20,
	"db_timeout":             "5s",
	"provider_timeout":       "5s",
	"order_service_addr":     "localhost:8081",
}

var providerKeys = []string{"stripe", "clip", "conekta", "mercadopago"}

// Load reads defaults, then the YAML file named by CONFIG_FILE, then the environment.
// Keys in the file are the lower-cased environment names, e.g. postgres_host.
func Load() (Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	for _, p := range providerKeys {
		v.SetDefault(p+"_webhook_secret", "")
		v.SetDefault(p+"_api_key", "")
		v.SetDefault(p+"_base_url", "")
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		AppEnv:      v.GetString("app_env"),
		LogLevel:    v.GetString("log_level"),
		HTTPPort:    v.GetInt("http_port"),
		GRPCPort:    v.GetInt("grpc_port"),
		GatewayPort: v.GetInt("gateway_port"),

		StoreBackend: strings.ToLower(v.GetString("store_backend")),
		Postgres: postgres.Config{
			Host:            v.GetString("postgres_host"),
			Port:            v.GetInt("postgres_port"),
			User:            v.GetString("postgres_user"),
			Pass:            v.GetString("postgres_password"),
			DB:              v.GetString("postgres_db"),
			SSLMode:         v.GetString("postgres_sslmode"),
			MaxOpenConns:    v.GetInt("postgres_max_open"),
			MaxIdleConns:    v.GetInt("postgres_max_idle"),
			ConnMaxLifetime: v.GetDuration("postgres_conn_lifetime"),
		},

		KafkaBrokers: v.GetString("kafka_brokers"),
		KafkaTopic:   v.GetString("kafka_topic"),

		Stripe:      providerConfig(v, "stripe"),
		Clip:        providerConfig(v, "clip"),
		Conekta:     providerConfig(v, "conekta"),
		MercadoPago: providerConfig(v, "mercadopago"),

		WebhookAllowUnsigned: v.GetBool("webhook_allow_unsigned"),
		WebhookMaxBody:       v.GetInt64("webhook_max_body"),

		JWTSecret: v.GetString("jwt_secret"),
		RateRPS:   v.GetFloat64("rate_rps"),
		RateBurst: v.GetInt("rate_burst"),

		DBTimeout:       v.GetDuration("db_timeout"),
		ProviderTimeout: v.GetDuration("provider_timeout"),

		OrderServiceAddr: v.GetString("order_service_addr"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func providerConfig(v *viper.Viper, name string) ProviderConfig {
	return ProviderConfig{
		WebhookSecret: v.GetString(name + "_webhook_secret"),
		APIKey:        v.GetString(name + "_api_key"),
		BaseURL:       v.GetString(name + "_base_url"),
	}
}

func (c Config) validate() error {
	switch c.StoreBackend {
	case BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("config: store_backend must be %q or %q, got %q", BackendMemory, BackendPostgres, c.StoreBackend)
	}
	if c.DBTimeout <= 0 || c.ProviderTimeout <= 0 {
		return fmt.Errorf("config: db_timeout and provider_timeout must be positive")
	}
	if c.AppEnv == "prod" && c.WebhookAllowUnsigned {
		return fmt.Errorf("config: webhook_allow_unsigned is not permitted in prod")
	}
	if c.AppEnv == "prod" && c.StoreBackend == BackendMemory {
		return fmt.Errorf("config: store_backend %q is not permitted in prod", BackendMemory)
	}
	return nil
}
