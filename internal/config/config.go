package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// AuthRateLimit запросов в секунду с одного IP к эндпоинтам аутентификации.
	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT" envDefault:"5"`
	AuthRateBurst int     `env:"AUTH_RATE_BURST" envDefault:"10"`

	Mpesa    MpesaConfig `envPrefix:"MPESA_"`
	Mail     MailConfig
	Kafka    KafkaConfig    `envPrefix:"KAFKA_"`
	Dispatch DispatchConfig `envPrefix:"DISPATCH_"`

	OutboundWebhookURL string `env:"OUTBOUND_WEBHOOK_URL"`
}

type MpesaConfig struct {
	ConsumerKey    string `env:"CONSUMER_KEY"`
	ConsumerSecret string `env:"CONSUMER_SECRET"`
	ShortCode      string `env:"SHORTCODE"`
	Passkey        string `env:"PASSKEY"`
	// Environment sandbox или production.
	Environment string `env:"ENVIRONMENT" envDefault:"sandbox"`
	CallbackURL string `env:"CALLBACK_URL"`
}

type MailConfig struct {
	ResendAPIKey string `env:"RESEND_API_KEY"`
	From         string `env:"MAIL_FROM" envDefault:"Storefront <orders@storefront.local>"`
}

type KafkaConfig struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC"   envDefault:"payments"`
}

type DispatchConfig struct {
	Workers uint `env:"WORKERS" envDefault:"4"`
	Batch   uint `env:"BATCH"   envDefault:"50"`
}

// EmailEnabled письма отправляются, только если задан ключ Resend.
func (c *Config) EmailEnabled() bool {
	return c.Mail.ResendAPIKey != ""
}

func (c *Config) WebhookEnabled() bool {
	return c.OutboundWebhookURL != ""
}

func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

// LoadConfig читает конфигурацию из окружения и флагов командной строки args. Значения окружения
// имеют приоритет над флагами.
func LoadConfig(args []string) (*Config, error) {
	var envConfig Config
	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	var flagsConfig Config
	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config, args []string) error {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")

	return fs.Parse(args) //nolint:wrapcheck
}

// mergeConfig дополняет конфиг из окружения значениями флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
