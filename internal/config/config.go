package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type SettlementConfig struct {
	Env           string `yaml:"env" env-default:"local"`
	HTTPServer    `yaml:"http_server"`
	SettlementDB  `yaml:"settlement_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	StripeService `yaml:"stripe-service"`
	Settlement    `yaml:"settlement"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type SettlementDB struct {
	Dsn            string `yaml:"dsn" env:"SETTLEMENT_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"payout-events"`
}

type StripeService struct {
	APIKey         string `yaml:"api_key" env:"STRIPE_API_KEY"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env-default:"15"`
}

type Settlement struct {
	CooldownDays        int    `yaml:"cooldown_days" env-default:"7"`
	MinTransferCents    int64  `yaml:"min_transfer_cents" env-default:"50"`
	Currency            string `yaml:"currency" env-default:"usd"`
	MaxPageSize         int    `yaml:"max_page_size" env-default:"100"`
	PassIntervalMinutes int    `yaml:"pass_interval_minutes" env-default:"60"`
}

func MustLoad() *SettlementConfig {

	// Processing env config variable and file
	configPath := os.Getenv("SETTLEMENT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("SETTLEMENT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg SettlementConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
