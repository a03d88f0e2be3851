package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type LoyaltyConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	LoyaltyDB    `yaml:"loyalty_db"`
	LogConfig    `yaml:"log_config"`
	RedisConfig  `yaml:"redis"`
	KafkaService `yaml:"kafka-service"`
	FiscalAPI    `yaml:"fiscal-api"`
	Station      `yaml:"station"`
	BotCallback  `yaml:"bot-callback"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type LoyaltyDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	GuardTTL time.Duration `yaml:"guard_ttl" env-default:"30s"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"check-events"`
}

// FiscalAPI describes how to reach the fiscal authority and how to map
// its response fields onto the canonical check. Field names vary by
// deployment, so the mapping lives in config rather than code.
type FiscalAPI struct {
	Timeout      time.Duration `yaml:"timeout" env-default:"10s"`
	FetchRetries int           `yaml:"fetch_retries" env-default:"3"`
	FetchBackoff time.Duration `yaml:"fetch_backoff" env-default:"500ms"`
	FieldMap     FieldMap      `yaml:"field_map"`
	TimeLayouts  []string      `yaml:"time_layouts"`
}

type FieldMap struct {
	FiscalID []string `yaml:"fiscal_id"`
	Amount   []string `yaml:"amount"`
	IssuedAt []string `yaml:"issued_at"`
}

type Station struct {
	Timezone string `yaml:"timezone" env-default:"Asia/Tashkent"`
	Currency string `yaml:"currency" env-default:"UZS"`
}

type BotCallback struct {
	URL string `yaml:"url"`
}

func MustLoad() *LoyaltyConfig {

	// Processing env config variable and file
	configPath := os.Getenv("LOYALTY_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("LOYALTY_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg LoyaltyConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
