package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the processor's deployment settings. Both integrations are
// optional: without brokers no events are published, without a database
// URL the snapshot is only written to stdout.
type Config struct {
	KafkaBrokers []string
	KafkaTopic   string
	DatabaseURL  string
}

const defaultKafkaTopic = "account_locked"

// Load reads configuration from the environment, after loading a local
// .env file if one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{
		KafkaTopic:  os.Getenv("KAFKA_TOPIC"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = defaultKafkaTopic
	}

	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg, nil
}
