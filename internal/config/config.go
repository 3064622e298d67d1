package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the worker reads from the environment.
type Config struct {
	DBURL       string `mapstructure:"DB_URL"`
	RabbitMQURL string `mapstructure:"RABBITMQ_URL"`

	R2AccountID string `mapstructure:"R2_ACCOUNT_ID"`
	R2Bucket    string `mapstructure:"R2_BUCKET"`
	R2AccessKey string `mapstructure:"R2_ACCESS_KEY"`
	R2SecretKey string `mapstructure:"R2_SECRET_KEY"`

	SessionsQueue    string `mapstructure:"SESSIONS_QUEUE"`
	UpdatesExchange  string `mapstructure:"UPDATES_EXCHANGE"`
	WorkerCount      int    `mapstructure:"WORKER_COUNT"`
	DownloadAttempts int    `mapstructure:"DOWNLOAD_ATTEMPTS"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`

	PDFDebug               bool `mapstructure:"PDF_DEBUG"`
	SkillsStopAtHeading    bool `mapstructure:"SKILLS_STOP_AT_HEADING"`
	SkillsStrictSeparators bool `mapstructure:"SKILLS_STRICT_SEPARATORS"`
}

var required = []string{
	"DB_URL",
	"RABBITMQ_URL",
	"R2_ACCOUNT_ID",
	"R2_BUCKET",
	"R2_ACCESS_KEY",
	"R2_SECRET_KEY",
}

var defaults = map[string]any{
	"SESSIONS_QUEUE":           "sessions",
	"UPDATES_EXCHANGE":         "session_updates",
	"WORKER_COUNT":             3,
	"DOWNLOAD_ATTEMPTS":        3,
	"LOG_LEVEL":                "info",
	"PDF_DEBUG":                false,
	"SKILLS_STOP_AT_HEADING":   false,
	"SKILLS_STRICT_SEPARATORS": false,
}

// Load reads an optional .env file from the working directory, then the
// process environment, which wins over the file.
func Load(envFiles ...string) (Config, error) {
	// a missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.AutomaticEnv()
	for _, key := range required {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	values := map[string]string{
		"DB_URL":        c.DBURL,
		"RABBITMQ_URL":  c.RabbitMQURL,
		"R2_ACCOUNT_ID": c.R2AccountID,
		"R2_BUCKET":     c.R2Bucket,
		"R2_ACCESS_KEY": c.R2AccessKey,
		"R2_SECRET_KEY": c.R2SecretKey,
	}
	var missing []string
	for _, key := range required {
		if strings.TrimSpace(values[key]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("empty %s in environment", strings.Join(missing, ", "))
	}
	if c.WorkerCount < 1 {
		return errors.New("WORKER_COUNT must be at least 1")
	}
	if c.DownloadAttempts < 1 {
		return errors.New("DOWNLOAD_ATTEMPTS must be at least 1")
	}
	return nil
}
