package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Practicum struct {
		Token           string `yaml:"token"`
		Endpoint        string `yaml:"endpoint"`
		PollIntervalSec int    `yaml:"poll_interval_seconds"`
		TimeoutSec      int    `yaml:"timeout_seconds"`
	} `yaml:"practicum"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		DigestCron string `yaml:"digest_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log struct {
		File string `yaml:"file"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PRACTICUM_TOKEN"); v != "" {
		cfg.Practicum.Token = v
	}
	if v := os.Getenv("PRACTICUM_ENDPOINT"); v != "" {
		cfg.Practicum.Endpoint = v
	}
	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			cfg.Practicum.PollIntervalSec = sec
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("DIGEST_CRON"); v != "" {
		cfg.Schedule.DigestCron = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Practicum.Endpoint == "" {
		cfg.Practicum.Endpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	}
	if cfg.Practicum.PollIntervalSec == 0 {
		cfg.Practicum.PollIntervalSec = 600
	}
	if cfg.Practicum.TimeoutSec == 0 {
		cfg.Practicum.TimeoutSec = 10
	}
	if cfg.Schedule.DigestCron == "" {
		cfg.Schedule.DigestCron = "0 0 9 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/homework_sentinel.db"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = "program.log"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Practicum.Token == "" {
		return fmt.Errorf("practicum.token is required")
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	return nil
}

// PollInterval returns the fixed sleep between poll cycles.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Practicum.PollIntervalSec) * time.Second
}

// Timeout returns the per-request timeout for the Practicum API.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Practicum.TimeoutSec) * time.Second
}
