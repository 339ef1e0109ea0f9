package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PRACTICUM_TOKEN", "PRACTICUM_ENDPOINT", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID",
		"POLL_INTERVAL", "SQLITE_PATH", "DIGEST_CRON", "LOG_FILE", "HTTPS_PROXY",
	} {
		// Load ignores empty values, so this neutralizes any ambient env.
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Practicum.Endpoint != "https://practicum.yandex.ru/api/user_api/homework_statuses/" {
		t.Errorf("endpoint = %q", cfg.Practicum.Endpoint)
	}
	if cfg.PollInterval() != 600*time.Second {
		t.Errorf("poll interval = %v, want 10m", cfg.PollInterval())
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", cfg.Timeout())
	}
	if cfg.Log.File != "program.log" {
		t.Errorf("log file = %q", cfg.Log.File)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
practicum:
  token: file-token
  poll_interval_seconds: 30
telegram:
  bot_token: file-bot
  chat_id: "100"
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PRACTICUM_TOKEN", "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Practicum.Token != "env-token" {
		t.Errorf("token = %q, env must win over file", cfg.Practicum.Token)
	}
	if cfg.Telegram.BotToken != "file-bot" || cfg.Telegram.ChatID != "100" {
		t.Errorf("telegram = %+v", cfg.Telegram)
	}
	if cfg.PollInterval() != 30*time.Second {
		t.Errorf("poll interval = %v", cfg.PollInterval())
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation failure without tokens")
	}

	cfg.Practicum.Token = "a"
	cfg.Telegram.BotToken = "b"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation failure without chat id")
	}

	cfg.Telegram.ChatID = "c"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
