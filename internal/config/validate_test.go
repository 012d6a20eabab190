package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		DB: DBConfig{
			Host: "localhost", Port: 5432, User: "threadgenius",
			Password: "secret", Name: "threadgenius", SSLMode: "disable", MaxConns: 25,
		},
		Redis: RedisConfig{Host: "localhost", Port: 6379},
		JWT: JWTConfig{
			AccessSecret:  "access-secret-that-is-at-least-32-chars!",
			RefreshSecret: "refresh-secret-that-is-at-least-32-chr!",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 168 * time.Hour,
		},
		OpenAI: OpenAIConfig{
			APIKey:         "sk-test",
			Model:          "gpt-4o-mini",
			Temperature:    0.7,
			MaxTokens:      1000,
			RequestTimeout: 60 * time.Second,
		},
		Quota: QuotaConfig{FreeDailyLimit: 5},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_JWTAccessSecretTooShort(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.AccessSecret = "short"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "JWT_ACCESS_SECRET") {
		t.Fatalf("expected JWT_ACCESS_SECRET error, got: %v", err)
	}
}

func TestValidate_JWTSecretsMustDiffer(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.AccessSecret = "the-same-secret-that-is-at-least-32-chars!"
	cfg.JWT.RefreshSecret = "the-same-secret-that-is-at-least-32-chars!"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "must differ") {
		t.Fatalf("expected 'must differ' error, got: %v", err)
	}
}

func TestValidate_OpenAIKeyRequired(t *testing.T) {
	cfg := validConfig()
	cfg.OpenAI.APIKey = ""
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "OPENAI_API_KEY is required") {
		t.Fatalf("expected OPENAI_API_KEY required error, got: %v", err)
	}
}

func TestValidate_TemperatureOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.OpenAI.Temperature = 3.5
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "OPENAI_TEMPERATURE") {
		t.Fatalf("expected OPENAI_TEMPERATURE error, got: %v", err)
	}
}

func TestValidate_FreeDailyLimitPositive(t *testing.T) {
	cfg := validConfig()
	cfg.Quota.FreeDailyLimit = -1
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "QUOTA_FREE_DAILY_LIMIT") {
		t.Fatalf("expected QUOTA_FREE_DAILY_LIMIT error, got: %v", err)
	}
}

func TestValidate_DBPasswordRequired(t *testing.T) {
	cfg := validConfig()
	cfg.DB.Password = ""
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "DB_PASSWORD is required") {
		t.Fatalf("expected DB_PASSWORD required error, got: %v", err)
	}
}

func TestValidate_PortRanges(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Redis.Port = 99999
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for out-of-range ports")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") || !strings.Contains(err.Error(), "REDIS_PORT") {
		t.Fatalf("expected both port errors collected, got: %v", err)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.AccessSecret = ""
	cfg.OpenAI.APIKey = ""
	cfg.DB.Password = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"JWT_ACCESS_SECRET", "OPENAI_API_KEY", "DB_PASSWORD"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got: %v", want, err)
		}
	}
}
