package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != EnvDevelopment {
		t.Errorf("expected default environment %q, got %q", EnvDevelopment, cfg.Environment)
	}
	if cfg.ServiceName != "wardrobe" {
		t.Errorf("unexpected default service name: %q", cfg.ServiceName)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("unexpected default listen addr: %q", cfg.ListenAddr)
	}
	if cfg.MinioBucket != "wardrobe-images" {
		t.Errorf("unexpected default bucket: %q", cfg.MinioBucket)
	}
	// Observability stays off until explicitly configured.
	if cfg.OtelEndpoint != "" {
		t.Errorf("expected empty default otel endpoint, got %q", cfg.OtelEndpoint)
	}
	if cfg.SentryDSN != "" {
		t.Errorf("expected empty default sentry DSN, got %q", cfg.SentryDSN)
	}
}

func TestLoad_ObservabilityEnvOverride(t *testing.T) {
	t.Setenv("OTEL_ENDPOINT", "http://collector:4318")
	t.Setenv("SENTRY_DSN", "https://key@sentry.example.com/1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OtelEndpoint != "http://collector:4318" {
		t.Errorf("unexpected otel endpoint: %q", cfg.OtelEndpoint)
	}
	if cfg.SentryDSN != "https://key@sentry.example.com/1" {
		t.Errorf("unexpected sentry DSN: %q", cfg.SentryDSN)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("MINIO_BUCKET", "test-bucket")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected log level warn, got %q", cfg.LogLevel)
	}
	if cfg.MinioBucket != "test-bucket" {
		t.Errorf("expected bucket test-bucket, got %q", cfg.MinioBucket)
	}
}

func TestValidateForProduction_NonProductionNoop(t *testing.T) {
	cfg := &Config{Environment: EnvDevelopment}
	if err := ValidateForProduction(cfg); err != nil {
		t.Fatalf("expected nil for development config, got %v", err)
	}
}

func TestValidateForProduction_RejectsWeakSettings(t *testing.T) {
	cfg := &Config{
		Environment:          EnvProduction,
		SessionAuthKey:       "short",
		SessionEncryptionKey: "short",
		MinioRootUser:        "minioadmin",
		MinioRootPassword:    "minioadmin",
		LogLevel:             "debug",
	}
	if err := ValidateForProduction(cfg); err == nil {
		t.Fatal("expected validation error for weak production config")
	}
}

func TestValidateForProduction_AcceptsStrongSettings(t *testing.T) {
	cfg := &Config{
		Environment:          EnvProduction,
		SessionAuthKey:       "auth-key-that-is-32-bytes-long!!",
		SessionEncryptionKey: "enc-key-16-bytes",
		MinioRootUser:        "wardrobe-svc",
		MinioRootPassword:    "generated-password",
		LogLevel:             "info",
	}
	if err := ValidateForProduction(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
