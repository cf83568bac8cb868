package config

import (
	"testing"
)

func TestEnsureSecrets_GeneratesMissingValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	if err := cfg.ensureSecrets(); err != nil {
		t.Fatalf("ensureSecrets() error = %v", err)
	}

	if cfg.Security.SessionSecret == "" {
		t.Fatal("session secret should be auto-generated")
	}
	if cfg.Security.EncryptionKey == "" {
		t.Fatal("encryption key should be auto-generated")
	}
	// 32 random bytes hex-encoded -> 64 chars.
	if len(cfg.Security.SessionSecret) != 64 {
		t.Fatalf("session secret length = %d, want 64", len(cfg.Security.SessionSecret))
	}
	if len(cfg.Security.EncryptionKey) != 64 {
		t.Fatalf("encryption key length = %d, want 64", len(cfg.Security.EncryptionKey))
	}
}

func TestEnsureSecrets_PreservesProvidedValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Security: SecurityConfig{
			SessionSecret: "abcdefghijklmnopqrstuvwxyzABCDEF123456", // 38 chars
			EncryptionKey: "keep-existing-encryption-key",
		},
	}

	if err := cfg.ensureSecrets(); err != nil {
		t.Fatalf("ensureSecrets() error = %v", err)
	}

	if got := cfg.Security.SessionSecret; got != "abcdefghijklmnopqrstuvwxyzABCDEF123456" {
		t.Fatalf("session secret changed unexpectedly: %q", got)
	}
	if got := cfg.Security.EncryptionKey; got != "keep-existing-encryption-key" {
		t.Fatalf("encryption key changed unexpectedly: %q", got)
	}
}

func TestLoad_SecretsFromEnvSurviveRestart(t *testing.T) {
	// An operator-provided secret must reach the config verbatim; if it does
	// not, every boot mints a new signing key and invalidates all sessions.
	const secret = "operator-session-secret-0123456789abcdef"
	t.Setenv("SECURITY_SESSION_SECRET", secret)
	t.Setenv("SECURITY_ENCRYPTION_KEY", "operator-encryption-key-0123456789abcdef")

	for i := 0; i < 2; i++ {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() #%d error = %v", i+1, err)
		}
		if cfg.Security.SessionSecret != secret {
			t.Fatalf("Load() #%d Security.SessionSecret = %q, want %q", i+1, cfg.Security.SessionSecret, secret)
		}
		if cfg.Security.EncryptionKey != "operator-encryption-key-0123456789abcdef" {
			t.Fatalf("Load() #%d Security.EncryptionKey = %q, want the env value", i+1, cfg.Security.EncryptionKey)
		}
	}
}

func TestConfigValidate_RejectsShortSessionSecret(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Security: SecurityConfig{
			SessionSecret: "short-secret",
		},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() expected error for short session secret, got nil")
	}
}
