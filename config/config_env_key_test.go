package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"auth": map[string]any{
			"accessTokenTtl": "168h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_AuthDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.AccessTokenTTL(); got != 7*24*time.Hour {
		t.Fatalf("AccessTokenTTL() = %v, want 168h", got)
	}
	if got := cfg.PBKDF2Iterations(); got != 10000 {
		t.Fatalf("PBKDF2Iterations() = %d, want 10000", got)
	}

	cfg.Auth = &AuthConfig{AccessTokenTTL: time.Hour, PBKDF2Iterations: 20000}

	if got := cfg.AccessTokenTTL(); got != time.Hour {
		t.Fatalf("AccessTokenTTL() = %v, want 1h", got)
	}
	if got := cfg.PBKDF2Iterations(); got != 20000 {
		t.Fatalf("PBKDF2Iterations() = %d, want 20000", got)
	}
}
