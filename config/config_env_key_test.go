package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"auth": map[string]any{
			"hashPasswords": false,
			"bcryptCost":    10,
		},
		"receipt": map[string]any{
			"path": "transactions.txt",
		},
		"env": map[string]any{
			"serviceName": "cashreg",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "AUTH_HASHPASSWORDS", want: "auth.hashPasswords"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "RECEIPT_PATH", want: "receipt.path"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Receipt.Path != defaultReceiptPath {
		t.Fatalf("Receipt.Path = %q, want %q", cfg.Receipt.Path, defaultReceiptPath)
	}
	if cfg.Auth == nil || cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("Auth defaults not applied: %+v", cfg.Auth)
	}
	if cfg.Auth.HashPasswords {
		t.Fatal("HashPasswords should default to false")
	}
}
