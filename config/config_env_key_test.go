package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"stripe": map[string]any{
			"secretKey":          "",
			"monthlyAmountCents": 1000,
		},
		"search": map[string]any{
			"defaultRadiusMiles": 35,
		},
		"media": map[string]any{
			"publicBaseUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STRIPE_SECRETKEY", want: "stripe.secretKey"},
		{envKey: "STRIPE_MONTHLYAMOUNTCENTS", want: "stripe.monthlyAmountCents"},
		{envKey: "SEARCH_DEFAULTRADIUSMILES", want: "search.defaultRadiusMiles"},
		{envKey: "MEDIA_PUBLICBASEURL", want: "media.publicBaseUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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
