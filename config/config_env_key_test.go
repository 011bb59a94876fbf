package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"rewards": map[string]any{
			"asyncProcessing": false,
		},
		"routing": map[string]any{
			"balancedValueThreshold": 400,
		},
		"export": map[string]any{
			"bucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REWARDS_ASYNCPROCESSING", want: "rewards.asyncProcessing"},
		{envKey: "ROUTING_BALANCEDVALUETHRESHOLD", want: "routing.balancedValueThreshold"},
		{envKey: "EXPORT_BUCKETURL", want: "export.bucketUrl"},
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

func TestApplyDefaults_FillsRoutingAndSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 25, cfg.Routing.MaxWaypoints)
	assert.InDelta(t, 400.0, cfg.Routing.BalancedValueThreshold, 1e-9)
	assert.InDelta(t, defaultPendingSearchRadiusM, cfg.Routing.PendingSearchRadiusM, 1e-9)
	assert.NotNil(t, cfg.Rewards)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.Export)
	assert.NotNil(t, cfg.Tracing)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Routing: &RoutingConfig{MaxWaypoints: 10, BalancedValueThreshold: 250}}

	applyDefaults(cfg)

	assert.Equal(t, 10, cfg.Routing.MaxWaypoints)
	assert.InDelta(t, 250.0, cfg.Routing.BalancedValueThreshold, 1e-9)
}
