package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "user"},
		},
		"pubsub":    map[string]any{"topicId": ""},
		"secretKey": map[string]any{"access": ""},
		"sweeper": map[string]any{
			"deadStockDays":     180,
			"staleDeliveryDays": 6,
		},
		"storage": map[string]any{"bucketUrl": "mem://"},
	}

	cases := map[string]string{
		"POSTGRES_SSLMODE":            "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME":    "postgres.master.userName",
		"PUBSUB_TOPICID":              "pubsub.topicId",
		"SECRETKEY_ACCESS":            "secretKey.access",
		"SWEEPER_DEADSTOCKDAYS":       "sweeper.deadStockDays",
		"SWEEPER_STALEDELIVERYDAYS":   "sweeper.staleDeliveryDays",
		"STORAGE_BUCKETURL":           "storage.bucketUrl",
		"STORAGE_MAXUPLOADSIZE":       "storage.maxuploadsize",
		"UNKNOWN_SECTION_NESTED_FLAG": "unknown.section.nested.flag",
	}

	for envKey, want := range cases {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte("sweeper:\n  enabled: false\n  interval: 1h\n  deadStockDays: 180\nstorage:\n  bucketUrl: mem://\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inventory-test.yaml"), yamlBody, 0o600))

	pwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	t.Setenv("SWEEPER_ENABLED", "true")
	t.Setenv("SWEEPER_DEADSTOCKDAYS", "90")
	t.Setenv("SWEEPER_INTERVAL", "15m")

	cfg, err := LoadWithEnv[Config]("inventory-test", rel)
	require.NoError(t, err)
	require.NotNil(t, cfg.Sweeper)
	require.NotNil(t, cfg.Storage)

	assert.True(t, cfg.Sweeper.Enabled)
	assert.Equal(t, 90, cfg.Sweeper.DeadStockDays)
	assert.Equal(t, 15*time.Minute, cfg.Sweeper.Interval)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", "testdata-missing")
	assert.Error(t, err)
}
