package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.Sweeper)
	require.NotNil(t, cfg.Storage)
	require.NotNil(t, cfg.QRCode)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 180, cfg.Sweeper.DeadStockDays)
	assert.Equal(t, 6, cfg.Sweeper.StaleDeliveryDays)
	assert.Equal(t, time.Hour, cfg.Sweeper.Interval)
	assert.False(t, cfg.Sweeper.Enabled)
	assert.Equal(t, int64(10<<20), cfg.Storage.MaxUploadSize)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{BcryptCost: 4, AccessTokenTTL: time.Minute},
		Sweeper: &SweeperConfig{Enabled: true, Interval: time.Minute, DeadStockDays: 90, StaleDeliveryDays: 2},
		Storage: &StorageConfig{BucketURL: "mem://", MaxUploadSize: 1024},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, 90, cfg.Sweeper.DeadStockDays)
	assert.Equal(t, 2, cfg.Sweeper.StaleDeliveryDays)
	assert.True(t, cfg.Sweeper.Enabled)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, int64(1024), cfg.Storage.MaxUploadSize)
}
