package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:6379", cfg.RedisAddr)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, "€", cfg.CurrencySymbol)
	assert.Equal(t, ",", cfg.CurrencyDecimal)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CURRENCY", "USD")
	t.Setenv("CART_STORAGE_KEY", "shop:cart:session")

	cfg, err := Load(zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "shop:cart:session", cfg.CartStorageKey)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load(zap.NewNop())
	assert.Error(t, err)

	t.Setenv("REDIS_DB", "0")
	t.Setenv("CURRENCY", "EURO")

	_, err = Load(zap.NewNop())
	assert.Error(t, err)
}
