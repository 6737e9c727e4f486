package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_NAME", "PORT", "OPERATOR_NAME", "OPERATOR_PIN_HASH", "AUTH_DISABLED", "LOW_STOCK_THRESHOLD", "CRITICAL_STOCK_THRESHOLD"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "Dokandar", cfg.OperatorName)
	assert.False(t, cfg.AuthDisabled)
	assert.Equal(t, float64(10), cfg.LowStockThreshold)
	assert.Equal(t, float64(5), cfg.CriticalStockThreshold)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("AUTH_DISABLED", "true")
	t.Setenv("LOW_STOCK_THRESHOLD", "15")
	t.Setenv("CRITICAL_STOCK_THRESHOLD", "nope")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.AuthDisabled)
	assert.Equal(t, float64(15), cfg.LowStockThreshold)
	assert.Equal(t, float64(5), cfg.CriticalStockThreshold)
}
