package app

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeesConfig(t *testing.T) {
	fees, err := FeesConfig{DeliveryFee: "49.50", FreeDeliveryThreshold: "2500"}.Fees()
	require.NoError(t, err)
	assert.True(t, fees.StandardDeliveryFee.Equal(decimal.RequireFromString("49.50")))
	assert.True(t, fees.FreeDeliveryThreshold.Equal(decimal.NewFromInt(2500)))

	for _, c := range []FeesConfig{
		{DeliveryFee: "abc", FreeDeliveryThreshold: "500"},
		{DeliveryFee: "-1", FreeDeliveryThreshold: "500"},
		{DeliveryFee: "50", FreeDeliveryThreshold: "-500"},
		{DeliveryFee: "50", FreeDeliveryThreshold: ""},
	} {
		_, err := c.Fees()
		assert.Error(t, err, c)
	}
}

func TestApplyPlatformDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://platform/db")
	t.Setenv("JWT_SECRET", "platform-secret")
	t.Setenv("PORT", "9000")

	cfg := Config{Addr: "0.0.0.0:8080"}
	cfg.applyPlatformDefaults()
	assert.Equal(t, "postgres://platform/db", cfg.DatabaseURL)
	assert.Equal(t, "platform-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr)

	cfg = Config{Addr: "127.0.0.1:7000", DatabaseURL: "postgres://explicit/db"}
	cfg.Auth.JWTSecret = "explicit"
	cfg.applyPlatformDefaults()
	assert.Equal(t, "postgres://explicit/db", cfg.DatabaseURL)
	assert.Equal(t, "explicit", cfg.Auth.JWTSecret)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
}
