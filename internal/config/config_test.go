package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("APP_PORT", "")
		t.Setenv("CATALOG_SOURCE", "")
		t.Setenv("CART_DB_PATH", "")

		cfg := LoadConfig()

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "./data/products.json", cfg.CatalogSource)
		assert.Equal(t, "./data/cart.db", cfg.CartDBPath)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "production")
		t.Setenv("CATALOG_SOURCE", "https://cdn.example.com/products.json")
		t.Setenv("CART_DB_PATH", "/tmp/cart.db")

		cfg := LoadConfig()

		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "production", cfg.AppEnv)
		assert.Equal(t, "https://cdn.example.com/products.json", cfg.CatalogSource)
		assert.Equal(t, "/tmp/cart.db", cfg.CartDBPath)
	})
}
