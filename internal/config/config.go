package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppName         string
	Port            string
	OperatorName    string
	OperatorPINHash string // bcrypt hash, see cmd/hash-pin
	AuthDisabled    bool

	LowStockThreshold      float64
	CriticalStockThreshold float64
}

// Load reads the process environment. Call godotenv.Load first to pick up .env.
func Load() Config {
	return Config{
		AppName:                env("APP_NAME", "Baki Khata POS v1.0"),
		Port:                   env("PORT", "3000"),
		OperatorName:           env("OPERATOR_NAME", "Dokandar"),
		OperatorPINHash:        os.Getenv("OPERATOR_PIN_HASH"),
		AuthDisabled:           envBool("AUTH_DISABLED", false),
		LowStockThreshold:      envFloat("LOW_STOCK_THRESHOLD", 10),
		CriticalStockThreshold: envFloat("CRITICAL_STOCK_THRESHOLD", 5),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: %s=%q is not a bool, using %v", k, v, def)
		return def
	}
	return b
}

func envFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %v", k, v, def)
		return def
	}
	return f
}
