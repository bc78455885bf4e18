package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Order flow modes: "instant" collapses the whole fulfillment into the
// placement transaction (demo flow); "staged" leaves the order in CREATED
// and drives it through the normal transitions.
const (
	FlowInstant = "instant"
	FlowStaged  = "staged"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	OrderFlow string

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	// .env is optional (tests, containers)
	_ = godotenv.Load()

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "quickbite.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        24 * time.Hour,
		OrderFlow:     getEnv("ORDER_FLOW", FlowInstant),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@quickbite.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin1234"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
