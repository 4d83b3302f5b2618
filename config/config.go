package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	Env        string

	// Settlement simulator tuning. TestMode pins the delay and outcome for
	// deterministic tests; otherwise the delay is drawn uniformly from
	// [ProcessingDelayMin, ProcessingDelayMax] and the outcome from the
	// per-method success rates.
	TestMode            bool
	TestProcessingDelay time.Duration
	TestPaymentSuccess  bool
	ProcessingDelayMin  time.Duration
	ProcessingDelayMax  time.Duration
	UPISuccessRate      float64
	CardSuccessRate     float64
	SettlementWorkers   int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// .env is optional; container deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "paygate"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       getEnv("PORT", "8000"),
		Env:        os.Getenv("ENV"),

		TestMode:            getEnvBool("TEST_MODE", false),
		TestProcessingDelay: getEnvMillis("TEST_PROCESSING_DELAY", 1000),
		TestPaymentSuccess:  getEnvBool("TEST_PAYMENT_SUCCESS", true),
		ProcessingDelayMin:  getEnvMillis("PROCESSING_DELAY_MIN", 5000),
		ProcessingDelayMax:  getEnvMillis("PROCESSING_DELAY_MAX", 10000),
		UPISuccessRate:      getEnvFloat("UPI_SUCCESS_RATE", 0.90),
		CardSuccessRate:     getEnvFloat("CARD_SUCCESS_RATE", 0.95),
		SettlementWorkers:   getEnvInt("SETTLEMENT_WORKERS", 8),
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvMillis(key string, fallbackMillis int) time.Duration {
	return time.Duration(getEnvInt(key, fallbackMillis)) * time.Millisecond
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
