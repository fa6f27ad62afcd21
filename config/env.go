package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Server
	Port                  string
	CorsOrigins           []string
	RequestTimeoutSeconds int

	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string

	// Authentication
	JWTSecret string

	// Discord
	DiscordBotToken  string
	DiscordChannelID string

	// Kafka
	KafkaBroker string
	KafkaTopic  string
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port: getEnvWithDefault("PORT", "8000"),
		CorsOrigins: splitList(getEnvWithDefault("CORS_ORIGINS",
			"http://localhost,http://localhost:3000")),
		RequestTimeoutSeconds: getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 10),

		// Database - required
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getRequiredEnv("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),

		// JWT - required
		JWTSecret: getRequiredEnv("JWT_SECRET", "dummyjwt"),

		// Discord - optional, notifications are skipped without a token
		DiscordBotToken:  os.Getenv("DISCORD_BOT_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),

		// Kafka - optional, publishing is skipped without a broker
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  getEnvWithDefault("KAFKA_TOPIC", "club-registrations"),
	}
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

// Helper functions
// getRequiredEnv falls back to devDefault outside of production only.
func getRequiredEnv(key string, devDefault string) string {
	value := os.Getenv(key)
	if value == "" && IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	if value == "" {
		return devDefault
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}

// IsDevelopment returns true if running in development
func IsDevelopment() bool {
	return !IsProduction()
}
