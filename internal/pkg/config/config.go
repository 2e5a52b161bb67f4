package config

import (
	"log"
	"os"
	"strconv"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/joho/godotenv"
)

// InitConfig loads configuration from an env file in local environments
// and from the process environment everywhere else.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "sanchaar-api")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "digi-sanchaar")

	// Alert config
	configs.Alert.SearchRadiusMeters = GetEnvAsFloat("ALERT_SEARCH_RADIUS_METERS", 5000)
	// Precision bounds the length of stored geohash members; out-of-range
	// values would produce members no planned range can match.
	precision := GetEnvAsInt("ALERT_GEOHASH_PRECISION", 9)
	if precision < 1 || precision > 9 {
		precision = 9
	}
	configs.Alert.GeohashPrecision = uint(precision)

	// Push gateway config
	configs.Push.VAPIDPublicKey = GetEnv("PUSH_VAPID_PUBLIC_KEY", "")
	configs.Push.VAPIDPrivateKey = GetEnv("PUSH_VAPID_PRIVATE_KEY", "")
	configs.Push.Subscriber = GetEnv("PUSH_SUBSCRIBER", "")
	configs.Push.TTLSeconds = GetEnvAsInt("PUSH_TTL_SECONDS", 60)

	// Email gateway config
	configs.Email.ServerToken = GetEnv("EMAIL_SERVER_TOKEN", "")
	configs.Email.AccountToken = GetEnv("EMAIL_ACCOUNT_TOKEN", "")
	configs.Email.SenderEmail = GetEnv("EMAIL_SENDER", "")

	// Call gateway config
	configs.Call.AccountSID = GetEnv("CALL_ACCOUNT_SID", "")
	configs.Call.AuthToken = GetEnv("CALL_AUTH_TOKEN", "")
	configs.Call.FromNumber = GetEnv("CALL_FROM_NUMBER", "")
	configs.Call.BaseURL = GetEnv("CALL_BASE_URL", "https://api.twilio.com")
	configs.Call.TimeoutSec = GetEnvAsInt("CALL_TIMEOUT_SEC", 15)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
