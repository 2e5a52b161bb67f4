package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Alert    AlertConfig
	Push     PushConfig
	Email    EmailConfig
	Call     CallConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// AlertConfig contains SOS fan-out configuration
type AlertConfig struct {
	SearchRadiusMeters float64 `json:"search_radius_meters"` // Radius in meters for the nearby-user search
	GeohashPrecision   uint    `json:"geohash_precision"`    // Character precision of stored geohashes
}

// PushConfig contains Web Push (VAPID) configuration
type PushConfig struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subscriber      string // mailto: contact address required by push services
	TTLSeconds      int
}

// EmailConfig contains transactional email configuration
type EmailConfig struct {
	ServerToken  string
	AccountToken string
	SenderEmail  string
}

// CallConfig contains voice call gateway configuration
type CallConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	BaseURL    string
	TimeoutSec int
}
