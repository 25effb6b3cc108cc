package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string        `mapstructure:"APP_PORT"`
	Env               string        `mapstructure:"ENV"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int           `mapstructure:"MAX_REQUESTS_PER_MIN"`
	PublicBaseURL     string        `mapstructure:"PUBLIC_BASE_URL"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	SessionTTL        time.Duration `mapstructure:"SESSION_TTL"`
	CookieSecure      bool          `mapstructure:"COOKIE_SECURE"`

	// Firebase project.
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseAPIKey          string `mapstructure:"FIREBASE_API_KEY"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseStorageBucket   string `mapstructure:"FIREBASE_STORAGE_BUCKET"`
	FirebaseDatabaseID      string `mapstructure:"FIREBASE_DATABASE_ID"`

	// Document store.
	DocumentBackend string `mapstructure:"DOCUMENT_BACKEND"`
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	MongoDatabase   string `mapstructure:"MONGO_DATABASE"`

	// File store.
	FileBackend         string `mapstructure:"FILE_BACKEND"`
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Staff push notifications.
	NotifyTopic string `mapstructure:"NOTIFY_TOPIC"`

	// Floating action targets.
	ContactPhone   string `mapstructure:"CONTACT_PHONE"`
	WhatsAppNumber string `mapstructure:"WHATSAPP_NUMBER"`
}

const (
	BackendFirestore  = "firestore"
	BackendMongo      = "mongo"
	BackendMemory     = "memory"
	BackendFirebase   = "firebase"
	BackendCloudinary = "cloudinary"
)

// Load builds the Config from config.yaml (if present), environment variables
// and defaults. Environment wins over the file, the file wins over defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("SESSION_TTL", "168h")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("FIREBASE_PROJECT_ID", "")
	v.SetDefault("FIREBASE_API_KEY", "")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	v.SetDefault("FIREBASE_STORAGE_BUCKET", "")
	v.SetDefault("FIREBASE_DATABASE_ID", "")
	v.SetDefault("DOCUMENT_BACKEND", BackendFirestore)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "keshwala")
	v.SetDefault("FILE_BACKEND", BackendFirebase)
	v.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	v.SetDefault("CLOUDINARY_API_KEY", "")
	v.SetDefault("CLOUDINARY_API_SECRET", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 1)
	v.SetDefault("REDIS_QUEUE_DB", 2)
	v.SetDefault("NOTIFY_TOPIC", "")
	v.SetDefault("CONTACT_PHONE", "+919876543210")
	v.SetDefault("WHATSAPP_NUMBER", "919876543210")
}

func (c *Config) validate() error {
	c.DocumentBackend = strings.ToLower(c.DocumentBackend)
	switch c.DocumentBackend {
	case BackendFirestore, BackendMongo, BackendMemory:
	default:
		return fmt.Errorf("config: unknown DOCUMENT_BACKEND %q", c.DocumentBackend)
	}
	c.FileBackend = strings.ToLower(c.FileBackend)
	switch c.FileBackend {
	case BackendFirebase, BackendCloudinary, BackendMemory:
	default:
		return fmt.Errorf("config: unknown FILE_BACKEND %q", c.FileBackend)
	}
	if c.MaxRequestsPerMin <= 0 {
		c.MaxRequestsPerMin = 100
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = 7 * 24 * time.Hour
	}
	return nil
}

// IsProduction checks if the environment is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// FirebaseEnabled reports whether enough is configured to build a Firebase app.
func (c *Config) FirebaseEnabled() bool {
	return c.FirebaseProjectID != ""
}
