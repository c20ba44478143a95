package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StoreFirestore = "firestore"
	StoreMemory    = "memory"

	StorageGCS    = "gcs"
	StorageMemory = "memory"

	OTPStoreFirestore = "firestore"
	OTPStoreRedis     = "redis"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Firebase FirebaseConfig
	Store    StoreConfig
	Storage  StorageConfig
	OTP      OTPConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	Environment    string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	ShutdownWait   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func (s ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Environment, EnvProduction)
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type FirebaseConfig struct {
	ProjectID       string `envconfig:"FIREBASE_PROJECT_ID"`
	CredentialsFile string `envconfig:"FIREBASE_CREDENTIALS_FILE"`
	CredentialsJSON string `envconfig:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	StorageBucket   string `envconfig:"FIREBASE_STORAGE_BUCKET"`
}

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"firestore"`
}

type StorageConfig struct {
	Driver        string `envconfig:"STORAGE_DRIVER" default:"gcs"`
	PublicBaseURL string `envconfig:"STORAGE_PUBLIC_BASE_URL" default:"https://storage.googleapis.com"`
	ChunkSize     int64  `envconfig:"STORAGE_CHUNK_SIZE" default:"5242880"`
	MaxCompose    int    `envconfig:"STORAGE_MAX_COMPOSE" default:"32"`
	PublicRead    bool   `envconfig:"STORAGE_PUBLIC_READ" default:"true"`
}

type OTPConfig struct {
	Store      string        `envconfig:"OTP_STORE" default:"firestore"`
	TTL        time.Duration `envconfig:"OTP_TTL" default:"5m"`
	ExposeCode bool          `envconfig:"OTP_EXPOSE_CODE" default:"true"`
}

type RedisConfig struct {
	URL      string `envconfig:"REDIS_URL"`
	Address  string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
}

type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET"`
	Issuer string        `envconfig:"JWT_ISSUER" default:"nanocart"`
	TTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`
}

type UploadConfig struct {
	MaxFileSize int64 `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"52428800"`
	MaxFiles    int   `envconfig:"UPLOAD_MAX_FILES" default:"20"`
}

func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.Store.Driver {
	case StoreFirestore, StoreMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	switch c.Storage.Driver {
	case StorageGCS, StorageMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}
	switch c.OTP.Store {
	case OTPStoreFirestore, OTPStoreRedis:
	default:
		return fmt.Errorf("unsupported OTP_STORE %q", c.OTP.Store)
	}
	if c.usesFirebase() && c.Firebase.ProjectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required for the firestore store or gcs storage")
	}
	if c.Storage.Driver == StorageGCS && c.Firebase.StorageBucket == "" {
		return fmt.Errorf("FIREBASE_STORAGE_BUCKET is required for gcs storage")
	}
	if c.OTP.Store == OTPStoreRedis && c.Redis.URL == "" && c.Redis.Address == "" {
		return fmt.Errorf("REDIS_URL or REDIS_ADDR is required for the redis otp store")
	}
	if c.Storage.ChunkSize <= 0 {
		return fmt.Errorf("STORAGE_CHUNK_SIZE must be positive")
	}
	if c.Storage.MaxCompose < 2 || c.Storage.MaxCompose > 32 {
		return fmt.Errorf("STORAGE_MAX_COMPOSE must be between 2 and 32")
	}
	return nil
}

func (c *Config) usesFirebase() bool {
	return c.Store.Driver == StoreFirestore || c.Storage.Driver == StorageGCS
}

// UsesFirebase reports whether main needs to bootstrap the firebase app.
func (c *Config) UsesFirebase() bool {
	return c.usesFirebase()
}
