package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel       int      `env:"LOG_LEVEL" envDefault:"0"`
	LogFormat      string   `env:"LOG_FORMAT" envDefault:"text"`
	ServerURL      string   `env:"SERVER_URL" envDefault:"127.0.0.1:8080"`
	HTTP           HTTP     `envPrefix:"HTTP_"`
	Database       Database `envPrefix:"DATABASE_"`
	UserCollection string   `env:"USER_COLLECTION_NAME" envDefault:"users"`
	TaskCollection string   `env:"TASK_COLLECTION_NAME" envDefault:"tasks"`
	StrictDecode   bool     `env:"STRICT_DECODE" envDefault:"false"`
	Storage        Storage  `envPrefix:"MINIO_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	EnableHTTPS        bool          `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string        `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string        `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	AllowedOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Database contains document store connection parameters.
type Database struct {
	Driver string `env:"DRIVER" envDefault:"mongo"`
	URL    string `env:"URL" envDefault:"mongodb://localhost:27017"`
	Name   string `env:"NAME" envDefault:"taskboard"`
}

// Storage contains object storage parameters used by snapshot export.
type Storage struct {
	Enabled   bool   `env:"ENABLED" envDefault:"false"`
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"taskboard-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"taskboard-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"taskboard-snapshots"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// NewConfig loads the given dotenv files (".env" when none are given) and then
// parses configuration from environment variables. Missing files are skipped
// and variables already set in the environment are never overridden.
func NewConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, name := range envFiles {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
