package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// MinJWTSecretLen is the minimum signing key length in bytes (256 bits for
// HMAC-SHA256). Startup fails on anything shorter; the key is never a
// compiled-in literal.
const MinJWTSecretLen = 32

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"jwt"`

	Storage struct {
		BasePath string `yaml:"base_path"` // Root for uploaded credential files
		BaseURL  string `yaml:"base_url"`  // Public URL base
	} `yaml:"storage"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

var AppConfig *Config

// LoadConfig populates AppConfig from environment variables when
// DATABASE_URL is set, otherwise from the yaml file at CONFIG_PATH
// (default config/config.yaml). A .env file is loaded best-effort first.
func LoadConfig() {
	_ = godotenv.Load()

	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTLHours = 24
		cfg.Storage.BasePath = envOr("UPLOAD_DIR", "./uploads")
		cfg.Storage.BaseURL = "/api/files"
		cfg.CORS.AllowedOrigins = splitOrigins(envOr("CORS_ORIGINS", "*"))
	} else {
		configPath := envOr("CONFIG_PATH", "config/config.yaml")

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	AppConfig = &cfg
}

// Validate enforces the settings the server cannot run without.
func Validate(cfg *Config) error {
	if cfg.Database.DSN == "" {
		return errors.New("database url is required")
	}
	if cfg.JWT.Secret == "" {
		return errors.New("jwt secret is required")
	}
	if len(cfg.JWT.Secret) < MinJWTSecretLen {
		return fmt.Errorf("jwt secret must be at least %d bytes, got %d", MinJWTSecretLen, len(cfg.JWT.Secret))
	}
	return nil
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.JWT.TTLHours == 0 {
		cfg.JWT.TTLHours = 24
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
