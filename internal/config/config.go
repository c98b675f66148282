package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	App       AppConfig       `yaml:"app"`
	JWT       JWTConfig       `yaml:"jwt"`
	Email     EmailConfig     `yaml:"email"`
	Registry  RegistryConfig  `yaml:"registry"`
	AWS       AWSConfig       `yaml:"aws"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// AppConfig holds the public-facing application settings
type AppConfig struct {
	// BaseURL is the web app origin used to build verification links
	BaseURL string `yaml:"base_url"`
}

// JWTConfig holds the verification token signing secret
type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// EmailConfig holds email transport configuration
type EmailConfig struct {
	APIKey    string `yaml:"api_key"`
	From      string `yaml:"from"`
	ContactTo string `yaml:"contact_to"`
}

// RegistryConfig holds used-token registry configuration.
// Driver is "memory" (default) or "postgres".
type RegistryConfig struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// AWSConfig holds optional S3 hosting for dog images
type AWSConfig struct {
	Region    string `yaml:"region"`
	S3Bucket  string `yaml:"s3_bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Endpoint  string `yaml:"endpoint"` // custom endpoint for S3-compatible storage
}

// RateLimitConfig holds per-IP rate limits for the two boop endpoints
type RateLimitConfig struct {
	SendRequests    int `yaml:"send_requests"`
	SendWindowSec   int `yaml:"send_window_sec"`
	VerifyRequests  int `yaml:"verify_requests"`
	VerifyWindowSec int `yaml:"verify_window_sec"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// DSN returns the PostgreSQL connection string for the registry
func (c *RegistryConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func (c *Config) applyDefaults() {
	if c.Registry.Driver == "" {
		c.Registry.Driver = "memory"
	}
	// 10 sends per 15 minutes, 20 verifications per minute
	if c.RateLimit.SendRequests == 0 {
		c.RateLimit.SendRequests = 10
	}
	if c.RateLimit.SendWindowSec == 0 {
		c.RateLimit.SendWindowSec = 900
	}
	if c.RateLimit.VerifyRequests == 0 {
		c.RateLimit.VerifyRequests = 20
	}
	if c.RateLimit.VerifyWindowSec == 0 {
		c.RateLimit.VerifyWindowSec = 60
	}
}
