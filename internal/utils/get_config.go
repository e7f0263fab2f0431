package utils

import (
	"errors"
	"fmt"
	"log"
	"os"
	"reflect"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort      string `yaml:"APP_PORT"`
	CORSOrigin   string `yaml:"CORS_ORIGIN"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX"`
	Metrics      bool   `yaml:"METRICS_ENABLED"`
	LogLevel     string `yaml:"LOG_LEVEL"`

	// Database configuration
	DBType     string `yaml:"DB_TYPE"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBMaxConns int    `yaml:"DB_MAX_CONNS"`

	// Session configuration
	SessionSecret  string `yaml:"SESSION_SECRET"`
	SessionTTLDays int    `yaml:"SESSION_TTL_DAYS"`
	CookieSecure   bool   `yaml:"COOKIE_SECURE"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

func DefaultConfig() Config {
	return Config{
		AppPort:        "5555",
		CORSOrigin:     "https://barnmonitor.vercel.app",
		RateLimitMax:   10,
		Metrics:        true,
		LogLevel:       "info",
		DBType:         "postgres",
		DBHost:         "localhost",
		DBPort:         "5432",
		DBMaxConns:     10,
		SessionTTLDays: 30,
		CookieSecure:   true,
	}
}

// LoadConfig reads the yaml file at path on top of the defaults, then lets
// environment variables (including a .env file) override any key. A missing
// yaml file is not an error.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error reading .env file: %s\n", err)
	}

	cfg := DefaultConfig()
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Printf("Config file %s not found, using environment only\n", path)
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	config = cfg
	return &cfg, nil
}

// applyEnv overrides every field whose yaml key is set in the environment.
func applyEnv(cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("yaml")
		raw, ok := os.LookupEnv(key)
		if !ok || raw == "" {
			continue
		}
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%s must be an integer: %w", key, err)
			}
			field.SetInt(int64(n))
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("%s must be a boolean: %w", key, err)
			}
			field.SetBool(b)
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("APP_PORT must be provided")
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET must be provided")
	}
	if c.SessionTTLDays <= 0 {
		return errors.New("SESSION_TTL_DAYS must be positive")
	}
	// credentialed CORS cannot use a wildcard origin
	if c.CORSOrigin == "" || c.CORSOrigin == "*" {
		return errors.New("CORS_ORIGIN must name an explicit origin")
	}
	switch c.DBType {
	case "sqlite":
		if c.DBName == "" {
			return errors.New("DB_NAME must be provided")
		}
	case "postgres", "postgresql", "mysql", "mariadb", "sqlserver", "mssql":
		if c.DBName == "" || c.DBUser == "" || c.DBHost == "" {
			return errors.New("DB_HOST, DB_USER and DB_NAME must be provided")
		}
	default:
		return fmt.Errorf("unsupported DB_TYPE: %s", c.DBType)
	}
	return nil
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// GetConfig returns a single key of the loaded configuration as a string.
func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "SESSION_SECRET":
		return config.SessionSecret
	case "COOKIE_SECURE":
		return getBoolString(config.CookieSecure)
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
