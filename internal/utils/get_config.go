package utils

import (
	"errors"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v2"
)

// Config is read from config.yaml; any variable of the same name in the
// environment wins over the file.
type Config struct {
	// App configuration
	AppPort string `yaml:"APP_PORT" env:"APP_PORT"`
	AppURL  string `yaml:"APP_URL" env:"APP_URL"`

	// Database configuration
	DBUser     string `yaml:"DB_USER" env:"DB_USER"`
	DBName     string `yaml:"DB_NAME" env:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD" env:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT" env:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST" env:"DB_HOST"`

	// JWT
	JWTSecret     string `yaml:"JWT_SECRET" env:"JWT_SECRET"`
	JWTIssuer     string `yaml:"JWT_ISSUER" env:"JWT_ISSUER"`
	JWTTTLMinutes int    `yaml:"JWT_TTL_MINUTES" env:"JWT_TTL_MINUTES"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST" env:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT" env:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME" env:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL" env:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD" env:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET" env:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION" env:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY" env:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY" env:"AWS_SECRET_KEY"`

	// Seeded administrator
	AdminUserName string `yaml:"ADMIN_USERNAME" env:"ADMIN_USERNAME"`
	AdminEmail    string `yaml:"ADMIN_EMAIL" env:"ADMIN_EMAIL"`
	AdminPassword string `yaml:"ADMIN_PASSWORD" env:"ADMIN_PASSWORD"`
}

var config Config

func LoadConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if err := LoadConfigFrom(path); err != nil {
		log.Errorw("error loading config", "path", path, "error", err)
	}
}

// LoadConfigFrom reads path, which may be missing, and applies environment
// overrides. The result replaces the current configuration.
func LoadConfigFrom(path string) error {
	var next Config

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Warnw("config file not found, using environment only", "path", path)
	case err != nil:
		return err
	default:
		if err := yaml.Unmarshal(file, &next); err != nil {
			return err
		}
	}

	if err := env.Parse(&next); err != nil {
		return err
	}
	if next.AppPort == "" {
		next.AppPort = "8080"
	}
	if next.JWTIssuer == "" {
		next.JWTIssuer = "RECIPE_API"
	}

	config = next
	return nil
}

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
	case "JWT_SECRET":
		return config.JWTSecret
	case "JWT_ISSUER":
		return config.JWTIssuer
	case "JWT_TTL_MINUTES":
		return strconv.Itoa(config.JWTTTLMinutes)
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
	case "ADMIN_USERNAME":
		return config.AdminUserName
	case "ADMIN_EMAIL":
		return config.AdminEmail
	case "ADMIN_PASSWORD":
		return config.AdminPassword
	default:
		return ""
	}
}

// GetConfigInt returns the integer value of key, or fallback when it is unset
// or not a number.
func GetConfigInt(key string, fallback int) int {
	v, err := strconv.Atoi(GetConfig(key))
	if err != nil || v == 0 {
		return fallback
	}
	return v
}
