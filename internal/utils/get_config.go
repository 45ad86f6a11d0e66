package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
	"strconv"
)

type Config struct {
	// Application configuration
	AppPort            string `yaml:"APP_PORT"`
	DataSource         string `yaml:"DATA_SOURCE"` // static or database
	RateLimitPerSecond int    `yaml:"RATE_LIMIT_PER_SECOND"`
	ScreenSessionTTL   int    `yaml:"SCREEN_SESSION_TTL_MINUTES"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// AWS S3 configuration
	AWSS3Bucket        string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region        string `yaml:"AWS_S3_REGION"`
	AWSAccessKey       string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey       string `yaml:"AWS_SECRET_KEY"`
	ImageURLTTLMinutes int    `yaml:"IMAGE_URL_TTL_MINUTES"`
}

var config Config

func LoadConfig() {
	if err := LoadConfigFile("config.yaml"); err != nil {
		log.Printf("Error loading config: %s\n", err)
	}
}

// LoadConfigFile replaces the active configuration with the contents of path.
func LoadConfigFile(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var parsed Config
	if err := yaml.Unmarshal(file, &parsed); err != nil {
		return err
	}
	config = parsed

	// Set environment variables for keys that should be accessible via os.Getenv
	os.Setenv("DATA_SOURCE", config.DataSource)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
	return nil
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		if config.AppPort == "" {
			return "8080"
		}
		return config.AppPort
	case "DATA_SOURCE":
		if config.DataSource == "" {
			return "static"
		}
		return config.DataSource
	case "RATE_LIMIT_PER_SECOND":
		if config.RateLimitPerSecond <= 0 {
			return "10"
		}
		return strconv.Itoa(config.RateLimitPerSecond)
	case "SCREEN_SESSION_TTL_MINUTES":
		if config.ScreenSessionTTL <= 0 {
			return ""
		}
		return strconv.Itoa(config.ScreenSessionTTL)
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
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "IMAGE_URL_TTL_MINUTES":
		if config.ImageURLTTLMinutes <= 0 {
			return ""
		}
		return strconv.Itoa(config.ImageURLTTLMinutes)
	default:
		return ""
	}
}
