package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Tally     TallyConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// TallyConfig holds the TallyPrime XML API endpoint and per-operation
// timeouts. The endpoint is passed into the client at construction, never
// read as ambient state.
type TallyConfig struct {
	URL            string
	ImportTimeout  time.Duration
	CompanyTimeout time.Duration
	PingTimeout    time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "tally-bridge")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("TALLY_URL", "http://localhost:9000")
	viper.SetDefault("TALLY_IMPORT_TIMEOUT_SECONDS", 10)
	viper.SetDefault("TALLY_COMPANY_TIMEOUT_SECONDS", 5)
	viper.SetDefault("TALLY_PING_TIMEOUT_SECONDS", 2)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Tally: TallyConfig{
			URL:            viper.GetString("TALLY_URL"),
			ImportTimeout:  time.Duration(viper.GetInt("TALLY_IMPORT_TIMEOUT_SECONDS")) * time.Second,
			CompanyTimeout: time.Duration(viper.GetInt("TALLY_COMPANY_TIMEOUT_SECONDS")) * time.Second,
			PingTimeout:    time.Duration(viper.GetInt("TALLY_PING_TIMEOUT_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
