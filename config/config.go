package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Pricing configuration. Out-of-range rates fall back to the engine
	// defaults rather than failing startup.
	TaxRate          float64 `mapstructure:"TAX_RATE"`
	DepositRate      float64 `mapstructure:"DEPOSIT_RATE"`
	PricingTolerance float64 `mapstructure:"PRICING_TOLERANCE"`
	PricingStrict    bool    `mapstructure:"PRICING_STRICT"`

	// Booking lifecycle configuration.
	SessionTTLMinutes  int `mapstructure:"SESSION_TTL_MINUTES"`
	BookingHoldMinutes int `mapstructure:"BOOKING_HOLD_MINUTES"`
	MinBookingDays     int `mapstructure:"MIN_BOOKING_DAYS"`
	MaxBookingDays     int `mapstructure:"MAX_BOOKING_DAYS"`

	// Notification channels.
	SendgridAPIKey string `mapstructure:"SENDGRID_API_KEY"`
	EmailFrom      string `mapstructure:"EMAIL_FROM"`
	EmailFromName  string `mapstructure:"EMAIL_FROM_NAME"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_CACHE_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "explorekg")
	viper.SetDefault("TAX_RATE", 0.10)
	viper.SetDefault("DEPOSIT_RATE", 0.20)
	viper.SetDefault("PRICING_TOLERANCE", 0.01)
	viper.SetDefault("PRICING_STRICT", true)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("BOOKING_HOLD_MINUTES", 60)
	viper.SetDefault("MIN_BOOKING_DAYS", 1)
	viper.SetDefault("MAX_BOOKING_DAYS", 30)
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("EMAIL_FROM", "bookings@explorekg.com")
	viper.SetDefault("EMAIL_FROM_NAME", "ExploreKG Bookings")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
