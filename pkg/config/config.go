package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	IsProduction bool

	// Anchor / registry
	AnchorCurrency string

	// Official feed
	FeedURL      string
	FeedSchedule string // cron spec, daily by default
	FeedTimeout  time.Duration

	// Spread tiers (fractions)
	SpreadMajor    float64
	SpreadEUMember float64
	SpreadDefault  float64

	// Conversion fees
	FeePercent       float64 // fraction of the source amount
	FeeFixedLow      float64
	FeeFixedMid      float64
	FeeFixedHigh     float64
	FeeTierMidAbove  float64 // source amount above which the mid fixed fee applies
	FeeTierHighAbove float64 // source amount above which the top fixed fee applies

	// Validity windows
	RateValidity       time.Duration
	CrossRateValidity  time.Duration
	ConversionValidity time.Duration

	// History / analytics
	HistoryRetentionDays int
	MovementThresholdPct float64
	MovementListLimit    int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ANCHOR_CURRENCY", "EUR")
	viper.SetDefault("FEED_URL", "")
	viper.SetDefault("FEED_SCHEDULE", "0 30 14 * * *") // daily, after the official publication
	viper.SetDefault("FEED_TIMEOUT", "10s")
	viper.SetDefault("SPREAD_MAJOR", 0.005)
	viper.SetDefault("SPREAD_EU_MEMBER", 0.01)
	viper.SetDefault("SPREAD_DEFAULT", 0.02)
	viper.SetDefault("FEE_PERCENT", 0.001)
	viper.SetDefault("FEE_FIXED_LOW", 1.0)
	viper.SetDefault("FEE_FIXED_MID", 5.0)
	viper.SetDefault("FEE_FIXED_HIGH", 10.0)
	viper.SetDefault("FEE_TIER_MID_ABOVE", 1000.0)
	viper.SetDefault("FEE_TIER_HIGH_ABOVE", 10000.0)
	viper.SetDefault("RATE_VALIDITY", "24h")
	viper.SetDefault("CROSS_RATE_VALIDITY", "1h")
	viper.SetDefault("CONVERSION_VALIDITY", "15m")
	viper.SetDefault("HISTORY_RETENTION_DAYS", 365)
	viper.SetDefault("MOVEMENT_THRESHOLD_PCT", 0.1)
	viper.SetDefault("MOVEMENT_LIST_LIMIT", 20)

	viper.AutomaticEnv()

	cfg := &Config{
		IsProduction:         viper.GetBool("IS_PRODUCTION"),
		AnchorCurrency:       viper.GetString("ANCHOR_CURRENCY"),
		FeedURL:              viper.GetString("FEED_URL"),
		FeedSchedule:         viper.GetString("FEED_SCHEDULE"),
		SpreadMajor:          viper.GetFloat64("SPREAD_MAJOR"),
		SpreadEUMember:       viper.GetFloat64("SPREAD_EU_MEMBER"),
		SpreadDefault:        viper.GetFloat64("SPREAD_DEFAULT"),
		FeePercent:           viper.GetFloat64("FEE_PERCENT"),
		FeeFixedLow:          viper.GetFloat64("FEE_FIXED_LOW"),
		FeeFixedMid:          viper.GetFloat64("FEE_FIXED_MID"),
		FeeFixedHigh:         viper.GetFloat64("FEE_FIXED_HIGH"),
		FeeTierMidAbove:      viper.GetFloat64("FEE_TIER_MID_ABOVE"),
		FeeTierHighAbove:     viper.GetFloat64("FEE_TIER_HIGH_ABOVE"),
		HistoryRetentionDays: viper.GetInt("HISTORY_RETENTION_DAYS"),
		MovementThresholdPct: viper.GetFloat64("MOVEMENT_THRESHOLD_PCT"),
		MovementListLimit:    viper.GetInt("MOVEMENT_LIST_LIMIT"),
	}

	cfg.FeedTimeout = parseDurationOr("FEED_TIMEOUT", 10*time.Second)
	cfg.RateValidity = parseDurationOr("RATE_VALIDITY", 24*time.Hour)
	cfg.CrossRateValidity = parseDurationOr("CROSS_RATE_VALIDITY", time.Hour)
	cfg.ConversionValidity = parseDurationOr("CONVERSION_VALIDITY", 15*time.Minute)

	if cfg.FeedURL == "" {
		log.Println("Warning: FEED_URL environment variable not set. Scheduled rate refresh will be disabled.")
	}

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
