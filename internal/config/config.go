// Package config loads configuration from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// DBPath overrides the default database location when non-empty.
	DBPath string
	Debug  bool
	Geo    GeoConfig
}

type GeoConfig struct {
	BaseURL string
	Timeout time.Duration
	// Lat/Lon are the user's position for location achievements. Both must
	// be set; otherwise location resolution degrades to Unknown.
	Lat, Lon  float64
	HasCoords bool
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() *Config {
	_ = godotenv.Load()

	lat, latOK := getEnvAsFloat("GTD_LAT")
	lon, lonOK := getEnvAsFloat("GTD_LON")

	return &Config{
		DBPath: os.Getenv("GTD_DB"),
		Debug:  getEnvAsBool("GTD_DEBUG", false),
		Geo: GeoConfig{
			BaseURL:   getEnv("GTD_GEO_URL", "https://nominatim.openstreetmap.org"),
			Timeout:   getEnvAsDuration("GTD_GEO_TIMEOUT", 10*time.Second),
			Lat:       lat,
			Lon:       lon,
			HasCoords: latOK && lonOK,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string) (float64, bool) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
