// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the API server and its backends.
type Config struct {
	AppPort     string
	DatabaseURL string

	// GuestCartDir is where the device-local guest cart store keeps its data.
	GuestCartDir string

	// RealtimeChannel is the NOTIFY channel carrying product change events.
	RealtimeChannel string
	RealtimeRetry   time.Duration

	// ImageBucket is the object-storage bucket for product images.
	// Empty disables the admin upload endpoint.
	ImageBucket string

	// ContactEndpoint is the upstream forms service for contact/newsletter
	// submissions. ContactAccessKey authenticates against it.
	ContactEndpoint  string
	ContactAccessKey string

	JWTSecret string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvms(key string, defMs int) time.Duration {
	return time.Duration(atoienv(key, defMs)) * time.Millisecond
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		AppPort:          getenv("APP_PORT", "8080"),
		DatabaseURL:      getenv("DATABASE_URL", ""),
		GuestCartDir:     getenv("GUEST_CART_DIR", "data/guestcart"),
		RealtimeChannel:  getenv("REALTIME_CHANNEL", "products_changes"),
		RealtimeRetry:    durenvms("REALTIME_RETRY_MS", 1000),
		ImageBucket:      getenv("IMAGE_BUCKET", ""),
		ContactEndpoint:  getenv("CONTACT_ENDPOINT", "https://api.web3forms.com/submit"),
		ContactAccessKey: getenv("CONTACT_ACCESS_KEY", ""),
		JWTSecret:        getenv("JWT_SECRET", "your-secret-key"),
	}
}
