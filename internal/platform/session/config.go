// Package session provides the session-token plumbing shared by the auth
// feature and the route middleware: the random token source, the cookie
// configuration, the Redis-backed session store and the auth guard.
package session

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultCookieName is the cookie carrying the session token.
	DefaultCookieName = "session_token"

	// DefaultTTL is the session lifetime when SESSION_TTL_HOURS is unset.
	DefaultTTL = 24 * time.Hour
)

// Config holds the session cookie configuration.
type Config struct {
	CookieName string        // Name of the session cookie
	TTL        time.Duration // Session (and cookie) lifetime
	Secure     bool          // Whether to set the Secure flag on the cookie
}

// LoadConfig loads session configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		CookieName: DefaultCookieName,
		TTL:        DefaultTTL,
		Secure:     os.Getenv("COOKIE_SECURE") == "true",
	}
	if name := os.Getenv("SESSION_COOKIE_NAME"); name != "" {
		cfg.CookieName = name
	}
	if hours, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS")); err == nil && hours > 0 {
		cfg.TTL = time.Duration(hours) * time.Hour
	}
	return cfg
}
