package config

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

// Config holds the reaction server configuration.
type Config struct {
	AppBaseURL         string
	AccessTokenExpiry  time.Duration
	CountCacheTTL      time.Duration
	RateLimitPerSecond float64
	SecureCookies      bool
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		AccessTokenExpiry:  time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 60)),
		CountCacheTTL:      time.Second * time.Duration(getEnvAsInt("COUNT_CACHE_TTL_SECONDS", 600)),
		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		SecureCookies:      getEnvAsBool("SECURE_COOKIES", false),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetAccessTokenExpiry returns the lifetime of issued access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetCountCacheTTL returns how long reaction counts stay cached in redis.
func (c *Config) GetCountCacheTTL() time.Duration {
	return c.CountCacheTTL
}

// GetRateLimitPerSecond returns the per-client request budget.
func (c *Config) GetRateLimitPerSecond() float64 {
	return c.RateLimitPerSecond
}

// GetSecureCookies reports whether auth and CSRF cookies are marked Secure.
func (c *Config) GetSecureCookies() bool {
	return c.SecureCookies
}

// ClientConfig configures the reaction mutation client.
type ClientConfig struct {
	// Method is POST or GET. GET is accepted but not safe for mutations.
	Method string
	// Timeout bounds a single mutation request.
	Timeout time.Duration
	// TokenField is the form field carrying the anti-forgery token.
	TokenField string
	// AccessToken is sent as a bearer token when set.
	AccessToken string
	// RefreshTokenPerRequest re-reads the anti-forgery token before every submit.
	RefreshTokenPerRequest bool
}

// DefaultClientConfig returns the recommended client settings.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Method:     http.MethodPost,
		Timeout:    10 * time.Second,
		TokenField: "csrf_token",
	}
}

// NewClientConfig loads the client settings from the environment.
func NewClientConfig() ClientConfig {
	def := DefaultClientConfig()
	method := strings.ToUpper(getEnv("REACT_METHOD", def.Method))
	if method != http.MethodGet {
		method = http.MethodPost
	}
	return ClientConfig{
		Method:                 method,
		Timeout:                time.Second * time.Duration(getEnvAsInt("REACT_TIMEOUT_SECONDS", int(def.Timeout/time.Second))),
		TokenField:             getEnv("REACT_TOKEN_FIELD", def.TokenField),
		AccessToken:            getEnv("REACT_ACCESS_TOKEN", ""),
		RefreshTokenPerRequest: getEnvAsBool("REACT_REFRESH_TOKEN_PER_REQUEST", false),
	}
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
