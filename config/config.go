package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/dcsil/k.ai/pkg/constant"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the auth service. It is built once in main and
// passed by reference into the services that need it; nothing reads the
// environment after Load returns.
type Config struct {
	Env   string
	Port  string
	DBURL string

	JWTAccessSecret      string
	AccessTokenTTL       time.Duration
	RefreshTokenTTL      time.Duration
	PasswordResetTTL     time.Duration
	EmailVerificationTTL time.Duration

	MaxLoginAttempts int
	LockoutDuration  time.Duration

	RefreshCookieName     string
	RefreshCookieSameSite string

	// ExposeTestTokens surfaces raw reset/verification tokens in API responses
	// so the flows can be exercised without an email channel. Defaults off in
	// production.
	ExposeTestTokens bool
}

func Load() (*Config, error) {
	// Best effort: a missing .env file is fine, real deployments set env vars.
	_ = godotenv.Load()

	env := getEnv("ENV", "development")

	cfg := &Config{
		Env:                   env,
		Port:                  getEnv("PORT", "8080"),
		DBURL:                 os.Getenv("DB_URL"),
		JWTAccessSecret:       os.Getenv("JWT_ACCESS_SECRET"),
		AccessTokenTTL:        getEnvAsSeconds("ACCESS_TOKEN_TTL", 900),
		RefreshTokenTTL:       getEnvAsSeconds("REFRESH_TOKEN_TTL", 30*24*60*60),
		PasswordResetTTL:      getEnvAsSeconds("PASSWORD_RESET_TTL", 3600),
		EmailVerificationTTL:  getEnvAsSeconds("EMAIL_VERIFICATION_TTL", 24*60*60),
		MaxLoginAttempts:      getEnvAsInt("AUTH_MAX_LOGIN_ATTEMPTS", 5),
		LockoutDuration:       getEnvAsSeconds("AUTH_LOCKOUT_DURATION", 900),
		RefreshCookieName:     getEnv("REFRESH_COOKIE_NAME", "refresh_token"),
		RefreshCookieSameSite: getEnv("REFRESH_COOKIE_SAME_SITE", "Lax"),
		ExposeTestTokens:      getEnvAsBool("AUTH_EXPOSE_TEST_TOKENS", env != constant.EnvProduction),
	}

	if cfg.DBURL == "" {
		return nil, fmt.Errorf("missing required environment variable: DB_URL")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("missing required environment variable: JWT_ACCESS_SECRET")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production hardening.
func (c *Config) IsProduction() bool {
	return c.Env == constant.EnvProduction
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsSeconds(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvAsInt(key, defaultSeconds)) * time.Second
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
