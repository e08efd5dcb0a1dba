package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds the application settings read from the environment
type Config struct {
	AppEnv             string
	ServerPort         string
	JWTSecret          string
	JWTExpiration      time.Duration
	CORSWhitelist      []string
	UploadsDir         string
	PublicBaseURL      string
	InitialAdminMobile string
	OrdersAdminOnly    bool
	RedisAddr          string
	ProductCacheTTL    time.Duration
	DB                 *DBConfig
}

// IsDevelopment reports whether internal error details may be exposed to clients
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

// Load reads the configuration from environment variables.
// The caller is expected to have loaded a .env file beforehand.
func Load() (*Config, error) {
	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set in environment")
	}

	jwtMinutes, err := intEnv("JWT_EXPIRATION_MINUTES", 60)
	if err != nil {
		return nil, err
	}
	cacheSeconds, err := intEnv("PRODUCT_CACHE_TTL", 60)
	if err != nil {
		return nil, err
	}

	serverPort := stringEnv("SERVER_PORT", "5000")

	cfg := &Config{
		AppEnv:             stringEnv("APP_ENV", EnvDevelopment),
		ServerPort:         serverPort,
		JWTSecret:          jwtSecret,
		JWTExpiration:      time.Duration(jwtMinutes) * time.Minute,
		CORSWhitelist:      ParseWhitelist(os.Getenv("CORS_WHITELIST")),
		UploadsDir:         stringEnv("UPLOADS_DIR", "uploads"),
		PublicBaseURL:      strings.TrimRight(stringEnv("PUBLIC_BASE_URL", "http://localhost:"+serverPort), "/"),
		InitialAdminMobile: os.Getenv("INITIAL_ADMIN_MOBILE"),
		OrdersAdminOnly:    os.Getenv("ORDERS_ADMIN_ONLY") == "true",
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		ProductCacheTTL:    time.Duration(cacheSeconds) * time.Second,
		DB:                 dbCfg,
	}
	return cfg, nil
}

// ParseWhitelist splits a comma separated origin list, dropping blanks
func ParseWhitelist(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func stringEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, v)
	}
	return n, nil
}
