package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Auth      AuthConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Stats     StatsConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	Env     string
	// TrustProxy reads the client IP from X-Forwarded-For / X-Real-IP.
	TrustProxy bool
}

// IsProduction switches cookies to Secure + SameSite=None.
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

type DatabaseConfig struct {
	URI      string
	Host     string
	Name     string
	User     string
	Password string
}

// ConnectionURI returns MONGO_URI when set, otherwise the Atlas SRV URI.
func (c DatabaseConfig) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		c.User, c.Password, c.Host)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type JWTConfig struct {
	Secret        string
	ExpiryMinutes int
}

type AuthConfig struct {
	StrictOwnership bool
}

type CORSConfig struct {
	Origins []string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type StatsConfig struct {
	TopRoomsLimit int64
}

// LoadConfig reads .env (optional) and then the process environment.
func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "sea-haven")
	v.SetDefault("PORT", "5000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("TRUST_PROXY", false)
	v.SetDefault("DB_HOST", "cluster0.7vwvj.mongodb.net")
	v.SetDefault("DB_NAME", "seaHaven")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_EXPIRY_MINUTES", 60)
	v.SetDefault("AUTH_STRICT_OWNERSHIP", false)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("TOP_ROOMS_LIMIT", 6)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:       v.GetString("APP_NAME"),
			Port:       v.GetString("PORT"),
			Debug:      v.GetBool("DEBUG"),
			LogPath:    v.GetString("LOG_PATH"),
			Env:        v.GetString("APP_ENV"),
			TrustProxy: v.GetBool("TRUST_PROXY"),
		},
		Database: DatabaseConfig{
			URI:      v.GetString("MONGO_URI"),
			Host:     v.GetString("DB_HOST"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("ACCESS_TOKEN_SECRET"),
			ExpiryMinutes: v.GetInt("JWT_EXPIRY_MINUTES"),
		},
		Auth: AuthConfig{
			StrictOwnership: v.GetBool("AUTH_STRICT_OWNERSHIP"),
		},
		CORS: CORSConfig{
			Origins: splitList(v.GetString("CORS_ORIGINS")),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
		Stats: StatsConfig{
			TopRoomsLimit: v.GetInt64("TOP_ROOMS_LIMIT"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if config.JWT.ExpiryMinutes <= 0 {
		config.JWT.ExpiryMinutes = 60
	}
	if config.Stats.TopRoomsLimit <= 0 {
		config.Stats.TopRoomsLimit = 6
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
