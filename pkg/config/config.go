package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Demo credentials for the shared test workspace. Every production
// deployment must override all of them via the environment.
const (
	demoNotionToken   = "ntn_b49875196459EJm3PUmI9T54UpfkqmybDzIa7b2O7vncIl"
	demoDatabaseID    = "28c12947829d81469c95d6d95b6698cd"
	defaultAPIBaseURL = "https://api.notion.com/v1"
	defaultAPIVersion = "2022-06-28"
)

type Config struct {
	Env  string
	Port int

	Notion NotionConfig
	CORS   CORSConfig
	Log    LogConfig
	Cache  CacheConfig
	Web    WebConfig
}

// NotionConfig carries everything needed to query the upstream workspace database.
type NotionConfig struct {
	Token        string
	DatabaseID   string
	BaseURL      string
	Version      string
	DateProperty string
	PageSize     int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CacheConfig governs the optional Redis-backed response cache for /api/courses.
// Disabled by default: the wire contract promises a fresh upstream snapshot per request.
type CacheConfig struct {
	Enabled  bool
	Redis    RedisConfig
	TTL      time.Duration
	CacheKey string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// WebConfig configures the server-rendered schedule client.
type WebConfig struct {
	Port         int
	ProxyBaseURL string
	FadeDelay    time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Notion = NotionConfig{
		Token:        v.GetString("NOTION_API_TOKEN"),
		DatabaseID:   v.GetString("NOTION_DATABASE_ID"),
		BaseURL:      strings.TrimRight(v.GetString("NOTION_API_BASE_URL"), "/"),
		Version:      v.GetString("NOTION_API_VERSION"),
		DateProperty: v.GetString("NOTION_DATE_PROPERTY"),
		PageSize:     v.GetInt("NOTION_PAGE_SIZE"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_COURSE_CACHE"),
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		TTL:      parseDuration(v.GetString("COURSE_CACHE_TTL"), time.Minute),
		CacheKey: v.GetString("COURSE_CACHE_KEY"),
	}

	cfg.Web = WebConfig{
		Port:         v.GetInt("WEB_PORT"),
		ProxyBaseURL: strings.TrimRight(v.GetString("WEB_PROXY_BASE_URL"), "/"),
		FadeDelay:    parseDuration(v.GetString("WEB_FADE_DELAY"), 150*time.Millisecond),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3000)

	v.SetDefault("NOTION_API_TOKEN", demoNotionToken)
	v.SetDefault("NOTION_DATABASE_ID", demoDatabaseID)
	v.SetDefault("NOTION_API_BASE_URL", defaultAPIBaseURL)
	v.SetDefault("NOTION_API_VERSION", defaultAPIVersion)
	v.SetDefault("NOTION_DATE_PROPERTY", "日期")
	v.SetDefault("NOTION_PAGE_SIZE", 50)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_COURSE_CACHE", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("COURSE_CACHE_TTL", "1m")
	v.SetDefault("COURSE_CACHE_KEY", "schedule:courses")

	v.SetDefault("WEB_PORT", 8080)
	v.SetDefault("WEB_PROXY_BASE_URL", "http://localhost:3000")
	v.SetDefault("WEB_FADE_DELAY", "150ms")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
