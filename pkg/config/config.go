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

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Data      DataConfig
	Auth      AuthConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Log       LogConfig
	Timer     TimerConfig
	Uploads   UploadsConfig
	Dashboard DashboardConfig
	Redis     RedisConfig
}

// DataConfig locates the per-user document storage.
type DataConfig struct {
	Dir string
}

// AuthConfig holds the static username→password table. Values may be either
// plaintext (legacy) or bcrypt hashes; the table is a declared trust boundary.
type AuthConfig struct {
	Users map[string]string
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// TimerConfig bounds the session timer durations in minutes.
type TimerConfig struct {
	DefaultLearnMinutes int
	DefaultBreakMinutes int
	MaxLearnMinutes     int
	MaxBreakMinutes     int
}

// UploadsConfig limits file ingestion for notes and PDF merging.
type UploadsConfig struct {
	MaxFileSizeBytes int64
}

// DashboardConfig governs the optional Redis-backed overview cache.
type DashboardConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
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
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Data = DataConfig{Dir: v.GetString("DATA_DIR")}

	cfg.Auth = AuthConfig{Users: parseUserTable(v.GetString("AUTH_USERS"))}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		Issuer:     v.GetString("JWT_ISSUER"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Timer = TimerConfig{
		DefaultLearnMinutes: v.GetInt("TIMER_LEARN_MINUTES"),
		DefaultBreakMinutes: v.GetInt("TIMER_BREAK_MINUTES"),
		MaxLearnMinutes:     v.GetInt("TIMER_MAX_LEARN_MINUTES"),
		MaxBreakMinutes:     v.GetInt("TIMER_MAX_BREAK_MINUTES"),
	}

	maxUploadSize := v.GetInt64("UPLOADS_MAX_FILE_SIZE")
	if maxUploadSize <= 0 {
		maxUploadSize = 20 * 1024 * 1024
	}
	cfg.Uploads = UploadsConfig{MaxFileSizeBytes: maxUploadSize}

	cfg.Dashboard = DashboardConfig{
		CacheEnabled: v.GetBool("ENABLE_DASHBOARD_CACHE"),
		CacheTTL:     parseDuration(v.GetString("DASHBOARD_CACHE_TTL"), 30*time.Second),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DATA_DIR", "./data")

	v.SetDefault("AUTH_USERS", "")

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("JWT_ISSUER", "uni-dashboard")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("TIMER_LEARN_MINUTES", 25)
	v.SetDefault("TIMER_BREAK_MINUTES", 5)
	v.SetDefault("TIMER_MAX_LEARN_MINUTES", 180)
	v.SetDefault("TIMER_MAX_BREAK_MINUTES", 60)

	v.SetDefault("UPLOADS_MAX_FILE_SIZE", 20*1024*1024)

	v.SetDefault("ENABLE_DASHBOARD_CACHE", false)
	v.SetDefault("DASHBOARD_CACHE_TTL", "30s")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
}

// parseUserTable decodes "alice:secret,bob:$2a$..." into the user table.
func parseUserTable(raw string) map[string]string {
	users := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, pass, found := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			continue
		}
		users[name] = pass
	}
	return users
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
