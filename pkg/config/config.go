package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env         string
	Port        int
	FrontendURL string
	// TrustedProxies lists the reverse proxies allowed to set X-Forwarded-For.
	TrustedProxies []string

	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	CORS         CORSConfig
	Log          LogConfig
	Verification VerificationConfig
	Invites      InviteConfig
	RateLimit    RateLimitConfig
	Cache        CacheConfig
	Email        EmailConfig
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnectTimeout  time.Duration
	RunMigrations   bool
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	StudentExpiry     time.Duration
	InterviewerExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// VerificationConfig governs student email-code verification.
type VerificationConfig struct {
	AllowedDomain string
	CodeTTL       time.Duration
}

// InviteConfig governs interviewer onboarding.
type InviteConfig struct {
	TTL        time.Duration
	BcryptCost int
}

// RateLimitConfig bounds how often verification codes can be requested.
type RateLimitConfig struct {
	Enabled         bool
	PerEmailPerHour int
	PerIPPerHour    int
	Window          time.Duration
}

// CacheConfig controls the interview type catalog cache.
type CacheConfig struct {
	TypesTTL time.Duration
}

// EmailConfig selects the mail transport. An empty SendGridAPIKey keeps the log mailer.
type EmailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	SandboxMode    bool
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
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.FrontendURL = strings.TrimRight(v.GetString("FRONTEND_URL"), "/")

	cfg.Database = DatabaseConfig{
		URL:             v.GetString("DATABASE_URL"),
		MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		ConnMaxIdleTime: parseDuration(v.GetString("DB_CONN_MAX_IDLE_TIME"), 30*time.Second),
		ConnectTimeout:  parseDuration(v.GetString("DB_CONNECT_TIMEOUT"), 5*time.Second),
		RunMigrations:   v.GetBool("RUN_MIGRATIONS"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("REDIS_ENABLED"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:            v.GetString("JWT_SECRET"),
		StudentExpiry:     parseDuration(v.GetString("STUDENT_TOKEN_TTL"), time.Hour),
		InterviewerExpiry: parseDuration(v.GetString("INTERVIEWER_TOKEN_TTL"), 7*24*time.Hour),
	}

	cfg.TrustedProxies = splitAndTrim(v.GetString("TRUSTED_PROXIES"))

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Verification = VerificationConfig{
		AllowedDomain: strings.ToLower(strings.TrimPrefix(strings.TrimSpace(v.GetString("ALLOWED_EMAIL_DOMAIN")), "@")),
		CodeTTL:       parseDuration(v.GetString("VERIFICATION_CODE_TTL"), 10*time.Minute),
	}

	cfg.Invites = InviteConfig{
		TTL:        parseDuration(v.GetString("INVITE_TTL"), 7*24*time.Hour),
		BcryptCost: v.GetInt("BCRYPT_COST"),
	}

	cfg.RateLimit = RateLimitConfig{
		Enabled:         v.GetBool("RATE_LIMIT_ENABLED"),
		PerEmailPerHour: v.GetInt("CODE_REQUESTS_PER_EMAIL_PER_HOUR"),
		PerIPPerHour:    v.GetInt("CODE_REQUESTS_PER_IP_PER_HOUR"),
		Window:          time.Hour,
	}

	cfg.Cache = CacheConfig{
		TypesTTL: parseDuration(v.GetString("TYPES_CACHE_TTL"), 10*time.Minute),
	}

	cfg.Email = EmailConfig{
		SendGridAPIKey: v.GetString("SENDGRID_API_KEY"),
		FromEmail:      v.GetString("SENDGRID_FROM_EMAIL"),
		FromName:       v.GetString("SENDGRID_FROM_NAME"),
		SandboxMode:    v.GetBool("SENDGRID_SANDBOX"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects configurations missing externally supplied values. Secrets have no defaults.
func (c *Config) validate() error {
	var missing []string
	if c.Database.URL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.FrontendURL == "" {
		missing = append(missing, "FRONTEND_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.Verification.AllowedDomain == "" {
		return fmt.Errorf("ALLOWED_EMAIL_DOMAIN must not be empty")
	}
	if c.Invites.BcryptCost < bcrypt.MinCost || c.Invites.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.Invites.BcryptCost)
	}
	if c.Email.SendGridAPIKey != "" && c.Email.FromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL is required when SENDGRID_API_KEY is set")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3001)
	v.SetDefault("FRONTEND_URL", "")

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", "30s")
	v.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	v.SetDefault("RUN_MIGRATIONS", true)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("STUDENT_TOKEN_TTL", "1h")
	v.SetDefault("INTERVIEWER_TOKEN_TTL", "168h")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ALLOWED_EMAIL_DOMAIN", "dal.ca")
	v.SetDefault("VERIFICATION_CODE_TTL", "10m")
	v.SetDefault("INVITE_TTL", "168h")
	v.SetDefault("BCRYPT_COST", 10)

	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("CODE_REQUESTS_PER_EMAIL_PER_HOUR", 5)
	v.SetDefault("CODE_REQUESTS_PER_IP_PER_HOUR", 20)
	v.SetDefault("TYPES_CACHE_TTL", "10m")

	v.SetDefault("SENDGRID_API_KEY", "")
	v.SetDefault("SENDGRID_FROM_EMAIL", "")
	v.SetDefault("SENDGRID_FROM_NAME", "Interview Booking")
	v.SetDefault("SENDGRID_SANDBOX", false)
}

func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
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
