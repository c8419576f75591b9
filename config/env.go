package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv    string
	Port      string
	LogLevel  string
	LogFormat string

	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBMaxConns    int32
	DBMinConns    int32
	DBAutoMigrate bool

	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	ProductCacheTTL time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string
	SMTPFrom     string
	ContactInbox string
}

var AppConfig *Config

var defaults = map[string]any{
	"APP_ENV":           "development",
	"PORT":              "5000",
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "",
	"DB_HOST":           "localhost",
	"DB_PORT":           "5432",
	"DB_USER":           "postgres",
	"DB_PASSWORD":       "postgres",
	"DB_NAME":           "glamar",
	"DB_SSLMODE":        "disable",
	"DB_MAX_CONNS":      25,
	"DB_MIN_CONNS":      5,
	"DB_AUTO_MIGRATE":   true,
	"REDIS_ADDR":        "",
	"PRODUCT_CACHE_TTL": "5m",
	"SMTP_PORT":         587,
}

// Load reads .env (if any) and the process environment into AppConfig.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug(".env file not found, using system environment variables")
	}

	AppConfig = FromViper(newViper())
	return AppConfig
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	port := v.GetString("APP_PORT")
	if port == "" {
		port = v.GetString("PORT")
	}

	ttl := v.GetDuration("PRODUCT_CACHE_TTL")
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Config{
		AppEnv:    v.GetString("APP_ENV"),
		Port:      port,
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),

		DatabaseURL:   v.GetString("DATABASE_URL"),
		DBHost:        v.GetString("DB_HOST"),
		DBPort:        v.GetString("DB_PORT"),
		DBUser:        v.GetString("DB_USER"),
		DBPassword:    v.GetString("DB_PASSWORD"),
		DBName:        v.GetString("DB_NAME"),
		DBSSLMode:     v.GetString("DB_SSLMODE"),
		DBMaxConns:    v.GetInt32("DB_MAX_CONNS"),
		DBMinConns:    v.GetInt32("DB_MIN_CONNS"),
		DBAutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),

		RedisURL:        v.GetString("REDIS_URL"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		ProductCacheTTL: ttl,

		SMTPHost:     v.GetString("SMTP_HOST"),
		SMTPPort:     v.GetInt("SMTP_PORT"),
		SMTPUser:     v.GetString("SMTP_USER"),
		SMTPPass:     v.GetString("SMTP_PASS"),
		SMTPFrom:     v.GetString("SMTP_FROM"),
		ContactInbox: v.GetString("CONTACT_INBOX"),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// SMTPEnabled reports whether contact notifications can be mailed.
func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != "" && c.ContactInbox != ""
}
