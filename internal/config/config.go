package config

import "os"

type Config struct {
	HTTP     HTTPConfig
	Auth     AuthConfig
	Mail     MailConfig
	Links    LinkConfig
	Locales  LocaleConfig
	Postgres PostgresConfig
}

type HTTPConfig struct {
	Addr string
}

type AuthConfig struct {
	JWTSecret     string
	JWTAccessTTL  string
	JWTRefreshTTL string
}

type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string
}

type LinkConfig struct {
	FrontendHost string
	ExternalHost string
}

type LocaleConfig struct {
	Path string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

func Load() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr: getenv("HTTP_ADDR", ":8080"),
		},
		Auth: AuthConfig{
			JWTSecret:     os.Getenv("JWT_SECRET"),
			JWTAccessTTL:  getenv("JWT_ACCESS_TTL", "30m"),
			JWTRefreshTTL: getenv("JWT_REFRESH_TTL", "2160h"),
		},
		Mail: MailConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenv("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			Sender:   getenv("SMTP_SENDER", "noreply@aveslog.com"),
		},
		Links: LinkConfig{
			FrontendHost: getenv("FRONTEND_HOST", "http://localhost:3000"),
			ExternalHost: getenv("EXTERNAL_HOST", "http://localhost:8080"),
		},
		Locales: LocaleConfig{
			Path: getenv("LOCALES_PATH", "locales/"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
