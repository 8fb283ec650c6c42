package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Supabase SupabaseConfig
	DPM      DPMConfig
	Gateway  GatewayConfig
	Events   EventsConfig
	Postgres PostgresConfig
	Session  SessionConfig
}

type ServerConfig struct {
	Port             string
	AllowedOrigins   []string
	AllowCredentials bool
}

type SupabaseConfig struct {
	URL       string
	AnonKey   string
	JWTSecret string
}

type DPMConfig struct {
	FunctionsURL string
}

type GatewayConfig struct {
	Timeout time.Duration
}

type EventsConfig struct {
	TimeZone string
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

// 로컬 실행용 고정 세션 (EVENTNAV_ACCESS_TOKEN). DevMode가 꺼져 있으면 무시
type SessionConfig struct {
	AccessToken string
	UserID      string
	DevMode     bool
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:             getenv("PORT", "8080"),
			AllowedOrigins:   splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
			AllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		},
		Supabase: SupabaseConfig{
			URL:       strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
			AnonKey:   os.Getenv("SUPABASE_ANON_KEY"),
			JWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		},
		DPM: DPMConfig{
			FunctionsURL: strings.TrimRight(os.Getenv("DPM_FUNCTIONS_URL"), "/"),
		},
		Gateway: GatewayConfig{
			Timeout: getduration("GATEWAY_TIMEOUT", 15*time.Second),
		},
		Events: EventsConfig{
			TimeZone: getenv("EVENT_TIMEZONE", "UTC"),
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
		Session: SessionConfig{
			AccessToken: os.Getenv("EVENTNAV_ACCESS_TOKEN"),
			UserID:      os.Getenv("EVENTNAV_USER_ID"),
			DevMode:     getenv("EVENTNAV_DEV_SESSION", "false") == "true",
		},
	}
}

// DATABASE_URL 또는 PGUSER/PGDATABASE가 있으면 Postgres 직접 연결 사용
func (c PostgresConfig) Enabled() bool {
	return c.DatabaseURL != "" || (c.User != "" && c.Database != "")
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
