package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// FallbackAdminPassword is used when ADMIN_PASSWORD is unset. Known
// weakness kept for parity with existing deployments; Load warns
// loudly when it is in effect.
const FallbackAdminPassword = "password123"

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	SupabaseURL string
	SupabaseKey string

	AdminPassword string

	RedisAddr string
	RedisPass string
	RedisDB   int

	CacheTTL time.Duration

	LocalesURL  string // when set, dictionaries are fetched from here instead of the embedded copies
	DefaultLang string

	SeedWorkers int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		SupabaseURL:   env("SUPABASE_URL", ""),
		SupabaseKey:   env("SUPABASE_ANON_KEY", ""),
		AdminPassword: env("ADMIN_PASSWORD", ""),
		RedisAddr:     env("REDIS_ADDR", ""),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 60)) * time.Second,
		LocalesURL:    env("LOCALES_URL", ""),
		DefaultLang:   env("DEFAULT_LANG", "en"),
		SeedWorkers:   atoi("SEED_WORKERS", 8),
	}
	if c.SupabaseURL == "" || c.SupabaseKey == "" {
		log.Warn().Msg("SUPABASE_URL / SUPABASE_ANON_KEY not set; falling back to the in-memory store")
	}
	if c.AdminPassword == "" {
		c.AdminPassword = FallbackAdminPassword
		log.Warn().Msg("ADMIN_PASSWORD not set; using the built-in fallback password")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
