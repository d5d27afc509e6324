package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	server "github.com/cleopatraholidays25-spec/cleopatraholidays/internal/adapters/http_server"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/adapters/observability"
	redisad "github.com/cleopatraholidays25-spec/cleopatraholidays/internal/adapters/redis"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/adapters/supabase"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/app"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/catalog"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/i18n"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/shared"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/storage/memory"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// catalog integrity; a broken pin link is a content bug, not fatal
	for _, defect := range catalog.Validate() {
		log.Error().Str("defect", defect).Msg("catalog validation")
	}

	// store: hosted backend when configured, fixtures otherwise
	var store domain.Store
	if cfg.SupabaseURL != "" && cfg.SupabaseKey != "" {
		sb, err := supabase.New(cfg.SupabaseURL, cfg.SupabaseKey, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("supabase client init failed")
		}
		store = sb
		log.Info().Str("base", cfg.SupabaseURL).Msg("using hosted backend store")
	} else {
		store = memory.NewStore()
		log.Warn().Msg("using in-memory fixture store")
	}

	// cache: Redis when configured, in-process otherwise
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	} else {
		cache = memory.NewCache()
	}

	// dictionaries: embedded by default, remote when LOCALES_URL is set
	var bundle *i18n.Bundle
	if cfg.LocalesURL != "" {
		bundle = i18n.NewRemote()
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := bundle.Fetch(ctx, nil, cfg.LocalesURL); err != nil {
				log.Error().Err(err).Str("base", cfg.LocalesURL).Msg("locale fetch failed; lookups return raw keys")
			}
		}()
	} else {
		b, err := i18n.NewEmbedded()
		if err != nil {
			log.Fatal().Err(err).Msg("embedded locales failed to load")
		}
		bundle = b
	}

	defaultLang, ok := domain.ParseLanguage(cfg.DefaultLang)
	if !ok {
		defaultLang = domain.LangEN
	}

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Admin:       app.NewAdminService(store, cache, cfg.CacheTTL),
		Contacts:    app.NewContactService(store, cache),
		Analytics:   app.NewAnalyticsService(store),
		Bundle:      bundle,
		DefaultLang: defaultLang,
		Secret:      cfg.AdminPassword,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("site listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
