// Command seeder populates a fresh hosted backend with the same demo
// data the in-memory store ships with, so a new environment's admin
// dashboard is not empty.
package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/adapters/observability"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/adapters/supabase"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/shared"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/storage/memory"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		log.Fatal().Msg("SUPABASE_URL and SUPABASE_ANON_KEY are required to seed")
	}
	client, err := supabase.New(cfg.SupabaseURL, cfg.SupabaseKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("supabase client init failed")
	}

	log.Info().
		Str("base", cfg.SupabaseURL).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	run := func(label string, f func(context.Context) error) {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			if err := f(ctx); err != nil {
				log.Warn().Str("record", label).Err(err).Msg("seed failed")
				return
			}
			log.Debug().Str("record", label).Msg("seed ok")
		}()
	}

	for _, v := range memory.FixturePageViews() {
		v := v
		run("page_view", func(ctx context.Context) error {
			return client.InsertPageView(ctx, v.Page)
		})
	}
	for _, m := range memory.FixtureContacts() {
		m := m
		run("contact:"+m.Email, func(ctx context.Context) error {
			return client.InsertContact(ctx, m)
		})
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
