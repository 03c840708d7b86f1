package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/liuminhaw/mixtoken/internal/cache"
	"github.com/liuminhaw/mixtoken/internal/tokenizer"
)

// openLemmaCache builds the configured lemma cache. With a database the
// memory cache is preloaded with every persisted entry.
func (app *application) openLemmaCache() (tokenizer.LemmaCache, error) {
	switch app.config.cache.backend {
	case cacheRedis:
		r, err := cache.NewRedis(cache.RedisConfig{
			Addr:     app.config.cache.redis.addr,
			Password: app.config.cache.redis.password,
			DB:       app.config.cache.redis.db,
			Key:      app.config.cache.redis.key,
		}, app.logger)
		if err != nil {
			return nil, err
		}
		app.redisCache = r
		app.logger.Info("redis lemma cache connected", slog.String("addr", app.config.cache.redis.addr))
		return r, nil

	case cacheMemory:
		app.memCache = cache.NewMemory()
		if app.models != nil {
			lemmas, err := app.models.Lemmas.All()
			if err != nil {
				return nil, err
			}
			app.memCache.Load(lemmas)
			app.logger.Info("lemma cache loaded", slog.Int("entries", len(lemmas)))
			app.startLemmaFlusher()
		}
		return app.memCache, nil
	}

	return nil, nil
}

// startLemmaFlusher periodically persists lemmas added to the memory cache
// until the server shuts down.
func (app *application) startLemmaFlusher() {
	app.background(func() {
		ticker := time.NewTicker(app.config.cache.flushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				app.flushLemmaCache()
			case <-app.done:
				return
			}
		}
	})
}

func (app *application) flushLemmaCache() {
	if app.models == nil || app.memCache == nil {
		return
	}

	pending := app.memCache.Drain()
	if len(pending) == 0 {
		return
	}

	inserted, err := app.models.Lemmas.InsertBatch(pending)
	if err != nil {
		app.memCache.Restore(pending)
		app.logger.Error("flushing lemma cache", slog.String("error", err.Error()))
		return
	}
	app.logger.Info("lemma cache flushed",
		slog.Int("pending", len(pending)),
		slog.Int64("inserted", inserted),
	)
}

// lemmaCacheSize reports the number of cached lemmas, or -1 when unknown.
func (app *application) lemmaCacheSize() int64 {
	switch {
	case app.memCache != nil:
		return int64(app.memCache.Len())
	case app.redisCache != nil:
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		n, err := app.redisCache.Len(ctx)
		if err != nil {
			return -1
		}
		return n
	}
	return 0
}
