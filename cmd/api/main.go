package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "hotel_manager/internal/adapters/http_server"
	"hotel_manager/internal/adapters/observability"
	redisad "hotel_manager/internal/adapters/redis"
	"hotel_manager/internal/app"
	"hotel_manager/internal/domain"
	"hotel_manager/internal/shared"
	"hotel_manager/internal/storage"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	st, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("store open failed")
	}
	defer st.Close()

	// cache is optional; a nil domain.Cache turns caching off
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; continuing without cache")
			_ = rc.Close()
		} else {
			defer rc.Close()
			cache = rc
		}
	}

	// deps
	q := app.NewQueryService(st, cache, cfg.CacheTTL)
	c := app.NewCommandService(st, cache, cfg.RecheckOnEdit)

	if created, err := c.InitializeStore(ctx); err != nil {
		log.Fatal().Err(err).Msg("store initialization failed")
	} else if created {
		log.Info().Msg("store created and seeded")
	}

	// http
	reg := observability.InitRegistry()
	srv := server.New(cfg.RequestTimeout, cfg.RateLimitRPS)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, C: c})

	servers := []*http.Server{{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}}
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", observability.MetricsHandler(reg))
		servers = append(servers, &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, hs := range servers {
		g.Go(func() error {
			log.Info().Str("addr", hs.Addr).Msg("listening")
			if err := hs.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, hs := range servers {
			if err := hs.Shutdown(shutdownCtx); err != nil {
				log.Warn().Err(err).Str("addr", hs.Addr).Msg("shutdown failed")
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("http server failed")
		stop()
		os.Exit(1)
	}
	log.Info().Msg("shutdown complete")
}
