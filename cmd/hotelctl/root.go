package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hotel_manager/internal/adapters/observability"
	redisad "hotel_manager/internal/adapters/redis"
	"hotel_manager/internal/app"
	"hotel_manager/internal/domain"
	"hotel_manager/internal/storage"
	"hotel_manager/internal/storage/sqlstore"
)

// cli holds what every subcommand needs once PersistentPreRunE has run.
type cli struct {
	configFile string
	asJSON     bool

	store *sqlstore.Store
	cache *redisad.Cache
	q     *app.QueryService
	c     *app.CommandService
}

func newRootCmd() (*cobra.Command, *cli) {
	h := &cli{}

	root := &cobra.Command{
		Use:   "hotelctl",
		Short: "hotelctl manages hotels, clients and reservations",
		Long: `hotelctl is the operator console for the hotel store: dashboard counts,
reservations, clients, and room availability.

The store is created and seeded on first use.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return h.open(cmd)
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVar(&h.configFile, "config", "", "config file (default: ./hotelctl.yaml when present)")
	root.PersistentFlags().BoolVar(&h.asJSON, "json", false, "output as JSON")

	root.AddCommand(
		h.initCmd(),
		h.dashboardCmd(),
		h.reservationsCmd(),
		h.clientsCmd(),
		h.roomsCmd(),
	)
	return root, h
}

func (h *cli) open(cmd *cobra.Command) error {
	cfg, err := loadConfig(h.configFile)
	if err != nil {
		return userError(err)
	}
	log.Logger = observability.NewLoggerTo(cmd.ErrOrStderr(), cfg.AppEnv, cfg.LogLevel)

	ctx := cmd.Context()
	st, err := storage.Open(ctx, cfg)
	if err != nil {
		return systemError(err)
	}
	h.store = st

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; continuing without cache")
			_ = rc.Close()
		} else {
			h.cache = rc
			cache = rc
		}
	}

	h.q = app.NewQueryService(st, cache, cfg.CacheTTL)
	h.c = app.NewCommandService(st, cache, cfg.RecheckOnEdit)

	// init decides itself whether to seed
	if cmd.Name() == "init" {
		return nil
	}
	if _, err := h.c.InitializeStore(ctx); err != nil {
		return fail(err)
	}
	return nil
}

// close releases the store and cache; safe to call when open never ran.
func (h *cli) close() error {
	if h.cache != nil {
		_ = h.cache.Close()
		h.cache = nil
	}
	if h.store != nil {
		err := h.store.Close()
		h.store = nil
		return err
	}
	return nil
}
