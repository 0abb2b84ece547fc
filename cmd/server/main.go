// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/devmatch/internal/api"
	"github.com/tomtom215/devmatch/internal/auth"
	"github.com/tomtom215/devmatch/internal/config"
	"github.com/tomtom215/devmatch/internal/events"
	"github.com/tomtom215/devmatch/internal/logging"
	"github.com/tomtom215/devmatch/internal/match"
	"github.com/tomtom215/devmatch/internal/matching"
	"github.com/tomtom215/devmatch/internal/recommend"
	"github.com/tomtom215/devmatch/internal/storage"
	"github.com/tomtom215/devmatch/internal/supervisor"
	"github.com/tomtom215/devmatch/internal/supervisor/services"
	ws "github.com/tomtom215/devmatch/internal/websocket"
)

const profileStatsInterval = time.Minute

func main() {
	seed := flag.Bool("seed", false, "load demo profiles and print demo tokens")
	flag.Parse()

	if err := run(*seed); err != nil {
		logging.Fatal().Err(err).Msg("Devmatch exited with error")
	}
}

//nolint:gocyclo // sequential wiring
func run(seed bool) error {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Bool("in_memory", cfg.Database.InMemory).
		Msg("Starting Devmatch")

	db, err := storage.Open(storage.Config{
		Path:       cfg.Database.Path,
		InMemory:   cfg.Database.InMemory,
		SyncWrites: cfg.Database.SyncWrites,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Err(err).Msg("Error closing storage")
		}
	}()

	jwtManager, err := auth.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.TokenTTL)
	if err != nil {
		return err
	}

	if seed {
		if err := seedDemoData(context.Background(), db, jwtManager); err != nil {
			return err
		}
	}

	weights, err := matching.NewWeights(cfg.Matching.Weights)
	if err != nil {
		return err
	}
	scorer := matching.NewScorer(weights)

	generator, err := recommend.NewGenerator(db, scorer, recommend.Config{
		MaxResults:        cfg.Recommend.MaxResults,
		LanguagePrefilter: cfg.Recommend.LanguagePrefilter,
		ExcludeMatched:    cfg.Recommend.ExcludeMatched,
	}, logging.Logger())
	if err != nil {
		return err
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		return err
	}

	wsHub := ws.NewHub()
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))

	var publisher events.Publisher
	if cfg.Events.Enabled {
		bus := events.NewBus(events.Config{
			BufferSize:       cfg.Events.BufferSize,
			FailureThreshold: cfg.Events.BreakerFailures,
			OpenTimeout:      cfg.Events.BreakerTimeout,
			HalfOpenRequests: cfg.Events.BreakerHalfOpen,
		}, logging.Logger())
		defer func() {
			if err := bus.Close(); err != nil {
				logging.Err(err).Msg("Error closing event bus")
			}
		}()
		publisher = bus
		tree.AddMessagingService(events.NewForwarder(bus, wsHub.Deliver))
	} else {
		logging.Info().Msg("Match events disabled (EVENTS_ENABLED=false)")
	}

	manager := match.NewManager(db, publisher, match.Config{
		EnforceUniquePair: cfg.Match.EnforceUniquePair,
	}, logging.Logger())

	handler := api.NewHandler(api.HandlerDeps{
		Profiles:       db,
		Recommender:    generator,
		Matches:        manager,
		WSHub:          wsHub,
		AllowedOrigins: cfg.Security.CORSOrigins,
	})
	router := api.NewRouter(handler, auth.NewMiddleware(jwtManager), api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	}))

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	for _, origin := range cfg.Security.CORSOrigins {
		if origin == "*" {
			logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); restrict it outside development")
			break
		}
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logging.Logger()))
	tree.AddDataService(services.NewStorageGCService(db, cfg.Database.GCInterval, logging.Logger()))
	tree.AddDataService(services.NewProfileStatsService(db, profileStatsInterval, logging.Logger()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Supervisor tree starting")
	if err := tree.Run(ctx); err != nil {
		return err
	}
	logging.Info().Msg("Devmatch stopped")
	return nil
}
