// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

/*
Package config loads Devmatch configuration.

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file (CONFIG_PATH, config.yaml, /etc/devmatch/config.yaml)
 3. Mapped environment variables

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT: bind address (default 0.0.0.0:8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - SHUTDOWN_TIMEOUT: graceful shutdown budget (default 15s)

Database:
  - DATABASE_PATH: badger directory (default /data/devmatch)
  - DATABASE_IN_MEMORY: run without persistence (tests, demos)
  - DATABASE_GC_INTERVAL: value log GC interval

Security:
  - JWT_SECRET: HS256 signing secret, at least 32 characters
  - CORS_ORIGINS: comma-separated list
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Matching:
  - MATCH_WEIGHTS: six comma-separated feature weights
  - RECOMMEND_MAX_RESULTS, RECOMMEND_LANGUAGE_PREFILTER, RECOMMEND_EXCLUDE_MATCHED
  - MATCH_ENFORCE_UNIQUE_PAIR

Events:
  - EVENTS_ENABLED, EVENTS_BUFFER_SIZE
  - EVENTS_BREAKER_FAILURES, EVENTS_BREAKER_TIMEOUT

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
