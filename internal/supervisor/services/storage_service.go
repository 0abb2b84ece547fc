// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/devmatch/internal/metrics"
)

// GarbageCollector is satisfied by *storage.DB.
type GarbageCollector interface {
	RunGC() error
}

// StorageGCService periodically reclaims value log space.
type StorageGCService struct {
	store    GarbageCollector
	interval time.Duration
	logger   zerolog.Logger
}

// NewStorageGCService runs store.RunGC every interval. A non-positive
// interval uses 10 minutes.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStorageGCService(store GarbageCollector, interval time.Duration, logger zerolog.Logger) *StorageGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &StorageGCService{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("service", "storage-gc").Logger(),
	}
}

// Serve implements suture.Service. GC failures are logged, not returned,
// so a busy value log does not restart the service.
func (s *StorageGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.store.RunGC(); err != nil {
				s.logger.Warn().Err(err).Msg("Value log GC failed")
				continue
			}
			s.logger.Debug().Dur("duration", time.Since(start)).Msg("Value log GC complete")
		}
	}
}

func (s *StorageGCService) String() string {
	return "storage-gc"
}

// ProfileCounter is satisfied by *storage.DB.
type ProfileCounter interface {
	CountActiveProfiles(ctx context.Context) (int, error)
}

// ProfileStatsService samples the active profile count into the
// devmatch_active_profiles gauge.
type ProfileStatsService struct {
	store    ProfileCounter
	interval time.Duration
	logger   zerolog.Logger
}

// NewProfileStatsService samples every interval. A non-positive interval uses one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewProfileStatsService(store ProfileCounter, interval time.Duration, logger zerolog.Logger) *ProfileStatsService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ProfileStatsService{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("service", "profile-stats").Logger(),
	}
}

// Serve implements suture.Service. It samples once on start.
func (s *ProfileStatsService) Serve(ctx context.Context) error {
	s.sample(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sample(ctx)
		}
	}
}

func (s *ProfileStatsService) sample(ctx context.Context) {
	n, err := s.store.CountActiveProfiles(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn().Err(err).Msg("Counting active profiles failed")
		}
		return
	}
	metrics.SetActiveProfiles(n)
}

func (s *ProfileStatsService) String() string {
	return "profile-stats"
}
