// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/devmatch/internal/logging"
	"github.com/tomtom215/devmatch/internal/matching"
	"github.com/tomtom215/devmatch/internal/metrics"
	"github.com/tomtom215/devmatch/internal/models"
)

// Generator builds recommendation lists. It is safe for concurrent use.
type Generator struct {
	source ProfileSource
	index  LanguageIndex
	pairs  MatchedUsers
	scorer *matching.Scorer
	config Config
	logger zerolog.Logger
}

// NewGenerator returns a Generator reading from source and scoring with scorer.
// Optional capabilities (LanguageIndex, MatchedUsers) are discovered on source
// and must be present when the matching Config flag is set.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewGenerator(source ProfileSource, scorer *matching.Scorer, cfg Config, logger zerolog.Logger) (*Generator, error) {
	if source == nil {
		return nil, errors.New("profile source is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if scorer == nil {
		scorer = matching.NewScorer(matching.DefaultWeights())
	}

	g := &Generator{
		source: source,
		scorer: scorer,
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
	if cfg.LanguagePrefilter {
		idx, ok := source.(LanguageIndex)
		if !ok {
			return nil, errors.New("language_prefilter requires a store with a language index")
		}
		g.index = idx
	}
	if cfg.ExcludeMatched {
		mu, ok := source.(MatchedUsers)
		if !ok {
			return nil, errors.New("exclude_matched requires a store that tracks matches")
		}
		g.pairs = mu
	}
	return g, nil
}

// Generate returns the ranked recommendations for userID.
func (g *Generator) Generate(ctx context.Context, userID string) (*Result, error) {
	start := time.Now()
	res, candidates, err := g.generate(ctx, userID)
	metrics.RecordRecommendation(time.Since(start), candidates, len(resultEntries(res)), outcomeLabel(err))
	if err != nil {
		if errors.Is(err, models.ErrDataIntegrity) {
			metrics.RecordIntegrityViolation()
		}
		logging.Ctx(ctx).Error().Err(err).Str("user_id", userID).Msg("Recommendation generation failed")
		return nil, err
	}
	return res, nil
}

func (g *Generator) generate(ctx context.Context, userID string) (*Result, int, error) {
	if userID == "" {
		return nil, 0, models.Validationf("user id is required")
	}

	requester, err := g.source.GetProfile(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		g.logger.Debug().Str("user_id", userID).Msg("No profile for requester")
		return emptyResult(""), 0, nil
	}
	if err != nil {
		return nil, 0, storeErr("get requester profile", err)
	}
	if !requester.Active {
		g.logger.Debug().Str("user_id", userID).Msg("Requester profile inactive")
		return emptyResult(""), 0, nil
	}

	candidates, err := g.candidates(ctx, requester)
	if err != nil {
		return nil, 0, err
	}

	recs := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		if c.UserID == userID {
			continue
		}
		if c.User == nil || c.User.ID == "" {
			return nil, len(candidates), fmt.Errorf("candidate profile %q: owning user not found: %w", c.UserID, models.ErrDataIntegrity)
		}

		v := matching.ExtractFeatures(requester, c)
		if v.SkillOverlap() == 0 {
			continue
		}
		score := g.scorer.Score(v)
		if e := g.logger.Trace(); e.Enabled() {
			e.Str("user_id", userID).
				Str("candidate", c.UserID).
				Float64("score", score).
				Interface("breakdown", g.scorer.Breakdown(v)).
				Msg("Scored candidate")
		}
		recs = append(recs, Recommendation{UserID: c.UserID, Score: score, Profile: c})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })

	if g.config.MaxResults > 0 && len(recs) > g.config.MaxResults {
		recs = recs[:g.config.MaxResults]
	}

	if len(recs) == 0 {
		return emptyResult(NoRecommendationsMessage), len(candidates), nil
	}

	g.logger.Debug().
		Str("user_id", userID).
		Int("candidates", len(candidates)).
		Int("returned", len(recs)).
		Float64("top_score", recs[0].Score).
		Msg("Recommendations generated")
	return &Result{Recommendations: recs}, len(candidates), nil
}

// candidates loads the candidate pool for requester according to the config.
func (g *Generator) candidates(ctx context.Context, requester *models.MatchProfile) ([]*models.MatchProfile, error) {
	var (
		pool []*models.MatchProfile
		err  error
	)
	if g.index != nil {
		if len(requester.ProgrammingLanguages) == 0 {
			return nil, nil
		}
		pool, err = g.index.ListActiveProfilesByLanguage(ctx, requester.UserID, requester.ProgrammingLanguages)
	} else {
		pool, err = g.source.ListActiveProfiles(ctx, requester.UserID)
	}
	if err != nil {
		return nil, storeErr("list candidate profiles", err)
	}

	if g.pairs == nil {
		return pool, nil
	}
	partners, err := g.pairs.LiveMatchPartners(ctx, requester.UserID)
	if err != nil {
		return nil, storeErr("list match partners", err)
	}
	filtered := make([]*models.MatchProfile, 0, len(pool))
	for _, p := range pool {
		if _, matched := partners[p.UserID]; !matched {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func emptyResult(message string) *Result {
	return &Result{Recommendations: []Recommendation{}, Message: message}
}

func resultEntries(r *Result) []Recommendation {
	if r == nil {
		return nil
	}
	return r.Recommendations
}

// storeErr marks err as a store failure unless it already carries a domain
// identity or is a context error.
func storeErr(op string, err error) error {
	if errors.Is(err, models.ErrStore) || errors.Is(err, models.ErrDataIntegrity) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return models.StoreError(op, err)
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, models.ErrDataIntegrity):
		return "integrity_error"
	case errors.Is(err, models.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
